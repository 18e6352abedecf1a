package lead

import (
	"context"
	"errors"
	"testing"

	"voltride-service/internal/domain/catalog"
	"voltride-service/internal/domain/lead"
	xerrors "voltride-service/internal/pkg/errors"
	"voltride-service/internal/service/notify"
	"voltride-service/internal/validators"
	ws "voltride-service/internal/websocket"

	"go.uber.org/zap"
)

type fakeLeadRepo struct {
	leads  map[int64]*lead.Lead
	nextID int64
}

func newFakeLeadRepo() *fakeLeadRepo {
	return &fakeLeadRepo{leads: make(map[int64]*lead.Lead), nextID: 1}
}

func (r *fakeLeadRepo) Create(ctx context.Context, l *lead.Lead) error {
	l.ID = r.nextID
	r.nextID++
	cp := *l
	r.leads[l.ID] = &cp
	return nil
}

func (r *fakeLeadRepo) FindByID(ctx context.Context, id int64) (*lead.Lead, error) {
	l, ok := r.leads[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (r *fakeLeadRepo) List(ctx context.Context, filters *lead.ListFilters) ([]lead.Lead, int64, error) {
	var out []lead.Lead
	for _, l := range r.leads {
		out = append(out, *l)
	}
	return out, int64(len(out)), nil
}

func (r *fakeLeadRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	l, ok := r.leads[id]
	if !ok {
		return xerrors.ErrNotFound
	}
	l.Status = status
	return nil
}

func (r *fakeLeadRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.leads[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(r.leads, id)
	return nil
}

func (r *fakeLeadRepo) GetStats(ctx context.Context) (*lead.Stats, error) {
	return &lead.Stats{Total: int64(len(r.leads))}, nil
}

type fakeCatalogRepo struct {
	models map[int64]*catalog.ScooterModel
}

func (r *fakeCatalogRepo) SaveProduct(ctx context.Context, m *catalog.ScooterModel) error { return nil }
func (r *fakeCatalogRepo) UpdateProduct(ctx context.Context, id int64, m *catalog.ScooterModel) error {
	return nil
}
func (r *fakeCatalogRepo) FindByID(ctx context.Context, id int64, includeDeleted bool) (*catalog.ScooterModel, error) {
	m, ok := r.models[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return m, nil
}
func (r *fakeCatalogRepo) FindBySlug(ctx context.Context, slug string, publicOnly bool) (*catalog.ScooterModel, error) {
	return nil, xerrors.ErrNotFound
}
func (r *fakeCatalogRepo) List(ctx context.Context, filters *catalog.ListFilters) ([]catalog.ScooterModel, int64, error) {
	return nil, 0, nil
}
func (r *fakeCatalogRepo) ListPublic(ctx context.Context) ([]catalog.ScooterModel, error) {
	return nil, nil
}
func (r *fakeCatalogRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	return nil
}
func (r *fakeCatalogRepo) SoftDelete(ctx context.Context, id int64) error { return nil }
func (r *fakeCatalogRepo) ExistsBySlug(ctx context.Context, slug string, excludeID int64) (bool, error) {
	return false, nil
}
func (r *fakeCatalogRepo) CountActive(ctx context.Context) (int64, error) { return 0, nil }

type failingSender struct{}

func (failingSender) Send(to, subject, body string) error {
	return errors.New("smtp unreachable")
}

func newTestService(leadRepo lead.Repository, catalogRepo catalog.Repository) *Service {
	logger := zap.NewNop()
	mailer := notify.NewMailer(failingSender{}, logger, 8)
	hub := ws.NewHub(nil, nil, logger)
	return NewService(leadRepo, catalogRepo, mailer, hub, "sales@voltride.in", logger)
}

func validRequest() *lead.SubmitRequest {
	return &lead.SubmitRequest{
		Name:  "Asha Verma",
		Email: "asha@example.com",
		Phone: "9876543210",
		City:  "Pune",
	}
}

func TestSubmitCreatesLeadEvenWhenMailFails(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := newTestService(repo, &fakeCatalogRepo{})

	l, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if l.ID == 0 {
		t.Fatal("expected created lead to carry an identifier")
	}
	if l.Status != lead.StatusNew {
		t.Errorf("expected status %q, got %q", lead.StatusNew, l.Status)
	}
	if l.Source != lead.SourceWebsite {
		t.Errorf("expected default source %q, got %q", lead.SourceWebsite, l.Source)
	}
}

func TestSubmitRejectsInvalidPhone(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := newTestService(repo, &fakeCatalogRepo{})

	req := validRequest()
	req.Phone = "12345"

	_, err := svc.Submit(context.Background(), req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	var verrs validators.ValidationErrors
	if !errors.As(err, &verrs) {
		t.Fatalf("expected field errors, got %T: %v", err, err)
	}
	if len(repo.leads) != 0 {
		t.Error("invalid submission must not be persisted")
	}
}

func TestSubmitRejectsUnknownModel(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := newTestService(repo, &fakeCatalogRepo{})

	req := validRequest()
	modelID := int64(99)
	req.ModelID = &modelID

	_, err := svc.Submit(context.Background(), req)
	if !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestSubmitResolvesModelName(t *testing.T) {
	repo := newFakeLeadRepo()
	catalogRepo := &fakeCatalogRepo{models: map[int64]*catalog.ScooterModel{
		7: {ID: 7, Name: "Volt S1", Slug: "volt-s1", Status: catalog.StatusActive},
	}}
	svc := newTestService(repo, catalogRepo)

	req := validRequest()
	modelID := int64(7)
	req.ModelID = &modelID

	l, err := svc.Submit(context.Background(), req)
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}
	if !l.ModelID.Valid || l.ModelID.Int64 != 7 {
		t.Errorf("expected model_id 7, got %+v", l.ModelID)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := newTestService(repo, &fakeCatalogRepo{})

	l, _ := svc.Submit(context.Background(), validRequest())

	if _, err := svc.UpdateStatus(context.Background(), l.ID, "archived"); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestUpdateStatusTransitions(t *testing.T) {
	repo := newFakeLeadRepo()
	svc := newTestService(repo, &fakeCatalogRepo{})

	l, _ := svc.Submit(context.Background(), validRequest())

	updated, err := svc.UpdateStatus(context.Background(), l.ID, lead.StatusContacted)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != lead.StatusContacted {
		t.Errorf("expected %q, got %q", lead.StatusContacted, updated.Status)
	}
}

func TestUpdateStatusMissingLead(t *testing.T) {
	svc := newTestService(newFakeLeadRepo(), &fakeCatalogRepo{})

	if _, err := svc.UpdateStatus(context.Background(), 404, lead.StatusContacted); !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
