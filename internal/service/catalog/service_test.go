package catalog

import (
	"context"
	"errors"
	"testing"

	"voltride-service/internal/domain/catalog"
	xerrors "voltride-service/internal/pkg/errors"

	"go.uber.org/zap"
)

type fakeRepo struct {
	models map[int64]*catalog.ScooterModel
	nextID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{models: make(map[int64]*catalog.ScooterModel), nextID: 1}
}

func (r *fakeRepo) SaveProduct(ctx context.Context, m *catalog.ScooterModel) error {
	m.ID = r.nextID
	r.nextID++
	cp := *m
	r.models[m.ID] = &cp
	return nil
}

func (r *fakeRepo) UpdateProduct(ctx context.Context, id int64, m *catalog.ScooterModel) error {
	if _, ok := r.models[id]; !ok {
		return xerrors.ErrNotFound
	}
	cp := *m
	cp.ID = id
	r.models[id] = &cp
	return nil
}

func (r *fakeRepo) FindByID(ctx context.Context, id int64, includeDeleted bool) (*catalog.ScooterModel, error) {
	m, ok := r.models[id]
	if !ok || (!includeDeleted && m.DeletedAt.Valid) {
		return nil, xerrors.ErrNotFound
	}
	cp := *m
	return &cp, nil
}

func (r *fakeRepo) FindBySlug(ctx context.Context, slug string, publicOnly bool) (*catalog.ScooterModel, error) {
	for _, m := range r.models {
		if m.Slug != slug {
			continue
		}
		if publicOnly && (m.DeletedAt.Valid || m.Status != catalog.StatusActive) {
			return nil, xerrors.ErrNotFound
		}
		cp := *m
		return &cp, nil
	}
	return nil, xerrors.ErrNotFound
}

func (r *fakeRepo) List(ctx context.Context, filters *catalog.ListFilters) ([]catalog.ScooterModel, int64, error) {
	var out []catalog.ScooterModel
	for _, m := range r.models {
		out = append(out, *m)
	}
	return out, int64(len(out)), nil
}

func (r *fakeRepo) ListPublic(ctx context.Context) ([]catalog.ScooterModel, error) {
	var out []catalog.ScooterModel
	for _, m := range r.models {
		if !m.DeletedAt.Valid && m.Status == catalog.StatusActive {
			out = append(out, *m)
		}
	}
	return out, nil
}

func (r *fakeRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	m, ok := r.models[id]
	if !ok {
		return xerrors.ErrNotFound
	}
	m.Status = status
	return nil
}

func (r *fakeRepo) SoftDelete(ctx context.Context, id int64) error {
	m, ok := r.models[id]
	if !ok {
		return xerrors.ErrNotFound
	}
	m.DeletedAt.Valid = true
	return nil
}

func (r *fakeRepo) ExistsBySlug(ctx context.Context, slug string, excludeID int64) (bool, error) {
	for _, m := range r.models {
		if m.Slug == slug && m.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeRepo) CountActive(ctx context.Context) (int64, error) {
	var n int64
	for _, m := range r.models {
		if !m.DeletedAt.Valid && m.Status == catalog.StatusActive {
			n++
		}
	}
	return n, nil
}

func validProduct(slug string) *catalog.SaveProductRequest {
	return &catalog.SaveProductRequest{
		Name:   "Volt S1",
		Slug:   slug,
		Status: catalog.StatusActive,
		Variants: []catalog.VariantInput{
			{
				Name:          "Standard",
				PriceINR:      95000,
				RangeKm:       110,
				TopSpeedKmph:  80,
				BatteryKWh:    2.9,
				ChargingHours: 4.5,
				MotorPowerW:   4000,
				Colors:        []catalog.ColorInput{{Name: "Midnight Black", Hex: "#111111"}},
			},
			{
				Name:          "Pro",
				PriceINR:      125000,
				RangeKm:       150,
				TopSpeedKmph:  95,
				BatteryKWh:    3.7,
				ChargingHours: 5,
				MotorPowerW:   5500,
				Colors:        []catalog.ColorInput{{Name: "Pearl White", Hex: "#f5f5f5"}},
			},
		},
	}
}

func TestSaveRejectsDuplicateSlug(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, zap.NewNop())

	if _, err := svc.Save(context.Background(), validProduct("volt-s1")); err != nil {
		t.Fatalf("first save failed: %v", err)
	}

	_, err := svc.Save(context.Background(), validProduct("volt-s1"))
	if !errors.Is(err, xerrors.ErrConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestUpdateAllowsKeepingOwnSlug(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, zap.NewNop())

	m, err := svc.Save(context.Background(), validProduct("volt-s1"))
	if err != nil {
		t.Fatalf("save failed: %v", err)
	}

	if _, err := svc.Update(context.Background(), m.ID, validProduct("volt-s1")); err != nil {
		t.Fatalf("update with unchanged slug must succeed: %v", err)
	}
}

func TestSaveRejectsInvalidSlug(t *testing.T) {
	svc := NewService(newFakeRepo(), zap.NewNop())

	req := validProduct("Volt S1!")
	if _, err := svc.Save(context.Background(), req); err == nil {
		t.Fatal("expected validation error for malformed slug")
	}
}

func TestSoftDeletedModelInvisiblePublicly(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, zap.NewNop())

	m, _ := svc.Save(context.Background(), validProduct("volt-s1"))

	if err := svc.Delete(context.Background(), m.ID); err != nil {
		t.Fatalf("delete failed: %v", err)
	}

	if _, err := svc.GetPublicBySlug(context.Background(), "volt-s1"); !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("soft-deleted model must be publicly invisible, got %v", err)
	}

	models, err := svc.ListPublic(context.Background())
	if err != nil {
		t.Fatalf("ListPublic failed: %v", err)
	}
	if len(models) != 0 {
		t.Fatalf("soft-deleted model leaked into public list")
	}
}

func TestCompareBuildsEntries(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, zap.NewNop())

	svc.Save(context.Background(), validProduct("volt-s1"))
	second := validProduct("volt-x2")
	second.Name = "Volt X2"
	svc.Save(context.Background(), second)

	entries, err := svc.Compare(context.Background(), []string{"volt-s1", "volt-x2"})
	if err != nil {
		t.Fatalf("Compare returned error: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}

	e := entries[0]
	if e.StartingPrice != "₹95,000" {
		t.Errorf("expected starting price ₹95,000, got %q", e.StartingPrice)
	}
	if e.MaxRangeKm != 150 {
		t.Errorf("expected max range 150, got %d", e.MaxRangeKm)
	}
	if e.MaxTopSpeed != 95 {
		t.Errorf("expected max top speed 95, got %d", e.MaxTopSpeed)
	}
	if e.VariantCount != 2 {
		t.Errorf("expected 2 variants, got %d", e.VariantCount)
	}
}

func TestCompareBounds(t *testing.T) {
	svc := NewService(newFakeRepo(), zap.NewNop())

	if _, err := svc.Compare(context.Background(), []string{"one"}); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Errorf("single slug must be rejected, got %v", err)
	}
	if _, err := svc.Compare(context.Background(), []string{"a", "b", "c", "d"}); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Errorf("four slugs must be rejected, got %v", err)
	}
	if _, err := svc.Compare(context.Background(), []string{"a", "a"}); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Errorf("duplicate slugs must be rejected, got %v", err)
	}
}

func TestCompareUnknownSlugFails(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, zap.NewNop())
	svc.Save(context.Background(), validProduct("volt-s1"))

	if _, err := svc.Compare(context.Background(), []string{"volt-s1", "ghost"}); !errors.Is(err, xerrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}
