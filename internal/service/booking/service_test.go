package booking

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"voltride-service/internal/domain/booking"
	"voltride-service/internal/domain/catalog"
	"voltride-service/internal/domain/dealer"
	xerrors "voltride-service/internal/pkg/errors"
	"voltride-service/internal/service/notify"
	ws "voltride-service/internal/websocket"

	"go.uber.org/zap"
)

type fakeBookingRepo struct {
	bookings map[int64]*booking.TestRideBooking
	nextID   int64
}

func newFakeBookingRepo() *fakeBookingRepo {
	return &fakeBookingRepo{bookings: make(map[int64]*booking.TestRideBooking), nextID: 1}
}

func (r *fakeBookingRepo) Create(ctx context.Context, b *booking.TestRideBooking) error {
	b.ID = r.nextID
	r.nextID++
	cp := *b
	r.bookings[b.ID] = &cp
	return nil
}

func (r *fakeBookingRepo) FindByID(ctx context.Context, id int64) (*booking.TestRideBooking, error) {
	b, ok := r.bookings[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (r *fakeBookingRepo) List(ctx context.Context, filters *booking.ListFilters) ([]booking.TestRideBooking, int64, error) {
	var out []booking.TestRideBooking
	for _, b := range r.bookings {
		out = append(out, *b)
	}
	return out, int64(len(out)), nil
}

func (r *fakeBookingRepo) UpdateStatus(ctx context.Context, id int64, status string) error {
	b, ok := r.bookings[id]
	if !ok {
		return xerrors.ErrNotFound
	}
	b.Status = status
	return nil
}

func (r *fakeBookingRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.bookings[id]; !ok {
		return xerrors.ErrNotFound
	}
	delete(r.bookings, id)
	return nil
}

func (r *fakeBookingRepo) GetStats(ctx context.Context) (*booking.Stats, error) {
	return &booking.Stats{Total: int64(len(r.bookings))}, nil
}

type fakeDealerRepo struct {
	dealers map[int64]*dealer.Dealer
}

func (r *fakeDealerRepo) Create(ctx context.Context, d *dealer.Dealer) error           { return nil }
func (r *fakeDealerRepo) Update(ctx context.Context, id int64, d *dealer.Dealer) error { return nil }
func (r *fakeDealerRepo) Delete(ctx context.Context, id int64) error                   { return nil }
func (r *fakeDealerRepo) FindByID(ctx context.Context, id int64) (*dealer.Dealer, error) {
	d, ok := r.dealers[id]
	if !ok {
		return nil, xerrors.ErrNotFound
	}
	return d, nil
}
func (r *fakeDealerRepo) List(ctx context.Context, filters *dealer.ListFilters) ([]dealer.Dealer, int64, error) {
	return nil, 0, nil
}
func (r *fakeDealerRepo) ListActive(ctx context.Context, city string) ([]dealer.Dealer, error) {
	return nil, nil
}
func (r *fakeDealerRepo) CountActive(ctx context.Context) (int64, error) { return 0, nil }

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

func newTestService(repo booking.Repository) *Service {
	logger := zap.NewNop()
	mailer := notify.NewMailer(failingSender{}, logger, 8)
	hub := ws.NewHub(nil, nil, logger)
	dealers := &fakeDealerRepo{dealers: map[int64]*dealer.Dealer{
		1: {ID: 1, Name: "VoltRide Koramangala", City: "Bengaluru", IsActive: true},
		2: {ID: 2, Name: "VoltRide Andheri", City: "Mumbai", IsActive: false},
	}}
	return NewService(repo, dealers, &fakeCatalogRepo{}, mailer, hub, "sales@voltride.in", logger)
}

func validRequest() *booking.SubmitRequest {
	return &booking.SubmitRequest{
		Name:     "Ravi Kumar",
		Email:    "ravi@example.com",
		Phone:    "9123456780",
		DealerID: 1,
		RideDate: time.Now().AddDate(0, 0, 3).Format("2006-01-02"),
		TimeSlot: "11:30 AM",
	}
}

func TestSubmitCreatesBookingWithReference(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo)

	b, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit returned error: %v", err)
	}

	if !strings.HasPrefix(b.Reference, "TRB-") {
		t.Errorf("reference %q missing TRB- prefix", b.Reference)
	}
	if len(b.Reference) != len("TRB-")+26 {
		t.Errorf("reference %q has unexpected length %d", b.Reference, len(b.Reference))
	}
	if b.Status != booking.StatusPending {
		t.Errorf("expected status %q, got %q", booking.StatusPending, b.Status)
	}
}

func TestSubmitReferencesAreUnique(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo)

	seen := make(map[string]bool)
	for i := 0; i < 10; i++ {
		b, err := svc.Submit(context.Background(), validRequest())
		if err != nil {
			t.Fatalf("Submit returned error: %v", err)
		}
		if seen[b.Reference] {
			t.Fatalf("duplicate reference %q", b.Reference)
		}
		seen[b.Reference] = true
	}
}

func TestSubmitRejectsPastDate(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	req := validRequest()
	req.RideDate = time.Now().AddDate(0, 0, -1).Format("2006-01-02")

	if _, err := svc.Submit(context.Background(), req); err == nil {
		t.Fatal("expected error for past ride date")
	}
}

func TestSubmitRejectsUnknownTimeSlot(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	req := validRequest()
	req.TimeSlot = "9:00 PM"

	if _, err := svc.Submit(context.Background(), req); err == nil {
		t.Fatal("expected error for unknown time slot")
	}
}

func TestSubmitRejectsUnknownDealer(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	req := validRequest()
	req.DealerID = 404

	if _, err := svc.Submit(context.Background(), req); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestSubmitRejectsInactiveDealer(t *testing.T) {
	svc := newTestService(newFakeBookingRepo())

	req := validRequest()
	req.DealerID = 2

	if _, err := svc.Submit(context.Background(), req); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input, got %v", err)
	}
}

func TestSubmitSucceedsWhenMailUnreachable(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo)

	b, err := svc.Submit(context.Background(), validRequest())
	if err != nil {
		t.Fatalf("Submit must not fail on mail errors: %v", err)
	}
	if _, err := repo.FindByID(context.Background(), b.ID); err != nil {
		t.Fatalf("booking not persisted: %v", err)
	}
}

func TestUpdateStatusLifecycle(t *testing.T) {
	repo := newFakeBookingRepo()
	svc := newTestService(repo)

	b, _ := svc.Submit(context.Background(), validRequest())

	updated, err := svc.UpdateStatus(context.Background(), b.ID, booking.StatusConfirmed)
	if err != nil {
		t.Fatalf("UpdateStatus returned error: %v", err)
	}
	if updated.Status != booking.StatusConfirmed {
		t.Errorf("expected %q, got %q", booking.StatusConfirmed, updated.Status)
	}

	if _, err := svc.UpdateStatus(context.Background(), b.ID, "rescheduled"); !errors.Is(err, xerrors.ErrInvalidInput) {
		t.Fatalf("expected invalid input for unknown status, got %v", err)
	}
}
