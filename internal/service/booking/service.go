// internal/service/booking/service.go
package booking

import (
	"context"
	"database/sql"
	"fmt"

	"voltride-service/internal/domain/booking"
	"voltride-service/internal/domain/catalog"
	"voltride-service/internal/domain/dealer"
	xerrors "voltride-service/internal/pkg/errors"
	"voltride-service/internal/service/email"
	"voltride-service/internal/service/notify"
	"voltride-service/internal/validators"
	ws "voltride-service/internal/websocket"

	"github.com/oklog/ulid/v2"
	"go.uber.org/zap"
)

// Service handles test-ride bookings from the public site and booking
// management from the back office.
type Service struct {
	bookingRepo booking.Repository
	dealerRepo  dealer.Repository
	catalogRepo catalog.Repository
	mailer      *notify.Mailer
	hub         *ws.Hub
	salesEmail  string
	logger      *zap.Logger
}

func NewService(bookingRepo booking.Repository, dealerRepo dealer.Repository, catalogRepo catalog.Repository, mailer *notify.Mailer, hub *ws.Hub, salesEmail string, logger *zap.Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		dealerRepo:  dealerRepo,
		catalogRepo: catalogRepo,
		mailer:      mailer,
		hub:         hub,
		salesEmail:  salesEmail,
		logger:      logger,
	}
}

// Submit validates and persists a public booking. The booking reference is
// generated server-side and returned to the customer in the confirmation.
func (s *Service) Submit(ctx context.Context, req *booking.SubmitRequest) (*booking.TestRideBooking, error) {
	if verrs := validators.ValidateStruct(req); verrs != nil {
		return nil, verrs
	}

	rideDate, err := validators.ParseRideDate(req.RideDate)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", xerrors.ErrInvalidInput, err.Error())
	}

	d, err := s.dealerRepo.FindByID(ctx, req.DealerID)
	if err != nil {
		if xerrors.Is(err, xerrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown dealership", xerrors.ErrInvalidInput)
		}
		return nil, fmt.Errorf("failed to resolve dealership: %w", err)
	}
	if !d.IsActive {
		return nil, fmt.Errorf("%w: dealership is not accepting test rides", xerrors.ErrInvalidInput)
	}

	modelName := ""
	var modelID sql.NullInt64
	if req.ModelID != nil {
		m, err := s.catalogRepo.FindByID(ctx, *req.ModelID, false)
		if err != nil {
			if xerrors.Is(err, xerrors.ErrNotFound) {
				return nil, fmt.Errorf("%w: unknown model", xerrors.ErrInvalidInput)
			}
			return nil, fmt.Errorf("failed to resolve model: %w", err)
		}
		modelID = sql.NullInt64{Int64: m.ID, Valid: true}
		modelName = m.Name
	}

	b := &booking.TestRideBooking{
		Reference: newReference(),
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		DealerID:  d.ID,
		ModelID:   modelID,
		RideDate:  rideDate,
		TimeSlot:  req.TimeSlot,
		Status:    booking.StatusPending,
		Notes:     sql.NullString{String: req.Notes, Valid: req.Notes != ""},
	}

	if err := s.bookingRepo.Create(ctx, b); err != nil {
		s.logger.Error("failed to create booking", zap.Error(err))
		return nil, fmt.Errorf("failed to create booking: %w", err)
	}

	s.logger.Info("test ride booked",
		zap.Int64("booking_id", b.ID),
		zap.String("reference", b.Reference),
		zap.Int64("dealer_id", b.DealerID),
	)

	s.mailer.Enqueue(notify.Job{
		To:      s.salesEmail,
		Subject: fmt.Sprintf("New test ride %s at %s", b.Reference, d.Name),
		Body:    email.BookingNotificationBody(b, d.Name, modelName),
	})
	s.mailer.Enqueue(notify.Job{
		To:      b.Email,
		Subject: fmt.Sprintf("Your VoltRide test ride is booked (%s)", b.Reference),
		Body:    email.BookingConfirmationBody(b, d.Name),
	})

	s.hub.Publish(ws.NewEvent(ws.EventBookingCreated, b))

	return b, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*booking.TestRideBooking, error) {
	return s.bookingRepo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filters *booking.ListFilters) (*booking.ListResponse, error) {
	if filters.Status != "" && !booking.IsValidStatus(filters.Status) {
		return nil, fmt.Errorf("%w: unknown status %q", xerrors.ErrInvalidInput, filters.Status)
	}

	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}
	if filters.PageSize > 100 {
		filters.PageSize = 100
	}

	bookings, total, err := s.bookingRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}

	return &booking.ListResponse{
		Bookings:   bookings,
		Total:      total,
		Page:       filters.Page,
		PageSize:   filters.PageSize,
		TotalPages: totalPages(total, filters.PageSize),
	}, nil
}

// UpdateStatus moves a booking through its lifecycle and notifies the feed.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*booking.TestRideBooking, error) {
	if !booking.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", xerrors.ErrInvalidInput, status)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	b, err := s.bookingRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("booking status updated",
		zap.Int64("booking_id", id), zap.String("status", status))
	s.hub.Publish(ws.NewEvent(ws.EventBookingStatusChanged, b))

	return b, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.bookingRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("booking deleted", zap.Int64("booking_id", id))
	return nil
}

func (s *Service) Stats(ctx context.Context) (*booking.Stats, error) {
	return s.bookingRepo.GetStats(ctx)
}

// TimeSlots returns the bookable slots shown on the public form.
func (s *Service) TimeSlots() []string {
	out := make([]string, len(booking.TimeSlots))
	copy(out, booking.TimeSlots)
	return out
}

func newReference() string {
	return "TRB-" + ulid.Make().String()
}

func totalPages(total int64, pageSize int) int {
	if pageSize <= 0 {
		pageSize = 20
	}
	pages := int(total) / pageSize
	if int(total)%pageSize != 0 {
		pages++
	}
	return pages
}
