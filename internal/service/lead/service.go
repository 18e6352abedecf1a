// internal/service/lead/service.go
package lead

import (
	"context"
	"database/sql"
	"fmt"

	"voltride-service/internal/domain/catalog"
	"voltride-service/internal/domain/lead"
	xerrors "voltride-service/internal/pkg/errors"
	"voltride-service/internal/service/email"
	"voltride-service/internal/service/notify"
	"voltride-service/internal/validators"
	ws "voltride-service/internal/websocket"

	"go.uber.org/zap"
)

// Service handles enquiry intake from the public site and lead management
// from the back office. Email notifications are queued best-effort; a dead
// mail server never fails a submission.
type Service struct {
	leadRepo    lead.Repository
	catalogRepo catalog.Repository
	mailer      *notify.Mailer
	hub         *ws.Hub
	salesEmail  string
	logger      *zap.Logger
}

func NewService(leadRepo lead.Repository, catalogRepo catalog.Repository, mailer *notify.Mailer, hub *ws.Hub, salesEmail string, logger *zap.Logger) *Service {
	return &Service{
		leadRepo:    leadRepo,
		catalogRepo: catalogRepo,
		mailer:      mailer,
		hub:         hub,
		salesEmail:  salesEmail,
		logger:      logger,
	}
}

// Submit validates and persists a public enquiry, then queues notification
// emails and pushes the lead to the admin feed.
func (s *Service) Submit(ctx context.Context, req *lead.SubmitRequest) (*lead.Lead, error) {
	if verrs := validators.ValidateStruct(req); verrs != nil {
		return nil, verrs
	}

	source := req.Source
	if source == "" {
		source = lead.SourceWebsite
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

	l := &lead.Lead{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		City:    req.City,
		ModelID: modelID,
		Message: sql.NullString{String: req.Message, Valid: req.Message != ""},
		Source:  source,
		Status:  lead.StatusNew,
	}

	if err := s.leadRepo.Create(ctx, l); err != nil {
		s.logger.Error("failed to create lead", zap.Error(err))
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	s.logger.Info("lead created",
		zap.Int64("lead_id", l.ID),
		zap.String("city", l.City),
		zap.String("source", l.Source),
	)

	s.mailer.Enqueue(notify.Job{
		To:      s.salesEmail,
		Subject: fmt.Sprintf("New enquiry from %s (%s)", l.Name, l.City),
		Body:    email.LeadNotificationBody(l, modelName),
	})
	s.mailer.Enqueue(notify.Job{
		To:      l.Email,
		Subject: "Thanks for your interest in VoltRide",
		Body:    email.LeadConfirmationBody(l),
	})

	s.hub.Publish(ws.NewEvent(ws.EventLeadCreated, l))

	return l, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*lead.Lead, error) {
	return s.leadRepo.FindByID(ctx, id)
}

func (s *Service) List(ctx context.Context, filters *lead.ListFilters) (*lead.ListResponse, error) {
	if filters.Status != "" && !lead.IsValidStatus(filters.Status) {
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

	leads, total, err := s.leadRepo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	return &lead.ListResponse{
		Leads:      leads,
		Total:      total,
		Page:       filters.Page,
		PageSize:   filters.PageSize,
		TotalPages: totalPages(total, filters.PageSize),
	}, nil
}

// UpdateStatus moves a lead through its lifecycle and notifies the feed.
func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*lead.Lead, error) {
	if !lead.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", xerrors.ErrInvalidInput, status)
	}

	if err := s.leadRepo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	l, err := s.leadRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("lead status updated",
		zap.Int64("lead_id", id), zap.String("status", status))
	s.hub.Publish(ws.NewEvent(ws.EventLeadStatusChanged, l))

	return l, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.leadRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("lead deleted", zap.Int64("lead_id", id))
	return nil
}

func (s *Service) Stats(ctx context.Context) (*lead.Stats, error) {
	return s.leadRepo.GetStats(ctx)
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
