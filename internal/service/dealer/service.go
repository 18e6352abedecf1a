// internal/service/dealer/service.go
package dealer

import (
	"context"
	"database/sql"
	"fmt"

	"voltride-service/internal/domain/dealer"
	"voltride-service/internal/validators"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// Service owns the dealership network: the public locator and the
// back-office CRUD.
type Service struct {
	repo   dealer.Repository
	logger *zap.Logger
}

func NewService(repo dealer.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListActive returns active dealerships for the public locator, optionally
// narrowed to a city.
func (s *Service) ListActive(ctx context.Context, city string) ([]dealer.Dealer, error) {
	return s.repo.ListActive(ctx, city)
}

func (s *Service) Get(ctx context.Context, id int64) (*dealer.Dealer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req *dealer.SaveRequest) (*dealer.Dealer, error) {
	if verrs := validators.ValidateStruct(req); verrs != nil {
		return nil, verrs
	}

	d := buildDealer(req)
	if err := s.repo.Create(ctx, d); err != nil {
		s.logger.Error("failed to create dealer", zap.Error(err))
		return nil, fmt.Errorf("failed to create dealer: %w", err)
	}

	s.logger.Info("dealer created", zap.Int64("dealer_id", d.ID), zap.String("city", d.City))
	return d, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *dealer.SaveRequest) (*dealer.Dealer, error) {
	if verrs := validators.ValidateStruct(req); verrs != nil {
		return nil, verrs
	}

	d := buildDealer(req)
	if err := s.repo.Update(ctx, id, d); err != nil {
		return nil, err
	}

	s.logger.Info("dealer updated", zap.Int64("dealer_id", id))
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("dealer deleted", zap.Int64("dealer_id", id))
	return nil
}

func (s *Service) List(ctx context.Context, filters *dealer.ListFilters) (*dealer.ListResponse, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}
	if filters.PageSize > 100 {
		filters.PageSize = 100
	}

	dealers, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list dealers: %w", err)
	}

	return &dealer.ListResponse{
		Dealers:    dealers,
		Total:      total,
		Page:       filters.Page,
		PageSize:   filters.PageSize,
		TotalPages: totalPages(total, filters.PageSize),
	}, nil
}

func buildDealer(req *dealer.SaveRequest) *dealer.Dealer {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return &dealer.Dealer{
		Name:           req.Name,
		AddressLine:    req.AddressLine,
		City:           req.City,
		State:          req.State,
		Pincode:        req.Pincode,
		Latitude:       req.Latitude,
		Longitude:      req.Longitude,
		Phone:          req.Phone,
		Email:          sql.NullString{String: req.Email, Valid: req.Email != ""},
		OperatingHours: pq.StringArray(req.OperatingHours),
		IsActive:       isActive,
	}
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
