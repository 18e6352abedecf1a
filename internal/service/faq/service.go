// internal/service/faq/service.go
package faq

import (
	"context"
	"fmt"

	"voltride-service/internal/domain/faq"
	"voltride-service/internal/validators"

	"go.uber.org/zap"
)

// Service owns the FAQ content shown on the public site.
type Service struct {
	repo   faq.Repository
	logger *zap.Logger
}

func NewService(repo faq.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListActive returns active FAQs ordered by category and sort order.
func (s *Service) ListActive(ctx context.Context, category string) ([]faq.FAQ, error) {
	return s.repo.ListActive(ctx, category)
}

func (s *Service) Get(ctx context.Context, id int64) (*faq.FAQ, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, req *faq.SaveRequest) (*faq.FAQ, error) {
	if verrs := validators.ValidateStruct(req); verrs != nil {
		return nil, verrs
	}

	f := buildFAQ(req)
	if err := s.repo.Create(ctx, f); err != nil {
		s.logger.Error("failed to create faq", zap.Error(err))
		return nil, fmt.Errorf("failed to create faq: %w", err)
	}

	s.logger.Info("faq created", zap.Int64("faq_id", f.ID), zap.String("category", f.Category))
	return f, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *faq.SaveRequest) (*faq.FAQ, error) {
	if verrs := validators.ValidateStruct(req); verrs != nil {
		return nil, verrs
	}

	f := buildFAQ(req)
	if err := s.repo.Update(ctx, id, f); err != nil {
		return nil, err
	}

	s.logger.Info("faq updated", zap.Int64("faq_id", id))
	return s.repo.FindByID(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("faq deleted", zap.Int64("faq_id", id))
	return nil
}

func (s *Service) List(ctx context.Context, filters *faq.ListFilters) (*faq.ListResponse, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}
	if filters.PageSize > 100 {
		filters.PageSize = 100
	}

	faqs, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list faqs: %w", err)
	}

	totalPages := int(total) / filters.PageSize
	if int(total)%filters.PageSize != 0 {
		totalPages++
	}

	return &faq.ListResponse{
		FAQs:       faqs,
		Total:      total,
		Page:       filters.Page,
		PageSize:   filters.PageSize,
		TotalPages: totalPages,
	}, nil
}

func buildFAQ(req *faq.SaveRequest) *faq.FAQ {
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	return &faq.FAQ{
		Question:  req.Question,
		Answer:    req.Answer,
		Category:  req.Category,
		SortOrder: req.SortOrder,
		IsActive:  isActive,
	}
}
