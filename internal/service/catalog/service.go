// internal/service/catalog/service.go
package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"voltride-service/internal/domain/catalog"
	xerrors "voltride-service/internal/pkg/errors"
	"voltride-service/internal/utils"
	"voltride-service/internal/validators"

	"go.uber.org/zap"
)

// maxCompareModels bounds the public comparison view.
const maxCompareModels = 3

// Service owns the scooter catalog: the public read surface and the
// back-office product CRUD.
type Service struct {
	repo   catalog.Repository
	logger *zap.Logger
}

func NewService(repo catalog.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListPublic returns active, non-deleted models with their variant trees.
func (s *Service) ListPublic(ctx context.Context) ([]catalog.ScooterModel, error) {
	return s.repo.ListPublic(ctx)
}

// GetPublicBySlug returns one active model; drafts, archived and
// soft-deleted models are invisible here.
func (s *Service) GetPublicBySlug(ctx context.Context, slug string) (*catalog.ScooterModel, error) {
	return s.repo.FindBySlug(ctx, slug, true)
}

// Compare builds side-by-side entries for up to three models. Unknown or
// non-public slugs fail the whole comparison.
func (s *Service) Compare(ctx context.Context, slugs []string) ([]catalog.ComparisonEntry, error) {
	if len(slugs) < 2 {
		return nil, fmt.Errorf("%w: at least two models required for comparison", xerrors.ErrInvalidInput)
	}
	if len(slugs) > maxCompareModels {
		return nil, fmt.Errorf("%w: at most %d models can be compared", xerrors.ErrInvalidInput, maxCompareModels)
	}

	seen := make(map[string]bool, len(slugs))
	entries := make([]catalog.ComparisonEntry, 0, len(slugs))
	for _, slug := range slugs {
		if seen[slug] {
			return nil, fmt.Errorf("%w: duplicate model %q", xerrors.ErrInvalidInput, slug)
		}
		seen[slug] = true

		m, err := s.repo.FindBySlug(ctx, slug, true)
		if err != nil {
			return nil, err
		}
		entries = append(entries, buildComparisonEntry(m))
	}
	return entries, nil
}

// Save creates a model with its variants and colors in one transaction.
func (s *Service) Save(ctx context.Context, req *catalog.SaveProductRequest) (*catalog.ScooterModel, error) {
	if verrs := validators.ValidateStruct(req); verrs != nil {
		return nil, verrs
	}

	exists, err := s.repo.ExistsBySlug(ctx, req.Slug, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: slug %q is already in use", xerrors.ErrConflict, req.Slug)
	}

	m := buildModel(req)
	if err := s.repo.SaveProduct(ctx, m); err != nil {
		s.logger.Error("failed to save product", zap.Error(err))
		return nil, err
	}

	s.logger.Info("product created",
		zap.Int64("model_id", m.ID),
		zap.String("slug", m.Slug),
		zap.Int("variants", len(m.Variants)),
	)
	return m, nil
}

// Update rewrites a model and its entire variant tree in one transaction.
func (s *Service) Update(ctx context.Context, id int64, req *catalog.SaveProductRequest) (*catalog.ScooterModel, error) {
	if verrs := validators.ValidateStruct(req); verrs != nil {
		return nil, verrs
	}

	exists, err := s.repo.ExistsBySlug(ctx, req.Slug, id)
	if err != nil {
		return nil, fmt.Errorf("failed to check slug: %w", err)
	}
	if exists {
		return nil, fmt.Errorf("%w: slug %q is already in use", xerrors.ErrConflict, req.Slug)
	}

	m := buildModel(req)
	if err := s.repo.UpdateProduct(ctx, id, m); err != nil {
		return nil, err
	}

	s.logger.Info("product updated", zap.Int64("model_id", id), zap.String("slug", m.Slug))
	return s.repo.FindByID(ctx, id, false)
}

func (s *Service) Get(ctx context.Context, id int64) (*catalog.ScooterModel, error) {
	return s.repo.FindByID(ctx, id, true)
}

func (s *Service) List(ctx context.Context, filters *catalog.ListFilters) (*catalog.ListResponse, error) {
	if filters.Status != "" && !catalog.IsValidStatus(filters.Status) {
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

	models, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list models: %w", err)
	}

	return &catalog.ListResponse{
		Models:     models,
		Total:      total,
		Page:       filters.Page,
		PageSize:   filters.PageSize,
		TotalPages: totalPages(total, filters.PageSize),
	}, nil
}

func (s *Service) UpdateStatus(ctx context.Context, id int64, status string) (*catalog.ScooterModel, error) {
	if !catalog.IsValidStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", xerrors.ErrInvalidInput, status)
	}

	if err := s.repo.UpdateStatus(ctx, id, status); err != nil {
		return nil, err
	}

	s.logger.Info("model status updated", zap.Int64("model_id", id), zap.String("status", status))
	return s.repo.FindByID(ctx, id, false)
}

// Delete soft-deletes a model. The row stays for admin audit but vanishes
// from every public query.
func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.SoftDelete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("model soft-deleted", zap.Int64("model_id", id))
	return nil
}

func buildModel(req *catalog.SaveProductRequest) *catalog.ScooterModel {
	m := &catalog.ScooterModel{
		Name:        req.Name,
		Slug:        req.Slug,
		Tagline:     sql.NullString{String: req.Tagline, Valid: req.Tagline != ""},
		Description: sql.NullString{String: req.Description, Valid: req.Description != ""},
		HeroImage:   sql.NullString{String: req.HeroImage, Valid: req.HeroImage != ""},
		Status:      req.Status,
	}

	for _, v := range req.Variants {
		variant := catalog.Variant{
			Name:          v.Name,
			PriceINR:      v.PriceINR,
			RangeKm:       v.RangeKm,
			TopSpeedKmph:  v.TopSpeedKmph,
			BatteryKWh:    v.BatteryKWh,
			ChargingHours: v.ChargingHours,
			MotorPowerW:   v.MotorPowerW,
		}
		for _, c := range v.Colors {
			variant.Colors = append(variant.Colors, catalog.Color{
				Name:     c.Name,
				Hex:      c.Hex,
				ImageURL: sql.NullString{String: c.ImageURL, Valid: c.ImageURL != ""},
			})
		}
		m.Variants = append(m.Variants, variant)
	}
	return m
}

func buildComparisonEntry(m *catalog.ScooterModel) catalog.ComparisonEntry {
	entry := catalog.ComparisonEntry{
		Model:        *m,
		VariantCount: len(m.Variants),
	}

	var minPrice int64
	for _, v := range m.Variants {
		if minPrice == 0 || v.PriceINR < minPrice {
			minPrice = v.PriceINR
		}
		if v.RangeKm > entry.MaxRangeKm {
			entry.MaxRangeKm = v.RangeKm
		}
		if v.TopSpeedKmph > entry.MaxTopSpeed {
			entry.MaxTopSpeed = v.TopSpeedKmph
		}
	}
	if minPrice > 0 {
		entry.StartingPrice = utils.FormatINR(float64(minPrice))
	}
	return entry
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
