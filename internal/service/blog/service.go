// internal/service/blog/service.go
package blog

import (
	"context"
	"database/sql"
	"fmt"

	"voltride-service/internal/domain/blog"
	xerrors "voltride-service/internal/pkg/errors"
	"voltride-service/internal/utils"
	"voltride-service/internal/validators"

	"github.com/lib/pq"
	"go.uber.org/zap"
)

// Service owns the blog: published posts for the public site, full CRUD for
// the back office. Read time is derived from content length at read time.
type Service struct {
	repo   blog.Repository
	logger *zap.Logger
}

func NewService(repo blog.Repository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListPublished returns published posts for the public site.
func (s *Service) ListPublished(ctx context.Context, filters *blog.ListFilters) (*blog.ListResponse, error) {
	published := true
	filters.Published = &published
	return s.list(ctx, filters)
}

// GetPublishedBySlug returns one published post with its read time.
func (s *Service) GetPublishedBySlug(ctx context.Context, slug string) (*blog.Post, error) {
	p, err := s.repo.FindBySlug(ctx, slug, true)
	if err != nil {
		return nil, err
	}
	p.ReadTimeMinutes = utils.EstimateReadTime(p.Content)
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*blog.Post, error) {
	p, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	p.ReadTimeMinutes = utils.EstimateReadTime(p.Content)
	return p, nil
}

func (s *Service) List(ctx context.Context, filters *blog.ListFilters) (*blog.ListResponse, error) {
	return s.list(ctx, filters)
}

func (s *Service) Create(ctx context.Context, req *blog.SaveRequest) (*blog.Post, error) {
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

	p := buildPost(req)
	if err := s.repo.Create(ctx, p); err != nil {
		s.logger.Error("failed to create post", zap.Error(err))
		return nil, fmt.Errorf("failed to create post: %w", err)
	}

	p.ReadTimeMinutes = utils.EstimateReadTime(p.Content)
	s.logger.Info("post created", zap.Int64("post_id", p.ID), zap.String("slug", p.Slug))
	return p, nil
}

func (s *Service) Update(ctx context.Context, id int64, req *blog.SaveRequest) (*blog.Post, error) {
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

	p := buildPost(req)
	if err := s.repo.Update(ctx, id, p); err != nil {
		return nil, err
	}

	s.logger.Info("post updated", zap.Int64("post_id", id))
	return s.Get(ctx, id)
}

// SetPublished flips publication; first publication stamps published_at.
func (s *Service) SetPublished(ctx context.Context, id int64, published bool) (*blog.Post, error) {
	if err := s.repo.SetPublished(ctx, id, published); err != nil {
		return nil, err
	}

	s.logger.Info("post publication changed",
		zap.Int64("post_id", id), zap.Bool("published", published))
	return s.Get(ctx, id)
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info("post deleted", zap.Int64("post_id", id))
	return nil
}

func (s *Service) list(ctx context.Context, filters *blog.ListFilters) (*blog.ListResponse, error) {
	if filters.Page < 1 {
		filters.Page = 1
	}
	if filters.PageSize < 1 {
		filters.PageSize = 20
	}
	if filters.PageSize > 100 {
		filters.PageSize = 100
	}

	posts, total, err := s.repo.List(ctx, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	for i := range posts {
		posts[i].ReadTimeMinutes = utils.EstimateReadTime(posts[i].Content)
	}

	return &blog.ListResponse{
		Posts:      posts,
		Total:      total,
		Page:       filters.Page,
		PageSize:   filters.PageSize,
		TotalPages: totalPages(total, filters.PageSize),
	}, nil
}

func buildPost(req *blog.SaveRequest) *blog.Post {
	return &blog.Post{
		Title:      req.Title,
		Slug:       req.Slug,
		Excerpt:    req.Excerpt,
		Content:    req.Content,
		Category:   req.Category,
		Author:     req.Author,
		Tags:       pq.StringArray(req.Tags),
		CoverImage: sql.NullString{String: req.CoverImage, Valid: req.CoverImage != ""},
		Published:  req.Published,
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
