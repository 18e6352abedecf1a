// internal/domain/blog/repository.go
package blog

import "context"

type Repository interface {
	Create(ctx context.Context, p *Post) error
	Update(ctx context.Context, id int64, p *Post) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Post, error)
	FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*Post, error)
	List(ctx context.Context, filters *ListFilters) ([]Post, int64, error)
	SetPublished(ctx context.Context, id int64, published bool) error
	ExistsBySlug(ctx context.Context, slug string, excludeID int64) (bool, error)
	CountPublished(ctx context.Context) (int64, error)
}
