// internal/domain/catalog/repository.go
package catalog

import "context"

type Repository interface {
	// SaveProduct writes the model and all of its variants and colors inside
	// a single transaction; a failed child insert rolls back the parent.
	SaveProduct(ctx context.Context, m *ScooterModel) error
	UpdateProduct(ctx context.Context, id int64, m *ScooterModel) error

	FindByID(ctx context.Context, id int64, includeDeleted bool) (*ScooterModel, error)
	FindBySlug(ctx context.Context, slug string, publicOnly bool) (*ScooterModel, error)
	List(ctx context.Context, filters *ListFilters) ([]ScooterModel, int64, error)
	ListPublic(ctx context.Context) ([]ScooterModel, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	SoftDelete(ctx context.Context, id int64) error
	ExistsBySlug(ctx context.Context, slug string, excludeID int64) (bool, error)
	CountActive(ctx context.Context) (int64, error)
}
