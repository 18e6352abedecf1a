// internal/domain/faq/repository.go
package faq

import "context"

type Repository interface {
	Create(ctx context.Context, f *FAQ) error
	Update(ctx context.Context, id int64, f *FAQ) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*FAQ, error)
	List(ctx context.Context, filters *ListFilters) ([]FAQ, int64, error)
	ListActive(ctx context.Context, category string) ([]FAQ, error)
}
