// internal/domain/dealer/repository.go
package dealer

import "context"

type Repository interface {
	Create(ctx context.Context, d *Dealer) error
	Update(ctx context.Context, id int64, d *Dealer) error
	Delete(ctx context.Context, id int64) error
	FindByID(ctx context.Context, id int64) (*Dealer, error)
	List(ctx context.Context, filters *ListFilters) ([]Dealer, int64, error)
	ListActive(ctx context.Context, city string) ([]Dealer, error)
	CountActive(ctx context.Context) (int64, error)
}
