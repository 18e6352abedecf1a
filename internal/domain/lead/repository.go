// internal/domain/lead/repository.go
package lead

import "context"

type Repository interface {
	// Create inserts through the elevated client: public submitters have no
	// direct table-write grant.
	Create(ctx context.Context, l *Lead) error

	FindByID(ctx context.Context, id int64) (*Lead, error)
	List(ctx context.Context, filters *ListFilters) ([]Lead, int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (*Stats, error)
}
