// internal/domain/booking/repository.go
package booking

import "context"

type Repository interface {
	// Create inserts through the elevated client: public submitters have no
	// direct table-write grant.
	Create(ctx context.Context, b *TestRideBooking) error

	FindByID(ctx context.Context, id int64) (*TestRideBooking, error)
	List(ctx context.Context, filters *ListFilters) ([]TestRideBooking, int64, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
	GetStats(ctx context.Context) (*Stats, error)
}
