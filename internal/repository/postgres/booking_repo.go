// internal/repository/postgres/booking_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voltride-service/internal/domain/booking"
	xerrors "voltride-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
)

type BookingRepository struct {
	db *DB
}

func NewBookingRepository(db *DB) *BookingRepository {
	return &BookingRepository{db: db}
}

// Create inserts a booking through the elevated pool; the public role has no
// insert grant on the test_ride_bookings table.
func (r *BookingRepository) Create(ctx context.Context, b *booking.TestRideBooking) error {
	query := `
		INSERT INTO test_ride_bookings
			(reference, name, email, phone, dealer_id, model_id, ride_date, time_slot, status, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := r.db.ElevatedPool().QueryRow(
		ctx, query,
		b.Reference, b.Name, b.Email, b.Phone, b.DealerID, b.ModelID,
		b.RideDate, b.TimeSlot, b.Status, b.Notes,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (r *BookingRepository) FindByID(ctx context.Context, id int64) (*booking.TestRideBooking, error) {
	query := `
		SELECT id, reference, name, email, phone, dealer_id, model_id,
		       ride_date, time_slot, status, notes, created_at, updated_at
		FROM test_ride_bookings
		WHERE id = $1
	`

	var b booking.TestRideBooking
	err := r.db.Pool().QueryRow(ctx, query, id).Scan(
		&b.ID, &b.Reference, &b.Name, &b.Email, &b.Phone, &b.DealerID, &b.ModelID,
		&b.RideDate, &b.TimeSlot, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find booking: %w", err)
	}
	return &b, nil
}

func (r *BookingRepository) List(ctx context.Context, filters *booking.ListFilters) ([]booking.TestRideBooking, int64, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filters.Status)
		argPos++
	}
	if filters.DealerID > 0 {
		conditions = append(conditions, fmt.Sprintf("dealer_id = $%d", argPos))
		args = append(args, filters.DealerID)
		argPos++
	}
	if filters.DateFrom != "" {
		conditions = append(conditions, fmt.Sprintf("ride_date >= $%d", argPos))
		args = append(args, filters.DateFrom)
		argPos++
	}
	if filters.DateTo != "" {
		conditions = append(conditions, fmt.Sprintf("ride_date <= $%d", argPos))
		args = append(args, filters.DateTo)
		argPos++
	}
	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d OR reference ILIKE $%d)", argPos, argPos, argPos, argPos))
		args = append(args, "%"+filters.Search+"%")
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM test_ride_bookings %s", whereClause)
	var total int64
	if err := r.db.Pool().QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count bookings: %w", err)
	}

	page, pageSize := normalizePage(filters.Page, filters.PageSize)
	sortBy := sortColumn(filters.SortBy, map[string]bool{"created_at": true, "ride_date": true, "status": true, "name": true}, "created_at")
	sortOrder := sortDirection(filters.SortOrder)

	query := fmt.Sprintf(`
		SELECT id, reference, name, email, phone, dealer_id, model_id,
		       ride_date, time_slot, status, notes, created_at, updated_at
		FROM test_ride_bookings
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, whereClause, sortBy, sortOrder, argPos, argPos+1)

	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list bookings: %w", err)
	}
	defer rows.Close()

	bookings := []booking.TestRideBooking{}
	for rows.Next() {
		var b booking.TestRideBooking
		if err := rows.Scan(
			&b.ID, &b.Reference, &b.Name, &b.Email, &b.Phone, &b.DealerID, &b.ModelID,
			&b.RideDate, &b.TimeSlot, &b.Status, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan booking: %w", err)
		}
		bookings = append(bookings, b)
	}

	return bookings, total, nil
}

func (r *BookingRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE test_ride_bookings SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.Pool().Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update booking status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Pool().Exec(ctx, `DELETE FROM test_ride_bookings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete booking: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *BookingRepository) GetStats(ctx context.Context) (*booking.Stats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(CASE WHEN status = 'pending' THEN 1 END),
			COUNT(CASE WHEN status = 'confirmed' THEN 1 END),
			COUNT(CASE WHEN status = 'completed' THEN 1 END),
			COUNT(CASE WHEN status = 'cancelled' THEN 1 END),
			COUNT(CASE WHEN status = 'no_show' THEN 1 END)
		FROM test_ride_bookings
	`

	var s booking.Stats
	err := r.db.Pool().QueryRow(ctx, query).Scan(
		&s.Total, &s.Pending, &s.Confirmed, &s.Completed, &s.Cancelled, &s.NoShow,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get booking stats: %w", err)
	}
	return &s, nil
}
