// internal/repository/postgres/dealer_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voltride-service/internal/domain/dealer"
	xerrors "voltride-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

type DealerRepository struct {
	db *DB
}

func NewDealerRepository(db *DB) *DealerRepository {
	return &DealerRepository{db: db}
}

func (r *DealerRepository) Create(ctx context.Context, d *dealer.Dealer) error {
	query := `
		INSERT INTO dealers
			(name, address_line, city, state, pincode, latitude, longitude, phone, email, operating_hours, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool().QueryRow(ctx, query,
		d.Name, d.AddressLine, d.City, d.State, d.Pincode,
		d.Latitude, d.Longitude, d.Phone, d.Email, pq.Array(d.OperatingHours), d.IsActive,
	).Scan(&d.ID, &d.CreatedAt, &d.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create dealer: %w", err)
	}
	return nil
}

func (r *DealerRepository) Update(ctx context.Context, id int64, d *dealer.Dealer) error {
	query := `
		UPDATE dealers
		SET name = $1, address_line = $2, city = $3, state = $4, pincode = $5,
		    latitude = $6, longitude = $7, phone = $8, email = $9,
		    operating_hours = $10, is_active = $11, updated_at = NOW()
		WHERE id = $12
	`

	result, err := r.db.Pool().Exec(ctx, query,
		d.Name, d.AddressLine, d.City, d.State, d.Pincode,
		d.Latitude, d.Longitude, d.Phone, d.Email, pq.Array(d.OperatingHours), d.IsActive, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update dealer: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *DealerRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Pool().Exec(ctx, `DELETE FROM dealers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete dealer: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *DealerRepository) FindByID(ctx context.Context, id int64) (*dealer.Dealer, error) {
	query := `
		SELECT id, name, address_line, city, state, pincode, latitude, longitude,
		       phone, email, operating_hours, is_active, created_at, updated_at
		FROM dealers
		WHERE id = $1
	`

	var d dealer.Dealer
	err := r.db.Pool().QueryRow(ctx, query, id).Scan(
		&d.ID, &d.Name, &d.AddressLine, &d.City, &d.State, &d.Pincode,
		&d.Latitude, &d.Longitude, &d.Phone, &d.Email, &d.OperatingHours,
		&d.IsActive, &d.CreatedAt, &d.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find dealer: %w", err)
	}
	return &d, nil
}

func (r *DealerRepository) List(ctx context.Context, filters *dealer.ListFilters) ([]dealer.Dealer, int64, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filters.City != "" {
		conditions = append(conditions, fmt.Sprintf("city ILIKE $%d", argPos))
		args = append(args, filters.City)
		argPos++
	}
	if filters.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argPos))
		args = append(args, *filters.IsActive)
		argPos++
	}
	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR city ILIKE $%d OR pincode ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filters.Search+"%")
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM dealers %s", whereClause)
	var total int64
	if err := r.db.Pool().QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count dealers: %w", err)
	}

	page, pageSize := normalizePage(filters.Page, filters.PageSize)

	query := fmt.Sprintf(`
		SELECT id, name, address_line, city, state, pincode, latitude, longitude,
		       phone, email, operating_hours, is_active, created_at, updated_at
		FROM dealers
		%s
		ORDER BY name ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)

	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list dealers: %w", err)
	}
	defer rows.Close()

	dealers := []dealer.Dealer{}
	for rows.Next() {
		var d dealer.Dealer
		if err := rows.Scan(
			&d.ID, &d.Name, &d.AddressLine, &d.City, &d.State, &d.Pincode,
			&d.Latitude, &d.Longitude, &d.Phone, &d.Email, &d.OperatingHours,
			&d.IsActive, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan dealer: %w", err)
		}
		dealers = append(dealers, d)
	}

	return dealers, total, nil
}

// ListActive returns locator-visible dealers, optionally narrowed to a city.
func (r *DealerRepository) ListActive(ctx context.Context, city string) ([]dealer.Dealer, error) {
	query := `
		SELECT id, name, address_line, city, state, pincode, latitude, longitude,
		       phone, email, operating_hours, is_active, created_at, updated_at
		FROM dealers
		WHERE is_active = TRUE
	`
	args := []interface{}{}
	if city != "" {
		query += " AND city ILIKE $1"
		args = append(args, city)
	}
	query += " ORDER BY city ASC, name ASC"

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active dealers: %w", err)
	}
	defer rows.Close()

	dealers := []dealer.Dealer{}
	for rows.Next() {
		var d dealer.Dealer
		if err := rows.Scan(
			&d.ID, &d.Name, &d.AddressLine, &d.City, &d.State, &d.Pincode,
			&d.Latitude, &d.Longitude, &d.Phone, &d.Email, &d.OperatingHours,
			&d.IsActive, &d.CreatedAt, &d.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan dealer: %w", err)
		}
		dealers = append(dealers, d)
	}

	return dealers, nil
}

func (r *DealerRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM dealers WHERE is_active = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active dealers: %w", err)
	}
	return count, nil
}
