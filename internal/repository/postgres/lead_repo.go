// internal/repository/postgres/lead_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voltride-service/internal/domain/lead"
	xerrors "voltride-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
)

type LeadRepository struct {
	db *DB
}

func NewLeadRepository(db *DB) *LeadRepository {
	return &LeadRepository{db: db}
}

// Create inserts a lead through the elevated pool; the public role has no
// insert grant on the leads table.
func (r *LeadRepository) Create(ctx context.Context, l *lead.Lead) error {
	query := `
		INSERT INTO leads (name, email, phone, city, model_id, message, source, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, created_at, updated_at
	`

	err := r.db.ElevatedPool().QueryRow(
		ctx, query,
		l.Name, l.Email, l.Phone, l.City, l.ModelID, l.Message, l.Source, l.Status,
	).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}
	return nil
}

func (r *LeadRepository) FindByID(ctx context.Context, id int64) (*lead.Lead, error) {
	query := `
		SELECT id, name, email, phone, city, model_id, message, source, status, created_at, updated_at
		FROM leads
		WHERE id = $1
	`

	var l lead.Lead
	err := r.db.Pool().QueryRow(ctx, query, id).Scan(
		&l.ID, &l.Name, &l.Email, &l.Phone, &l.City, &l.ModelID, &l.Message,
		&l.Source, &l.Status, &l.CreatedAt, &l.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find lead: %w", err)
	}
	return &l, nil
}

func (r *LeadRepository) List(ctx context.Context, filters *lead.ListFilters) ([]lead.Lead, int64, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filters.Status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
		args = append(args, filters.Status)
		argPos++
	}
	if filters.Source != "" {
		conditions = append(conditions, fmt.Sprintf("source = $%d", argPos))
		args = append(args, filters.Source)
		argPos++
	}
	if filters.City != "" {
		conditions = append(conditions, fmt.Sprintf("city ILIKE $%d", argPos))
		args = append(args, filters.City)
		argPos++
	}
	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR email ILIKE $%d OR phone ILIKE $%d)", argPos, argPos, argPos))
		args = append(args, "%"+filters.Search+"%")
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM leads %s", whereClause)
	var total int64
	if err := r.db.Pool().QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count leads: %w", err)
	}

	page, pageSize := normalizePage(filters.Page, filters.PageSize)
	sortBy := sortColumn(filters.SortBy, map[string]bool{"created_at": true, "name": true, "status": true, "city": true}, "created_at")
	sortOrder := sortDirection(filters.SortOrder)

	query := fmt.Sprintf(`
		SELECT id, name, email, phone, city, model_id, message, source, status, created_at, updated_at
		FROM leads
		%s
		ORDER BY %s %s
		LIMIT $%d OFFSET $%d
	`, whereClause, sortBy, sortOrder, argPos, argPos+1)

	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list leads: %w", err)
	}
	defer rows.Close()

	leads := []lead.Lead{}
	for rows.Next() {
		var l lead.Lead
		if err := rows.Scan(
			&l.ID, &l.Name, &l.Email, &l.Phone, &l.City, &l.ModelID, &l.Message,
			&l.Source, &l.Status, &l.CreatedAt, &l.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan lead: %w", err)
		}
		leads = append(leads, l)
	}

	return leads, total, nil
}

func (r *LeadRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE leads SET status = $1, updated_at = NOW() WHERE id = $2`

	result, err := r.db.Pool().Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *LeadRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Pool().Exec(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *LeadRepository) GetStats(ctx context.Context) (*lead.Stats, error) {
	query := `
		SELECT
			COUNT(*),
			COUNT(CASE WHEN status = 'new' THEN 1 END),
			COUNT(CASE WHEN status = 'contacted' THEN 1 END),
			COUNT(CASE WHEN status = 'qualified' THEN 1 END),
			COUNT(CASE WHEN status = 'converted' THEN 1 END),
			COUNT(CASE WHEN status = 'lost' THEN 1 END)
		FROM leads
	`

	var s lead.Stats
	err := r.db.Pool().QueryRow(ctx, query).Scan(
		&s.Total, &s.New, &s.Contacted, &s.Qualified, &s.Converted, &s.Lost,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get lead stats: %w", err)
	}
	return &s, nil
}
