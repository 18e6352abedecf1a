// internal/repository/postgres/faq_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voltride-service/internal/domain/faq"
	xerrors "voltride-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
)

type FAQRepository struct {
	db *DB
}

func NewFAQRepository(db *DB) *FAQRepository {
	return &FAQRepository{db: db}
}

func (r *FAQRepository) Create(ctx context.Context, f *faq.FAQ) error {
	query := `
		INSERT INTO faqs (question, answer, category, sort_order, is_active)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool().QueryRow(ctx, query,
		f.Question, f.Answer, f.Category, f.SortOrder, f.IsActive,
	).Scan(&f.ID, &f.CreatedAt, &f.UpdatedAt)

	if err != nil {
		return fmt.Errorf("failed to create FAQ: %w", err)
	}
	return nil
}

func (r *FAQRepository) Update(ctx context.Context, id int64, f *faq.FAQ) error {
	query := `
		UPDATE faqs
		SET question = $1, answer = $2, category = $3, sort_order = $4, is_active = $5, updated_at = NOW()
		WHERE id = $6
	`

	result, err := r.db.Pool().Exec(ctx, query,
		f.Question, f.Answer, f.Category, f.SortOrder, f.IsActive, id,
	)
	if err != nil {
		return fmt.Errorf("failed to update FAQ: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *FAQRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Pool().Exec(ctx, `DELETE FROM faqs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete FAQ: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *FAQRepository) FindByID(ctx context.Context, id int64) (*faq.FAQ, error) {
	query := `
		SELECT id, question, answer, category, sort_order, is_active, created_at, updated_at
		FROM faqs
		WHERE id = $1
	`

	var f faq.FAQ
	err := r.db.Pool().QueryRow(ctx, query, id).Scan(
		&f.ID, &f.Question, &f.Answer, &f.Category, &f.SortOrder,
		&f.IsActive, &f.CreatedAt, &f.UpdatedAt,
	)

	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find FAQ: %w", err)
	}
	return &f, nil
}

func (r *FAQRepository) List(ctx context.Context, filters *faq.ListFilters) ([]faq.FAQ, int64, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filters.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argPos))
		args = append(args, filters.Category)
		argPos++
	}
	if filters.IsActive != nil {
		conditions = append(conditions, fmt.Sprintf("is_active = $%d", argPos))
		args = append(args, *filters.IsActive)
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM faqs %s", whereClause)
	var total int64
	if err := r.db.Pool().QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count FAQs: %w", err)
	}

	page, pageSize := normalizePage(filters.Page, filters.PageSize)

	query := fmt.Sprintf(`
		SELECT id, question, answer, category, sort_order, is_active, created_at, updated_at
		FROM faqs
		%s
		ORDER BY category ASC, sort_order ASC
		LIMIT $%d OFFSET $%d
	`, whereClause, argPos, argPos+1)

	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list FAQs: %w", err)
	}
	defer rows.Close()

	faqs := []faq.FAQ{}
	for rows.Next() {
		var f faq.FAQ
		if err := rows.Scan(
			&f.ID, &f.Question, &f.Answer, &f.Category, &f.SortOrder,
			&f.IsActive, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan FAQ: %w", err)
		}
		faqs = append(faqs, f)
	}

	return faqs, total, nil
}

// ListActive returns publicly visible FAQs in display order.
func (r *FAQRepository) ListActive(ctx context.Context, category string) ([]faq.FAQ, error) {
	query := `
		SELECT id, question, answer, category, sort_order, is_active, created_at, updated_at
		FROM faqs
		WHERE is_active = TRUE
	`
	args := []interface{}{}
	if category != "" {
		query += " AND category = $1"
		args = append(args, category)
	}
	query += " ORDER BY category ASC, sort_order ASC"

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list active FAQs: %w", err)
	}
	defer rows.Close()

	faqs := []faq.FAQ{}
	for rows.Next() {
		var f faq.FAQ
		if err := rows.Scan(
			&f.ID, &f.Question, &f.Answer, &f.Category, &f.SortOrder,
			&f.IsActive, &f.CreatedAt, &f.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan FAQ: %w", err)
		}
		faqs = append(faqs, f)
	}

	return faqs, nil
}
