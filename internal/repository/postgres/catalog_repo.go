// internal/repository/postgres/catalog_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voltride-service/internal/domain/catalog"
	xerrors "voltride-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type CatalogRepository struct {
	db *DB
}

func NewCatalogRepository(db *DB) *CatalogRepository {
	return &CatalogRepository{db: db}
}

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}

// SaveProduct inserts a model with all of its variants and colors in a
// single transaction. A failure anywhere rolls back the whole tree.
func (r *CatalogRepository) SaveProduct(ctx context.Context, m *catalog.ScooterModel) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO scooter_models (name, slug, tagline, description, hero_image, status)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at, updated_at
	`
	err = tx.QueryRow(ctx, query,
		m.Name, m.Slug, m.Tagline, m.Description, m.HeroImage, m.Status,
	).Scan(&m.ID, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		if isUniqueViolation(err) {
			return xerrors.ErrConflict
		}
		return fmt.Errorf("failed to create scooter model: %w", err)
	}

	if err := r.insertVariants(ctx, tx, m); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit product save: %w", err)
	}
	return nil
}

// UpdateProduct rewrites a model and its variant/color tree in one
// transaction. Variants and colors are replaced wholesale; colors can never
// leak across variants.
func (r *CatalogRepository) UpdateProduct(ctx context.Context, id int64, m *catalog.ScooterModel) error {
	tx, err := r.db.BeginTx(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		UPDATE scooter_models
		SET name = $1, slug = $2, tagline = $3, description = $4, hero_image = $5,
		    status = $6, updated_at = NOW()
		WHERE id = $7 AND deleted_at IS NULL
	`
	result, err := tx.Exec(ctx, query,
		m.Name, m.Slug, m.Tagline, m.Description, m.HeroImage, m.Status, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return xerrors.ErrConflict
		}
		return fmt.Errorf("failed to update scooter model: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}

	// Colors cascade on variant delete.
	if _, err := tx.Exec(ctx, `DELETE FROM scooter_variants WHERE model_id = $1`, id); err != nil {
		return fmt.Errorf("failed to clear variants: %w", err)
	}

	m.ID = id
	if err := r.insertVariants(ctx, tx, m); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit product update: %w", err)
	}
	return nil
}

func (r *CatalogRepository) insertVariants(ctx context.Context, tx pgx.Tx, m *catalog.ScooterModel) error {
	for vi := range m.Variants {
		v := &m.Variants[vi]
		v.ModelID = m.ID

		query := `
			INSERT INTO scooter_variants
				(model_id, name, price_inr, range_km, top_speed_kmph, battery_kwh, charging_hours, motor_power_w)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id, created_at, updated_at
		`
		err := tx.QueryRow(ctx, query,
			v.ModelID, v.Name, v.PriceINR, v.RangeKm, v.TopSpeedKmph,
			v.BatteryKWh, v.ChargingHours, v.MotorPowerW,
		).Scan(&v.ID, &v.CreatedAt, &v.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to create variant %q: %w", v.Name, err)
		}

		for ci := range v.Colors {
			c := &v.Colors[ci]
			c.VariantID = v.ID

			err := tx.QueryRow(ctx,
				`INSERT INTO variant_colors (variant_id, name, hex, image_url) VALUES ($1, $2, $3, $4) RETURNING id`,
				c.VariantID, c.Name, c.Hex, c.ImageURL,
			).Scan(&c.ID)
			if err != nil {
				return fmt.Errorf("failed to create color %q: %w", c.Name, err)
			}
		}
	}
	return nil
}

// modelConditions builds the WHERE conditions for model listings. Public
// queries always exclude soft-deleted rows and anything not active.
func modelConditions(filters *catalog.ListFilters, publicOnly bool) ([]string, []interface{}) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if publicOnly {
		conditions = append(conditions, "deleted_at IS NULL", "status = 'active'")
	} else {
		if !filters.IncludeDeleted {
			conditions = append(conditions, "deleted_at IS NULL")
		}
		if filters.Status != "" {
			conditions = append(conditions, fmt.Sprintf("status = $%d", argPos))
			args = append(args, filters.Status)
			argPos++
		}
	}

	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR slug ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filters.Search+"%")
	}

	return conditions, args
}

func (r *CatalogRepository) List(ctx context.Context, filters *catalog.ListFilters) ([]catalog.ScooterModel, int64, error) {
	conditions, args := modelConditions(filters, false)

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM scooter_models %s", whereClause)
	var total int64
	if err := r.db.Pool().QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count models: %w", err)
	}

	page, pageSize := normalizePage(filters.Page, filters.PageSize)

	query := fmt.Sprintf(`
		SELECT id, name, slug, tagline, description, hero_image, status, created_at, updated_at, deleted_at
		FROM scooter_models
		%s
		ORDER BY created_at DESC
		LIMIT $%d OFFSET $%d
	`, whereClause, len(args)+1, len(args)+2)

	args = append(args, pageSize, (page-1)*pageSize)

	models, err := r.queryModels(ctx, query, args...)
	if err != nil {
		return nil, 0, err
	}
	return models, total, nil
}

// ListPublic returns active, non-deleted models with their full variant and
// color trees, cheapest variant first.
func (r *CatalogRepository) ListPublic(ctx context.Context) ([]catalog.ScooterModel, error) {
	query := `
		SELECT id, name, slug, tagline, description, hero_image, status, created_at, updated_at, deleted_at
		FROM scooter_models
		WHERE deleted_at IS NULL AND status = 'active'
		ORDER BY name ASC
	`
	models, err := r.queryModels(ctx, query)
	if err != nil {
		return nil, err
	}

	for i := range models {
		if err := r.loadVariants(ctx, &models[i]); err != nil {
			return nil, err
		}
	}
	return models, nil
}

func (r *CatalogRepository) FindByID(ctx context.Context, id int64, includeDeleted bool) (*catalog.ScooterModel, error) {
	query := `
		SELECT id, name, slug, tagline, description, hero_image, status, created_at, updated_at, deleted_at
		FROM scooter_models
		WHERE id = $1
	`
	if !includeDeleted {
		query += " AND deleted_at IS NULL"
	}

	m, err := r.scanModel(r.db.Pool().QueryRow(ctx, query, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadVariants(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *CatalogRepository) FindBySlug(ctx context.Context, slug string, publicOnly bool) (*catalog.ScooterModel, error) {
	query := `
		SELECT id, name, slug, tagline, description, hero_image, status, created_at, updated_at, deleted_at
		FROM scooter_models
		WHERE slug = $1 AND deleted_at IS NULL
	`
	if publicOnly {
		query += " AND status = 'active'"
	}

	m, err := r.scanModel(r.db.Pool().QueryRow(ctx, query, slug))
	if err != nil {
		return nil, err
	}
	if err := r.loadVariants(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (r *CatalogRepository) scanModel(row pgx.Row) (*catalog.ScooterModel, error) {
	var m catalog.ScooterModel
	err := row.Scan(
		&m.ID, &m.Name, &m.Slug, &m.Tagline, &m.Description, &m.HeroImage,
		&m.Status, &m.CreatedAt, &m.UpdatedAt, &m.DeletedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan model: %w", err)
	}
	return &m, nil
}

func (r *CatalogRepository) queryModels(ctx context.Context, query string, args ...interface{}) ([]catalog.ScooterModel, error) {
	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query models: %w", err)
	}
	defer rows.Close()

	models := []catalog.ScooterModel{}
	for rows.Next() {
		var m catalog.ScooterModel
		if err := rows.Scan(
			&m.ID, &m.Name, &m.Slug, &m.Tagline, &m.Description, &m.HeroImage,
			&m.Status, &m.CreatedAt, &m.UpdatedAt, &m.DeletedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan model: %w", err)
		}
		models = append(models, m)
	}
	return models, nil
}

func (r *CatalogRepository) loadVariants(ctx context.Context, m *catalog.ScooterModel) error {
	query := `
		SELECT id, model_id, name, price_inr, range_km, top_speed_kmph,
		       battery_kwh, charging_hours, motor_power_w, created_at, updated_at
		FROM scooter_variants
		WHERE model_id = $1
		ORDER BY price_inr ASC
	`
	rows, err := r.db.Pool().Query(ctx, query, m.ID)
	if err != nil {
		return fmt.Errorf("failed to query variants: %w", err)
	}
	defer rows.Close()

	m.Variants = []catalog.Variant{}
	for rows.Next() {
		var v catalog.Variant
		if err := rows.Scan(
			&v.ID, &v.ModelID, &v.Name, &v.PriceINR, &v.RangeKm, &v.TopSpeedKmph,
			&v.BatteryKWh, &v.ChargingHours, &v.MotorPowerW, &v.CreatedAt, &v.UpdatedAt,
		); err != nil {
			return fmt.Errorf("failed to scan variant: %w", err)
		}
		m.Variants = append(m.Variants, v)
	}
	rows.Close()

	for i := range m.Variants {
		if err := r.loadColors(ctx, &m.Variants[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *CatalogRepository) loadColors(ctx context.Context, v *catalog.Variant) error {
	rows, err := r.db.Pool().Query(ctx,
		`SELECT id, variant_id, name, hex, image_url FROM variant_colors WHERE variant_id = $1 ORDER BY id ASC`,
		v.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to query colors: %w", err)
	}
	defer rows.Close()

	v.Colors = []catalog.Color{}
	for rows.Next() {
		var c catalog.Color
		if err := rows.Scan(&c.ID, &c.VariantID, &c.Name, &c.Hex, &c.ImageURL); err != nil {
			return fmt.Errorf("failed to scan color: %w", err)
		}
		v.Colors = append(v.Colors, c)
	}
	return nil
}

func (r *CatalogRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE scooter_models SET status = $1, updated_at = NOW() WHERE id = $2 AND deleted_at IS NULL`

	result, err := r.db.Pool().Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update model status: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

// SoftDelete marks a model deleted; the row stays for referential history.
func (r *CatalogRepository) SoftDelete(ctx context.Context, id int64) error {
	query := `UPDATE scooter_models SET deleted_at = NOW(), updated_at = NOW() WHERE id = $1 AND deleted_at IS NULL`

	result, err := r.db.Pool().Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to soft delete model: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *CatalogRepository) ExistsBySlug(ctx context.Context, slug string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM scooter_models WHERE slug = $1 AND id <> $2 AND deleted_at IS NULL)`
	var exists bool
	err := r.db.Pool().QueryRow(ctx, query, slug, excludeID).Scan(&exists)
	return exists, err
}

func (r *CatalogRepository) CountActive(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool().QueryRow(ctx,
		`SELECT COUNT(*) FROM scooter_models WHERE deleted_at IS NULL AND status = 'active'`,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count active models: %w", err)
	}
	return count, nil
}
