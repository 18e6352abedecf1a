// internal/repository/postgres/blog_repo.go
package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"voltride-service/internal/domain/blog"
	xerrors "voltride-service/internal/pkg/errors"

	"github.com/jackc/pgx/v5"
	"github.com/lib/pq"
)

type BlogRepository struct {
	db *DB
}

func NewBlogRepository(db *DB) *BlogRepository {
	return &BlogRepository{db: db}
}

const blogColumns = `id, title, slug, excerpt, content, category, author, tags,
	cover_image, published, published_at, created_at, updated_at`

func (r *BlogRepository) Create(ctx context.Context, p *blog.Post) error {
	query := `
		INSERT INTO blog_posts
			(title, slug, excerpt, content, category, author, tags, cover_image, published, published_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, created_at, updated_at
	`

	err := r.db.Pool().QueryRow(ctx, query,
		p.Title, p.Slug, p.Excerpt, p.Content, p.Category, p.Author,
		pq.Array(p.Tags), p.CoverImage, p.Published, p.PublishedAt,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)

	if err != nil {
		if isUniqueViolation(err) {
			return xerrors.ErrConflict
		}
		return fmt.Errorf("failed to create blog post: %w", err)
	}
	return nil
}

func (r *BlogRepository) Update(ctx context.Context, id int64, p *blog.Post) error {
	query := `
		UPDATE blog_posts
		SET title = $1, slug = $2, excerpt = $3, content = $4, category = $5,
		    author = $6, tags = $7, cover_image = $8, published = $9,
		    published_at = $10, updated_at = NOW()
		WHERE id = $11
	`

	result, err := r.db.Pool().Exec(ctx, query,
		p.Title, p.Slug, p.Excerpt, p.Content, p.Category, p.Author,
		pq.Array(p.Tags), p.CoverImage, p.Published, p.PublishedAt, id,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return xerrors.ErrConflict
		}
		return fmt.Errorf("failed to update blog post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	result, err := r.db.Pool().Exec(ctx, `DELETE FROM blog_posts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete blog post: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *BlogRepository) FindByID(ctx context.Context, id int64) (*blog.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM blog_posts WHERE id = $1`, blogColumns)
	return r.scanPost(r.db.Pool().QueryRow(ctx, query, id))
}

func (r *BlogRepository) FindBySlug(ctx context.Context, slug string, publishedOnly bool) (*blog.Post, error) {
	query := fmt.Sprintf(`SELECT %s FROM blog_posts WHERE slug = $1`, blogColumns)
	if publishedOnly {
		query += " AND published = TRUE"
	}
	return r.scanPost(r.db.Pool().QueryRow(ctx, query, slug))
}

func (r *BlogRepository) scanPost(row pgx.Row) (*blog.Post, error) {
	var p blog.Post
	err := row.Scan(
		&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Category, &p.Author,
		&p.Tags, &p.CoverImage, &p.Published, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, xerrors.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan blog post: %w", err)
	}
	return &p, nil
}

func (r *BlogRepository) List(ctx context.Context, filters *blog.ListFilters) ([]blog.Post, int64, error) {
	conditions := []string{}
	args := []interface{}{}
	argPos := 1

	if filters.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argPos))
		args = append(args, filters.Category)
		argPos++
	}
	if filters.Published != nil {
		conditions = append(conditions, fmt.Sprintf("published = $%d", argPos))
		args = append(args, *filters.Published)
		argPos++
	}
	if filters.Search != "" {
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR excerpt ILIKE $%d)", argPos, argPos))
		args = append(args, "%"+filters.Search+"%")
		argPos++
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	countQuery := fmt.Sprintf("SELECT COUNT(*) FROM blog_posts %s", whereClause)
	var total int64
	if err := r.db.Pool().QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count blog posts: %w", err)
	}

	page, pageSize := normalizePage(filters.Page, filters.PageSize)

	query := fmt.Sprintf(`
		SELECT %s
		FROM blog_posts
		%s
		ORDER BY COALESCE(published_at, created_at) DESC
		LIMIT $%d OFFSET $%d
	`, blogColumns, whereClause, argPos, argPos+1)

	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Pool().Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list blog posts: %w", err)
	}
	defer rows.Close()

	posts := []blog.Post{}
	for rows.Next() {
		var p blog.Post
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Slug, &p.Excerpt, &p.Content, &p.Category, &p.Author,
			&p.Tags, &p.CoverImage, &p.Published, &p.PublishedAt, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, 0, fmt.Errorf("failed to scan blog post: %w", err)
		}
		posts = append(posts, p)
	}

	return posts, total, nil
}

// SetPublished toggles visibility; first publish stamps published_at.
func (r *BlogRepository) SetPublished(ctx context.Context, id int64, published bool) error {
	query := `
		UPDATE blog_posts
		SET published = $1,
		    published_at = CASE WHEN $1 AND published_at IS NULL THEN NOW() ELSE published_at END,
		    updated_at = NOW()
		WHERE id = $2
	`

	result, err := r.db.Pool().Exec(ctx, query, published, id)
	if err != nil {
		return fmt.Errorf("failed to set publish flag: %w", err)
	}
	if result.RowsAffected() == 0 {
		return xerrors.ErrNotFound
	}
	return nil
}

func (r *BlogRepository) ExistsBySlug(ctx context.Context, slug string, excludeID int64) (bool, error) {
	query := `SELECT EXISTS(SELECT 1 FROM blog_posts WHERE slug = $1 AND id <> $2)`
	var exists bool
	err := r.db.Pool().QueryRow(ctx, query, slug, excludeID).Scan(&exists)
	return exists, err
}

func (r *BlogRepository) CountPublished(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.Pool().QueryRow(ctx, `SELECT COUNT(*) FROM blog_posts WHERE published = TRUE`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count published posts: %w", err)
	}
	return count, nil
}
