// internal/domain/blog/entity.go
package blog

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type Post struct {
	ID      int64  `json:"id" db:"id"`
	Title   string `json:"title" db:"title"`
	Slug    string `json:"slug" db:"slug"`
	Excerpt string `json:"excerpt" db:"excerpt"`
	Content string `json:"content" db:"content"`

	Category string         `json:"category" db:"category"`
	Author   string         `json:"author" db:"author"`
	Tags     pq.StringArray `json:"tags,omitempty" db:"tags"`

	CoverImage sql.NullString `json:"cover_image,omitempty" db:"cover_image"`

	Published   bool         `json:"published" db:"published"`
	PublishedAt sql.NullTime `json:"published_at,omitempty" db:"published_at"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Derived at read time, never stored.
	ReadTimeMinutes int `json:"read_time_minutes,omitempty"`
}
