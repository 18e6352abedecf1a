// internal/domain/faq/entity.go
package faq

import "time"

type FAQ struct {
	ID       int64  `json:"id" db:"id"`
	Question string `json:"question" db:"question"`
	Answer   string `json:"answer" db:"answer"`
	Category string `json:"category" db:"category"`

	SortOrder int  `json:"sort_order" db:"sort_order"`
	IsActive  bool `json:"is_active" db:"is_active"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
