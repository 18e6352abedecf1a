// internal/domain/dealer/entity.go
package dealer

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

type Dealer struct {
	ID   int64  `json:"id" db:"id"`
	Name string `json:"name" db:"name"`

	AddressLine string `json:"address_line" db:"address_line"`
	City        string `json:"city" db:"city"`
	State       string `json:"state" db:"state"`
	Pincode     string `json:"pincode" db:"pincode"`

	Latitude  float64 `json:"latitude" db:"latitude"`
	Longitude float64 `json:"longitude" db:"longitude"`

	Phone string         `json:"phone" db:"phone"`
	Email sql.NullString `json:"email,omitempty" db:"email"`

	// One entry per day, e.g. "Mon: 10:00-19:00".
	OperatingHours pq.StringArray `json:"operating_hours" db:"operating_hours"`

	// Gates visibility on the public locator.
	IsActive bool `json:"is_active" db:"is_active"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
