// internal/domain/catalog/entity.go
package catalog

import (
	"database/sql"
	"time"
)

// Model statuses. Only active models are publicly visible, and soft-deleted
// rows are excluded from every public query regardless of status.
const (
	StatusDraft    = "draft"
	StatusActive   = "active"
	StatusArchived = "archived"
)

type ScooterModel struct {
	ID          int64          `json:"id" db:"id"`
	Name        string         `json:"name" db:"name"`
	Slug        string         `json:"slug" db:"slug"`
	Tagline     sql.NullString `json:"tagline,omitempty" db:"tagline"`
	Description sql.NullString `json:"description,omitempty" db:"description"`
	HeroImage   sql.NullString `json:"hero_image,omitempty" db:"hero_image"`
	Status      string         `json:"status" db:"status"`

	CreatedAt time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt time.Time    `json:"updated_at" db:"updated_at"`
	DeletedAt sql.NullTime `json:"deleted_at,omitempty" db:"deleted_at"`

	Variants []Variant `json:"variants,omitempty"`
}

type Variant struct {
	ID      int64  `json:"id" db:"id"`
	ModelID int64  `json:"model_id" db:"model_id"`
	Name    string `json:"name" db:"name"`

	PriceINR      int64   `json:"price_inr" db:"price_inr"`
	RangeKm       int     `json:"range_km" db:"range_km"`
	TopSpeedKmph  int     `json:"top_speed_kmph" db:"top_speed_kmph"`
	BatteryKWh    float64 `json:"battery_kwh" db:"battery_kwh"`
	ChargingHours float64 `json:"charging_hours" db:"charging_hours"`
	MotorPowerW   int     `json:"motor_power_w" db:"motor_power_w"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`

	// Colors belong exclusively to this variant.
	Colors []Color `json:"colors,omitempty"`
}

type Color struct {
	ID        int64          `json:"id" db:"id"`
	VariantID int64          `json:"variant_id" db:"variant_id"`
	Name      string         `json:"name" db:"name"`
	Hex       string         `json:"hex" db:"hex"`
	ImageURL  sql.NullString `json:"image_url,omitempty" db:"image_url"`
}

// IsValidStatus reports whether s is a recognized model status.
func IsValidStatus(s string) bool {
	switch s {
	case StatusDraft, StatusActive, StatusArchived:
		return true
	}
	return false
}
