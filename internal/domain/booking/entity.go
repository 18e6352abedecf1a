// internal/domain/booking/entity.go
package booking

import (
	"database/sql"
	"time"
)

// Lifecycle statuses. pending -> confirmed/cancelled -> completed/no_show.
const (
	StatusPending   = "pending"
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
	StatusNoShow    = "no_show"
)

// TimeSlots is the closed set of bookable test-ride slots.
var TimeSlots = []string{
	"10:00 AM",
	"11:30 AM",
	"1:00 PM",
	"2:30 PM",
	"4:00 PM",
	"5:30 PM",
}

type TestRideBooking struct {
	ID        int64  `json:"id" db:"id"`
	Reference string `json:"reference" db:"reference"`

	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
	Phone string `json:"phone" db:"phone"`

	DealerID int64         `json:"dealer_id" db:"dealer_id"`
	ModelID  sql.NullInt64 `json:"model_id,omitempty" db:"model_id"`

	RideDate time.Time `json:"ride_date" db:"ride_date"`
	TimeSlot string    `json:"time_slot" db:"time_slot"`

	Status string         `json:"status" db:"status"`
	Notes  sql.NullString `json:"notes,omitempty" db:"notes"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsValidStatus reports whether s is a recognized booking status.
func IsValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled, StatusCompleted, StatusNoShow:
		return true
	}
	return false
}

// IsValidTimeSlot reports whether s is one of the bookable slots.
func IsValidTimeSlot(s string) bool {
	for _, slot := range TimeSlots {
		if slot == s {
			return true
		}
	}
	return false
}

type Stats struct {
	Total     int64 `json:"total"`
	Pending   int64 `json:"pending"`
	Confirmed int64 `json:"confirmed"`
	Completed int64 `json:"completed"`
	Cancelled int64 `json:"cancelled"`
	NoShow    int64 `json:"no_show"`
}
