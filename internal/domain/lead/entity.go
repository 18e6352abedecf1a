// internal/domain/lead/entity.go
package lead

import (
	"database/sql"
	"time"
)

// Lifecycle statuses for a lead. new -> contacted -> qualified -> converted/lost.
const (
	StatusNew       = "new"
	StatusContacted = "contacted"
	StatusQualified = "qualified"
	StatusConverted = "converted"
	StatusLost      = "lost"
)

// Acquisition channels.
const (
	SourceWebsite  = "website"
	SourceShowroom = "showroom"
	SourceReferral = "referral"
	SourceSocial   = "social"
	SourceAd       = "ad"
	SourceOther    = "other"
)

type Lead struct {
	ID    int64  `json:"id" db:"id"`
	Name  string `json:"name" db:"name"`
	Email string `json:"email" db:"email"`
	Phone string `json:"phone" db:"phone"`
	City  string `json:"city" db:"city"`

	ModelID sql.NullInt64  `json:"model_id,omitempty" db:"model_id"`
	Message sql.NullString `json:"message,omitempty" db:"message"`

	Source string `json:"source" db:"source"`
	Status string `json:"status" db:"status"`

	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// IsValidStatus reports whether s is a recognized lead status.
func IsValidStatus(s string) bool {
	switch s {
	case StatusNew, StatusContacted, StatusQualified, StatusConverted, StatusLost:
		return true
	}
	return false
}

// IsValidSource reports whether s is a recognized acquisition channel.
func IsValidSource(s string) bool {
	switch s {
	case SourceWebsite, SourceShowroom, SourceReferral, SourceSocial, SourceAd, SourceOther:
		return true
	}
	return false
}

type Stats struct {
	Total     int64 `json:"total"`
	New       int64 `json:"new"`
	Contacted int64 `json:"contacted"`
	Qualified int64 `json:"qualified"`
	Converted int64 `json:"converted"`
	Lost      int64 `json:"lost"`
}
