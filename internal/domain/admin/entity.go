// internal/domain/admin/entity.go
package admin

import (
	"database/sql"
	"time"
)

const (
	RoleAdmin      = "admin"
	RoleSuperAdmin = "super_admin"
)

type Admin struct {
	ID           int64        `json:"id" db:"id"`
	Email        string       `json:"email" db:"email"`
	FullName     string       `json:"full_name" db:"full_name"`
	PasswordHash string       `json:"-" db:"password_hash"`
	Role         string       `json:"role" db:"role"`
	IsActive     bool         `json:"is_active" db:"is_active"`
	LastLoginAt  sql.NullTime `json:"last_login_at,omitempty" db:"last_login_at"`
	CreatedAt    time.Time    `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at" db:"updated_at"`
}
