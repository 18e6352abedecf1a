// internal/repository/postgres/db.go
package postgres

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// DB wraps the two connection pools the service runs with. The app pool
// connects as the RLS-constrained role and serves every read and every
// authenticated admin write. The elevated pool connects as the service role
// and is used only for public-form inserts, which the constrained role is
// not granted.
type DB struct {
	app      *pgxpool.Pool
	elevated *pgxpool.Pool
}

func NewDB(app, elevated *pgxpool.Pool) *DB {
	if elevated == nil {
		elevated = app
	}
	return &DB{app: app, elevated: elevated}
}

func (db *DB) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return db.app.Begin(ctx)
}

func (db *DB) Pool() *pgxpool.Pool {
	return db.app
}

func (db *DB) ElevatedPool() *pgxpool.Pool {
	return db.elevated
}

func (db *DB) Close() {
	db.app.Close()
	if db.elevated != db.app {
		db.elevated.Close()
	}
}
