package store

import (
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/healthtrack-app/healthtrack/internal/logger"
	"github.com/healthtrack-app/healthtrack/migrations"
)

// Driver names accepted by [NewStorages]. The driver decides the placeholder
// format, the goose dialect, and how constraint violations are classified.
const (
	DriverPostgres = "pgx"
	DriverSQLite   = "sqlite3"
)

// DB wraps the shared *sql.DB handle together with the driver-specific pieces
// the repositories need: a placeholder format for query building and an error
// classifier for constraint-violation detection.
type DB struct {
	*sql.DB

	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Builder returns a squirrel statement builder preconfigured with the
// driver's placeholder format ($1 for PostgreSQL, ? for SQLite).
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

// Migrate applies the embedded schema migrations idempotently.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}
