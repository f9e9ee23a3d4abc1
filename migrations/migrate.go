// Package migrations holds the embedded schema migrations and applies them
// with goose at startup. Each supported dialect has its own directory because
// the auto-increment primary key syntax differs between PostgreSQL and
// SQLite.
package migrations

import (
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed postgres/*.sql sqlite3/*.sql
var embedMigrations embed.FS

// Migrate applies every pending migration to db. The goose dialect and the
// migration directory are chosen from the driver name ("pgx" or "sqlite3").
func Migrate(db *sql.DB, driver string) error {
	goose.SetBaseFS(embedMigrations)

	dialect, dir := "sqlite3", "sqlite3"
	if driver == "pgx" {
		dialect, dir = "postgres", "postgres"
	}
	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
