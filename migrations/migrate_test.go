// SPDX-License-Identifier: Apache-2.0

package migrations

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedMigrations(t *testing.T) {
	for _, dir := range []string{"postgres", "sqlite3"} {
		entries, err := embedMigrations.ReadDir(dir)
		require.NoErrorf(t, err, "dialect directory %s must be embedded", dir)
		assert.NotEmptyf(t, entries, "dialect directory %s must ship migrations", dir)
	}

	// both dialects carry the same schema steps
	postgres, err := embedMigrations.ReadDir("postgres")
	require.NoError(t, err)
	sqlite, err := embedMigrations.ReadDir("sqlite3")
	require.NoError(t, err)
	require.Len(t, sqlite, len(postgres))
	for i := range postgres {
		assert.Equal(t, postgres[i].Name(), sqlite[i].Name())
	}
}

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	// goose cannot create its version table on a mock connection
	err = Migrate(db, "pgx")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migration error")
}
