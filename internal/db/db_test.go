package db

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenRunsMigrations(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "coach.db")

	database, err := Open("sqlite", path+"?_pragma=foreign_keys(1)")
	require.NoError(t, err)
	defer database.Close()

	tables := []string{
		"users", "profiles", "subscriptions", "goals", "life_areas",
		"coaching_sessions", "assessment_results", "assessment_progress",
	}
	for _, table := range tables {
		var count int
		err := database.Get(&count, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = $1`, table)
		require.NoError(t, err)
		assert.Equal(t, 1, count, "table %s", table)
	}

	require.NoError(t, MigrateDown(database.DB, "sqlite"))

	var count int
	require.NoError(t, database.Get(&count, `SELECT COUNT(*) FROM sqlite_master WHERE type = 'table' AND name = 'goals'`))
	assert.Zero(t, count)
}

func TestSqlitePath(t *testing.T) {
	assert.Equal(t, "./data/coach.db", sqlitePath("./data/coach.db?_pragma=foreign_keys(1)"))
	assert.Equal(t, "/tmp/x.db", sqlitePath("file:/tmp/x.db?cache=shared"))
	assert.Equal(t, "plain.db", sqlitePath("plain.db"))
}

func TestGetDialect(t *testing.T) {
	assert.Equal(t, "sqlite3", getDialect("sqlite"))
	assert.Equal(t, "postgres", getDialect("pgx"))
	assert.Equal(t, "clickhouse", getDialect("clickhouse"))
}
