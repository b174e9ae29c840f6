package migrations

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func openTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return db
}

func TestRunMigrations_CreatesSchema(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, RunMigrations(db))

	for _, table := range []string{"tasks", "users", "migrations"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		assert.NoError(t, err, "table %s should exist", table)
	}
}

func TestRunMigrations_Idempotent(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, RunMigrations(db))
	require.NoError(t, RunMigrations(db))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM migrations").Scan(&count))
	assert.Equal(t, 3, count)
}

func TestRunMigrations_TaskColumns(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RunMigrations(db))

	// priority arrives in migration 2, owner_id in migration 3
	_, err := db.Exec(`
		INSERT INTO tasks (title, task_type, subject, due_date, description, is_done, priority, owner_id)
		VALUES ('t', 'homework', 'Math', '2026-03-10', '', 0, 'required', NULL)`)
	assert.NoError(t, err)

	var priority string
	require.NoError(t, db.QueryRow("SELECT priority FROM tasks LIMIT 1").Scan(&priority))
	assert.Equal(t, "required", priority)
}

func TestRunMigrations_PriorityDefault(t *testing.T) {
	db := openTestDB(t)
	require.NoError(t, RunMigrations(db))

	_, err := db.Exec(`
		INSERT INTO tasks (title, task_type, subject, due_date, description, is_done)
		VALUES ('t', 'homework', 'Math', '2026-03-10', '', 0)`)
	require.NoError(t, err)

	var priority string
	require.NoError(t, db.QueryRow("SELECT priority FROM tasks LIMIT 1").Scan(&priority))
	assert.Equal(t, "required", priority)
}

func TestLoadMigrations_OrderedByVersion(t *testing.T) {
	migrations, err := loadMigrations()

	require.NoError(t, err)
	require.Len(t, migrations, 3)
	for i, migration := range migrations {
		assert.Equal(t, i+1, migration.Version)
		assert.NotEmpty(t, migration.Up)
		assert.NotEmpty(t, migration.Down)
	}
}
