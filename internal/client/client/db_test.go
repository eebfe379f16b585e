package client

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var n int
	err := db.QueryRow(`SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?`, name).Scan(&n)
	require.NoError(t, err)
	return n > 0
}

func TestInitDatabase_AppliesMigrations(t *testing.T) {
	ctx := context.Background()
	dsn := filepath.Join(t.TempDir(), "app.db")

	db, err := InitDatabase(ctx, dsn)
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, db.PingContext(ctx))
	require.True(t, tableExists(t, db, "goose_db_version"))
	require.True(t, tableExists(t, db, "metadata"))
}

func TestRunMigrations_IsIdempotent(t *testing.T) {
	ctx := context.Background()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "app.db"))
	require.NoError(t, err)
	defer db.Close()

	require.NoError(t, RunMigrations(ctx, db))
	require.NoError(t, RunMigrations(ctx, db))
	require.True(t, tableExists(t, db, "metadata"))
}

func TestOpenRepositories_Drivers(t *testing.T) {
	ctx := context.Background()

	for _, driver := range []string{DriverSQLite, DriverBolt} {
		t.Run(driver, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "nested", "store."+driver)

			repos, err := OpenRepositories(ctx, driver, path)
			require.NoError(t, err)
			require.NoError(t, repos.Metadata.Set(ctx, "token", []byte("abc")))
			require.NoError(t, repos.Close())

			repos, err = OpenRepositories(ctx, driver, path)
			require.NoError(t, err)
			defer repos.Close()
			v, err := repos.Metadata.Get(ctx, "token")
			require.NoError(t, err)
			require.Equal(t, []byte("abc"), v)
		})
	}
}

func TestOpenRepositories_UnknownDriver(t *testing.T) {
	_, err := OpenRepositories(context.Background(), "redis", filepath.Join(t.TempDir(), "x"))
	require.ErrorContains(t, err, `unknown storage driver "redis"`)
}
