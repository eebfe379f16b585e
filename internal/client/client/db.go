package client

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/dmitrijs2005/bookshelf/internal/client/migrations"
	"github.com/dmitrijs2005/bookshelf/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/bookshelf/internal/filex"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// Storage drivers accepted by OpenRepositories.
const (
	DriverSQLite = "sqlite"
	DriverBolt   = "bolt"
)

// Repositories bundles the client's durable storage.
type Repositories struct {
	Metadata metadata.Repository
	closer   io.Closer
}

// Close releases the underlying database handle.
func (r *Repositories) Close() error {
	if r.closer == nil {
		return nil
	}
	return r.closer.Close()
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite file at dsn and brings its schema up to date.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return db, nil
}

// OpenRepositories opens the durable storage selected by driver at path.
func OpenRepositories(ctx context.Context, driver, path string) (*Repositories, error) {
	if _, err := filex.EnsureParentDir(path); err != nil {
		return nil, err
	}

	switch driver {
	case DriverSQLite, "":
		db, err := InitDatabase(ctx, path)
		if err != nil {
			return nil, fmt.Errorf("init sqlite storage: %w", err)
		}
		return &Repositories{Metadata: metadata.NewSQLiteRepository(db), closer: db}, nil

	case DriverBolt:
		repo, err := metadata.OpenBoltRepository(path)
		if err != nil {
			return nil, fmt.Errorf("init bolt storage: %w", err)
		}
		return &Repositories{Metadata: repo, closer: repo}, nil

	default:
		return nil, fmt.Errorf("unknown storage driver %q", driver)
	}
}
