// Package repositories opens the client's local cache database and wires
// the repositories that live on top of it.
package repositories

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/zayats-yacht/yachtclient/internal/client/migrations"
	"github.com/zayats-yacht/yachtclient/internal/client/repositories/metadata"
	"github.com/zayats-yacht/yachtclient/internal/client/repositories/sailings"
	"github.com/zayats-yacht/yachtclient/internal/dbx"

	_ "modernc.org/sqlite"
)

type Repositories struct {
	Metadata metadata.Repository
	Sailings sailings.Repository
}

// New binds the repositories to db, which may also be a transaction.
func New(db dbx.DBTX) *Repositories {
	return &Repositories{
		Metadata: metadata.NewSQLiteRepository(db),
		Sailings: sailings.NewSQLiteRepository(db),
	}
}

func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the sqlite cache at dsn and brings its schema up to
// date.
func InitDatabase(ctx context.Context, dsn string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// a single connection keeps ":memory:" databases shared across calls
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("cache migrations: %w", err)
	}
	return db, nil
}
