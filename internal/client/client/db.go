package client

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/inkveil/inkveil/internal/client/migrations"
	"github.com/inkveil/inkveil/internal/client/repositories/history"
	"github.com/inkveil/inkveil/internal/client/repositories/settings"
	"github.com/pressly/goose/v3"
)

// Repositories bundles the local-store repositories handed to the app.
type Repositories struct {
	Settings settings.Repository
	History  history.Repository
	DB       *sql.DB
}

// RunMigrations applies the embedded goose migrations to db.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("setting goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// InitDatabase opens the SQLite store at dsn, migrates it and builds the
// repositories.
func InitDatabase(ctx context.Context, dsn string) (*Repositories, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Repositories{
		Settings: settings.NewSQLiteRepository(db),
		History:  history.NewSQLiteRepository(db),
		DB:       db,
	}, nil
}
