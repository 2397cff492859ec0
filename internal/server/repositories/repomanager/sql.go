// Package repomanager opens the configured storage backend, runs schema
// migrations (via goose) for SQL stores and hands out repositories.
package repomanager

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/pressly/goose/v3"

	"github.com/dmitrijs2005/launchkeeper/internal/dbx"
	"github.com/dmitrijs2005/launchkeeper/internal/server/migrations"
	"github.com/dmitrijs2005/launchkeeper/internal/server/repositories/users"
)

// SQLRepositoryManager serves PostgreSQL or SQLite backed repositories.
type SQLRepositoryManager struct {
	db      *sql.DB
	dialect dbx.Dialect
	users   *users.SQLRepository
}

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// NewSQLRepositoryManager wraps an open database. The schema describes the
// identity table; it is validated here.
func NewSQLRepositoryManager(db *sql.DB, dialect dbx.Dialect, schema users.Schema) (*SQLRepositoryManager, error) {
	repo, err := users.NewSQLRepository(db, dialect, schema)
	if err != nil {
		return nil, err
	}
	return &SQLRepositoryManager{db: db, dialect: dialect, users: repo}, nil
}

func (m *SQLRepositoryManager) Users() users.Repository {
	return m.users
}

// RunMigrations applies the embedded migrations with the dialect of the store.
func (m *SQLRepositoryManager) RunMigrations(ctx context.Context) error {
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect(m.dialect.GooseDialect()); err != nil {
		return fmt.Errorf("goose dialect: %w", err)
	}
	if err := gooseUpContext(ctx, m.db, "."); err != nil {
		return err
	}
	return nil
}

func (m *SQLRepositoryManager) Close() error {
	return m.db.Close()
}
