package store

import (
	"context"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// CreateTables creates GOODS, COUNTRY and ISG when absent. Calling it again
// is a no-op and never moves the state backwards.
func (m *Manager) CreateTables(ctx context.Context) error {
	if m.state == Closed {
		return ErrReleased
	}

	goose.SetBaseFS(migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.UpContext(ctx, m.db, "migrations"); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	if m.state == Uninitialized {
		m.state = SchemaReady
	}
	return nil
}
