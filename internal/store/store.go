// Package store owns the product store file: schema, import of the
// product spreadsheet and the per-country aggregation.
package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/Igorek95/Test-work-Dzerbun/pkg/database"
	"github.com/Igorek95/Test-work-Dzerbun/pkg/models"
)

var (
	// ErrReleased is returned by every operation after Close.
	ErrReleased = errors.New("store already released")
	// ErrSchemaNotReady is returned when data operations run before CreateTables.
	ErrSchemaNotReady = errors.New("store schema not initialized")
)

// State is the lifecycle position of a Manager.
type State int

const (
	Uninitialized State = iota
	SchemaReady
	Loaded
	Closed
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "uninitialized"
	case SchemaReady:
		return "schema-ready"
	case Loaded:
		return "loaded"
	case Closed:
		return "closed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Manager holds the single connection of a run. It is not safe for
// concurrent use.
type Manager struct {
	db      *sql.DB
	state   State
	mapping models.ColumnMapping
}

// Open connects to the store file at path.
func Open(path string) (*Manager, error) {
	db, err := database.ConnectSQLite(path)
	if err != nil {
		return nil, err
	}
	return New(db), nil
}

// New wraps an already opened connection.
func New(db *sql.DB) *Manager {
	return &Manager{
		db:      db,
		state:   Uninitialized,
		mapping: models.DefaultMapping(),
	}
}

func (m *Manager) State() State {
	return m.state
}

// Close releases the connection. Only the first call does anything.
func (m *Manager) Close() error {
	if m.state == Closed {
		return ErrReleased
	}
	m.state = Closed

	db := m.db
	m.db = nil
	if err := db.Close(); err != nil {
		return fmt.Errorf("failed to close store: %w", err)
	}
	return nil
}

// ready reports whether data operations may run.
func (m *Manager) ready() error {
	switch m.state {
	case Closed:
		return ErrReleased
	case Uninitialized:
		return ErrSchemaNotReady
	}
	return nil
}
