// Package sqlite implements the run history store for turntable. SQLite
// is the query engine; a JSONL mirror of run summaries is kept beside the
// database file for plain-text inspection.
// Implements: docs/ARCHITECTURE § Run History Store.
package sqlite

import (
	"database/sql"
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	_ "modernc.org/sqlite"

	"github.com/mesh-intelligence/turntable/pkg/types"
)

//go:embed schema.sql
var schemaSQL string

// Database and mirror file names inside DataDir.
const (
	dbFileName    = "turntable.db"
	runsJSONLName = "runs.jsonl"
)

// Compile-time interface check: Backend must implement Store.
var _ types.Store = (*Backend)(nil)

// Backend implements types.Store on a SQLite database.
type Backend struct {
	mu       sync.RWMutex
	attached bool
	config   types.Config
	db       *sql.DB
	dataDir  string
}

// NewBackend creates a new SQLite backend instance. The backend is not
// attached; call Attach with a Config to initialize.
func NewBackend() *Backend {
	return &Backend{}
}

// Attach initializes the backend with the given configuration. Creates
// DataDir if it does not exist and applies the schema. The database file
// persists across attachments; history accumulates between runs.
// Returns ErrAlreadyAttached if already attached.
func (b *Backend) Attach(config types.Config) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.attached {
		return types.ErrAlreadyAttached
	}

	if err := config.Validate(); err != nil {
		return err
	}

	dataDir := config.DataDir
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return fmt.Errorf("applying schema: %w", err)
	}

	b.db = db
	b.config = config
	b.dataDir = dataDir
	b.attached = true
	return nil
}

// Detach closes the database and releases resources. After Detach, all
// other operations return ErrStoreDetached.
func (b *Backend) Detach() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return types.ErrStoreDetached
	}

	err := b.db.Close()
	b.db = nil
	b.attached = false
	if err != nil {
		return fmt.Errorf("closing database: %w", err)
	}
	return nil
}
