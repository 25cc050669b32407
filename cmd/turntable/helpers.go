// Shared helpers for turntable CLI commands.
// Implements: docs/ARCHITECTURE § CLI.
package main

import (
	"fmt"

	"github.com/mesh-intelligence/turntable/internal/sqlite"
	"github.com/mesh-intelligence/turntable/pkg/types"
)

// attachStore resolves the data directory, creates the SQLite backend,
// and attaches it. The caller must defer backend.Detach().
func attachStore() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	backend := configBackend
	if backend == "" {
		backend = types.BackendSQLite
	}

	cfg := types.Config{
		Backend: backend,
		DataDir: dataDir,
	}

	store := sqlite.NewBackend()
	if err := store.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach store: %w", err)
	}

	return store, nil
}
