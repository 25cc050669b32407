// This file implements run and result persistence for the SQLite backend.
// Rows hydrate to types.Run / types.Result; every recorded run is also
// appended to the runs.jsonl mirror.
// Implements: docs/ARCHITECTURE § Run History Store.
package sqlite

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mesh-intelligence/turntable/pkg/types"
)

// timeFormat is how timestamps are stored in TEXT columns.
const timeFormat = time.RFC3339Nano

// RecordRun persists a run summary and its results in one transaction and
// returns the generated run ID. The run's RunID field is ignored; the
// store always assigns a fresh UUID v7.
func (b *Backend) RecordRun(run types.Run, results []types.Result) (string, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if !b.attached {
		return "", types.ErrStoreDetached
	}

	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generating UUID v7: %w", err)
	}
	run.RunID = id.String()

	tx, err := b.db.Begin()
	if err != nil {
		return "", fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.Exec(
		"INSERT INTO runs (run_id, source, started_at, finished_at, records, valid, invalid) VALUES (?, ?, ?, ?, ?, ?, ?)",
		run.RunID,
		run.Source,
		run.StartedAt.UTC().Format(timeFormat),
		run.FinishedAt.UTC().Format(timeFormat),
		run.Records,
		run.Valid,
		run.Invalid,
	)
	if err != nil {
		return "", fmt.Errorf("inserting run: %w", err)
	}

	for i, res := range results {
		_, err = tx.Exec(
			"INSERT INTO results (run_id, position, record_id, json, is_valid) VALUES (?, ?, ?, ?, ?)",
			run.RunID, i, res.ID, res.JSON, res.IsValid,
		)
		if err != nil {
			return "", fmt.Errorf("inserting result %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("committing run: %w", err)
	}

	if err := b.appendRunJSONL(run); err != nil {
		return "", fmt.Errorf("mirroring run: %w", err)
	}

	return run.RunID, nil
}

// ListRuns returns all recorded runs, newest first.
func (b *Backend) ListRuns() ([]types.Run, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return nil, types.ErrStoreDetached
	}

	rows, err := b.db.Query(
		"SELECT run_id, source, started_at, finished_at, records, valid, invalid FROM runs ORDER BY started_at DESC, run_id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("querying runs: %w", err)
	}
	defer rows.Close()

	var runs []types.Run
	for rows.Next() {
		run, err := hydrateRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scanning runs: %w", err)
	}
	return runs, nil
}

// GetRun returns one run and its results, ordered by input position.
// Returns ErrInvalidID for an empty ID and ErrRunNotFound when no run
// matches.
func (b *Backend) GetRun(id string) (types.Run, []types.Result, error) {
	if id == "" {
		return types.Run{}, nil, types.ErrInvalidID
	}

	b.mu.RLock()
	defer b.mu.RUnlock()

	if !b.attached {
		return types.Run{}, nil, types.ErrStoreDetached
	}

	row := b.db.QueryRow(
		"SELECT run_id, source, started_at, finished_at, records, valid, invalid FROM runs WHERE run_id = ?",
		id,
	)
	run, err := hydrateRun(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return types.Run{}, nil, types.ErrRunNotFound
		}
		return types.Run{}, nil, fmt.Errorf("getting run %s: %w", id, err)
	}

	rows, err := b.db.Query(
		"SELECT record_id, json, is_valid FROM results WHERE run_id = ? ORDER BY position",
		id,
	)
	if err != nil {
		return types.Run{}, nil, fmt.Errorf("querying results for run %s: %w", id, err)
	}
	defer rows.Close()

	var results []types.Result
	for rows.Next() {
		var res types.Result
		if err := rows.Scan(&res.ID, &res.JSON, &res.IsValid); err != nil {
			return types.Run{}, nil, fmt.Errorf("scanning result: %w", err)
		}
		results = append(results, res)
	}
	if err := rows.Err(); err != nil {
		return types.Run{}, nil, fmt.Errorf("scanning results: %w", err)
	}

	return run, results, nil
}

// scannable is satisfied by both *sql.Row and *sql.Rows.
type scannable interface {
	Scan(dest ...any) error
}

// hydrateRun scans one runs row into a types.Run.
func hydrateRun(row scannable) (types.Run, error) {
	var run types.Run
	var startedAt, finishedAt string

	err := row.Scan(&run.RunID, &run.Source, &startedAt, &finishedAt,
		&run.Records, &run.Valid, &run.Invalid)
	if err != nil {
		return types.Run{}, err
	}

	run.StartedAt, err = time.Parse(timeFormat, startedAt)
	if err != nil {
		return types.Run{}, fmt.Errorf("parsing started_at: %w", err)
	}
	run.FinishedAt, err = time.Parse(timeFormat, finishedAt)
	if err != nil {
		return types.Run{}, fmt.Errorf("parsing finished_at: %w", err)
	}
	return run, nil
}
