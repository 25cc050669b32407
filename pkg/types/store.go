package types

import "errors"

// Store persists processing runs and their per-record results.
type Store interface {
	// Attach initializes the store with the given configuration;
	// returns ErrAlreadyAttached if called while already attached.
	Attach(config Config) error

	// Detach releases store resources. After Detach, all other
	// operations return ErrStoreDetached.
	Detach() error

	// RecordRun persists a run summary with its results and returns the
	// generated run ID.
	RecordRun(run Run, results []Result) (string, error)

	// ListRuns returns all recorded runs, newest first.
	ListRuns() ([]Run, error)

	// GetRun returns one run and its results by ID. Returns ErrInvalidID
	// for an empty ID and ErrRunNotFound when no run matches.
	GetRun(id string) (Run, []Result, error)
}

// Store errors.
var (
	ErrStoreDetached   = errors.New("store is detached")
	ErrAlreadyAttached = errors.New("store is already attached")
	ErrRunNotFound     = errors.New("run not found")
	ErrInvalidID       = errors.New("invalid id")
)
