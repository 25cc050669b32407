package types

import "time"

// Run summarizes one processing batch. RunID is a UUID v7 assigned by the
// store when the run is recorded; it is empty for unstored runs.
type Run struct {
	RunID      string    `json:"run_id"`
	Source     string    `json:"source"`
	StartedAt  time.Time `json:"started_at"`
	FinishedAt time.Time `json:"finished_at"`
	Records    int       `json:"records"`
	Valid      int       `json:"valid"`
	Invalid    int       `json:"invalid"`
}
