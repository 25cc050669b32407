// Package pipeline streams CSV records through the rotation core. Each
// input row carries an identifier and a JSON-encoded candidate table; each
// output row carries the identifier, the rotated table (or "[]"), and a
// validity flag. A failing record degrades to the invalid sentinel and
// never aborts the batch.
// Implements: docs/ARCHITECTURE § Record Pipeline.
package pipeline

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"go.uber.org/zap"

	"github.com/mesh-intelligence/turntable/internal/numgate"
	"github.com/mesh-intelligence/turntable/pkg/rotate"
	"github.com/mesh-intelligence/turntable/pkg/types"
)

// Input and output column names.
const (
	colID      = "id"
	colJSON    = "json"
	colIsValid = "is_valid"
)

// emptyArray is the payload written for every invalid record.
const emptyArray = "[]"

// Sink receives a finished run with its per-record results. The run
// history store implements it; a nil sink discards the run.
type Sink interface {
	RecordRun(run types.Run, results []types.Result) (string, error)
}

// Processor reads id,json records from CSV input and writes
// id,json,is_valid records to CSV output.
type Processor struct {
	// Logger emits per-record diagnostics. Nil disables logging.
	Logger *zap.Logger
	// Sink, when non-nil, receives the run and all results after the
	// batch completes.
	Sink Sink
	// Source labels the run in the history store, e.g. an input path
	// or "stdin".
	Source string
}

// Process consumes all records from r and writes one output row per
// record to w. It returns the run summary; the returned error is non-nil
// only for batch-level failures (bad header, unreadable input, write
// errors), never for an invalid record.
func (p *Processor) Process(r io.Reader, w io.Writer) (types.Run, error) {
	logger := p.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	run := types.Run{
		Source:    p.Source,
		StartedAt: time.Now().UTC(),
	}

	reader := csv.NewReader(r)
	reader.ReuseRecord = true
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return run, fmt.Errorf("read header: %w", err)
	}
	idCol, jsonCol, err := locateColumns(header)
	if err != nil {
		return run, err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write([]string{colID, colJSON, colIsValid}); err != nil {
		return run, fmt.Errorf("write header: %w", err)
	}

	var results []types.Result
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return run, fmt.Errorf("read record: %w", err)
		}

		run.Records++

		if len(row) <= idCol || len(row) <= jsonCol {
			logger.Warn("skipping short record",
				zap.Int("fields", len(row)),
				zap.Int("row", run.Records))
			run.Invalid++
			continue
		}

		result := ProcessRecord(types.Record{ID: row[idCol], JSON: row[jsonCol]})
		if result.IsValid {
			run.Valid++
		} else {
			run.Invalid++
		}
		logger.Debug("processed record",
			zap.String("id", result.ID),
			zap.Bool("is_valid", result.IsValid))

		if err := writer.Write([]string{result.ID, result.JSON, strconv.FormatBool(result.IsValid)}); err != nil {
			return run, fmt.Errorf("write record: %w", err)
		}
		if p.Sink != nil {
			results = append(results, result)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return run, fmt.Errorf("flush output: %w", err)
	}

	run.FinishedAt = time.Now().UTC()

	if p.Sink != nil {
		id, err := p.Sink.RecordRun(run, results)
		if err != nil {
			return run, fmt.Errorf("record run: %w", err)
		}
		run.RunID = id
	}

	return run, nil
}

// ProcessRecord rotates a single record's table. Parse failures, domain
// gate rejections, empty tables, and non-square lengths all map to the
// "[]"/false sentinel.
func ProcessRecord(rec types.Record) types.Result {
	nums, ok := numgate.ParseArray(rec.JSON)
	if !ok {
		return types.Result{ID: rec.ID, JSON: emptyArray}
	}

	if err := rotate.RotateRight(nums); err != nil {
		return types.Result{ID: rec.ID, JSON: emptyArray}
	}

	return types.Result{ID: rec.ID, JSON: numgate.Encode(nums), IsValid: true}
}

// locateColumns finds the id and json column positions in the header.
func locateColumns(header []string) (idCol, jsonCol int, err error) {
	idCol, jsonCol = -1, -1
	for i, name := range header {
		switch name {
		case colID:
			if idCol == -1 {
				idCol = i
			}
		case colJSON:
			if jsonCol == -1 {
				jsonCol = i
			}
		}
	}
	if idCol == -1 || jsonCol == -1 {
		return 0, 0, fmt.Errorf("input header must contain %q and %q columns", colID, colJSON)
	}
	return idCol, jsonCol, nil
}
