// Package types defines the record and result shapes exchanged between the
// rotation pipeline, the CLI, and the run history store, plus the Store
// interface and standard error values.
// Implements: docs/ARCHITECTURE § Contract Types.
package types
