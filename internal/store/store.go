// Package store defines the backing-store port for the expense ledger and
// the backend selection used at startup.
package store

import (
	"context"
	"errors"

	"spendtrack/internal/core"
)

// ErrMalformed reports a backing store that exists but cannot be read back as
// expense rows. Load treats it as fatal; a missing store is not an error and
// yields an empty result instead.
var ErrMalformed = errors.New("backing store is malformed")

// LoadResult is what a store produces at startup: every admissible row in its
// original order, plus the count of rows discarded for failing validation.
type LoadResult struct {
	Expenses []core.Expense
	Dropped  int
}

// Store persists the full ledger state. Rewrite replaces the entire store
// content with the given sequence; there is no incremental append. This keeps
// the durable state a pure function of the in-memory ledger.
type Store interface {
	Load(ctx context.Context) (LoadResult, error)
	Rewrite(ctx context.Context, expenses []core.Expense) error
	Close() error
}

// Backend selects a store implementation.
type Backend string

const (
	CSVBackend    Backend = "csv"
	SQLiteBackend Backend = "sqlite"
	MemoryBackend Backend = "memory"
)

// String implements fmt.Stringer
func (b Backend) String() string {
	return string(b)
}

// IsValid returns true if the backend type is valid.
func (b Backend) IsValid() bool {
	switch b {
	case CSVBackend, SQLiteBackend, MemoryBackend:
		return true
	default:
		return false
	}
}

// Backends lists the valid backend names for configuration errors and docs.
func Backends() []Backend {
	return []Backend{CSVBackend, SQLiteBackend, MemoryBackend}
}
