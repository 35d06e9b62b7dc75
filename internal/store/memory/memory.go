// Package memory implements a non-durable store used by tests and for
// throwaway sessions.
package memory

import (
	"context"

	"spendtrack/internal/core"
	"spendtrack/internal/store"
)

// Store keeps the ledger state in process memory only. It honors the same
// full-rewrite contract as the durable stores, which makes it a drop-in
// double for them in tests.
type Store struct {
	expenses []core.Expense
}

func New() *Store {
	return &Store{}
}

// Seed replaces the stored state directly, bypassing validation. Tests use it
// to stage ledgers with known content.
func (s *Store) Seed(expenses []core.Expense) {
	s.expenses = append([]core.Expense(nil), expenses...)
}

func (s *Store) Load(_ context.Context) (store.LoadResult, error) {
	var res store.LoadResult
	for _, e := range s.expenses {
		if e.Validate() != nil {
			res.Dropped++
			continue
		}
		res.Expenses = append(res.Expenses, e)
	}
	return res, nil
}

func (s *Store) Rewrite(_ context.Context, expenses []core.Expense) error {
	s.expenses = append([]core.Expense(nil), expenses...)
	return nil
}

func (s *Store) Close() error {
	return nil
}
