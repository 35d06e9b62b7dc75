// Package ledger owns the in-memory sequence of validated expenses and its
// durable backing store. All mutation goes through Append, which keeps the
// store a full rewrite of the in-memory state after every successful commit.
package ledger

import (
	"context"
	"fmt"
	"log/slog"

	"spendtrack/internal/core"
	"spendtrack/internal/store"
)

// Ledger is the single owner of its records. Callers never receive references
// into the internal slice; Records and Filter hand out copies.
type Ledger struct {
	store   store.Store
	records []core.Expense
}

// Open materializes a ledger from the backing store. A missing store yields
// an empty ledger; a malformed store surfaces as an error wrapping
// store.ErrMalformed. Rows the store dropped during validation are logged,
// not failed.
func Open(ctx context.Context, st store.Store) (*Ledger, error) {
	res, err := st.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load ledger: %w", err)
	}
	if res.Dropped > 0 {
		slog.InfoContext(ctx, "removed invalid rows on load", "rows_dropped", res.Dropped)
	}
	return &Ledger{store: st, records: res.Expenses}, nil
}

// Append validates the raw fields, commits the record to the in-memory
// sequence and synchronously rewrites the whole backing store. On validation
// failure the ledger and store are untouched. If the store rewrite fails the
// in-memory append is rolled back, so memory and store never diverge.
func (l *Ledger) Append(ctx context.Context, date, amount, category, description string) (core.Expense, error) {
	e, err := core.NewExpense(date, amount, category, description)
	if err != nil {
		return core.Expense{}, err
	}
	l.records = append(l.records, e)
	if err := l.store.Rewrite(ctx, l.records); err != nil {
		l.records = l.records[:len(l.records)-1]
		return core.Expense{}, fmt.Errorf("persist ledger: %w", err)
	}
	slog.InfoContext(ctx, "expense added",
		"date", e.Date.String(),
		"amount_cents", e.Amount.Cents,
		"category", e.Category.String(),
	)
	return e, nil
}

// Len returns the number of records.
func (l *Ledger) Len() int {
	return len(l.records)
}

// Records returns a copy of the full sequence in insertion order.
func (l *Ledger) Records() []core.Expense {
	out := make([]core.Expense, len(l.records))
	copy(out, l.records)
	return out
}
