package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"spendtrack/internal/core"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "expenses.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEmptyDatabaseLoads(t *testing.T) {
	s := newTestStore(t)
	res, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(res.Expenses) != 0 || res.Dropped != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
}

func TestRewriteLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	want := []core.Expense{
		{Date: core.NewDate(2024, 1, 15), Amount: core.Money{Cents: 4250}, Category: core.Food, Description: "groceries"},
		{Date: core.NewDate(2024, 2, 3), Amount: core.Money{Cents: 2000}, Category: core.Utilities, Description: "power"},
	}

	if err := s.Rewrite(ctx, want); err != nil {
		t.Fatalf("rewrite: %v", err)
	}
	res, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(res.Expenses) != len(want) {
		t.Fatalf("expected %d expenses, got %d", len(want), len(res.Expenses))
	}
	for i := range want {
		if res.Expenses[i] != want[i] {
			t.Fatalf("row %d: expected %+v, got %+v", i, want[i], res.Expenses[i])
		}
	}
}

func TestRewriteReplacesContent(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()
	a := core.Expense{Date: core.NewDate(2024, 1, 15), Amount: core.Money{Cents: 100}, Category: core.Food, Description: "a"}
	b := core.Expense{Date: core.NewDate(2024, 1, 16), Amount: core.Money{Cents: 200}, Category: core.Transport, Description: "b"}

	if err := s.Rewrite(ctx, []core.Expense{a, b}); err != nil {
		t.Fatalf("first rewrite: %v", err)
	}
	if err := s.Rewrite(ctx, []core.Expense{b}); err != nil {
		t.Fatalf("second rewrite: %v", err)
	}
	res, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(res.Expenses) != 1 || res.Expenses[0] != b {
		t.Fatalf("rewrite did not replace content: %+v", res.Expenses)
	}
}
