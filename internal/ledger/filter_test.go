package ledger

import (
	"errors"
	"testing"

	"spendtrack/internal/core"
)

func TestParseFilter(t *testing.T) {
	tests := []struct {
		name     string
		category string
		start    string
		end      string
		min      string
		wantErr  error
	}{
		{"all empty", "", "", "", "", nil},
		{"category only", "Food", "", "", "", nil},
		{"full", "Transport", "2024-01-01", "2024-12-31", "15", nil},
		{"whitespace means unset", " ", " ", " ", " ", nil},
		{"bad category", "Rent", "", "", "", core.ErrUnknownCategory},
		{"bad start date", "", "soon", "", "", core.ErrInvalidDate},
		{"bad end date", "", "", "later", "", core.ErrInvalidDate},
		{"bad min amount", "", "", "", "cheap", core.ErrInvalidAmount},
		{"negative min amount", "", "", "", "-1", core.ErrNonPositiveAmount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := ParseFilter(tt.category, tt.start, tt.end, tt.min)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if !f.IsZero() {
					t.Fatalf("failed parse returned partial filter: %+v", f)
				}
				return
			}
			if err != nil {
				t.Fatalf("expected ok, got %v", err)
			}
		})
	}
}

func TestFilter(t *testing.T) {
	l, _ := openSeeded(t, seedExpenses())

	tests := []struct {
		name   string
		filter Filter
		want   int
	}{
		{"no predicates returns all", Filter{}, 3},
		{"category", Filter{Category: core.Food}, 2},
		{"category and min amount", Filter{Category: core.Food, MinAmount: core.Money{Cents: 1500}}, 1},
		{"date range", Filter{Start: core.NewDate(2024, 1, 1), End: core.NewDate(2024, 1, 31)}, 2},
		{"inclusive start bound", Filter{Start: core.NewDate(2024, 1, 15)}, 3},
		{"inclusive end bound", Filter{End: core.NewDate(2024, 1, 15)}, 1},
		{"inclusive min amount", Filter{MinAmount: core.Money{Cents: 2000}}, 1},
		{"empty result", Filter{Category: core.Entertainment}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := l.Filter(tt.filter)
			if len(got) != tt.want {
				t.Fatalf("expected %d matches, got %d: %+v", tt.want, len(got), got)
			}
			// AND of predicates, original order preserved
			prev := -1
			all := l.Records()
			for _, e := range got {
				if !tt.filter.Matches(e) {
					t.Fatalf("non-matching record returned: %+v", e)
				}
				idx := indexOf(all, e)
				if idx <= prev {
					t.Fatalf("order not preserved")
				}
				prev = idx
			}
		})
	}
}

func TestFilterScenarioFoodMin15(t *testing.T) {
	l, _ := openSeeded(t, seedExpenses())
	got := l.Filter(Filter{Category: core.Food, MinAmount: core.Money{Cents: 1500}})
	if len(got) != 1 {
		t.Fatalf("expected exactly one match, got %d", len(got))
	}
	if got[0].Amount.Cents != 2000 || got[0].Date.Month() != 2 {
		t.Fatalf("wrong record matched: %+v", got[0])
	}
}

func indexOf(all []core.Expense, e core.Expense) int {
	for i, x := range all {
		if x == e {
			return i
		}
	}
	return -1
}
