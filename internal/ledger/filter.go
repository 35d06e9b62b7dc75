package ledger

import (
	"fmt"
	"strings"

	"spendtrack/internal/core"
)

// Filter holds optional predicates combined with logical AND. Zero values
// mean "not set": amounts are always positive and admitted dates are never
// zero, so the zero value of each field cannot collide with a real bound.
type Filter struct {
	Category  core.Category // exact match when non-empty
	Start     core.Date     // inclusive lower bound when non-zero
	End       core.Date     // inclusive upper bound when non-zero
	MinAmount core.Money    // inclusive lower bound when non-zero
}

// ParseFilter builds a Filter from raw user text. Empty strings leave the
// corresponding predicate unset. Any bound that fails to parse aborts the
// whole call with a typed error; no partial filter is returned.
func ParseFilter(category, startDate, endDate, minAmount string) (Filter, error) {
	var f Filter
	if strings.TrimSpace(category) != "" {
		c, err := core.ParseCategory(category)
		if err != nil {
			return Filter{}, err
		}
		f.Category = c
	}
	if strings.TrimSpace(startDate) != "" {
		d, err := core.ParseDate(startDate)
		if err != nil {
			return Filter{}, fmt.Errorf("start date: %w", err)
		}
		f.Start = d
	}
	if strings.TrimSpace(endDate) != "" {
		d, err := core.ParseDate(endDate)
		if err != nil {
			return Filter{}, fmt.Errorf("end date: %w", err)
		}
		f.End = d
	}
	if strings.TrimSpace(minAmount) != "" {
		m, err := core.ParseAmount(minAmount)
		if err != nil {
			return Filter{}, fmt.Errorf("minimum amount: %w", err)
		}
		f.MinAmount = m
	}
	return f, nil
}

// IsZero reports whether no predicate is set.
func (f Filter) IsZero() bool {
	return f == Filter{}
}

// Matches applies every set predicate to the expense.
func (f Filter) Matches(e core.Expense) bool {
	if f.Category != "" && e.Category != f.Category {
		return false
	}
	if !f.Start.IsZero() && e.Date.Before(f.Start) {
		return false
	}
	if !f.End.IsZero() && e.Date.After(f.End) {
		return false
	}
	if f.MinAmount.Cents != 0 && e.Amount.Cents < f.MinAmount.Cents {
		return false
	}
	return true
}

// Filter returns the matching subsequence in original order. An empty result
// is a valid outcome, not an error.
func (l *Ledger) Filter(f Filter) []core.Expense {
	out := make([]core.Expense, 0)
	for _, e := range l.records {
		if f.Matches(e) {
			out = append(out, e)
		}
	}
	return out
}
