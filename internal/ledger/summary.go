package ledger

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"spendtrack/internal/core"
)

// ErrEmptyLedger is the distinguished "no data" outcome for summaries,
// reports and charts. It is not a failure: callers branch on it to print a
// "nothing recorded" message instead of a zero total.
var ErrEmptyLedger = errors.New("no expenses recorded")

type (
	// CategoryTotal is the summed amount for one category.
	CategoryTotal struct {
		Category core.Category
		Total    core.Money
	}

	// Summary holds descriptive statistics over a record sequence.
	// ByCategory lists only categories present in the data, in the fixed
	// category declaration order.
	Summary struct {
		Count      int
		Total      core.Money
		Mean       core.Money
		ByCategory []CategoryTotal
	}

	// Month is a calendar year+month bucket key.
	Month struct {
		Year  int
		Month time.Month
	}

	// MonthTotal is the summed amount for one month bucket.
	MonthTotal struct {
		Month Month
		Total core.Money
	}

	// Report is the higher-level view over the full ledger: grand total, the
	// single largest-spend category and a chronological monthly series.
	Report struct {
		Total       core.Money
		TopCategory core.Category
		Monthly     []MonthTotal
	}
)

// String formats the bucket key as YYYY-MM.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}

// Summarize computes total, mean and per-category totals over a sequence.
// Empty input yields ErrEmptyLedger rather than a computed zero.
func Summarize(expenses []core.Expense) (Summary, error) {
	if len(expenses) == 0 {
		return Summary{}, ErrEmptyLedger
	}
	s := Summary{Count: len(expenses)}
	for _, e := range expenses {
		s.Total = s.Total.Add(e.Amount)
	}
	s.Mean = core.Money{Cents: roundedDiv(s.Total.Cents, int64(s.Count))}
	s.ByCategory = categoryTotals(expenses)
	return s, nil
}

// Summary computes statistics over the whole ledger.
func (l *Ledger) Summary() (Summary, error) {
	return Summarize(l.records)
}

// Report derives the grand total, top category and month-bucketed series over
// the whole ledger. Ties for the top category break toward the earlier
// category in the per-category ordering. Empty ledgers yield ErrEmptyLedger.
func (l *Ledger) Report() (Report, error) {
	if len(l.records) == 0 {
		return Report{}, ErrEmptyLedger
	}
	r := Report{}
	for _, e := range l.records {
		r.Total = r.Total.Add(e.Amount)
	}

	byCat := categoryTotals(l.records)
	top := byCat[0]
	for _, ct := range byCat[1:] {
		if ct.Total.Cents > top.Total.Cents {
			top = ct
		}
	}
	r.TopCategory = top.Category

	buckets := make(map[Month]int64)
	for _, e := range l.records {
		key := Month{Year: e.Date.Year(), Month: e.Date.Time.Month()}
		buckets[key] += e.Amount.Cents
	}
	for key, cents := range buckets {
		r.Monthly = append(r.Monthly, MonthTotal{Month: key, Total: core.Money{Cents: cents}})
	}
	sort.Slice(r.Monthly, func(i, j int) bool {
		a, b := r.Monthly[i].Month, r.Monthly[j].Month
		if a.Year != b.Year {
			return a.Year < b.Year
		}
		return a.Month < b.Month
	})
	return r, nil
}

// categoryTotals sums per category, iterating the closed set in declaration
// order so results are deterministic.
func categoryTotals(expenses []core.Expense) []CategoryTotal {
	sums := make(map[core.Category]int64)
	for _, e := range expenses {
		sums[e.Category] += e.Amount.Cents
	}
	out := make([]CategoryTotal, 0, len(sums))
	for _, c := range core.Categories() {
		if cents, ok := sums[c]; ok {
			out = append(out, CategoryTotal{Category: c, Total: core.Money{Cents: cents}})
		}
	}
	return out
}

// roundedDiv divides cents with half-up rounding.
func roundedDiv(cents, n int64) int64 {
	return (cents + n/2) / n
}
