package ledger

import (
	"errors"
	"testing"
	"time"

	"spendtrack/internal/core"
)

func TestSummaryScenario(t *testing.T) {
	// [(Jan, Food, 10), (Feb, Food, 20), (Jan, Transport, 5)]
	l, _ := openSeeded(t, seedExpenses())

	s, err := l.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	if s.Total.Cents != 3500 {
		t.Fatalf("expected total 35.00, got %s", s.Total)
	}
	if s.Count != 3 {
		t.Fatalf("expected count 3, got %d", s.Count)
	}
	// 3500 / 3 rounds half-up to 1167 cents
	if s.Mean.Cents != 1167 {
		t.Fatalf("expected mean 11.67, got %s", s.Mean)
	}
	want := []CategoryTotal{
		{Category: core.Food, Total: core.Money{Cents: 3000}},
		{Category: core.Transport, Total: core.Money{Cents: 500}},
	}
	if len(s.ByCategory) != len(want) {
		t.Fatalf("expected %d categories, got %d", len(want), len(s.ByCategory))
	}
	for i := range want {
		if s.ByCategory[i] != want[i] {
			t.Fatalf("category %d: expected %+v, got %+v", i, want[i], s.ByCategory[i])
		}
	}
}

func TestSummaryCategorySumsEqualTotal(t *testing.T) {
	l, _ := openSeeded(t, seedExpenses())
	s, err := l.Summary()
	if err != nil {
		t.Fatalf("summary: %v", err)
	}
	var sum int64
	for _, ct := range s.ByCategory {
		sum += ct.Total.Cents
	}
	if sum != s.Total.Cents {
		t.Fatalf("category totals sum to %d, total is %d", sum, s.Total.Cents)
	}
}

func TestSummaryEmptyLedger(t *testing.T) {
	l, _ := openSeeded(t, nil)
	if _, err := l.Summary(); !errors.Is(err, ErrEmptyLedger) {
		t.Fatalf("expected ErrEmptyLedger, got %v", err)
	}
}

func TestReportScenario(t *testing.T) {
	l, _ := openSeeded(t, seedExpenses())

	r, err := l.Report()
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if r.Total.Cents != 3500 {
		t.Fatalf("expected total 35.00, got %s", r.Total)
	}
	if r.TopCategory != core.Food {
		t.Fatalf("expected top category Food, got %v", r.TopCategory)
	}
	want := []MonthTotal{
		{Month: Month{Year: 2024, Month: time.January}, Total: core.Money{Cents: 1500}},
		{Month: Month{Year: 2024, Month: time.February}, Total: core.Money{Cents: 2000}},
	}
	if len(r.Monthly) != len(want) {
		t.Fatalf("expected %d buckets, got %d", len(want), len(r.Monthly))
	}
	for i := range want {
		if r.Monthly[i] != want[i] {
			t.Fatalf("bucket %d: expected %+v, got %+v", i, want[i], r.Monthly[i])
		}
	}
}

func TestReportMonthlyOrderAcrossYears(t *testing.T) {
	l, _ := openSeeded(t, []core.Expense{
		{Date: core.NewDate(2024, 1, 1), Amount: core.Money{Cents: 100}, Category: core.Food, Description: "a"},
		{Date: core.NewDate(2023, 12, 1), Amount: core.Money{Cents: 200}, Category: core.Food, Description: "b"},
		{Date: core.NewDate(2023, 2, 1), Amount: core.Money{Cents: 300}, Category: core.Food, Description: "c"},
	})
	r, err := l.Report()
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	want := []Month{
		{Year: 2023, Month: time.February},
		{Year: 2023, Month: time.December},
		{Year: 2024, Month: time.January},
	}
	for i := range want {
		if r.Monthly[i].Month != want[i] {
			t.Fatalf("bucket %d: expected %v, got %v", i, want[i], r.Monthly[i].Month)
		}
	}
}

func TestReportTopCategoryTieBreak(t *testing.T) {
	// Transport and Utilities tie; Transport comes first in the category order.
	l, _ := openSeeded(t, []core.Expense{
		{Date: core.NewDate(2024, 1, 1), Amount: core.Money{Cents: 500}, Category: core.Utilities, Description: "a"},
		{Date: core.NewDate(2024, 1, 2), Amount: core.Money{Cents: 500}, Category: core.Transport, Description: "b"},
	})
	r, err := l.Report()
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if r.TopCategory != core.Transport {
		t.Fatalf("expected tie to break to Transport, got %v", r.TopCategory)
	}
}

func TestReportEmptyLedger(t *testing.T) {
	l, _ := openSeeded(t, nil)
	if _, err := l.Report(); !errors.Is(err, ErrEmptyLedger) {
		t.Fatalf("expected ErrEmptyLedger, got %v", err)
	}
}

func TestMonthString(t *testing.T) {
	m := Month{Year: 2024, Month: time.January}
	if got := m.String(); got != "2024-01" {
		t.Fatalf("expected 2024-01, got %q", got)
	}
}
