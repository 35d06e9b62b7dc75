package core

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Validation failures are sentinel values so that callers (CLI, tests) can
// branch with errors.Is instead of parsing message text.
var (
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidAmount     = errors.New("invalid amount")
	ErrNonPositiveAmount = errors.New("amount must be positive")
	ErrUnknownCategory   = errors.New("unknown category")
)

// DefaultDescription is substituted for an empty or whitespace-only
// description on admission.
const DefaultDescription = "No description"

// DateLayout is the interchange format for calendar dates.
const DateLayout = "2006-01-02"

type (
	// Date is a calendar date with no time-of-day semantics. It is always
	// normalized to UTC midnight.
	Date struct {
		time.Time
	}

	// Expense is one validated transaction. Values are only constructed
	// through NewExpense or admitted through Validate, so an Expense inside
	// a ledger always satisfies the domain invariants.
	Expense struct {
		Date        Date
		Amount      Money
		Category    Category
		Description string
	}
)

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses an ISO-8601 YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}, nil
}

// String formats the date in the interchange layout.
func (d Date) String() string {
	return d.Format(DateLayout)
}

// Before reports whether d falls strictly before other.
func (d Date) Before(other Date) bool {
	return d.Time.Before(other.Time)
}

// After reports whether d falls strictly after other.
func (d Date) After(other Date) bool {
	return d.Time.After(other.Time)
}

func (d Date) Validate() error {
	if d.IsZero() {
		return fmt.Errorf("%w: date cannot be zero", ErrInvalidDate)
	}
	return nil
}

// NewExpense validates raw user fields and assembles an Expense. Rules run in
// a fixed order: date, amount parse, amount positivity, category, and finally
// the description sentinel. The first failing rule is returned as a wrapped
// sentinel error and no Expense is produced. The validator performs no I/O.
func NewExpense(date, amount, category, description string) (Expense, error) {
	d, err := ParseDate(date)
	if err != nil {
		return Expense{}, err
	}
	m, err := ParseAmount(amount)
	if err != nil {
		return Expense{}, err
	}
	c, err := ParseCategory(category)
	if err != nil {
		return Expense{}, err
	}
	desc := strings.TrimSpace(description)
	if desc == "" {
		desc = DefaultDescription
	}
	return Expense{Date: d, Amount: m, Category: c, Description: desc}, nil
}

// Validate re-checks the domain invariants on an already-assembled Expense.
// Stores use it to gate rows read back from disk.
func (e Expense) Validate() error {
	if err := e.Date.Validate(); err != nil {
		return err
	}
	if err := e.Amount.Validate(); err != nil {
		return err
	}
	if !e.Category.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownCategory, e.Category)
	}
	return nil
}
