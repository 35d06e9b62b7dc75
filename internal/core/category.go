package core

import (
	"fmt"
	"strings"
)

// Category is the closed set of expense categories. Every admission and
// filter path goes through ParseCategory, so an invalid category is never
// representable inside a Ledger.
type Category string

const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Utilities     Category = "Utilities"
	Entertainment Category = "Entertainment"
)

// Categories returns every valid category in declaration order. The order is
// stable and is used wherever per-category results need deterministic
// iteration.
func Categories() []Category {
	return []Category{Food, Transport, Utilities, Entertainment}
}

// IsValid returns true if the category is a member of the closed set.
func (c Category) IsValid() bool {
	switch c {
	case Food, Transport, Utilities, Entertainment:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer
func (c Category) String() string {
	return string(c)
}

// ParseCategory converts raw user text into a Category.
func ParseCategory(s string) (Category, error) {
	c := Category(strings.TrimSpace(s))
	if !c.IsValid() {
		return "", fmt.Errorf("%w: %q must be one of %v", ErrUnknownCategory, s, Categories())
	}
	return c, nil
}
