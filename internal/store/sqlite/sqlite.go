// Package sqlite implements the backing store on a local SQLite database.
// It keeps the same whole-ledger rewrite contract as the CSV store: every
// rewrite replaces the full table inside one transaction.
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"spendtrack/internal/core"
	"spendtrack/internal/store"

	_ "modernc.org/sqlite"
)

type Store struct {
	db *sql.DB
}

func New(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: ping database: %v", store.ErrMalformed, err)
	}

	if err := runMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("%w: %v", store.ErrMalformed, err)
	}

	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Load reads all rows in insertion order. Rows whose amount or category fail
// validation are dropped and counted; a date that does not parse means the
// database was written outside the interchange contract and is malformed.
func (s *Store) Load(ctx context.Context) (store.LoadResult, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT date, amount_cents, category, description FROM expenses ORDER BY id`)
	if err != nil {
		return store.LoadResult{}, fmt.Errorf("%w: query expenses: %v", store.ErrMalformed, err)
	}
	defer rows.Close()

	var res store.LoadResult
	for rows.Next() {
		var (
			dateRaw     string
			amountCents int64
			categoryRaw string
			description string
		)
		if err := rows.Scan(&dateRaw, &amountCents, &categoryRaw, &description); err != nil {
			return store.LoadResult{}, fmt.Errorf("%w: scan row: %v", store.ErrMalformed, err)
		}
		date, err := core.ParseDate(dateRaw)
		if err != nil {
			return store.LoadResult{}, fmt.Errorf("%w: %v", store.ErrMalformed, err)
		}
		e := core.Expense{
			Date:        date,
			Amount:      core.Money{Cents: amountCents},
			Category:    core.Category(categoryRaw),
			Description: description,
		}
		if e.Validate() != nil {
			res.Dropped++
			continue
		}
		res.Expenses = append(res.Expenses, e)
	}
	if err := rows.Err(); err != nil {
		return store.LoadResult{}, fmt.Errorf("%w: iterate rows: %v", store.ErrMalformed, err)
	}
	return res, nil
}

// Rewrite replaces the expenses table with the given sequence in a single
// transaction, preserving the caller's order through the autoincrement id.
func (s *Store) Rewrite(ctx context.Context, expenses []core.Expense) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin rewrite: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM expenses`); err != nil {
		return fmt.Errorf("clear expenses: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO expenses (date, amount_cents, category, description) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	for _, e := range expenses {
		if _, err := stmt.ExecContext(ctx, e.Date.String(), e.Amount.Cents, e.Category.String(), e.Description); err != nil {
			return fmt.Errorf("insert expense: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit rewrite: %w", err)
	}

	slog.DebugContext(ctx, "store rewritten", "backend", "sqlite", "rows", len(expenses))
	return nil
}
