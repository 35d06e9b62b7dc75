// Package csv implements the default backing store: a flat file with one row
// per expense and a mandatory header, readable by any spreadsheet tool.
package csv

import (
	"context"
	stdcsv "encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"spendtrack/internal/core"
	"spendtrack/internal/store"
)

// Header is the mandatory first row of the store file, in column order.
var Header = []string{"Date", "Amount", "Category", "Description"}

// Store reads and rewrites a CSV ledger file. The zero value is not usable;
// construct with New.
type Store struct {
	path string
}

func New(path string) *Store {
	return &Store{path: path}
}

// Load reads every row of the store file. A missing file yields an empty
// result, not an error. A file that cannot be parsed as CSV rows with the
// expected header is malformed and fatal. Rows whose amount or category fail
// validation are dropped and counted; an unparseable date makes the file
// malformed, since dates are part of the interchange contract.
func (s *Store) Load(ctx context.Context) (store.LoadResult, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		slog.InfoContext(ctx, "store file not found, starting empty", "path", s.path)
		return store.LoadResult{}, nil
	}
	if err != nil {
		return store.LoadResult{}, fmt.Errorf("open store: %w", err)
	}
	defer f.Close()

	r := stdcsv.NewReader(f)
	r.TrimLeadingSpace = true

	header, err := r.Read()
	if err == io.EOF {
		// zero-length file behaves like a missing store
		return store.LoadResult{}, nil
	}
	if err != nil {
		return store.LoadResult{}, fmt.Errorf("%w: read header: %v", store.ErrMalformed, err)
	}
	col, err := columnIndex(header)
	if err != nil {
		return store.LoadResult{}, err
	}

	var res store.LoadResult
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return store.LoadResult{}, fmt.Errorf("%w: read row: %v", store.ErrMalformed, err)
		}
		date, err := core.ParseDate(rec[col["Date"]])
		if err != nil {
			return store.LoadResult{}, fmt.Errorf("%w: row %d: %v", store.ErrMalformed, len(res.Expenses)+res.Dropped+2, err)
		}
		amount, err := core.ParseAmount(rec[col["Amount"]])
		if err != nil {
			res.Dropped++
			continue
		}
		category, err := core.ParseCategory(rec[col["Category"]])
		if err != nil {
			res.Dropped++
			continue
		}
		description := rec[col["Description"]]
		if strings.TrimSpace(description) == "" {
			description = core.DefaultDescription
		}
		res.Expenses = append(res.Expenses, core.Expense{
			Date:        date,
			Amount:      amount,
			Category:    category,
			Description: description,
		})
	}
	return res, nil
}

// Rewrite replaces the store file with the given sequence. It writes to a
// temporary file in the same directory and renames it over the target, so a
// failed write never leaves a half-written store behind.
func (s *Store) Rewrite(ctx context.Context, expenses []core.Expense) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp store: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := stdcsv.NewWriter(tmp)
	if err := w.Write(Header); err != nil {
		tmp.Close()
		return fmt.Errorf("write header: %w", err)
	}
	for _, e := range expenses {
		row := []string{e.Date.String(), e.Amount.String(), e.Category.String(), e.Description}
		if err := w.Write(row); err != nil {
			tmp.Close()
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("flush store: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp store: %w", err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace store: %w", err)
	}
	slog.DebugContext(ctx, "store rewritten", "path", s.path, "rows", len(expenses))
	return nil
}

// Close implements store.Store; a CSV store holds no open handles.
func (s *Store) Close() error {
	return nil
}

func columnIndex(header []string) (map[string]int, error) {
	idx := make(map[string]int, len(header))
	for i, h := range header {
		idx[strings.TrimSpace(h)] = i
	}
	for _, name := range Header {
		if _, ok := idx[name]; !ok {
			return nil, fmt.Errorf("%w: missing column %q", store.ErrMalformed, name)
		}
	}
	return idx, nil
}
