package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"spendtrack/internal/chart"
	"spendtrack/internal/core"
	"spendtrack/internal/ledger"
	"spendtrack/internal/log"
)

// App drives the interactive menu loop. It reads raw text from in and writes
// everything user-facing to out; validation rules live entirely behind the
// ledger, the loop only forwards text and renders outcomes.
type App struct {
	ledger    *ledger.Ledger
	chartPath string
	logger    *log.Logger
	in        *bufio.Scanner
	out       io.Writer
}

func NewApp(l *ledger.Ledger, chartPath string, logger *log.Logger, in io.Reader, out io.Writer) *App {
	return &App{
		ledger:    l,
		chartPath: chartPath,
		logger:    logger.WithComponent(log.ComponentMenu),
		in:        bufio.NewScanner(in),
		out:       out,
	}
}

// Run loops until the user exits or input reaches EOF.
func (a *App) Run(ctx context.Context) error {
	for {
		fmt.Fprintln(a.out)
		fmt.Fprintln(a.out, "Welcome to Expense Tracker")
		fmt.Fprintln(a.out, "1. Add New Expense")
		fmt.Fprintln(a.out, "2. Show Summary")
		fmt.Fprintln(a.out, "3. Filter Expenses")
		fmt.Fprintln(a.out, "4. Show Report")
		fmt.Fprintln(a.out, "5. Create Charts")
		fmt.Fprintln(a.out, "6. Exit")

		choice, ok := a.prompt("Enter choice (1-6): ")
		if !ok {
			return a.in.Err()
		}
		switch strings.TrimSpace(choice) {
		case "1":
			a.addExpense(ctx)
		case "2":
			a.showSummary()
		case "3":
			a.filterExpenses()
		case "4":
			a.showReport()
		case "5":
			a.createCharts()
		case "6":
			fmt.Fprintln(a.out, "Exiting program...")
			return nil
		default:
			fmt.Fprintln(a.out, "Invalid choice. Try again.")
		}
	}
}

func (a *App) prompt(label string) (string, bool) {
	fmt.Fprint(a.out, label)
	if !a.in.Scan() {
		return "", false
	}
	return a.in.Text(), true
}

func (a *App) addExpense(ctx context.Context) {
	date, ok := a.prompt("Enter date (YYYY-MM-DD): ")
	if !ok {
		return
	}
	amount, ok := a.prompt("Enter amount: ")
	if !ok {
		return
	}
	category, ok := a.prompt("Enter category (Food/Transport/Utilities/Entertainment): ")
	if !ok {
		return
	}
	description, ok := a.prompt("Enter description: ")
	if !ok {
		return
	}

	if _, err := a.ledger.Append(ctx, date, amount, category, description); err != nil {
		a.renderError(err)
		return
	}
	fmt.Fprintln(a.out, "Expense added!")
}

func (a *App) showSummary() {
	s, err := a.ledger.Summary()
	if errors.Is(err, ledger.ErrEmptyLedger) {
		fmt.Fprintln(a.out, "No expenses recorded.")
		return
	}
	if err != nil {
		a.renderError(err)
		return
	}
	fmt.Fprintln(a.out, "Expense Summary:")
	fmt.Fprintf(a.out, "Total Expenses: $%s\n", s.Total)
	fmt.Fprintf(a.out, "Average Expense: $%s\n", s.Mean)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Expenses by Category:")
	for _, ct := range s.ByCategory {
		fmt.Fprintf(a.out, "%s: $%s\n", ct.Category, ct.Total)
	}
}

func (a *App) filterExpenses() {
	category, ok := a.prompt("Enter category (or press Enter to skip): ")
	if !ok {
		return
	}
	start, ok := a.prompt("Enter start date (YYYY-MM-DD, or Enter to skip): ")
	if !ok {
		return
	}
	end, ok := a.prompt("Enter end date (YYYY-MM-DD, or Enter to skip): ")
	if !ok {
		return
	}
	min, ok := a.prompt("Enter minimum amount (or Enter to skip): ")
	if !ok {
		return
	}

	f, err := ledger.ParseFilter(category, start, end, min)
	if err != nil {
		a.renderError(err)
		return
	}
	matches := a.ledger.Filter(f)
	if len(matches) == 0 {
		fmt.Fprintln(a.out, "No expenses found.")
		return
	}
	w := tabwriter.NewWriter(a.out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Date\tAmount\tCategory\tDescription")
	for _, e := range matches {
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", e.Date, e.Amount, e.Category, e.Description)
	}
	w.Flush()
}

func (a *App) showReport() {
	r, err := a.ledger.Report()
	if errors.Is(err, ledger.ErrEmptyLedger) {
		fmt.Fprintln(a.out, "No expenses to report.")
		return
	}
	if err != nil {
		a.renderError(err)
		return
	}
	fmt.Fprintln(a.out, "Expense Report")
	fmt.Fprintln(a.out, strings.Repeat("=", 30))
	fmt.Fprintf(a.out, "Total Expenses: $%s\n", r.Total)
	fmt.Fprintf(a.out, "Top Spending Category: %s\n", r.TopCategory)
	fmt.Fprintln(a.out)
	fmt.Fprintln(a.out, "Monthly Spending:")
	for _, mt := range r.Monthly {
		fmt.Fprintf(a.out, "%s: $%s\n", mt.Month, mt.Total)
	}
}

func (a *App) createCharts() {
	d, err := chart.FromLedger(a.ledger)
	if errors.Is(err, ledger.ErrEmptyLedger) {
		fmt.Fprintln(a.out, "No data to visualize.")
		return
	}
	if err != nil {
		a.renderError(err)
		return
	}
	if err := d.WriteFile(a.chartPath); err != nil {
		a.logger.Error("dashboard render failed", log.FieldError, err, log.FieldPath, a.chartPath)
		a.renderError(err)
		return
	}
	fmt.Fprintf(a.out, "Charts saved as %s\n", a.chartPath)
}

// renderError turns typed failures into the messages the menu shows. Unknown
// errors pass through with their own text.
func (a *App) renderError(err error) {
	switch {
	case errors.Is(err, core.ErrInvalidDate):
		fmt.Fprintln(a.out, "Error: Invalid date, use YYYY-MM-DD")
	case errors.Is(err, core.ErrInvalidAmount):
		fmt.Fprintln(a.out, "Error: Invalid amount")
	case errors.Is(err, core.ErrNonPositiveAmount):
		fmt.Fprintln(a.out, "Error: Amount must be positive")
	case errors.Is(err, core.ErrUnknownCategory):
		fmt.Fprintf(a.out, "Error: Category must be one of %v\n", core.Categories())
	default:
		fmt.Fprintf(a.out, "Error: %v\n", err)
	}
}
