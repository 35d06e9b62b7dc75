// Package chart renders the expense dashboard: four panels over the full
// ledger written out as a single self-contained HTML artifact. Rendering
// only ever reads derived views, so a failed render cannot corrupt the
// ledger or its store.
package chart

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"spendtrack/internal/core"
	"spendtrack/internal/ledger"
)

const histogramBins = 10

// Palette carried over from the original dashboard.
const (
	colorTeal   = "#4DB6AC"
	colorCoral  = "#FF7043"
	colorPurple = "#9575CD"
	colorGold   = "#FFD54F"
	colorSlate  = "#78909C"
)

// Dashboard is the data behind the four panels: per-category totals (bar and
// pie), the monthly series (line) and the raw amounts (histogram).
type Dashboard struct {
	ByCategory []ledger.CategoryTotal
	Monthly    []ledger.MonthTotal
	Amounts    []core.Money
}

// FromLedger derives the dashboard inputs. An empty ledger yields
// ledger.ErrEmptyLedger; there is nothing to draw.
func FromLedger(l *ledger.Ledger) (Dashboard, error) {
	s, err := l.Summary()
	if err != nil {
		return Dashboard{}, err
	}
	r, err := l.Report()
	if err != nil {
		return Dashboard{}, err
	}
	records := l.Records()
	amounts := make([]core.Money, len(records))
	for i, e := range records {
		amounts[i] = e.Amount
	}
	return Dashboard{ByCategory: s.ByCategory, Monthly: r.Monthly, Amounts: amounts}, nil
}

// Render writes the dashboard page to w.
func (d Dashboard) Render(w io.Writer) error {
	page := components.NewPage()
	page.SetLayout(components.PageFlexLayout)
	page.AddCharts(
		d.categoryBar(),
		d.monthlyLine(),
		d.categoryPie(),
		d.amountHistogram(),
	)
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}
	return nil
}

// WriteFile renders the dashboard to the given path.
func (d Dashboard) WriteFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dashboard file: %w", err)
	}
	defer f.Close()
	if err := d.Render(f); err != nil {
		return err
	}
	return f.Close()
}

func (d Dashboard) categoryBar() *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Total Expenses by Category"}),
		charts.WithColorsOpts(opts.Colors{colorTeal}),
	)
	names := make([]string, len(d.ByCategory))
	data := make([]opts.BarData, len(d.ByCategory))
	for i, ct := range d.ByCategory {
		names[i] = ct.Category.String()
		data[i] = opts.BarData{Value: ct.Total.Float64()}
	}
	bar.SetXAxis(names).AddSeries("total", data)
	return bar
}

func (d Dashboard) monthlyLine() *charts.Line {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Spending Over Time"}),
		charts.WithColorsOpts(opts.Colors{colorCoral}),
	)
	months := make([]string, len(d.Monthly))
	data := make([]opts.LineData, len(d.Monthly))
	for i, mt := range d.Monthly {
		months[i] = mt.Month.String()
		data[i] = opts.LineData{Value: mt.Total.Float64()}
	}
	line.SetXAxis(months).AddSeries("spending", data)
	return line
}

func (d Dashboard) categoryPie() *charts.Pie {
	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Spending by Category"}),
		charts.WithColorsOpts(opts.Colors{colorTeal, colorCoral, colorPurple, colorGold}),
	)
	data := make([]opts.PieData, len(d.ByCategory))
	for i, ct := range d.ByCategory {
		data[i] = opts.PieData{Name: ct.Category.String(), Value: ct.Total.Float64()}
	}
	pie.AddSeries("share", data)
	return pie
}

func (d Dashboard) amountHistogram() *charts.Bar {
	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Expense Amount Distribution"}),
		charts.WithColorsOpts(opts.Colors{colorSlate}),
	)
	labels, counts := histogram(d.Amounts, histogramBins)
	data := make([]opts.BarData, len(counts))
	for i, c := range counts {
		data[i] = opts.BarData{Value: c}
	}
	bar.SetXAxis(labels).AddSeries("count", data)
	return bar
}

// histogram buckets amounts into equal-width bins over [min, max]. All-equal
// amounts collapse into a single bin.
func histogram(amounts []core.Money, bins int) ([]string, []int) {
	if len(amounts) == 0 {
		return nil, nil
	}
	lo, hi := amounts[0].Cents, amounts[0].Cents
	for _, a := range amounts[1:] {
		if a.Cents < lo {
			lo = a.Cents
		}
		if a.Cents > hi {
			hi = a.Cents
		}
	}
	if lo == hi {
		return []string{core.Money{Cents: lo}.String()}, []int{len(amounts)}
	}
	width := (hi - lo + int64(bins) - 1) / int64(bins)
	labels := make([]string, bins)
	counts := make([]int, bins)
	for i := range labels {
		from := core.Money{Cents: lo + int64(i)*width}
		to := core.Money{Cents: lo + int64(i+1)*width}
		labels[i] = fmt.Sprintf("%s-%s", from, to)
	}
	for _, a := range amounts {
		idx := int((a.Cents - lo) / width)
		if idx >= bins {
			idx = bins - 1
		}
		counts[idx]++
	}
	return labels, counts
}
