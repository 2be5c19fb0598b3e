// Package charts renders spending visualizations as PNG images.
//
// Each renderer accepts raw rows and normalizes them itself, so it can
// be fed directly from the store or from an already-filtered table.
package charts

import (
	"fmt"
	"sort"
	"time"

	"github.com/go-analyze/charts"
	"github.com/mnsharma/expense-tracker/internal/analysis"
	"github.com/mnsharma/expense-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// barWindowDays is the lookback window for the bar chart.
const barWindowDays = 90

// lineWindowMonths is the number of months plotted by the trend chart.
const lineWindowMonths = 12

// Pie renders the category distribution of the given rows.
func Pie(rows []models.RawExpense) ([]byte, error) {
	table := analysis.Normalize(rows)
	names, values := categoryTotals(table)
	if len(values) == 0 {
		return nil, fmt.Errorf("no data to chart")
	}

	p, err := charts.PieRender(
		values,
		charts.TitleOptionFunc(charts.TitleOption{
			Text: "Spending by Category",
		}),
		charts.LegendLabelsOptionFunc(names),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create pie chart: %w", err)
	}

	return p.Bytes()
}

// Bar renders per-category totals over the last 90 days before now.
func Bar(rows []models.RawExpense, now time.Time) ([]byte, error) {
	table := analysis.Normalize(rows)
	cutoff := now.AddDate(0, 0, -barWindowDays)

	var recent []models.Expense
	for _, e := range table {
		if !e.Date.IsZero() && !e.Date.Before(cutoff) {
			recent = append(recent, e)
		}
	}

	names, values := categoryTotals(recent)
	if len(values) == 0 {
		return nil, fmt.Errorf("no data to chart")
	}

	p, err := charts.BarRender(
		[][]float64{values},
		charts.TitleOptionFunc(charts.TitleOption{
			Text: fmt.Sprintf("Spending in Last %d Days", barWindowDays),
		}),
		charts.XAxisLabelsOptionFunc(names),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create bar chart: %w", err)
	}

	return p.Bytes()
}

// Line renders the monthly spending trend over the last 12 months,
// including now's month. Months with no spending plot as zero.
func Line(rows []models.RawExpense, now time.Time) ([]byte, error) {
	table := analysis.Normalize(rows)
	if len(table) == 0 {
		return nil, fmt.Errorf("no data to chart")
	}

	monthly := make(map[string]decimal.Decimal)
	for _, e := range table {
		if e.Date.IsZero() {
			continue
		}
		monthly[e.Date.Format("2006-01")] = monthly[e.Date.Format("2006-01")].Add(e.Amount)
	}

	// Build the fixed 12-month axis ending at the current month.
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).
		AddDate(0, -(lineWindowMonths - 1), 0)

	labels := make([]string, 0, lineWindowMonths)
	values := make([]float64, 0, lineWindowMonths)
	for i := 0; i < lineWindowMonths; i++ {
		month := start.AddDate(0, i, 0).Format("2006-01")
		labels = append(labels, month)
		values = append(values, monthly[month].InexactFloat64())
	}

	p, err := charts.LineRender(
		[][]float64{values},
		charts.TitleOptionFunc(charts.TitleOption{
			Text: fmt.Sprintf("Monthly Spending (Last %d Months)", lineWindowMonths),
		}),
		charts.XAxisLabelsOptionFunc(labels),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create line chart: %w", err)
	}

	return p.Bytes()
}

// categoryTotals sums amounts per category, largest first. Returned
// slices are parallel.
func categoryTotals(table []models.Expense) ([]string, []float64) {
	sums := make(map[string]decimal.Decimal)
	for _, e := range table {
		sums[e.Category] = sums[e.Category].Add(e.Amount)
	}

	names := make([]string, 0, len(sums))
	for name := range sums {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if !sums[names[i]].Equal(sums[names[j]]) {
			return sums[names[i]].GreaterThan(sums[names[j]])
		}
		return names[i] < names[j]
	})

	values := make([]float64, 0, len(names))
	for _, name := range names {
		values = append(values, sums[name].InexactFloat64())
	}
	return names, values
}
