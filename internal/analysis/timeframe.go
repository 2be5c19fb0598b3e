package analysis

import (
	"time"

	"github.com/mnsharma/expense-tracker/internal/models"
)

// Filter returns the rows of table whose date falls inside the named
// timeframe, relative to now. Unknown timeframe names behave as All
// Time. Rows with a zero date never match a bounded window; All Time
// passes them through unchanged. Relative row order is preserved.
func Filter(table []models.Expense, timeframe string, now time.Time) []models.Expense {
	switch timeframe {
	case models.TimeframeThisMonth:
		return filterFrom(table, startOfMonth(now))
	case models.TimeframeLastMonth:
		end := startOfMonth(now)
		return filterRange(table, end.AddDate(0, -1, 0), end)
	case models.TimeframeLast3Months:
		return filterFrom(table, startOfMonth(now).AddDate(0, -3, 0))
	case models.TimeframeThisYear:
		return filterFrom(table, time.Date(now.Year(), time.January, 1, 0, 0, 0, 0, now.Location()))
	default:
		// All Time and anything unrecognized: pass through, no date check.
		return table
	}
}

// filterFrom keeps rows with start <= date.
func filterFrom(table []models.Expense, start time.Time) []models.Expense {
	out := make([]models.Expense, 0, len(table))
	for _, e := range table {
		if e.Date.IsZero() {
			continue
		}
		if !e.Date.Before(start) {
			out = append(out, e)
		}
	}
	return out
}

// filterRange keeps rows with start <= date < end.
func filterRange(table []models.Expense, start, end time.Time) []models.Expense {
	out := make([]models.Expense, 0, len(table))
	for _, e := range table {
		if e.Date.IsZero() {
			continue
		}
		if !e.Date.Before(start) && e.Date.Before(end) {
			out = append(out, e)
		}
	}
	return out
}

func startOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}
