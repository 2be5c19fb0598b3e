// Package analysis holds the core expense logic: row normalization,
// timeframe filtering, free-text parsing and spending analysis.
package analysis

import (
	"strings"
	"time"

	"github.com/mnsharma/expense-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// dateLayouts are tried in order when parsing raw date strings. The store
// writes RFC3339, CSV imports commonly carry bare dates.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// Normalize converts raw rows into a canonical table. It never fails:
// unparsable amounts become zero, categories are lowercased and trimmed,
// and unparsable dates become the zero time.
func Normalize(rows []models.RawExpense) []models.Expense {
	table := make([]models.Expense, 0, len(rows))
	for _, row := range rows {
		table = append(table, models.Expense{
			ID:       row.ID,
			Amount:   normalizeAmount(row.Amount),
			Category: strings.ToLower(strings.TrimSpace(row.Category)),
			Date:     normalizeDate(row.Date),
		})
	}
	return table
}

func normalizeAmount(raw string) decimal.Decimal {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return decimal.Zero
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

func normalizeDate(raw string) time.Time {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t
		}
	}
	return time.Time{}
}
