// Package models defines the domain entities for the expense tracker.
package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category vocabulary. Order matters: the natural-language parser scans
// these in order and picks the first match.
const (
	CategoryFood     = "food"
	CategoryShopping = "shopping"
	CategoryTravel   = "travel"
	CategoryBills    = "bills"
)

// Categories is the fixed category vocabulary, in scan order.
var Categories = []string{CategoryFood, CategoryShopping, CategoryTravel, CategoryBills}

// Timeframe names understood by the timeframe filter. Any other name
// falls back to All Time.
const (
	TimeframeThisMonth   = "This Month"
	TimeframeLastMonth   = "Last Month"
	TimeframeLast3Months = "Last 3 Months"
	TimeframeThisYear    = "This Year"
	TimeframeAllTime     = "All Time"
)

// Timeframes lists the supported timeframe names.
var Timeframes = []string{
	TimeframeThisMonth,
	TimeframeLastMonth,
	TimeframeLast3Months,
	TimeframeThisYear,
	TimeframeAllTime,
}

// RawExpense is an expense row as it comes out of the store or a CSV
// import, before normalization. All value fields are strings so malformed
// input survives until the normalizer coerces it.
type RawExpense struct {
	ID       int64
	Amount   string
	Category string
	Date     string
}

// Expense is a normalized expense record. Amount is always a valid
// decimal (zero when the raw value was unparsable), Category is
// lowercased and trimmed, and Date is the zero time when the raw value
// could not be parsed.
type Expense struct {
	ID       int64           `json:"id"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Date     time.Time       `json:"date"`
}

// AnalysisResult summarizes spending for a (timeframe-filtered) table.
// TopCategory is nil and PercentOfTotal is zero whenever the table is
// empty or sums to nothing.
type AnalysisResult struct {
	Suggestion     string          `json:"suggestion"`
	TopCategory    *string         `json:"top_category"`
	PercentOfTotal float64         `json:"percent_of_total"`
	Total          decimal.Decimal `json:"total"`
	Count          int             `json:"count"`
	ImageKey       string          `json:"image_key"`
}

// ToRaw converts a normalized table back into raw rows, the shape the
// chart renderers consume. Zero dates become empty strings.
func ToRaw(table []Expense) []RawExpense {
	rows := make([]RawExpense, 0, len(table))
	for _, e := range table {
		date := ""
		if !e.Date.IsZero() {
			date = e.Date.Format(time.RFC3339)
		}
		rows = append(rows, RawExpense{
			ID:       e.ID,
			Amount:   e.Amount.String(),
			Category: e.Category,
			Date:     date,
		})
	}
	return rows
}
