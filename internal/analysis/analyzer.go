package analysis

import (
	"fmt"
	"strings"

	"github.com/mnsharma/expense-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// Suggestion severity thresholds, as percent of total spend held by the
// top category.
const (
	alarmThreshold   = 40.0
	warningThreshold = 25.0
)

// categoryTips maps each known category to its fixed advice line.
var categoryTips = map[string]string{
	models.CategoryFood:     "Try reducing takeout and cook at home more often.",
	models.CategoryShopping: "Use a wishlist and buy only after 48 hours.",
	models.CategoryTravel:   "Look for discount deals or plan trips off-season.",
	models.CategoryBills:    "Review subscriptions and remove unused services.",
}

const genericTip = "Track recurring expenses."

// DefaultImageKey names the fallback illustration asset.
const DefaultImageKey = "default"

// Analyze computes totals, the dominant category and a two-line
// suggestion for an already-filtered table. It is a pure function of its
// input; timeframe selection happens before it is called.
func Analyze(table []models.Expense) models.AnalysisResult {
	result := models.AnalysisResult{
		Suggestion: "No expenses yet.",
		Total:      decimal.Zero,
		ImageKey:   DefaultImageKey,
	}

	if len(table) == 0 {
		return result
	}

	total := decimal.Zero
	for _, e := range table {
		total = total.Add(e.Amount)
	}
	result.Total = total
	result.Count = len(table)

	if total.LessThanOrEqual(decimal.Zero) {
		result.Suggestion = "No expenses added in this timeframe."
		return result
	}

	topCategory, topAmount := topCategory(table)
	percent := topAmount.Div(total).InexactFloat64() * 100

	result.TopCategory = &topCategory
	result.PercentOfTotal = percent
	result.ImageKey = imageKey(topCategory)
	result.Suggestion = buildSuggestion(topCategory, percent)

	return result
}

// topCategory returns the category with the largest summed amount.
// Equal sums are broken by the lexicographically smaller name, so the
// result is deterministic for a fixed input.
func topCategory(table []models.Expense) (string, decimal.Decimal) {
	sums := make(map[string]decimal.Decimal)
	for _, e := range table {
		sums[e.Category] = sums[e.Category].Add(e.Amount)
	}

	var top string
	topSum := decimal.Zero
	first := true
	for category, sum := range sums {
		switch {
		case first || sum.GreaterThan(topSum):
			top, topSum = category, sum
			first = false
		case sum.Equal(topSum) && category < top:
			top = category
		}
	}
	return top, topSum
}

func buildSuggestion(top string, percent float64) string {
	var severity string
	switch {
	case percent >= alarmThreshold:
		severity = fmt.Sprintf("🚨 You spent %.1f%% on **%s**.", percent, title(top))
	case percent >= warningThreshold:
		severity = fmt.Sprintf("⚠️ %s makes up %.1f%% of your spending.", title(top), percent)
	default:
		severity = "✅ Your spending is well balanced."
	}

	tip, ok := categoryTips[top]
	if !ok {
		tip = genericTip
	}

	return severity + "\n💡 Tip: " + tip
}

// imageKey maps a category to its illustration asset key.
func imageKey(category string) string {
	if _, ok := categoryTips[category]; ok {
		return category
	}
	return DefaultImageKey
}

// title upper-cases the first letter for display.
func title(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
