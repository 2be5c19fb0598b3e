package analysis

import (
	"regexp"
	"strings"
	"time"

	"github.com/mnsharma/expense-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// ParsedExpense is an expense extracted from free text like
// "200 food today".
type ParsedExpense struct {
	Amount   decimal.Decimal
	Category string
	Date     time.Time
}

// amountRegex matches the first decimal number anywhere in the text,
// like "200" or "12.50".
var amountRegex = regexp.MustCompile(`\d+(?:\.\d+)?`)

// isoDateRegex matches a literal YYYY-MM-DD date.
var isoDateRegex = regexp.MustCompile(`\d{4}-\d{2}-\d{2}`)

// Parse extracts an amount, a category and a date from free-text input.
// now anchors the relative date words "today" and "yesterday".
// Returns nil when no amount is found or no vocabulary category appears
// in the text; it deliberately never guesses a category.
//
// The category is the first vocabulary word (food, shopping, travel,
// bills — in that order) found as a substring, not the one that appears
// first in the text.
func Parse(text string, now time.Time) *ParsedExpense {
	text = strings.ToLower(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	match := amountRegex.FindString(text)
	if match == "" {
		return nil
	}
	amount, err := decimal.NewFromString(match)
	if err != nil {
		return nil
	}

	var category string
	for _, c := range models.Categories {
		if strings.Contains(text, c) {
			category = c
			break
		}
	}
	if category == "" {
		return nil
	}

	return &ParsedExpense{
		Amount:   amount,
		Category: category,
		Date:     parseDate(text, now),
	}
}

// parseDate resolves the date portion of the text: "today", then
// "yesterday", then a literal YYYY-MM-DD, then now. A string that looks
// like a date but does not parse as one falls back to now.
func parseDate(text string, now time.Time) time.Time {
	switch {
	case strings.Contains(text, "today"):
		return now
	case strings.Contains(text, "yesterday"):
		return now.AddDate(0, 0, -1)
	}

	if match := isoDateRegex.FindString(text); match != "" {
		if t, err := time.Parse("2006-01-02", match); err == nil {
			return t
		}
	}
	return now
}
