package analysis

import (
	"testing"
	"time"

	"github.com/mnsharma/expense-tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// now pins the clock for all timeframe tests: Saturday 2024-06-15 10:30.
var testNow = time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)

func row(id int64, date time.Time) models.Expense {
	return models.Expense{ID: id, Amount: decimal.NewFromInt(10), Category: "food", Date: date}
}

func ids(table []models.Expense) []int64 {
	out := make([]int64, 0, len(table))
	for _, e := range table {
		out = append(out, e.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	t.Parallel()

	table := []models.Expense{
		row(1, time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)),  // this month
		row(2, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)),   // first day of this month
		row(3, time.Date(2024, 5, 31, 23, 59, 0, 0, time.UTC)), // last day of last month
		row(4, time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)),   // first day of last month
		row(5, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),   // three months back
		row(6, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)),  // before the 3-month window
		row(7, time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)),   // this year
		row(8, time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC)), // last year
		row(9, time.Time{}),                                   // invalid date
	}

	tests := []struct {
		timeframe string
		want      []int64
	}{
		{models.TimeframeThisMonth, []int64{1, 2}},
		{models.TimeframeLastMonth, []int64{3, 4}},
		{models.TimeframeLast3Months, []int64{1, 2, 3, 4, 5}},
		{models.TimeframeThisYear, []int64{1, 2, 3, 4, 5, 6, 7}},
		{models.TimeframeAllTime, []int64{1, 2, 3, 4, 5, 6, 7, 8, 9}},
	}

	for _, tt := range tests {
		t.Run(tt.timeframe, func(t *testing.T) {
			t.Parallel()
			got := Filter(table, tt.timeframe, testNow)
			require.Equal(t, tt.want, ids(got))
		})
	}

	t.Run("unknown timeframe behaves as All Time", func(t *testing.T) {
		t.Parallel()
		got := Filter(table, "Last Decade", testNow)
		require.Equal(t, ids(table), ids(got))
	})

	t.Run("empty table stays empty for every timeframe", func(t *testing.T) {
		t.Parallel()
		for _, tf := range models.Timeframes {
			require.Empty(t, Filter(nil, tf, testNow), "timeframe %q", tf)
		}
	})

	t.Run("invalid dates never match a bounded window", func(t *testing.T) {
		t.Parallel()
		zeroOnly := []models.Expense{row(1, time.Time{})}
		require.Empty(t, Filter(zeroOnly, models.TimeframeThisYear, testNow))
		require.Len(t, Filter(zeroOnly, models.TimeframeAllTime, testNow), 1)
	})

	t.Run("preserves relative order", func(t *testing.T) {
		t.Parallel()
		shuffled := []models.Expense{
			row(5, time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)),
			row(1, time.Date(2024, 6, 14, 0, 0, 0, 0, time.UTC)),
			row(3, time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)),
		}
		got := Filter(shuffled, models.TimeframeLast3Months, testNow)
		require.Equal(t, []int64{5, 1, 3}, ids(got))
	})
}

func TestFilterYearBoundary(t *testing.T) {
	t.Parallel()

	// In January the 3-month window reaches into the previous year.
	january := time.Date(2024, 1, 20, 12, 0, 0, 0, time.UTC)
	table := []models.Expense{
		row(1, time.Date(2023, 10, 1, 0, 0, 0, 0, time.UTC)),
		row(2, time.Date(2023, 9, 30, 0, 0, 0, 0, time.UTC)),
		row(3, time.Date(2023, 12, 15, 0, 0, 0, 0, time.UTC)),
	}

	got := Filter(table, models.TimeframeLast3Months, january)
	require.Equal(t, []int64{1, 3}, ids(got))

	got = Filter(table, models.TimeframeLastMonth, january)
	require.Equal(t, []int64{3}, ids(got))

	got = Filter(table, models.TimeframeThisYear, january)
	require.Empty(t, got)
}
