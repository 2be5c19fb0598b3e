package report

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/mnsharma/expense-tracker/internal/analysis"
	"github.com/mnsharma/expense-tracker/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// memStore collects added rows in memory.
type memStore struct {
	rows    []models.RawExpense
	failDup bool
}

func (s *memStore) Add(_ context.Context, amount decimal.Decimal, category, dateISO string) error {
	if s.failDup && len(s.rows) > 0 {
		return fmt.Errorf("store unavailable")
	}
	s.rows = append(s.rows, models.RawExpense{
		ID:       int64(len(s.rows) + 1),
		Amount:   amount.String(),
		Category: category,
		Date:     dateISO,
	})
	return nil
}

func TestExport(t *testing.T) {
	date := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	table := []models.Expense{
		{ID: 1, Amount: decimal.NewFromFloat(25.5), Category: "food", Date: date},
		{ID: 2, Amount: decimal.NewFromInt(100), Category: "bills", Date: time.Time{}},
	}

	buf, err := Export(table)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(buf)), "\n")
	require.Equal(t, "amount,category,date", lines[0])
	require.Equal(t, "25.50,food,2024-06-01T12:30:00Z", lines[1])
	// Invalid dates export as an empty field.
	require.Equal(t, "100.00,bills,", lines[2])
}

func TestImport(t *testing.T) {
	t.Run("imports well-formed rows", func(t *testing.T) {
		csvData := "amount,category,date\n25.50,Food,2024-06-01T12:30:00Z\n10.00,bills,2024-06-02\n"
		store := &memStore{}

		count, err := Import(context.Background(), strings.NewReader(csvData), store)
		require.NoError(t, err)
		require.Equal(t, 2, count)
		require.Equal(t, "food", store.rows[0].Category)
		require.Equal(t, "25.5", store.rows[0].Amount)
	})

	t.Run("rejects empty file", func(t *testing.T) {
		store := &memStore{}
		_, err := Import(context.Background(), strings.NewReader(""), store)
		require.Error(t, err)
	})

	t.Run("rejects wrong header", func(t *testing.T) {
		store := &memStore{}
		_, err := Import(context.Background(), strings.NewReader("id,amount,when\n"), store)
		require.Error(t, err)
		require.Contains(t, err.Error(), "expected header")
	})

	t.Run("aborts batch on bad amount", func(t *testing.T) {
		csvData := "amount,category,date\n25.50,food,2024-06-01\nnope,bills,2024-06-02\n"
		store := &memStore{}

		count, err := Import(context.Background(), strings.NewReader(csvData), store)
		require.Error(t, err)
		require.Contains(t, err.Error(), "bad amount")
		// The first row stays added.
		require.Equal(t, 1, count)
		require.Len(t, store.rows, 1)
	})

	t.Run("propagates store failure", func(t *testing.T) {
		csvData := "amount,category,date\n25.50,food,2024-06-01\n10,bills,2024-06-02\n"
		store := &memStore{failDup: true}

		_, err := Import(context.Background(), strings.NewReader(csvData), store)
		require.Error(t, err)
		require.Contains(t, err.Error(), "store unavailable")
	})
}

func TestExportImportRoundTrip(t *testing.T) {
	date := time.Date(2024, 5, 20, 9, 0, 0, 0, time.UTC)
	original := []models.Expense{
		{ID: 1, Amount: decimal.NewFromFloat(25.50), Category: "food", Date: date},
		{ID: 2, Amount: decimal.NewFromInt(300), Category: "travel", Date: date.AddDate(0, 0, 3)},
	}

	buf, err := Export(original)
	require.NoError(t, err)

	store := &memStore{}
	count, err := Import(context.Background(), bytes.NewReader(buf), store)
	require.NoError(t, err)
	require.Equal(t, len(original), count)

	// Re-normalizing the imported rows reproduces the same triples,
	// ignoring id reassignment.
	table := analysis.Normalize(store.rows)
	require.Len(t, table, len(original))
	for i := range original {
		require.True(t, original[i].Amount.Equal(table[i].Amount))
		require.Equal(t, original[i].Category, table[i].Category)
		require.True(t, original[i].Date.Equal(table[i].Date))
	}
}
