// Package report handles CSV export and import of expense records.
package report

import (
	"bytes"
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/mnsharma/expense-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// csvHeader is the fixed three-column schema shared by export and import.
var csvHeader = []string{"amount", "category", "date"}

// AddStore is the subset of the expense store the importer needs.
type AddStore interface {
	Add(ctx context.Context, amount decimal.Decimal, category, dateISO string) error
}

// Export serializes a table to CSV in the amount,category,date schema.
func Export(table []models.Expense) ([]byte, error) {
	var buf bytes.Buffer
	writer := csv.NewWriter(&buf)

	if err := writer.Write(csvHeader); err != nil {
		return nil, fmt.Errorf("failed to write CSV header: %w", err)
	}

	for _, e := range table {
		date := ""
		if !e.Date.IsZero() {
			date = e.Date.Format(time.RFC3339)
		}
		row := []string{e.Amount.StringFixed(2), e.Category, date}
		if err := writer.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write CSV row: %w", err)
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return nil, fmt.Errorf("CSV writer error: %w", err)
	}

	return buf.Bytes(), nil
}

// Import reads CSV rows in the amount,category,date schema and feeds
// each into the store. It fails as a batch: the first bad row aborts the
// import with a single error, and rows already added stay added.
// Returns the number of rows imported.
func Import(ctx context.Context, r io.Reader, store AddStore) (int, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = len(csvHeader)

	header, err := reader.Read()
	if err == io.EOF {
		return 0, fmt.Errorf("import failed: empty file")
	}
	if err != nil {
		return 0, fmt.Errorf("import failed: %w", err)
	}
	for i, col := range header {
		if !strings.EqualFold(strings.TrimSpace(col), csvHeader[i]) {
			return 0, fmt.Errorf("import failed: expected header %q", strings.Join(csvHeader, ","))
		}
	}

	count := 0
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return count, fmt.Errorf("import failed: %w", err)
		}

		amount, err := decimal.NewFromString(strings.TrimSpace(row[0]))
		if err != nil {
			return count, fmt.Errorf("import failed: bad amount %q: %w", row[0], err)
		}
		category := strings.ToLower(strings.TrimSpace(row[1]))

		if err := store.Add(ctx, amount, category, strings.TrimSpace(row[2])); err != nil {
			return count, fmt.Errorf("import failed: %w", err)
		}
		count++
	}

	return count, nil
}
