// Package repository implements the expense record store.
package repository

import (
	"context"
	"fmt"

	"github.com/mnsharma/expense-tracker/internal/database"
	"github.com/mnsharma/expense-tracker/internal/models"
	"github.com/shopspring/decimal"
)

// ExpenseRepository handles expense database operations.
//
// Known limitation: concurrent writers are not coordinated beyond the
// per-statement atomicity PostgreSQL provides. The application model is
// a single user issuing one request at a time.
type ExpenseRepository struct {
	db database.PGXDB
}

// NewExpenseRepository creates a new ExpenseRepository.
func NewExpenseRepository(db database.PGXDB) *ExpenseRepository {
	return &ExpenseRepository{db: db}
}

// Add appends one expense record. The id is assigned by the database.
// dateISO is stored verbatim; the normalizer deals with its shape on read.
func (r *ExpenseRepository) Add(ctx context.Context, amount decimal.Decimal, category, dateISO string) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO expenses (amount, category, date) VALUES ($1, $2, $3)
	`, amount, category, dateISO)
	if err != nil {
		return fmt.Errorf("failed to add expense: %w", err)
	}
	return nil
}

// GetAll retrieves all expense records, newest date first. Values come
// back as raw strings for the normalizer to canonicalize.
func (r *ExpenseRepository) GetAll(ctx context.Context) ([]models.RawExpense, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, amount::text, category, date
		FROM expenses
		ORDER BY date DESC, id DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.RawExpense
	for rows.Next() {
		var e models.RawExpense
		if err := rows.Scan(&e.ID, &e.Amount, &e.Category, &e.Date); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating expenses: %w", err)
	}
	return expenses, nil
}

// ClearAll removes every record and resets id assignment so the next
// insert receives id 1. TRUNCATE ... RESTART IDENTITY does both in a
// single atomic statement.
func (r *ExpenseRepository) ClearAll(ctx context.Context) error {
	_, err := r.db.Exec(ctx, `TRUNCATE TABLE expenses RESTART IDENTITY`)
	if err != nil {
		return fmt.Errorf("failed to clear expenses: %w", err)
	}
	return nil
}
