package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"tripsplit/internal/models"
	"tripsplit/internal/storage"
)

// AddExpense persists a new expense, assigning the trip's next expense ID
// and bumping the counter in the same transaction. IDs are never reused,
// even after expenses are removed.
func (s *SQLiteStore) AddExpense(ctx context.Context, expense *models.Expense) error {
	if expense.Amount <= 0 {
		return fmt.Errorf("expense amount must be positive, got %.2f", expense.Amount)
	}
	if expense.CreatedAt == 0 {
		expense.CreatedAt = time.Now().Unix()
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var nextID int64
	err = tx.QueryRowContext(ctx,
		"SELECT next_expense_id FROM trips WHERE id = ?", expense.TripID,
	).Scan(&nextID)
	if err == sql.ErrNoRows {
		return fmt.Errorf("trip %s: %w", expense.TripID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to get next expense id: %w", err)
	}
	expense.ID = nextID

	_, err = tx.ExecContext(ctx,
		"INSERT INTO expenses (trip_id, id, paid_by, amount, description, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		expense.TripID, expense.ID, expense.PaidBy, expense.Amount, expense.Description, expense.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert expense: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		"UPDATE trips SET next_expense_id = ? WHERE id = ?",
		nextID+1, expense.TripID,
	)
	if err != nil {
		return fmt.Errorf("failed to bump expense counter: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// RemoveExpense deletes a single expense from a trip.
func (s *SQLiteStore) RemoveExpense(ctx context.Context, tripID string, expenseID int64) error {
	res, err := s.db.ExecContext(ctx,
		"DELETE FROM expenses WHERE trip_id = ? AND id = ?",
		tripID, expenseID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete expense: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("expense %d: %w", expenseID, storage.ErrNotFound)
	}

	return nil
}

// ListExpenses returns the trip's expenses in ID order.
func (s *SQLiteStore) ListExpenses(ctx context.Context, tripID string) ([]models.Expense, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT trip_id, id, paid_by, amount, description, created_at FROM expenses WHERE trip_id = ? ORDER BY id",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get expenses: %w", err)
	}
	defer rows.Close()

	var expenses []models.Expense
	for rows.Next() {
		var exp models.Expense
		if err := rows.Scan(&exp.TripID, &exp.ID, &exp.PaidBy, &exp.Amount, &exp.Description, &exp.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan expense: %w", err)
		}
		expenses = append(expenses, exp)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate expenses: %w", err)
	}

	return expenses, nil
}

// GetSnapshot materializes the trip's current state as one immutable view.
func (s *SQLiteStore) GetSnapshot(ctx context.Context, tripID string) (*models.Snapshot, error) {
	trip, err := s.GetTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}

	participants, err := s.ListParticipants(ctx, tripID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.ListExpenses(ctx, tripID)
	if err != nil {
		return nil, err
	}

	return &models.Snapshot{
		Participants:  participants,
		Expenses:      expenses,
		Currency:      trip.Currency,
		NextExpenseID: trip.NextExpenseID,
	}, nil
}
