package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"tripsplit/internal/storage"
)

// AddParticipant appends a participant to a trip. The position column
// records first-added order, which the splitter relies on for deterministic
// tie-breaking.
func (s *SQLiteStore) AddParticipant(ctx context.Context, tripID, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM trips WHERE id = ?", tripID).Scan(&exists)
	if err == sql.ErrNoRows {
		return fmt.Errorf("trip %s: %w", tripID, storage.ErrNotFound)
	}
	if err != nil {
		return fmt.Errorf("failed to check trip existence: %w", err)
	}

	err = tx.QueryRowContext(ctx,
		"SELECT 1 FROM participants WHERE trip_id = ? AND name = ?", tripID, name,
	).Scan(&exists)
	if err == nil {
		return fmt.Errorf("participant %q: %w", name, storage.ErrDuplicate)
	}
	if err != sql.ErrNoRows {
		return fmt.Errorf("failed to check participant existence: %w", err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO participants (trip_id, name, position)
		 VALUES (?, ?, (SELECT COALESCE(MAX(position), 0) + 1 FROM participants WHERE trip_id = ?))`,
		tripID, name, tripID,
	)
	if err != nil {
		return fmt.Errorf("failed to insert participant: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// RemoveParticipant removes a participant along with every expense they
// paid, so the stored ledger never gains dangling references on its own.
func (s *SQLiteStore) RemoveParticipant(ctx context.Context, tripID, name string) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(ctx,
		"DELETE FROM participants WHERE trip_id = ? AND name = ?",
		tripID, name,
	)
	if err != nil {
		return fmt.Errorf("failed to delete participant: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("participant %q: %w", name, storage.ErrNotFound)
	}

	if _, err := tx.ExecContext(ctx,
		"DELETE FROM expenses WHERE trip_id = ? AND paid_by = ?",
		tripID, name,
	); err != nil {
		return fmt.Errorf("failed to delete participant expenses: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// ListParticipants returns the trip's participants in first-added order.
func (s *SQLiteStore) ListParticipants(ctx context.Context, tripID string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		"SELECT name FROM participants WHERE trip_id = ? ORDER BY position",
		tripID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get participants: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan participant: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate participants: %w", err)
	}

	return names, nil
}
