// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"
	"errors"

	"tripsplit/internal/models"
)

// ErrNotFound is wrapped by store errors when the requested trip,
// participant, or expense does not exist.
var ErrNotFound = errors.New("not found")

// ErrDuplicate is wrapped by store errors when inserting a participant name
// that already exists on the trip.
var ErrDuplicate = errors.New("already exists")

// Store defines the interface for trip storage operations.
// This abstraction allows swapping storage backends (SQLite, PostgreSQL,
// etc.) without changing the service layer.
type Store interface {
	// CreateTrip persists a new trip. The trip's ID and CreatedAt fields
	// will be populated by the store.
	CreateTrip(ctx context.Context, trip *models.Trip) error

	// GetTrip retrieves a trip by its ID.
	GetTrip(ctx context.Context, tripID string) (*models.Trip, error)

	// ListTrips retrieves all trips, newest first.
	ListTrips(ctx context.Context) ([]*models.Trip, error)

	// DeleteTrip removes a trip with all its participants and expenses.
	DeleteTrip(ctx context.Context, tripID string) error

	// ClearTrip removes all participants and expenses from a trip and
	// resets its currency and expense counter, keeping the trip itself.
	ClearTrip(ctx context.Context, tripID string) error

	// SetCurrency updates the trip's display currency code.
	SetCurrency(ctx context.Context, tripID, currency string) error

	// AddParticipant appends a participant to a trip, preserving
	// first-added order. Names are unique per trip.
	AddParticipant(ctx context.Context, tripID, name string) error

	// RemoveParticipant removes a participant and all expenses they paid.
	RemoveParticipant(ctx context.Context, tripID, name string) error

	// ListParticipants returns the trip's participants in first-added order.
	ListParticipants(ctx context.Context, tripID string) ([]string, error)

	// AddExpense persists a new expense, assigning the trip's next expense
	// ID and the CreatedAt timestamp to the passed model.
	AddExpense(ctx context.Context, expense *models.Expense) error

	// RemoveExpense deletes a single expense from a trip.
	RemoveExpense(ctx context.Context, tripID string, expenseID int64) error

	// ListExpenses returns the trip's expenses in ID order.
	ListExpenses(ctx context.Context, tripID string) ([]models.Expense, error)

	// GetSnapshot materializes the trip's current participants and
	// expenses as one immutable view for calculation.
	GetSnapshot(ctx context.Context, tripID string) (*models.Snapshot, error)

	// Close releases any resources held by the store.
	Close() error
}
