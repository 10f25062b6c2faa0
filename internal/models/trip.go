package models

// Trip represents one shared-expense ledger for a group of people.
type Trip struct {
	// ID is the unique identifier for the trip (UUID format).
	ID string

	// Name is the display name of the trip (e.g., "Lisbon 2026").
	Name string

	// Currency is the ISO 4217 code used when rendering amounts.
	// Purely cosmetic; it never affects the arithmetic.
	Currency string

	// NextExpenseID is the counter the store assigns expense IDs from.
	// Starts at 1 and only ever increases, so IDs are never reused even
	// after expenses are removed.
	NextExpenseID int64

	// CreatedAt is the Unix timestamp when the trip was created.
	CreatedAt int64
}

// Snapshot is a fully-materialized, immutable view of a trip's data.
// The splitter operates on snapshots only; mutations happen in storage
// between calculations.
type Snapshot struct {
	// Participants in first-added order. No duplicates; the store
	// enforces uniqueness at insertion time.
	Participants []string

	// Expenses in ID order.
	Expenses []Expense

	// Currency is the trip's display currency code.
	Currency string

	// NextExpenseID mirrors the trip counter at snapshot time.
	NextExpenseID int64
}
