package models

// Expense records a single payment made by one participant on behalf of
// the whole trip. Every expense is split evenly across all current
// participants when balances are computed.
type Expense struct {
	// ID is unique within the trip, assigned from the trip's counter,
	// monotonically increasing.
	ID int64

	// TripID is the trip this expense belongs to.
	TripID string

	// PaidBy is the participant name of the payer. If that participant is
	// later removed, the expense may linger as a dangling reference; the
	// splitter tolerates that and excludes the amount with a warning.
	PaidBy string

	// Amount is the amount paid. Always positive; the store and the
	// splitter both reject anything else.
	Amount float64

	// Description is a free-form label (e.g., "Dinner").
	Description string

	// CreatedAt is the Unix timestamp when the expense was recorded.
	CreatedAt int64
}
