// Package splitter computes who owes whom after a group trip.
//
// The computation runs in two steps: ComputeBalances reduces the expense
// ledger plus the participant list to a net balance per participant, and
// Match reduces those balances to a short list of pairwise transfers. Both
// steps are pure functions of their inputs; callers hand over an immutable
// snapshot and get a fresh result back, nothing is retained between calls.
package splitter

// Epsilon is the tolerance below which a balance counts as settled.
// Two-decimal currencies cannot represent anything smaller.
const Epsilon = 0.01

// Expense is a single payment made by one participant on behalf of the group.
type Expense struct {
	// ID is assigned by the caller, unique and monotonically increasing.
	ID int64

	// PaidBy is the name of the participant who paid. It may reference a
	// participant that has since been removed; see ComputeBalances.
	PaidBy string

	// Amount is the amount paid. Must be positive.
	Amount float64

	// Description is a free-form label for the expense.
	Description string
}

// Settlement directs one participant to pay another.
type Settlement struct {
	From   string  `json:"from"`
	To     string  `json:"to"`
	Amount float64 `json:"amount"`
}

// BalanceSheet is the output of ComputeBalances and the input to Match.
type BalanceSheet struct {
	// Participants preserves the caller's order. Match uses it to break
	// ties between equal balances, keeping output deterministic.
	Participants []string

	// Amounts maps each participant to paid_total minus the average share.
	// Positive means owed money, negative means owes money.
	Amounts map[string]float64

	// TotalPaid is the sum of all counted expense amounts.
	TotalPaid float64

	// Warnings lists non-fatal data gaps, currently expenses whose payer
	// is no longer a participant.
	Warnings []string
}

// Result bundles both steps for callers that want the full plan at once.
type Result struct {
	TotalPaid   float64            `json:"total_paid"`
	Balances    map[string]float64 `json:"balances"`
	Settlements []Settlement       `json:"settlements"`
	Warnings    []string           `json:"warnings,omitempty"`
}
