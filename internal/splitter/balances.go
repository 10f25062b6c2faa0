package splitter

import (
	"fmt"
	"log/slog"
)

// ComputeBalances reduces the expense ledger to a net balance per participant.
//
// Every expense is split evenly across all current participants, so each
// balance is what that participant paid minus the equal share of the counted
// total. The returned sheet has exactly one entry per participant and its
// amounts sum to zero up to floating-point error, provided every expense
// references a known participant.
//
// An expense whose PaidBy matches no participant is a recoverable gap (the
// payer was removed after paying): its amount is excluded from both the
// payer totals and TotalPaid, a warning is recorded, and the computation
// continues.
//
// The caller guarantees participants contains no duplicate names.
func ComputeBalances(participants []string, expenses []Expense) (*BalanceSheet, error) {
	if len(participants) == 0 {
		return nil, ErrEmptyParticipants
	}

	paid := make(map[string]float64, len(participants))
	for _, name := range participants {
		paid[name] = 0
	}

	var totalPaid float64
	var warnings []string
	for _, exp := range expenses {
		if exp.Amount <= 0 {
			return nil, &InvalidAmountError{ExpenseID: exp.ID, Amount: exp.Amount}
		}
		if _, known := paid[exp.PaidBy]; !known {
			slog.Warn("expense paid by unknown participant, excluding from totals",
				"expense_id", exp.ID,
				"paid_by", exp.PaidBy,
				"amount", exp.Amount,
			)
			warnings = append(warnings, fmt.Sprintf(
				"expense %d was paid by %q, who is no longer a participant; amount excluded", exp.ID, exp.PaidBy))
			continue
		}
		paid[exp.PaidBy] += exp.Amount
		totalPaid += exp.Amount
	}

	averageShare := totalPaid / float64(len(participants))
	amounts := make(map[string]float64, len(participants))
	for _, name := range participants {
		amounts[name] = paid[name] - averageShare
	}

	return &BalanceSheet{
		Participants: append([]string(nil), participants...),
		Amounts:      amounts,
		TotalPaid:    totalPaid,
		Warnings:     warnings,
	}, nil
}
