package splitter

import (
	"log/slog"
	"math"
	"sort"
)

// party tracks one side's remaining credit or debt during matching.
// Debts are stored as positive amounts owed.
type party struct {
	name   string
	amount float64
}

// Match reduces a balance sheet to pairwise transfers using greedy
// largest-creditor/largest-debtor matching.
//
// Participants within Epsilon of zero are already settled and take no part.
// Creditors and debtors are each sorted descending by amount, ties keeping
// the sheet's participant order, then consumed from the front: each step
// transfers min(debt, credit) between the current largest pair and advances
// past anyone whose remainder drops within Epsilon. The lists only ever
// shrink from the front, so the single up-front sort stays valid.
//
// An empty result is not an error; it means every balance was already
// within Epsilon.
func Match(sheet *BalanceSheet) ([]Settlement, error) {
	if len(sheet.Participants) < 2 {
		return nil, ErrInsufficientParticipants
	}

	var sum float64
	var creditors, debtors []party
	for _, name := range sheet.Participants {
		balance := sheet.Amounts[name]
		sum += balance
		switch {
		case balance > Epsilon:
			creditors = append(creditors, party{name: name, amount: balance})
		case balance < -Epsilon:
			debtors = append(debtors, party{name: name, amount: -balance})
		}
	}

	// A drifting sum points at an upstream gap (e.g. excluded expenses of
	// removed payers). Proceed with the values as given; rebalancing here
	// would only hide the inconsistency.
	if math.Abs(sum) > 3*Epsilon {
		slog.Warn("balances do not sum to zero", "sum", sum)
	}

	sort.SliceStable(creditors, func(i, j int) bool { return creditors[i].amount > creditors[j].amount })
	sort.SliceStable(debtors, func(i, j int) bool { return debtors[i].amount > debtors[j].amount })

	var settlements []Settlement
	i, j := 0, 0
	for i < len(debtors) && j < len(creditors) {
		debtor, creditor := &debtors[i], &creditors[j]

		transfer := math.Min(debtor.amount, creditor.amount)
		if transfer > Epsilon {
			settlements = append(settlements, Settlement{
				From:   debtor.name,
				To:     creditor.name,
				Amount: transfer,
			})
		}

		debtor.amount -= transfer
		creditor.amount -= transfer

		if debtor.amount <= Epsilon {
			i++
		}
		if creditor.amount <= Epsilon {
			j++
		}
	}

	return settlements, nil
}

// Settle runs both steps against one snapshot of participants and expenses.
func Settle(participants []string, expenses []Expense) (*Result, error) {
	sheet, err := ComputeBalances(participants, expenses)
	if err != nil {
		return nil, err
	}

	settlements, err := Match(sheet)
	if err != nil {
		return nil, err
	}

	return &Result{
		TotalPaid:   sheet.TotalPaid,
		Balances:    sheet.Amounts,
		Settlements: settlements,
		Warnings:    sheet.Warnings,
	}, nil
}
