package splitter

import (
	"errors"
	"math"
	"testing"
)

func TestComputeBalances(t *testing.T) {
	tests := []struct {
		name         string
		participants []string
		expenses     []Expense
		wantErr      error
		validateFunc func(t *testing.T, sheet *BalanceSheet)
	}{
		{
			name:         "single payer split three ways",
			participants: []string{"Alice", "Bob", "Carol"},
			expenses: []Expense{
				{ID: 1, PaidBy: "Alice", Amount: 90.0, Description: "Hotel"},
			},
			validateFunc: func(t *testing.T, sheet *BalanceSheet) {
				// average share = 30
				if math.Abs(sheet.TotalPaid-90.0) > 1e-9 {
					t.Errorf("TotalPaid = %v, want 90.0", sheet.TotalPaid)
				}
				if math.Abs(sheet.Amounts["Alice"]-60.0) > 1e-9 {
					t.Errorf("Alice balance = %v, want 60.0", sheet.Amounts["Alice"])
				}
				if math.Abs(sheet.Amounts["Bob"]+30.0) > 1e-9 {
					t.Errorf("Bob balance = %v, want -30.0", sheet.Amounts["Bob"])
				}
				if math.Abs(sheet.Amounts["Carol"]+30.0) > 1e-9 {
					t.Errorf("Carol balance = %v, want -30.0", sheet.Amounts["Carol"])
				}
			},
		},
		{
			name:         "even payments cancel out",
			participants: []string{"A", "B"},
			expenses: []Expense{
				{ID: 1, PaidBy: "A", Amount: 50.0},
				{ID: 2, PaidBy: "B", Amount: 50.0},
			},
			validateFunc: func(t *testing.T, sheet *BalanceSheet) {
				if math.Abs(sheet.TotalPaid-100.0) > 1e-9 {
					t.Errorf("TotalPaid = %v, want 100.0", sheet.TotalPaid)
				}
				for name, balance := range sheet.Amounts {
					if math.Abs(balance) > 1e-9 {
						t.Errorf("%s balance = %v, want 0", name, balance)
					}
				}
			},
		},
		{
			name:         "no expenses gives zero balances",
			participants: []string{"A", "B"},
			expenses:     nil,
			validateFunc: func(t *testing.T, sheet *BalanceSheet) {
				if sheet.TotalPaid != 0 {
					t.Errorf("TotalPaid = %v, want 0", sheet.TotalPaid)
				}
				for name, balance := range sheet.Amounts {
					if balance != 0 {
						t.Errorf("%s balance = %v, want 0", name, balance)
					}
				}
			},
		},
		{
			name:         "dangling payer excluded with warning",
			participants: []string{"A", "B"},
			expenses: []Expense{
				{ID: 7, PaidBy: "C", Amount: 10.0, Description: "Taxi"},
			},
			validateFunc: func(t *testing.T, sheet *BalanceSheet) {
				if sheet.TotalPaid != 0 {
					t.Errorf("TotalPaid = %v, want 0 (dangling payment excluded)", sheet.TotalPaid)
				}
				if sheet.Amounts["A"] != 0 || sheet.Amounts["B"] != 0 {
					t.Errorf("balances = %v, want all zero", sheet.Amounts)
				}
				if len(sheet.Warnings) != 1 {
					t.Errorf("warnings = %v, want exactly one", sheet.Warnings)
				}
			},
		},
		{
			name:         "no participants should error",
			participants: []string{},
			expenses:     []Expense{{ID: 1, PaidBy: "A", Amount: 10.0}},
			wantErr:      ErrEmptyParticipants,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sheet, err := ComputeBalances(tt.participants, tt.expenses)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("ComputeBalances() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("ComputeBalances() error = %v", err)
			}
			if len(sheet.Amounts) != len(tt.participants) {
				t.Errorf("got %d balances, want %d", len(sheet.Amounts), len(tt.participants))
			}
			if tt.validateFunc != nil {
				tt.validateFunc(t, sheet)
			}
		})
	}
}

func TestComputeBalancesRejectsNonPositiveAmount(t *testing.T) {
	for _, amount := range []float64{0, -5.0} {
		_, err := ComputeBalances([]string{"A", "B"}, []Expense{
			{ID: 3, PaidBy: "A", Amount: amount},
		})
		var invalid *InvalidAmountError
		if !errors.As(err, &invalid) {
			t.Fatalf("amount %v: error = %v, want InvalidAmountError", amount, err)
		}
		if invalid.ExpenseID != 3 {
			t.Errorf("ExpenseID = %d, want 3", invalid.ExpenseID)
		}
	}
}

// Balances must sum to zero when every expense references a known participant.
func TestComputeBalancesConservation(t *testing.T) {
	participants := []string{"A", "B", "C", "D", "E"}
	expenses := []Expense{
		{ID: 1, PaidBy: "A", Amount: 12.34},
		{ID: 2, PaidBy: "B", Amount: 56.78},
		{ID: 3, PaidBy: "C", Amount: 0.99},
		{ID: 4, PaidBy: "A", Amount: 101.01},
		{ID: 5, PaidBy: "E", Amount: 7.77},
	}

	sheet, err := ComputeBalances(participants, expenses)
	if err != nil {
		t.Fatalf("ComputeBalances() error = %v", err)
	}

	var sum float64
	for _, balance := range sheet.Amounts {
		sum += balance
	}
	if math.Abs(sum) > 1e-9 {
		t.Errorf("balances sum to %v, want ~0", sum)
	}
}
