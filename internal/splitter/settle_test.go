package splitter

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func sheetFor(participants []string, amounts map[string]float64) *BalanceSheet {
	return &BalanceSheet{Participants: participants, Amounts: amounts}
}

func TestMatch(t *testing.T) {
	tests := []struct {
		name    string
		sheet   *BalanceSheet
		want    []Settlement
		wantErr error
	}{
		{
			name: "one creditor two debtors",
			sheet: sheetFor([]string{"Alice", "Bob", "Carol"}, map[string]float64{
				"Alice": 60.0, "Bob": -30.0, "Carol": -30.0,
			}),
			want: []Settlement{
				{From: "Bob", To: "Alice", Amount: 30.0},
				{From: "Carol", To: "Alice", Amount: 30.0},
			},
		},
		{
			name: "three equal debtors pay one payer",
			sheet: sheetFor([]string{"A", "B", "C", "D"}, map[string]float64{
				"A": 75.0, "B": -25.0, "C": -25.0, "D": -25.0,
			}),
			want: []Settlement{
				{From: "B", To: "A", Amount: 25.0},
				{From: "C", To: "A", Amount: 25.0},
				{From: "D", To: "A", Amount: 25.0},
			},
		},
		{
			name: "already even means no settlements",
			sheet: sheetFor([]string{"A", "B"}, map[string]float64{
				"A": 0.0, "B": 0.0,
			}),
			want: nil,
		},
		{
			name: "balances within epsilon are settled",
			sheet: sheetFor([]string{"A", "B"}, map[string]float64{
				"A": 0.009, "B": -0.009,
			}),
			want: nil,
		},
		{
			name: "debt larger than biggest credit splits across creditors",
			sheet: sheetFor([]string{"A", "B", "C"}, map[string]float64{
				"A": 40.0, "B": 20.0, "C": -60.0,
			}),
			want: []Settlement{
				{From: "C", To: "A", Amount: 40.0},
				{From: "C", To: "B", Amount: 20.0},
			},
		},
		{
			name: "ties broken by participant order",
			sheet: sheetFor([]string{"D", "C", "B", "A"}, map[string]float64{
				"D": -10.0, "C": -10.0, "B": 10.0, "A": 10.0,
			}),
			want: []Settlement{
				{From: "D", To: "B", Amount: 10.0},
				{From: "C", To: "A", Amount: 10.0},
			},
		},
		{
			name:    "single participant cannot settle",
			sheet:   sheetFor([]string{"A"}, map[string]float64{"A": 0.0}),
			wantErr: ErrInsufficientParticipants,
		},
		{
			name:    "empty sheet cannot settle",
			sheet:   sheetFor(nil, nil),
			wantErr: ErrInsufficientParticipants,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Match(tt.sheet)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Match() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Match() error = %v", err)
			}
			if len(got) != len(tt.want) {
				t.Fatalf("Match() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i].From != tt.want[i].From || got[i].To != tt.want[i].To {
					t.Errorf("settlement %d = %s->%s, want %s->%s",
						i, got[i].From, got[i].To, tt.want[i].From, tt.want[i].To)
				}
				if math.Abs(got[i].Amount-tt.want[i].Amount) > Epsilon {
					t.Errorf("settlement %d amount = %v, want %v", i, got[i].Amount, tt.want[i].Amount)
				}
			}
		})
	}
}

// Replaying the settlements against the starting balances must bring every
// participant within Epsilon of zero.
func TestMatchResolvesAllBalances(t *testing.T) {
	participants := []string{"A", "B", "C", "D", "E", "F"}
	amounts := map[string]float64{
		"A": 123.45, "B": -67.89, "C": -55.56, "D": 10.10, "E": -5.05, "F": -5.05,
	}

	settlements, err := Match(sheetFor(participants, amounts))
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}

	// Upper bound for the greedy algorithm: creditors + debtors - 1.
	if len(settlements) > 5 {
		t.Errorf("got %d settlements, want at most 5", len(settlements))
	}

	remaining := make(map[string]float64, len(amounts))
	for name, balance := range amounts {
		remaining[name] = balance
	}
	for _, s := range settlements {
		if s.Amount <= Epsilon {
			t.Errorf("settlement %s->%s amount %v not above epsilon", s.From, s.To, s.Amount)
		}
		remaining[s.From] += s.Amount
		remaining[s.To] -= s.Amount
	}
	for name, balance := range remaining {
		if math.Abs(balance) > Epsilon {
			t.Errorf("%s left with residual balance %v", name, balance)
		}
	}
}

func TestMatchIsDeterministic(t *testing.T) {
	participants := []string{"P1", "P2", "P3", "P4", "P5"}
	amounts := map[string]float64{
		"P1": 20.0, "P2": 20.0, "P3": -15.0, "P4": -15.0, "P5": -10.0,
	}

	first, err := Match(sheetFor(participants, amounts))
	if err != nil {
		t.Fatalf("Match() error = %v", err)
	}
	for range 10 {
		again, err := Match(sheetFor(participants, amounts))
		if err != nil {
			t.Fatalf("Match() error = %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Match() not deterministic: %v vs %v", first, again)
		}
	}
}

func TestSettle(t *testing.T) {
	t.Run("end to end", func(t *testing.T) {
		result, err := Settle(
			[]string{"Alice", "Bob", "Carol"},
			[]Expense{{ID: 1, PaidBy: "Alice", Amount: 90.0, Description: "Hotel"}},
		)
		if err != nil {
			t.Fatalf("Settle() error = %v", err)
		}
		if math.Abs(result.TotalPaid-90.0) > 1e-9 {
			t.Errorf("TotalPaid = %v, want 90.0", result.TotalPaid)
		}
		want := []Settlement{
			{From: "Bob", To: "Alice", Amount: 30.0},
			{From: "Carol", To: "Alice", Amount: 30.0},
		}
		if !reflect.DeepEqual(result.Settlements, want) {
			t.Errorf("Settlements = %v, want %v", result.Settlements, want)
		}
	})

	t.Run("even split needs no settlements but reports total", func(t *testing.T) {
		result, err := Settle(
			[]string{"A", "B"},
			[]Expense{
				{ID: 1, PaidBy: "A", Amount: 50.0},
				{ID: 2, PaidBy: "B", Amount: 50.0},
			},
		)
		if err != nil {
			t.Fatalf("Settle() error = %v", err)
		}
		if len(result.Settlements) != 0 {
			t.Errorf("Settlements = %v, want none", result.Settlements)
		}
		if math.Abs(result.TotalPaid-100.0) > 1e-9 {
			t.Errorf("TotalPaid = %v, want 100.0", result.TotalPaid)
		}
	})

	t.Run("propagates insufficient participants", func(t *testing.T) {
		_, err := Settle([]string{"Solo"}, nil)
		if !errors.Is(err, ErrInsufficientParticipants) {
			t.Fatalf("Settle() error = %v, want ErrInsufficientParticipants", err)
		}
	})
}
