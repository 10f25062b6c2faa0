package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"tripsplit/internal/splitter"
	"tripsplit/pkg/currency"
	"tripsplit/pkg/logging"
)

type snapshotInput struct {
	Participants []string `json:"participants"`
	Expenses     []struct {
		ID          int64   `json:"id"`
		PaidBy      string  `json:"paid_by"`
		Amount      float64 `json:"amount"`
		Description string  `json:"description"`
	} `json:"expenses"`
}

func settleCmd() *cobra.Command {
	var file string
	var code string

	cmd := &cobra.Command{
		Use:   "settle",
		Short: "Compute a settlement plan from a JSON snapshot",
		Long: `Reads a snapshot of the form
{"participants": ["Alice", "Bob"], "expenses": [{"id": 1, "paid_by": "Alice", "amount": 90, "description": "Hotel"}]}
from a file or stdin and prints who owes whom.`,
		RunE: func(*cobra.Command, []string) error {
			return runSettle(file, code)
		},
	}
	cmd.Flags().StringVarP(&file, "file", "f", "-", "snapshot JSON file (- for stdin)")
	cmd.Flags().StringVarP(&code, "currency", "c", "USD", "ISO 4217 currency code for display")
	return cmd
}

func runSettle(file, code string) error {
	logging.SetupWithLevel(slog.LevelWarn)

	var in io.Reader = os.Stdin
	if file != "-" {
		f, err := os.Open(file)
		if err != nil {
			return fmt.Errorf("failed to open snapshot: %w", err)
		}
		defer f.Close()
		in = f
	}

	var snap snapshotInput
	if err := json.NewDecoder(in).Decode(&snap); err != nil {
		return fmt.Errorf("failed to parse snapshot: %w", err)
	}

	expenses := make([]splitter.Expense, len(snap.Expenses))
	for i, exp := range snap.Expenses {
		expenses[i] = splitter.Expense{
			ID:          exp.ID,
			PaidBy:      exp.PaidBy,
			Amount:      exp.Amount,
			Description: exp.Description,
		}
	}

	result, err := splitter.Settle(snap.Participants, expenses)
	if err != nil {
		return err
	}

	for _, warning := range result.Warnings {
		fmt.Fprintln(os.Stderr, "warning:", warning)
	}

	fmt.Printf("Total expenses: %s\n", currency.Format(result.TotalPaid, code))
	if len(result.Settlements) == 0 {
		fmt.Println("Everyone is settled up.")
		return nil
	}
	for _, st := range result.Settlements {
		fmt.Printf("%s owes %s %s\n", st.From, st.To, currency.Format(st.Amount, code))
	}
	return nil
}
