package service

import (
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"tripsplit/internal/splitter"
	"tripsplit/pkg/currency"
)

type expensePayload struct {
	ID          int64   `json:"id"`
	PaidBy      string  `json:"paid_by"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

// settleRequest is the stateless calculation input: a full snapshot of
// participants and expenses, nothing read from or written to storage.
type settleRequest struct {
	Participants []string         `json:"participants"`
	Expenses     []expensePayload `json:"expenses"`
	Currency     string           `json:"currency,omitempty"`
}

type settleResponse struct {
	TotalPaid   float64               `json:"total_paid"`
	Settlements []splitter.Settlement `json:"settlements"`
	Warnings    []string              `json:"warnings,omitempty"`
	Formatted   []string              `json:"formatted,omitempty"`
}

func buildSettleResponse(result *splitter.Result, currencyCode string) settleResponse {
	resp := settleResponse{
		TotalPaid:   result.TotalPaid,
		Settlements: result.Settlements,
		Warnings:    result.Warnings,
	}
	if resp.Settlements == nil {
		resp.Settlements = []splitter.Settlement{}
	}
	if currencyCode != "" {
		for _, st := range resp.Settlements {
			resp.Formatted = append(resp.Formatted, fmt.Sprintf(
				"%s owes %s %s", st.From, st.To, currency.Format(st.Amount, currencyCode)))
		}
	}
	return resp
}

// tripSettlements computes the settlement plan for a stored trip from a
// fresh snapshot of its participants and expenses.
func (s *TripService) tripSettlements(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")

	snap, err := s.store.GetSnapshot(r.Context(), tripID)
	if err != nil {
		respondError(w, err)
		return
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
		slog.Error("Settle failed", "trip_id", tripID, "error", err)
		respondError(w, err)
		return
	}

	settlementRuns.Inc()
	danglingExpenses.Add(float64(len(result.Warnings)))
	slog.Info("Settlements computed",
		"trip_id", tripID,
		"total_paid", result.TotalPaid,
		"settlements", len(result.Settlements),
		"warnings", len(result.Warnings),
	)

	respondJSON(w, http.StatusOK, buildSettleResponse(result, snap.Currency))
}

// settleSnapshot runs the calculation on a caller-supplied snapshot without
// touching storage.
func (s *TripService) settleSnapshot(w http.ResponseWriter, r *http.Request) {
	var req settleRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	seen := make(map[string]bool, len(req.Participants))
	for _, name := range req.Participants {
		if strings.TrimSpace(name) == "" {
			respondError(w, invalidf("participant names must be non-empty"))
			return
		}
		if seen[name] {
			respondError(w, invalidf("duplicate participant name %q", name))
			return
		}
		seen[name] = true
	}

	expenses := make([]splitter.Expense, len(req.Expenses))
	for i, exp := range req.Expenses {
		expenses[i] = splitter.Expense{
			ID:          exp.ID,
			PaidBy:      exp.PaidBy,
			Amount:      exp.Amount,
			Description: exp.Description,
		}
	}

	result, err := splitter.Settle(req.Participants, expenses)
	if err != nil {
		respondError(w, err)
		return
	}

	settlementRuns.Inc()
	danglingExpenses.Add(float64(len(result.Warnings)))

	respondJSON(w, http.StatusOK, buildSettleResponse(result, strings.ToUpper(strings.TrimSpace(req.Currency))))
}
