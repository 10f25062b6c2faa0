// Package service exposes trip management and settlement calculation over HTTP.
package service

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"tripsplit/internal/models"
	"tripsplit/internal/storage"
)

// TripService serves the JSON API backed by a storage.Store.
type TripService struct {
	store storage.Store
}

// NewTripService creates a new TripService with the given storage backend.
func NewTripService(store storage.Store) *TripService {
	return &TripService{store: store}
}

// RegisterRoutes mounts all API routes on the given router.
func (s *TripService) RegisterRoutes(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/settlements", s.settleSnapshot)
		r.Route("/trips", func(r chi.Router) {
			r.Post("/", s.createTrip)
			r.Get("/", s.listTrips)
			r.Route("/{tripID}", func(r chi.Router) {
				r.Get("/", s.getTrip)
				r.Delete("/", s.deleteTrip)
				r.Post("/clear", s.clearTrip)
				r.Put("/currency", s.setCurrency)
				r.Post("/participants", s.addParticipant)
				r.Delete("/participants/{name}", s.removeParticipant)
				r.Post("/expenses", s.addExpense)
				r.Delete("/expenses/{expenseID}", s.removeExpense)
				r.Get("/settlements", s.tripSettlements)
			})
		})
	})
}

// --- request/response payloads ---

type createTripRequest struct {
	Name     string `json:"name"`
	Currency string `json:"currency,omitempty"`
}

type tripResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Currency  string `json:"currency"`
	CreatedAt int64  `json:"created_at"`
}

type addParticipantRequest struct {
	Name string `json:"name"`
}

type addExpenseRequest struct {
	PaidBy      string  `json:"paid_by"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description,omitempty"`
}

type expenseResponse struct {
	ID          int64   `json:"id"`
	PaidBy      string  `json:"paid_by"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	CreatedAt   int64   `json:"created_at"`
}

type setCurrencyRequest struct {
	Currency string `json:"currency"`
}

type tripDetailResponse struct {
	tripResponse
	Participants []string          `json:"participants"`
	Expenses     []expenseResponse `json:"expenses"`
}

// --- helpers ---

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		if errors.Is(err, io.EOF) {
			return invalidf("request body required")
		}
		return invalidf("invalid JSON body: %v", err)
	}
	return nil
}

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			slog.Error("Failed to encode response", "error", err)
		}
	}
}

func respondError(w http.ResponseWriter, err error) {
	status := httpStatusFromError(err)
	if status == http.StatusInternalServerError {
		respondJSON(w, status, map[string]string{"error": "internal error"})
		return
	}
	respondJSON(w, status, map[string]string{"error": err.Error()})
}

func tripToResponse(trip *models.Trip) tripResponse {
	return tripResponse{
		ID:        trip.ID,
		Name:      trip.Name,
		Currency:  trip.Currency,
		CreatedAt: trip.CreatedAt,
	}
}

// --- trip handlers ---

func (s *TripService) createTrip(w http.ResponseWriter, r *http.Request) {
	var req createTripRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondError(w, invalidf("trip name required"))
		return
	}

	trip := &models.Trip{Name: name, Currency: strings.ToUpper(strings.TrimSpace(req.Currency))}
	if err := s.store.CreateTrip(r.Context(), trip); err != nil {
		slog.Error("CreateTrip failed", "error", err)
		respondError(w, err)
		return
	}

	slog.Info("Trip created", "trip_id", trip.ID, "name", trip.Name)
	respondJSON(w, http.StatusCreated, tripToResponse(trip))
}

func (s *TripService) listTrips(w http.ResponseWriter, r *http.Request) {
	trips, err := s.store.ListTrips(r.Context())
	if err != nil {
		slog.Error("ListTrips failed", "error", err)
		respondError(w, err)
		return
	}

	resp := make([]tripResponse, len(trips))
	for i, trip := range trips {
		resp[i] = tripToResponse(trip)
	}
	respondJSON(w, http.StatusOK, resp)
}

func (s *TripService) getTrip(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")

	trip, err := s.store.GetTrip(r.Context(), tripID)
	if err != nil {
		respondError(w, err)
		return
	}
	snap, err := s.store.GetSnapshot(r.Context(), tripID)
	if err != nil {
		respondError(w, err)
		return
	}

	expenses := make([]expenseResponse, len(snap.Expenses))
	for i, exp := range snap.Expenses {
		expenses[i] = expenseResponse{
			ID:          exp.ID,
			PaidBy:      exp.PaidBy,
			Amount:      exp.Amount,
			Description: exp.Description,
			CreatedAt:   exp.CreatedAt,
		}
	}
	participants := snap.Participants
	if participants == nil {
		participants = []string{}
	}

	respondJSON(w, http.StatusOK, tripDetailResponse{
		tripResponse: tripToResponse(trip),
		Participants: participants,
		Expenses:     expenses,
	})
}

func (s *TripService) deleteTrip(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")

	if err := s.store.DeleteTrip(r.Context(), tripID); err != nil {
		slog.Error("DeleteTrip failed", "trip_id", tripID, "error", err)
		respondError(w, err)
		return
	}

	slog.Info("Trip deleted", "trip_id", tripID)
	respondJSON(w, http.StatusNoContent, nil)
}

func (s *TripService) clearTrip(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")

	if err := s.store.ClearTrip(r.Context(), tripID); err != nil {
		slog.Error("ClearTrip failed", "trip_id", tripID, "error", err)
		respondError(w, err)
		return
	}

	slog.Info("Trip cleared", "trip_id", tripID)
	respondJSON(w, http.StatusNoContent, nil)
}

func (s *TripService) setCurrency(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")

	var req setCurrencyRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}
	code := strings.ToUpper(strings.TrimSpace(req.Currency))
	if code == "" {
		respondError(w, invalidf("currency code required"))
		return
	}

	if err := s.store.SetCurrency(r.Context(), tripID, code); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusNoContent, nil)
}

// --- participant handlers ---

func (s *TripService) addParticipant(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")

	var req addParticipantRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		respondError(w, invalidf("participant name required"))
		return
	}

	if err := s.store.AddParticipant(r.Context(), tripID, name); err != nil {
		respondError(w, err)
		return
	}

	slog.Info("Participant added", "trip_id", tripID, "name", name)
	respondJSON(w, http.StatusCreated, map[string]string{"name": name})
}

func (s *TripService) removeParticipant(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")
	name := chi.URLParam(r, "name")

	if err := s.store.RemoveParticipant(r.Context(), tripID, name); err != nil {
		respondError(w, err)
		return
	}

	slog.Info("Participant removed", "trip_id", tripID, "name", name)
	respondJSON(w, http.StatusNoContent, nil)
}

// --- expense handlers ---

func (s *TripService) addExpense(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")

	var req addExpenseRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, err)
		return
	}

	if req.Amount <= 0 {
		respondError(w, invalidf("expense amount must be greater than zero"))
		return
	}
	paidBy := strings.TrimSpace(req.PaidBy)
	if paidBy == "" {
		respondError(w, invalidf("paid_by required"))
		return
	}

	// Only current participants can be recorded as payers; dangling
	// references arise solely from later removals.
	participants, err := s.store.ListParticipants(r.Context(), tripID)
	if err != nil {
		respondError(w, err)
		return
	}
	known := false
	for _, p := range participants {
		if p == paidBy {
			known = true
			break
		}
	}
	if !known {
		respondError(w, invalidf("paid_by %q is not a participant of this trip", paidBy))
		return
	}

	description := strings.TrimSpace(req.Description)
	if description == "" {
		description = "Unnamed Expense"
	}

	expense := &models.Expense{
		TripID:      tripID,
		PaidBy:      paidBy,
		Amount:      req.Amount,
		Description: description,
	}
	if err := s.store.AddExpense(r.Context(), expense); err != nil {
		slog.Error("AddExpense failed", "trip_id", tripID, "error", err)
		respondError(w, err)
		return
	}

	slog.Info("Expense added", "trip_id", tripID, "expense_id", expense.ID, "amount", expense.Amount)
	respondJSON(w, http.StatusCreated, expenseResponse{
		ID:          expense.ID,
		PaidBy:      expense.PaidBy,
		Amount:      expense.Amount,
		Description: expense.Description,
		CreatedAt:   expense.CreatedAt,
	})
}

func (s *TripService) removeExpense(w http.ResponseWriter, r *http.Request) {
	tripID := chi.URLParam(r, "tripID")

	expenseID, err := strconv.ParseInt(chi.URLParam(r, "expenseID"), 10, 64)
	if err != nil {
		respondError(w, invalidf("invalid expense id"))
		return
	}

	if err := s.store.RemoveExpense(r.Context(), tripID, expenseID); err != nil {
		respondError(w, err)
		return
	}

	slog.Info("Expense removed", "trip_id", tripID, "expense_id", expenseID)
	respondJSON(w, http.StatusNoContent, nil)
}
