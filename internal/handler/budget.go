package handler

import (
	"net/http"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// CreateBudgetRequest is the body of POST /api/budget/{trip_id}.
type CreateBudgetRequest struct {
	Category    string  `json:"category" validate:"required,max=50"`
	Amount      float64 `json:"amount"`
	Description *string `json:"description"`
}

// Budget is the wire form of a budget entry.
type Budget struct {
	ID          int64   `json:"id"`
	TripID      int64   `json:"trip_id"`
	Category    string  `json:"category"`
	Amount      float64 `json:"amount"`
	Description *string `json:"description"`
}

// BudgetSummary is the body of GET /api/budget/{trip_id}/summary.
type BudgetSummary struct {
	Total      float64 `json:"total"`
	Transport  float64 `json:"transport"`
	Stay       float64 `json:"stay"`
	Activities float64 `json:"activities"`
	Meals      float64 `json:"meals"`
	Other      float64 `json:"other"`
}

// AddBudget handles POST /api/budget/{tripID}.
func (s *Server) AddBudget(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	tripID, err := pathID(r, "tripID")
	if err != nil {
		requestError(w, err.Error())
		return
	}

	var req CreateBudgetRequest
	if err := s.decodeJSON(r, &req); err != nil {
		rejectBody(w, err)
		return
	}

	b, err := s.Budgets.Add(r.Context(), caller.ID, tripID, domain.Budget{
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		s.fail(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, budgetToResponse(b))
}

// ListBudgets handles GET /api/budget/{tripID}.
func (s *Server) ListBudgets(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	tripID, err := pathID(r, "tripID")
	if err != nil {
		requestError(w, err.Error())
		return
	}

	budgets, err := s.Budgets.List(r.Context(), caller.ID, tripID)
	if err != nil {
		s.fail(w, r, err, "trip not found")
		return
	}
	out := make([]Budget, len(budgets))
	for i, b := range budgets {
		out[i] = budgetToResponse(b)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetBudgetSummary handles GET /api/budget/{tripID}/summary.
func (s *Server) GetBudgetSummary(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	tripID, err := pathID(r, "tripID")
	if err != nil {
		requestError(w, err.Error())
		return
	}

	sum, err := s.Budgets.Summarize(r.Context(), caller.ID, tripID)
	if err != nil {
		s.fail(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, BudgetSummary(sum))
}

func budgetToResponse(b domain.Budget) Budget {
	return Budget{
		ID:          b.ID,
		TripID:      b.TripID,
		Category:    b.Category,
		Amount:      b.Amount,
		Description: b.Description,
	}
}
