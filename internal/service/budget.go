package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/repo"
)

// BudgetService implements business logic for budget entries. Every method
// requires the caller to own the trip; otherwise domain.ErrNotFound.
type BudgetService struct {
	trips   repo.TripRepo
	budgets repo.BudgetRepo
}

// NewBudgetService constructs a BudgetService backed by the provided repos.
func NewBudgetService(trips repo.TripRepo, budgets repo.BudgetRepo) *BudgetService {
	return &BudgetService{trips: trips, budgets: budgets}
}

// Add records a budget entry against a trip owned by userID.
func (s *BudgetService) Add(ctx context.Context, userID, tripID int64, b domain.Budget) (domain.Budget, error) {
	if _, err := s.trips.GetForUser(ctx, tripID, userID); err != nil {
		return domain.Budget{}, fmt.Errorf("service.BudgetService.Add: %w", err)
	}
	if strings.TrimSpace(b.Category) == "" {
		return domain.Budget{}, fmt.Errorf("%w: category is required", domain.ErrValidation)
	}

	b.TripID = tripID
	created, err := s.budgets.Create(ctx, b)
	if err != nil {
		return domain.Budget{}, fmt.Errorf("service.BudgetService.Add: %w", err)
	}
	return created, nil
}

// List returns a trip's budget entries. Always returns a non-nil slice.
func (s *BudgetService) List(ctx context.Context, userID, tripID int64) ([]domain.Budget, error) {
	if _, err := s.trips.GetForUser(ctx, tripID, userID); err != nil {
		return nil, fmt.Errorf("service.BudgetService.List: %w", err)
	}
	budgets, err := s.budgets.ListByTrip(ctx, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.BudgetService.List: %w", err)
	}
	if budgets == nil {
		return []domain.Budget{}, nil
	}
	return budgets, nil
}

// Summarize totals a trip's budget overall and per known category.
func (s *BudgetService) Summarize(ctx context.Context, userID, tripID int64) (domain.BudgetSummary, error) {
	budgets, err := s.List(ctx, userID, tripID)
	if err != nil {
		return domain.BudgetSummary{}, fmt.Errorf("service.BudgetService.Summarize: %w", err)
	}
	return domain.Summarize(budgets), nil
}
