package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// BudgetRepo defines the persistence operations for budget entries.
// Ownership of the parent trip is checked by the service layer.
type BudgetRepo interface {
	Create(ctx context.Context, b domain.Budget) (domain.Budget, error)

	// ListByTrip returns a trip's entries in insertion order.
	ListByTrip(ctx context.Context, tripID int64) ([]domain.Budget, error)
}

type pgBudgetRepo struct {
	db db
}

// NewBudgetRepo constructs a BudgetRepo backed by the provided db connection.
func NewBudgetRepo(db db) BudgetRepo {
	return &pgBudgetRepo{db: db}
}

func (r *pgBudgetRepo) Create(ctx context.Context, b domain.Budget) (domain.Budget, error) {
	const q = `
		INSERT INTO budgets (trip_id, category, amount, description)
		VALUES (@trip_id, @category, @amount, @description)
		RETURNING id, trip_id, category, amount, description`

	args := pgx.NamedArgs{
		"trip_id":     b.TripID,
		"category":    b.Category,
		"amount":      b.Amount,
		"description": b.Description,
	}

	result, err := scanBudget(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Budget{}, fmt.Errorf("repo.BudgetRepo.Create: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgBudgetRepo) ListByTrip(ctx context.Context, tripID int64) ([]domain.Budget, error) {
	const q = `
		SELECT id, trip_id, category, amount, description
		FROM budgets
		WHERE trip_id = @trip_id
		ORDER BY id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.BudgetRepo.ListByTrip: %w", err)
	}
	defer rows.Close()

	budgets := []domain.Budget{}
	for rows.Next() {
		b, err := scanBudget(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.BudgetRepo.ListByTrip: scan: %w", err)
		}
		budgets = append(budgets, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.BudgetRepo.ListByTrip: rows: %w", err)
	}
	return budgets, nil
}

func scanBudget(s scanner) (domain.Budget, error) {
	var b domain.Budget
	err := s.Scan(&b.ID, &b.TripID, &b.Category, &b.Amount, &b.Description)
	return b, err
}
