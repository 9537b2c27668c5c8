package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// ActivityRepo defines the persistence operations for the activity catalog.
type ActivityRepo interface {
	Create(ctx context.Context, activity domain.Activity) (domain.Activity, error)

	// GetByID returns domain.ErrNotFound if no activity has that ID.
	GetByID(ctx context.Context, id int64) (domain.Activity, error)

	// Search returns at most limit activities matching the filter, in storage order.
	Search(ctx context.Context, f domain.ActivityFilter, limit int) ([]domain.Activity, error)
}

type pgActivityRepo struct {
	db db
}

// NewActivityRepo constructs an ActivityRepo backed by the provided db connection.
func NewActivityRepo(db db) ActivityRepo {
	return &pgActivityRepo{db: db}
}

const activityColumns = `id, name, category, description, estimated_cost, duration_hours, image_url`

func (r *pgActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	const q = `
		INSERT INTO activities (name, category, description, estimated_cost, duration_hours, image_url)
		VALUES (@name, @category, @description, @estimated_cost, @duration_hours, @image_url)
		RETURNING ` + activityColumns

	args := pgx.NamedArgs{
		"name":           a.Name,
		"category":       a.Category,
		"description":    a.Description,
		"estimated_cost": a.EstimatedCost,
		"duration_hours": a.DurationHours,
		"image_url":      a.ImageURL,
	}

	result, err := scanActivity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.Create: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgActivityRepo) GetByID(ctx context.Context, id int64) (domain.Activity, error) {
	const q = `SELECT ` + activityColumns + ` FROM activities WHERE id = @id`

	result, err := scanActivity(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.Activity{}, fmt.Errorf("repo.ActivityRepo.GetByID: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgActivityRepo) Search(ctx context.Context, f domain.ActivityFilter, limit int) ([]domain.Activity, error) {
	const q = `
		SELECT ` + activityColumns + `
		FROM activities
		WHERE (@q = '' OR name ILIKE @q_pattern)
		  AND (@category = '' OR category = @category)
		  AND (@max_cost::double precision IS NULL OR estimated_cost <= @max_cost::double precision)
		LIMIT @limit`

	args := pgx.NamedArgs{
		"q":         f.Query,
		"q_pattern": containsPattern(f.Query),
		"category":  f.Category,
		"max_cost":  f.MaxCost, // nil becomes NULL, disabling the bound
		"limit":     limit,
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.Search: %w", err)
	}
	defer rows.Close()

	activities := []domain.Activity{}
	for rows.Next() {
		a, err := scanActivity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ActivityRepo.Search: scan: %w", err)
		}
		activities = append(activities, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ActivityRepo.Search: rows: %w", err)
	}
	return activities, nil
}

func scanActivity(s scanner) (domain.Activity, error) {
	var a domain.Activity
	err := s.Scan(&a.ID, &a.Name, &a.Category, &a.Description, &a.EstimatedCost, &a.DurationHours, &a.ImageURL)
	return a, err
}
