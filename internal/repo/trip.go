package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// TripRepo defines the persistence operations for Trips.
// Reads and writes are scoped by owner so that a trip belonging to someone
// else is indistinguishable from one that does not exist.
type TripRepo interface {
	// Create inserts a new trip and returns the persisted record.
	Create(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// GetForUser retrieves a trip by ID if it is owned by userID.
	// Returns domain.ErrNotFound otherwise.
	GetForUser(ctx context.Context, id, userID int64) (domain.Trip, error)

	// GetByPublicURL retrieves a trip by its sharing token regardless of owner.
	// Returns domain.ErrNotFound if no trip carries that token.
	GetByPublicURL(ctx context.Context, publicURL string) (domain.Trip, error)

	// ListByUser returns all trips owned by userID in insertion order.
	ListByUser(ctx context.Context, userID int64) ([]domain.Trip, error)

	// Update overwrites the mutable fields of a trip owned by trip.UserID.
	// Returns domain.ErrNotFound if no such trip exists for that owner.
	Update(ctx context.Context, trip domain.Trip) (domain.Trip, error)

	// Delete removes a trip owned by userID. Stops, their activities and
	// budgets go with it via ON DELETE CASCADE.
	// Returns domain.ErrNotFound if no such trip exists for that owner.
	Delete(ctx context.Context, id, userID int64) error
}

// pgTripRepo is the Postgres implementation of TripRepo.
type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, user_id, name, description, start_date, end_date, cover_photo, is_public, public_url, created_at`

func (r *pgTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		INSERT INTO trips (user_id, name, description, start_date, end_date, cover_photo, is_public, public_url)
		VALUES (@user_id, @name, @description, @start_date, @end_date, @cover_photo, @is_public, @public_url)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"user_id":     trip.UserID,
		"name":        trip.Name,
		"description": trip.Description, // nil becomes NULL
		"start_date":  trip.StartDate,
		"end_date":    trip.EndDate,
		"cover_photo": trip.CoverPhoto,
		"is_public":   trip.IsPublic,
		"public_url":  trip.PublicURL,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Create: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgTripRepo) GetForUser(ctx context.Context, id, userID int64) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE id = @id AND user_id = @user_id`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetForUser: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgTripRepo) GetByPublicURL(ctx context.Context, publicURL string) (domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE public_url = @public_url`

	result, err := scanTrip(r.db.QueryRow(ctx, q, pgx.NamedArgs{"public_url": publicURL}))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.GetByPublicURL: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgTripRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Trip, error) {
	const q = `SELECT ` + tripColumns + ` FROM trips WHERE user_id = @user_id ORDER BY id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByUser: %w", err)
	}
	defer rows.Close()

	trips := []domain.Trip{}
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ListByUser: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListByUser: rows: %w", err)
	}
	return trips, nil
}

func (r *pgTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	const q = `
		UPDATE trips
		SET name        = @name,
		    description = @description,
		    start_date  = @start_date,
		    end_date    = @end_date,
		    cover_photo = @cover_photo,
		    is_public   = @is_public
		WHERE id = @id AND user_id = @user_id
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"id":          trip.ID,
		"user_id":     trip.UserID,
		"name":        trip.Name,
		"description": trip.Description,
		"start_date":  trip.StartDate,
		"end_date":    trip.EndDate,
		"cover_photo": trip.CoverPhoto,
		"is_public":   trip.IsPublic,
	}

	result, err := scanTrip(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.Trip{}, fmt.Errorf("repo.TripRepo.Update: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgTripRepo) Delete(ctx context.Context, id, userID int64) error {
	const q = `DELETE FROM trips WHERE id = @id AND user_id = @user_id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id, "user_id": userID})
	if err != nil {
		return fmt.Errorf("repo.TripRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.TripRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanTrip maps a single row selected with tripColumns into a domain.Trip.
func scanTrip(s scanner) (domain.Trip, error) {
	var (
		t         domain.Trip
		publicURL pgtype.Text
	)

	err := s.Scan(&t.ID, &t.UserID, &t.Name, &t.Description, &t.StartDate, &t.EndDate,
		&t.CoverPhoto, &t.IsPublic, &publicURL, &t.CreatedAt)
	if err != nil {
		return domain.Trip{}, err
	}
	t.PublicURL = publicURL.String
	return t, nil
}
