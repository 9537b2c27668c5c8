package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// ItineraryRepo defines the persistence operations for itinerary stops and
// the catalog activities scheduled at them.
type ItineraryRepo interface {
	// CreateStop appends a stop to its trip and returns it with City populated.
	// The order_index is taken from the trip's stop counter in the same
	// statement, so concurrent inserts never share a position.
	// Returns domain.ErrNotFound if the trip does not exist and
	// domain.ErrValidation if the city does not.
	CreateStop(ctx context.Context, stop domain.ItineraryStop) (domain.ItineraryStop, error)

	// GetStop retrieves a stop by ID without joins.
	GetStop(ctx context.Context, id int64) (domain.ItineraryStop, error)

	// ListStops returns a trip's stops with City populated, ordered by
	// order_index then id.
	ListStops(ctx context.Context, tripID int64) ([]domain.ItineraryStop, error)

	// DeleteStop removes a stop and, via cascade, its scheduled activities.
	DeleteStop(ctx context.Context, id int64) error

	// CreateActivity schedules a catalog activity at a stop.
	// Returns domain.ErrValidation if the activity does not exist.
	CreateActivity(ctx context.Context, ia domain.ItineraryActivity) (domain.ItineraryActivity, error)

	// ListActivitiesByTrip returns every scheduled activity across a trip's
	// stops with the catalog Activity populated, ordered by stop, time, id.
	ListActivitiesByTrip(ctx context.Context, tripID int64) ([]domain.ItineraryActivity, error)
}

type pgItineraryRepo struct {
	db db
}

// NewItineraryRepo constructs an ItineraryRepo backed by the provided db connection.
func NewItineraryRepo(db db) ItineraryRepo {
	return &pgItineraryRepo{db: db}
}

const stopColumns = `s.id, s.trip_id, s.city_id, s.arrival_date, s.departure_date, s.order_index, s.notes`

const stopWithCityColumns = stopColumns + `,
	c.id, c.name, c.country, c.region, c.cost_index, c.popularity, c.description, c.image_url`

func (r *pgItineraryRepo) CreateStop(ctx context.Context, stop domain.ItineraryStop) (domain.ItineraryStop, error) {
	// The UPDATE takes a row lock on the trip, serialising concurrent appends.
	const q = `
		WITH slot AS (
			UPDATE trips
			SET next_stop_index = next_stop_index + 1
			WHERE id = @trip_id
			RETURNING next_stop_index - 1 AS idx
		), s AS (
			INSERT INTO itinerary_stops (trip_id, city_id, arrival_date, departure_date, order_index, notes)
			SELECT @trip_id, @city_id, @arrival_date, @departure_date, slot.idx, @notes
			FROM slot
			RETURNING id, trip_id, city_id, arrival_date, departure_date, order_index, notes
		)
		SELECT ` + stopWithCityColumns + `
		FROM s
		JOIN cities c ON c.id = s.city_id`

	args := pgx.NamedArgs{
		"trip_id":        stop.TripID,
		"city_id":        stop.CityID,
		"arrival_date":   stop.ArrivalDate,
		"departure_date": stop.DepartureDate,
		"notes":          stop.Notes,
	}

	result, err := scanStopWithCity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.ItineraryStop{}, fmt.Errorf("repo.ItineraryRepo.CreateStop: %w", mapErr(err))
	}
	result.Activities = []domain.ItineraryActivity{}
	return result, nil
}

func (r *pgItineraryRepo) GetStop(ctx context.Context, id int64) (domain.ItineraryStop, error) {
	const q = `SELECT ` + stopColumns + ` FROM itinerary_stops s WHERE s.id = @id`

	result, err := scanStop(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.ItineraryStop{}, fmt.Errorf("repo.ItineraryRepo.GetStop: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgItineraryRepo) ListStops(ctx context.Context, tripID int64) ([]domain.ItineraryStop, error) {
	const q = `
		SELECT ` + stopWithCityColumns + `
		FROM itinerary_stops s
		JOIN cities c ON c.id = s.city_id
		WHERE s.trip_id = @trip_id
		ORDER BY s.order_index, s.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListStops: %w", err)
	}
	defer rows.Close()

	stops := []domain.ItineraryStop{}
	for rows.Next() {
		s, err := scanStopWithCity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.ItineraryRepo.ListStops: scan: %w", err)
		}
		stops = append(stops, s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListStops: rows: %w", err)
	}
	return stops, nil
}

func (r *pgItineraryRepo) DeleteStop(ctx context.Context, id int64) error {
	const q = `DELETE FROM itinerary_stops WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.ItineraryRepo.DeleteStop: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.ItineraryRepo.DeleteStop: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *pgItineraryRepo) CreateActivity(ctx context.Context, ia domain.ItineraryActivity) (domain.ItineraryActivity, error) {
	const q = `
		INSERT INTO itinerary_activities (stop_id, activity_id, scheduled_time, notes)
		VALUES (@stop_id, @activity_id, @scheduled_time, @notes)
		RETURNING id, stop_id, activity_id, scheduled_time, notes`

	args := pgx.NamedArgs{
		"stop_id":        ia.StopID,
		"activity_id":    ia.ActivityID,
		"scheduled_time": ia.ScheduledTime,
		"notes":          ia.Notes,
	}

	var out domain.ItineraryActivity
	err := r.db.QueryRow(ctx, q, args).Scan(&out.ID, &out.StopID, &out.ActivityID, &out.ScheduledTime, &out.Notes)
	if err != nil {
		return domain.ItineraryActivity{}, fmt.Errorf("repo.ItineraryRepo.CreateActivity: %w", mapErr(err))
	}
	return out, nil
}

func (r *pgItineraryRepo) ListActivitiesByTrip(ctx context.Context, tripID int64) ([]domain.ItineraryActivity, error) {
	const q = `
		SELECT ia.id, ia.stop_id, ia.activity_id, ia.scheduled_time, ia.notes,
		       a.id, a.name, a.category, a.description, a.estimated_cost, a.duration_hours, a.image_url
		FROM itinerary_activities ia
		JOIN itinerary_stops s ON s.id = ia.stop_id
		JOIN activities a ON a.id = ia.activity_id
		WHERE s.trip_id = @trip_id
		ORDER BY ia.stop_id, ia.scheduled_time NULLS LAST, ia.id`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"trip_id": tripID})
	if err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListActivitiesByTrip: %w", err)
	}
	defer rows.Close()

	out := []domain.ItineraryActivity{}
	for rows.Next() {
		var (
			ia domain.ItineraryActivity
			a  domain.Activity
		)
		err := rows.Scan(&ia.ID, &ia.StopID, &ia.ActivityID, &ia.ScheduledTime, &ia.Notes,
			&a.ID, &a.Name, &a.Category, &a.Description, &a.EstimatedCost, &a.DurationHours, &a.ImageURL)
		if err != nil {
			return nil, fmt.Errorf("repo.ItineraryRepo.ListActivitiesByTrip: scan: %w", err)
		}
		ia.Activity = &a
		out = append(out, ia)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.ItineraryRepo.ListActivitiesByTrip: rows: %w", err)
	}
	return out, nil
}

func scanStop(s scanner) (domain.ItineraryStop, error) {
	var st domain.ItineraryStop
	err := s.Scan(&st.ID, &st.TripID, &st.CityID, &st.ArrivalDate, &st.DepartureDate, &st.OrderIndex, &st.Notes)
	return st, err
}

func scanStopWithCity(s scanner) (domain.ItineraryStop, error) {
	var (
		st domain.ItineraryStop
		c  domain.City
	)
	err := s.Scan(&st.ID, &st.TripID, &st.CityID, &st.ArrivalDate, &st.DepartureDate, &st.OrderIndex, &st.Notes,
		&c.ID, &c.Name, &c.Country, &c.Region, &c.CostIndex, &c.Popularity, &c.Description, &c.ImageURL)
	if err != nil {
		return domain.ItineraryStop{}, err
	}
	st.City = &c
	return st, nil
}
