package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/repo"
)

// ItineraryService implements business logic for itinerary stops and the
// activities scheduled at them.
//
// Trip-scoped operations report a foreign trip as domain.ErrNotFound.
// Stop-scoped operations distinguish the two failures: a missing stop is
// domain.ErrNotFound, a stop on someone else's trip is domain.ErrForbidden.
type ItineraryService struct {
	trips     repo.TripRepo
	itinerary repo.ItineraryRepo
}

// NewItineraryService constructs an ItineraryService backed by the provided repos.
func NewItineraryService(trips repo.TripRepo, itinerary repo.ItineraryRepo) *ItineraryService {
	return &ItineraryService{trips: trips, itinerary: itinerary}
}

// AddStop appends a stop to a trip owned by userID. The stop's OrderIndex is
// its position in insertion order (0 for the first stop ever added).
func (s *ItineraryService) AddStop(ctx context.Context, userID, tripID int64, stop domain.ItineraryStop) (domain.ItineraryStop, error) {
	if _, err := s.trips.GetForUser(ctx, tripID, userID); err != nil {
		return domain.ItineraryStop{}, fmt.Errorf("service.ItineraryService.AddStop: %w", err)
	}
	if err := validateStop(stop); err != nil {
		return domain.ItineraryStop{}, err
	}

	stop.TripID = tripID
	created, err := s.itinerary.CreateStop(ctx, stop)
	if err != nil {
		return domain.ItineraryStop{}, fmt.Errorf("service.ItineraryService.AddStop: %w", err)
	}
	return created, nil
}

// ListStops returns the stops of a trip owned by userID ordered by
// OrderIndex, each with its City and scheduled Activities.
func (s *ItineraryService) ListStops(ctx context.Context, userID, tripID int64) ([]domain.ItineraryStop, error) {
	if _, err := s.trips.GetForUser(ctx, tripID, userID); err != nil {
		return nil, fmt.Errorf("service.ItineraryService.ListStops: %w", err)
	}
	stops, err := loadStops(ctx, s.itinerary, tripID)
	if err != nil {
		return nil, fmt.Errorf("service.ItineraryService.ListStops: %w", err)
	}
	return stops, nil
}

// AddActivity schedules a catalog activity at a stop on a trip owned by userID.
func (s *ItineraryService) AddActivity(ctx context.Context, userID, stopID int64, ia domain.ItineraryActivity) (domain.ItineraryActivity, error) {
	if err := s.authorizeStop(ctx, userID, stopID); err != nil {
		return domain.ItineraryActivity{}, fmt.Errorf("service.ItineraryService.AddActivity: %w", err)
	}
	if ia.ActivityID <= 0 {
		return domain.ItineraryActivity{}, fmt.Errorf("%w: activity_id is required", domain.ErrValidation)
	}

	ia.StopID = stopID
	created, err := s.itinerary.CreateActivity(ctx, ia)
	if err != nil {
		return domain.ItineraryActivity{}, fmt.Errorf("service.ItineraryService.AddActivity: %w", err)
	}
	return created, nil
}

// DeleteStop removes a stop on a trip owned by userID together with its
// scheduled activities. Remaining stops keep their OrderIndex.
func (s *ItineraryService) DeleteStop(ctx context.Context, userID, stopID int64) error {
	if err := s.authorizeStop(ctx, userID, stopID); err != nil {
		return fmt.Errorf("service.ItineraryService.DeleteStop: %w", err)
	}
	if err := s.itinerary.DeleteStop(ctx, stopID); err != nil {
		return fmt.Errorf("service.ItineraryService.DeleteStop: %w", err)
	}
	return nil
}

// authorizeStop returns domain.ErrNotFound if the stop does not exist and
// domain.ErrForbidden if its trip is not owned by userID.
func (s *ItineraryService) authorizeStop(ctx context.Context, userID, stopID int64) error {
	stop, err := s.itinerary.GetStop(ctx, stopID)
	if err != nil {
		return err
	}
	_, err = s.trips.GetForUser(ctx, stop.TripID, userID)
	if errors.Is(err, domain.ErrNotFound) {
		return domain.ErrForbidden
	}
	return err
}

// loadStops reads a trip's stops and attaches each stop's scheduled activities.
// Always returns non-nil slices.
func loadStops(ctx context.Context, itinerary repo.ItineraryRepo, tripID int64) ([]domain.ItineraryStop, error) {
	stops, err := itinerary.ListStops(ctx, tripID)
	if err != nil {
		return nil, err
	}
	if len(stops) == 0 {
		return []domain.ItineraryStop{}, nil
	}

	activities, err := itinerary.ListActivitiesByTrip(ctx, tripID)
	if err != nil {
		return nil, err
	}
	byStop := make(map[int64][]domain.ItineraryActivity, len(stops))
	for _, a := range activities {
		byStop[a.StopID] = append(byStop[a.StopID], a)
	}
	for i := range stops {
		stops[i].Activities = byStop[stops[i].ID]
		if stops[i].Activities == nil {
			stops[i].Activities = []domain.ItineraryActivity{}
		}
	}
	return stops, nil
}

// validateStop enforces that a city is referenced and that departure is not
// before arrival.
func validateStop(stop domain.ItineraryStop) error {
	if stop.CityID <= 0 {
		return fmt.Errorf("%w: city_id is required", domain.ErrValidation)
	}
	if stop.ArrivalDate.IsZero() || stop.DepartureDate.IsZero() {
		return fmt.Errorf("%w: arrival_date and departure_date are required", domain.ErrValidation)
	}
	if stop.DepartureDate.Before(stop.ArrivalDate) {
		return fmt.Errorf("%w: departure_date must not be before arrival_date", domain.ErrValidation)
	}
	return nil
}
