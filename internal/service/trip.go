// Package service contains the business logic for the GlobeTrotter API.
// Services validate inputs, enforce ownership, and orchestrate repo calls.
// No SQL lives here; services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/repo"
)

// publicURLAttempts bounds retries when a freshly generated public URL
// collides with an existing one.
const publicURLAttempts = 3

// NewPublicURL returns a fresh sharing token: 16 random bytes, base64url
// encoded without padding (22 characters).
func NewPublicURL() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:])
}

// TripService implements business logic for Trip operations.
// Every method is scoped to the calling user; trips owned by anyone else
// are reported as domain.ErrNotFound.
type TripService struct {
	trips     repo.TripRepo
	itinerary repo.ItineraryRepo
	publicURL func() string
}

// NewTripService constructs a TripService backed by the provided repos.
func NewTripService(trips repo.TripRepo, itinerary repo.ItineraryRepo) *TripService {
	return &TripService{trips: trips, itinerary: itinerary, publicURL: NewPublicURL}
}

// Create validates and persists a new trip owned by userID with a fresh
// public URL. IsPublic always starts false.
func (s *TripService) Create(ctx context.Context, userID int64, trip domain.Trip) (domain.Trip, error) {
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}
	trip.UserID = userID
	trip.IsPublic = false

	var err error
	for range publicURLAttempts {
		trip.PublicURL = s.publicURL()
		var created domain.Trip
		created, err = s.trips.Create(ctx, trip)
		if err == nil {
			return created, nil
		}
		if !errors.Is(err, domain.ErrConflict) {
			break
		}
	}
	return domain.Trip{}, fmt.Errorf("service.TripService.Create: %w", err)
}

// ListMine returns the caller's trips. Always returns a non-nil slice.
func (s *TripService) ListMine(ctx context.Context, userID int64) ([]domain.Trip, error) {
	trips, err := s.trips.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.ListMine: %w", err)
	}
	if trips == nil {
		return []domain.Trip{}, nil
	}
	return trips, nil
}

// Get returns a trip owned by userID.
func (s *TripService) Get(ctx context.Context, userID, tripID int64) (domain.Trip, error) {
	trip, err := s.trips.GetForUser(ctx, tripID, userID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Get: %w", err)
	}
	return trip, nil
}

// Update applies the fields present in patch to a trip owned by userID.
// Absent fields keep their stored value. Explicit null clears nullable
// fields and is a validation error for required ones.
func (s *TripService) Update(ctx context.Context, userID, tripID int64, patch domain.TripPatch) (domain.Trip, error) {
	trip, err := s.trips.GetForUser(ctx, tripID, userID)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}

	if err := applyTripPatch(&trip, patch); err != nil {
		return domain.Trip{}, err
	}
	if err := validateTrip(trip); err != nil {
		return domain.Trip{}, err
	}

	updated, err := s.trips.Update(ctx, trip)
	if err != nil {
		return domain.Trip{}, fmt.Errorf("service.TripService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a trip owned by userID together with its stops, their
// scheduled activities, and its budget entries.
func (s *TripService) Delete(ctx context.Context, userID, tripID int64) error {
	if err := s.trips.Delete(ctx, tripID, userID); err != nil {
		return fmt.Errorf("service.TripService.Delete: %w", err)
	}
	return nil
}

// GetShared returns a trip and its stops by public URL, without
// authentication. Trips that are not marked public are reported as
// domain.ErrNotFound.
func (s *TripService) GetShared(ctx context.Context, publicURL string) (domain.SharedTrip, error) {
	trip, err := s.trips.GetByPublicURL(ctx, publicURL)
	if err != nil {
		return domain.SharedTrip{}, fmt.Errorf("service.TripService.GetShared: %w", err)
	}
	if !trip.IsPublic {
		return domain.SharedTrip{}, fmt.Errorf("service.TripService.GetShared: %w", domain.ErrNotFound)
	}

	stops, err := loadStops(ctx, s.itinerary, trip.ID)
	if err != nil {
		return domain.SharedTrip{}, fmt.Errorf("service.TripService.GetShared: %w", err)
	}
	return domain.SharedTrip{Trip: trip, Stops: stops}, nil
}

func applyTripPatch(trip *domain.Trip, p domain.TripPatch) error {
	required := []struct {
		field string
		null  bool
	}{
		{"name", p.Name.IsNull()},
		{"start_date", p.StartDate.IsNull()},
		{"end_date", p.EndDate.IsNull()},
		{"is_public", p.IsPublic.IsNull()},
	}
	for _, r := range required {
		if r.null {
			return fmt.Errorf("%w: %s cannot be null", domain.ErrValidation, r.field)
		}
	}

	if p.Name.Set {
		trip.Name = *p.Name.Value
	}
	if p.Description.Set {
		trip.Description = p.Description.Value
	}
	if p.StartDate.Set {
		trip.StartDate = *p.StartDate.Value
	}
	if p.EndDate.Set {
		trip.EndDate = *p.EndDate.Value
	}
	if p.CoverPhoto.Set {
		trip.CoverPhoto = p.CoverPhoto.Value
	}
	if p.IsPublic.Set {
		trip.IsPublic = *p.IsPublic.Value
	}
	return nil
}

// validateTrip enforces business rules common to both Create and Update.
//   - Name must be non-empty (whitespace-only names are rejected).
//   - StartDate and EndDate are required and EndDate must not be before StartDate.
func validateTrip(trip domain.Trip) error {
	if strings.TrimSpace(trip.Name) == "" {
		return fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if trip.StartDate.IsZero() || trip.EndDate.IsZero() {
		return fmt.Errorf("%w: start_date and end_date are required", domain.ErrValidation)
	}
	if trip.EndDate.Before(trip.StartDate) {
		return fmt.Errorf("%w: end_date must not be before start_date", domain.ErrValidation)
	}
	return nil
}
