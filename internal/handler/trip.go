package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// CreateTripRequest is the body of POST /api/trips/.
type CreateTripRequest struct {
	Name        string    `json:"name" validate:"required,max=200"`
	Description *string   `json:"description"`
	StartDate   Timestamp `json:"start_date" validate:"required"`
	EndDate     Timestamp `json:"end_date" validate:"required"`
	CoverPhoto  *string   `json:"cover_photo"`
}

// Trip is the wire form of a trip.
type Trip struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	Name        string    `json:"name"`
	Description *string   `json:"description"`
	StartDate   Timestamp `json:"start_date"`
	EndDate     Timestamp `json:"end_date"`
	CoverPhoto  *string   `json:"cover_photo"`
	IsPublic    bool      `json:"is_public"`
	PublicURL   string    `json:"public_url"`
	CreatedAt   time.Time `json:"created_at"`
}

// SharedTrip is the body of GET /api/trips/public/{public_url}.
type SharedTrip struct {
	Trip
	Stops []ItineraryStop `json:"stops"`
}

// CreateTrip handles POST /api/trips/.
func (s *Server) CreateTrip(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}

	var req CreateTripRequest
	if err := s.decodeJSON(r, &req); err != nil {
		rejectBody(w, err)
		return
	}

	created, err := s.Trips.Create(r.Context(), caller.ID, domain.Trip{
		Name:        req.Name,
		Description: req.Description,
		StartDate:   req.StartDate.Time,
		EndDate:     req.EndDate.Time,
		CoverPhoto:  req.CoverPhoto,
	})
	if err != nil {
		s.fail(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, tripToResponse(created))
}

// ListTrips handles GET /api/trips/.
func (s *Server) ListTrips(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}

	trips, err := s.Trips.ListMine(r.Context(), caller.ID)
	if err != nil {
		s.fail(w, r, err, "trip not found")
		return
	}
	out := make([]Trip, len(trips))
	for i, t := range trips {
		out[i] = tripToResponse(t)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetTrip handles GET /api/trips/{id}.
func (s *Server) GetTrip(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		requestError(w, err.Error())
		return
	}

	trip, err := s.Trips.Get(r.Context(), caller.ID, id)
	if err != nil {
		s.fail(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(trip))
}

// UpdateTrip handles PUT /api/trips/{id}. The body is a partial update:
// absent keys are left alone and null clears nullable fields.
func (s *Server) UpdateTrip(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		requestError(w, err.Error())
		return
	}

	var raw map[string]json.RawMessage
	if err := readJSON(r, &raw); err != nil {
		rejectBody(w, err)
		return
	}
	patch, err := decodeTripPatch(raw)
	if err != nil {
		requestError(w, err.Error())
		return
	}

	updated, err := s.Trips.Update(r.Context(), caller.ID, id, patch)
	if err != nil {
		s.fail(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, tripToResponse(updated))
}

// DeleteTrip handles DELETE /api/trips/{id}.
func (s *Server) DeleteTrip(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	id, err := pathID(r, "id")
	if err != nil {
		requestError(w, err.Error())
		return
	}

	if err := s.Trips.Delete(r.Context(), caller.ID, id); err != nil {
		s.fail(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Trip deleted successfully"})
}

// GetSharedTrip handles GET /api/trips/public/{publicURL}. No authentication.
func (s *Server) GetSharedTrip(w http.ResponseWriter, r *http.Request) {
	var token string
	if err := bindPath(r, "publicURL", &token); err != nil {
		requestError(w, err.Error())
		return
	}

	shared, err := s.Trips.GetShared(r.Context(), token)
	if err != nil {
		s.fail(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, SharedTrip{
		Trip:  tripToResponse(shared.Trip),
		Stops: stopsToResponse(shared.Stops),
	})
}

// --- mapping helpers --------------------------------------------------------

// decodeTripPatch turns the raw update body into a domain.TripPatch,
// keeping absent, null and valued keys distinct.
func decodeTripPatch(raw map[string]json.RawMessage) (domain.TripPatch, error) {
	var p domain.TripPatch
	var err error
	if p.Name, err = optionalField[string](raw, "name"); err != nil {
		return p, err
	}
	if p.Description, err = optionalField[string](raw, "description"); err != nil {
		return p, err
	}
	if p.CoverPhoto, err = optionalField[string](raw, "cover_photo"); err != nil {
		return p, err
	}
	if p.IsPublic, err = optionalBool(raw, "is_public"); err != nil {
		return p, err
	}
	start, err := optionalField[Timestamp](raw, "start_date")
	if err != nil {
		return p, err
	}
	p.StartDate = timeField(start)
	end, err := optionalField[Timestamp](raw, "end_date")
	if err != nil {
		return p, err
	}
	p.EndDate = timeField(end)
	return p, nil
}

func optionalField[T any](raw map[string]json.RawMessage, key string) (domain.Optional[T], error) {
	msg, ok := raw[key]
	if !ok {
		return domain.Optional[T]{}, nil
	}
	if bytes.Equal(bytes.TrimSpace(msg), []byte("null")) {
		return domain.Null[T](), nil
	}
	var v T
	if err := json.Unmarshal(msg, &v); err != nil {
		return domain.Optional[T]{}, fmt.Errorf("invalid %s", key)
	}
	return domain.Some(v), nil
}

// optionalBool also accepts 0 and 1, which older clients send for is_public.
func optionalBool(raw map[string]json.RawMessage, key string) (domain.Optional[bool], error) {
	switch string(bytes.TrimSpace(raw[key])) {
	case "0":
		return domain.Some(false), nil
	case "1":
		return domain.Some(true), nil
	}
	return optionalField[bool](raw, key)
}

func timeField(o domain.Optional[Timestamp]) domain.Optional[time.Time] {
	if !o.Set || o.Value == nil {
		return domain.Optional[time.Time]{Set: o.Set}
	}
	return domain.Some(o.Value.Time)
}

func tripToResponse(t domain.Trip) Trip {
	return Trip{
		ID:          t.ID,
		UserID:      t.UserID,
		Name:        t.Name,
		Description: t.Description,
		StartDate:   timestamp(t.StartDate),
		EndDate:     timestamp(t.EndDate),
		CoverPhoto:  t.CoverPhoto,
		IsPublic:    t.IsPublic,
		PublicURL:   t.PublicURL,
		CreatedAt:   t.CreatedAt,
	}
}
