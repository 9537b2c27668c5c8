package handler

import (
	"net/http"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// CreateStopRequest is the body of POST /api/itinerary/{trip_id}/stops.
type CreateStopRequest struct {
	CityID        int64     `json:"city_id" validate:"required,gt=0"`
	ArrivalDate   Timestamp `json:"arrival_date" validate:"required"`
	DepartureDate Timestamp `json:"departure_date" validate:"required"`
	Notes         *string   `json:"notes"`
}

// CreateStopActivityRequest is the body of
// POST /api/itinerary/stops/{stop_id}/activities.
type CreateStopActivityRequest struct {
	ActivityID    int64      `json:"activity_id" validate:"required,gt=0"`
	ScheduledTime *Timestamp `json:"scheduled_time"`
	Notes         *string    `json:"notes"`
}

// ItineraryStop is the wire form of a stop with its city and scheduled
// activities.
type ItineraryStop struct {
	ID            int64               `json:"id"`
	TripID        int64               `json:"trip_id"`
	CityID        int64               `json:"city_id"`
	ArrivalDate   Timestamp           `json:"arrival_date"`
	DepartureDate Timestamp           `json:"departure_date"`
	OrderIndex    int                 `json:"order_index"`
	Notes         *string             `json:"notes"`
	City          *City               `json:"city"`
	Activities    []ItineraryActivity `json:"activities"`
}

// ItineraryActivity is the wire form of an activity scheduled at a stop.
type ItineraryActivity struct {
	ID            int64      `json:"id"`
	StopID        int64      `json:"stop_id"`
	ActivityID    int64      `json:"activity_id"`
	ScheduledTime *Timestamp `json:"scheduled_time"`
	Notes         *string    `json:"notes"`
	Activity      *Activity  `json:"activity"`
}

// AddStop handles POST /api/itinerary/{tripID}/stops.
func (s *Server) AddStop(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	tripID, err := pathID(r, "tripID")
	if err != nil {
		requestError(w, err.Error())
		return
	}

	var req CreateStopRequest
	if err := s.decodeJSON(r, &req); err != nil {
		rejectBody(w, err)
		return
	}

	stop, err := s.Itinerary.AddStop(r.Context(), caller.ID, tripID, domain.ItineraryStop{
		CityID:        req.CityID,
		ArrivalDate:   req.ArrivalDate.Time,
		DepartureDate: req.DepartureDate.Time,
		Notes:         req.Notes,
	})
	if err != nil {
		s.fail(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusCreated, stopToResponse(stop))
}

// ListStops handles GET /api/itinerary/{tripID}/stops.
func (s *Server) ListStops(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	tripID, err := pathID(r, "tripID")
	if err != nil {
		requestError(w, err.Error())
		return
	}

	stops, err := s.Itinerary.ListStops(r.Context(), caller.ID, tripID)
	if err != nil {
		s.fail(w, r, err, "trip not found")
		return
	}
	writeJSON(w, http.StatusOK, stopsToResponse(stops))
}

// AddStopActivity handles POST /api/itinerary/stops/{stopID}/activities.
func (s *Server) AddStopActivity(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	stopID, err := pathID(r, "stopID")
	if err != nil {
		requestError(w, err.Error())
		return
	}

	var req CreateStopActivityRequest
	if err := s.decodeJSON(r, &req); err != nil {
		rejectBody(w, err)
		return
	}

	ia := domain.ItineraryActivity{ActivityID: req.ActivityID, Notes: req.Notes}
	if req.ScheduledTime != nil {
		at := req.ScheduledTime.Time
		ia.ScheduledTime = &at
	}

	created, err := s.Itinerary.AddActivity(r.Context(), caller.ID, stopID, ia)
	if err != nil {
		s.fail(w, r, err, "stop not found")
		return
	}
	writeJSON(w, http.StatusCreated, stopActivityToResponse(created))
}

// DeleteStop handles DELETE /api/itinerary/stops/{stopID}.
func (s *Server) DeleteStop(w http.ResponseWriter, r *http.Request) {
	caller, ok := s.caller(w, r)
	if !ok {
		return
	}
	stopID, err := pathID(r, "stopID")
	if err != nil {
		requestError(w, err.Error())
		return
	}

	if err := s.Itinerary.DeleteStop(r.Context(), caller.ID, stopID); err != nil {
		s.fail(w, r, err, "stop not found")
		return
	}
	writeJSON(w, http.StatusOK, MessageResponse{Message: "Stop deleted successfully"})
}

// --- mapping helpers --------------------------------------------------------

func stopToResponse(st domain.ItineraryStop) ItineraryStop {
	out := ItineraryStop{
		ID:            st.ID,
		TripID:        st.TripID,
		CityID:        st.CityID,
		ArrivalDate:   timestamp(st.ArrivalDate),
		DepartureDate: timestamp(st.DepartureDate),
		OrderIndex:    st.OrderIndex,
		Notes:         st.Notes,
		City:          optCity(st.City),
		Activities:    make([]ItineraryActivity, len(st.Activities)),
	}
	for i, a := range st.Activities {
		out.Activities[i] = stopActivityToResponse(a)
	}
	return out
}

func stopsToResponse(stops []domain.ItineraryStop) []ItineraryStop {
	out := make([]ItineraryStop, len(stops))
	for i, st := range stops {
		out[i] = stopToResponse(st)
	}
	return out
}

func stopActivityToResponse(a domain.ItineraryActivity) ItineraryActivity {
	return ItineraryActivity{
		ID:            a.ID,
		StopID:        a.StopID,
		ActivityID:    a.ActivityID,
		ScheduledTime: optTimestamp(a.ScheduledTime),
		Notes:         a.Notes,
		Activity:      optActivity(a.Activity),
	}
}
