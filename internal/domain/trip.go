// Package domain contains the core data types for the GlobeTrotter application.
// This package has zero external dependencies and is imported by every other
// internal package (repo, service, handler).
package domain

import "time"

// Trip is a user-owned travel plan. It is the top-level aggregate:
// itinerary stops and budget entries belong to a trip and are deleted with it.
type Trip struct {
	ID          int64
	UserID      int64
	Name        string
	Description *string
	StartDate   time.Time
	EndDate     time.Time
	CoverPhoto  *string
	IsPublic    bool
	// PublicURL is a random URL-safe token used for unauthenticated sharing.
	PublicURL string
	CreatedAt time.Time
}

// TripPatch carries a partial trip update. Only fields with Set=true are applied.
type TripPatch struct {
	Name        Optional[string]
	Description Optional[string]
	StartDate   Optional[time.Time]
	EndDate     Optional[time.Time]
	CoverPhoto  Optional[string]
	IsPublic    Optional[bool]
}

// SharedTrip is the read-only view served for a trip's public link.
type SharedTrip struct {
	Trip  Trip
	Stops []ItineraryStop
}
