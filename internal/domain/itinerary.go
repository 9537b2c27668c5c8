package domain

import "time"

// ItineraryStop is a city visit within a trip.
// OrderIndex is assigned once at insertion and never renumbered, so gaps
// appear after deletions. City and Activities are populated on read paths
// that join them in; they are nil/empty otherwise.
type ItineraryStop struct {
	ID            int64
	TripID        int64
	CityID        int64
	ArrivalDate   time.Time
	DepartureDate time.Time
	OrderIndex    int
	Notes         *string

	City       *City
	Activities []ItineraryActivity
}

// ItineraryActivity schedules a catalog Activity at a stop.
// Activity is populated only when the read path joins the catalog row.
type ItineraryActivity struct {
	ID            int64
	StopID        int64
	ActivityID    int64
	ScheduledTime *time.Time
	Notes         *string

	Activity *Activity
}
