package domain

// DefaultCostIndex is the baseline relative cost of a city.
const DefaultCostIndex = 100.0

// City is catalog data: globally shared and not owned by any user.
// CostIndex is relative to a baseline of 100.
type City struct {
	ID          int64
	Name        string
	Country     string
	Region      *string
	CostIndex   float64
	Popularity  int
	Description *string
	ImageURL    *string
}

// CityFilter narrows a city search. Both fields are case-insensitive
// substring matches; empty means no filter.
type CityFilter struct {
	Query   string
	Country string
}
