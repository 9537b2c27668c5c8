package domain

// Default values applied when an activity is created without them.
const (
	DefaultActivityCost     = 0.0
	DefaultActivityDuration = 1.0
)

// Activity is catalog data describing something to do at a destination.
// Category is a free-text tag such as "sightseeing", "food" or "adventure".
type Activity struct {
	ID            int64
	Name          string
	Category      string
	Description   *string
	EstimatedCost float64
	DurationHours float64
	ImageURL      *string
}

// ActivityFilter narrows an activity search.
// Query is a case-insensitive substring match on name, Category is an exact
// match, and MaxCost is an inclusive upper bound on EstimatedCost.
type ActivityFilter struct {
	Query    string
	Category string
	MaxCost  *float64
}
