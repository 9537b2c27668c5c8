package domain

// Known budget categories. Anything else is summed into the "other" bucket.
const (
	BudgetTransport  = "transport"
	BudgetStay       = "stay"
	BudgetActivities = "activities"
	BudgetMeals      = "meals"
	BudgetOther      = "other"
)

// Budget is a categorized monetary allocation against a trip.
type Budget struct {
	ID          int64
	TripID      int64
	Category    string
	Amount      float64
	Description *string
}

// BudgetSummary aggregates a trip's budget entries.
// Other sums every entry whose category is not exactly one of the four
// known labels (case-sensitive), including entries literally named "other".
type BudgetSummary struct {
	Total      float64
	Transport  float64
	Stay       float64
	Activities float64
	Meals      float64
	Other      float64
}

// Summarize folds entries into a BudgetSummary.
func Summarize(entries []Budget) BudgetSummary {
	var s BudgetSummary
	for _, b := range entries {
		s.Total += b.Amount
		switch b.Category {
		case BudgetTransport:
			s.Transport += b.Amount
		case BudgetStay:
			s.Stay += b.Amount
		case BudgetActivities:
			s.Activities += b.Amount
		case BudgetMeals:
			s.Meals += b.Amount
		default:
			s.Other += b.Amount
		}
	}
	return s
}
