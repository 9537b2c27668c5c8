package repo_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/repo"
	"github.com/pkordes/globetrotter/backend/testutil"
)

// repos bundles every repo over one rolled-back transaction.
type repos struct {
	users      repo.UserRepo
	trips      repo.TripRepo
	cities     repo.CityRepo
	activities repo.ActivityRepo
	itinerary  repo.ItineraryRepo
	budgets    repo.BudgetRepo
}

func newRepos(t *testing.T) repos {
	t.Helper()
	tx := testutil.NewTx(t)
	return repos{
		users:      repo.NewUserRepo(tx),
		trips:      repo.NewTripRepo(tx),
		cities:     repo.NewCityRepo(tx),
		activities: repo.NewActivityRepo(tx),
		itinerary:  repo.NewItineraryRepo(tx),
		budgets:    repo.NewBudgetRepo(tx),
	}
}

var seq int

// mustUser inserts a user with a unique email and username.
func mustUser(t *testing.T, r repos) domain.User {
	t.Helper()
	seq++
	u, err := r.users.Create(context.Background(), domain.User{
		Email:          fmt.Sprintf("traveller%d-%d@example.com", seq, time.Now().UnixNano()),
		Username:       fmt.Sprintf("traveller%d-%d", seq, time.Now().UnixNano()),
		HashedPassword: "$2a$04$placeholder",
	})
	require.NoError(t, err)
	return u
}

func mustTrip(t *testing.T, r repos, userID int64) domain.Trip {
	t.Helper()
	seq++
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	trip, err := r.trips.Create(context.Background(), domain.Trip{
		UserID:    userID,
		Name:      "Grand Tour",
		StartDate: start,
		EndDate:   start.AddDate(0, 0, 14),
		PublicURL: fmt.Sprintf("share-%d-%d", seq, time.Now().UnixNano()),
	})
	require.NoError(t, err)
	return trip
}

func mustCity(t *testing.T, r repos, name, country string) domain.City {
	t.Helper()
	c, err := r.cities.Create(context.Background(), domain.City{
		Name: name, Country: country, CostIndex: domain.DefaultCostIndex,
	})
	require.NoError(t, err)
	return c
}

func mustActivity(t *testing.T, r repos, name, category string, cost float64) domain.Activity {
	t.Helper()
	a, err := r.activities.Create(context.Background(), domain.Activity{
		Name: name, Category: category, EstimatedCost: cost, DurationHours: domain.DefaultActivityDuration,
	})
	require.NoError(t, err)
	return a
}

func mustStop(t *testing.T, r repos, tripID, cityID int64) domain.ItineraryStop {
	t.Helper()
	arrive := time.Date(2025, 6, 2, 12, 0, 0, 0, time.UTC)
	s, err := r.itinerary.CreateStop(context.Background(), domain.ItineraryStop{
		TripID: tripID, CityID: cityID, ArrivalDate: arrive, DepartureDate: arrive.Add(48 * time.Hour),
	})
	require.NoError(t, err)
	return s
}

func ptr[T any](v T) *T { return &v }
