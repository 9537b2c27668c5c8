package service_test

import (
	"context"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/repo"
)

// The mocks below are hand-written test doubles: each method forwards to a
// function field, so a test sets only the fields it exercises.

type mockTripRepo struct {
	create         func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	getForUser     func(ctx context.Context, id, userID int64) (domain.Trip, error)
	getByPublicURL func(ctx context.Context, publicURL string) (domain.Trip, error)
	listByUser     func(ctx context.Context, userID int64) ([]domain.Trip, error)
	update         func(ctx context.Context, trip domain.Trip) (domain.Trip, error)
	delete         func(ctx context.Context, id, userID int64) error
}

func (m *mockTripRepo) Create(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, trip)
}
func (m *mockTripRepo) GetForUser(ctx context.Context, id, userID int64) (domain.Trip, error) {
	return m.getForUser(ctx, id, userID)
}
func (m *mockTripRepo) GetByPublicURL(ctx context.Context, publicURL string) (domain.Trip, error) {
	return m.getByPublicURL(ctx, publicURL)
}
func (m *mockTripRepo) ListByUser(ctx context.Context, userID int64) ([]domain.Trip, error) {
	return m.listByUser(ctx, userID)
}
func (m *mockTripRepo) Update(ctx context.Context, trip domain.Trip) (domain.Trip, error) {
	return m.update(ctx, trip)
}
func (m *mockTripRepo) Delete(ctx context.Context, id, userID int64) error {
	return m.delete(ctx, id, userID)
}

var _ repo.TripRepo = (*mockTripRepo)(nil)

// ownedBy returns a getForUser func that finds only trips owned by owner.
func ownedBy(owner int64) func(context.Context, int64, int64) (domain.Trip, error) {
	return func(_ context.Context, id, userID int64) (domain.Trip, error) {
		if userID != owner {
			return domain.Trip{}, domain.ErrNotFound
		}
		return domain.Trip{ID: id, UserID: owner}, nil
	}
}

type mockItineraryRepo struct {
	createStop           func(ctx context.Context, stop domain.ItineraryStop) (domain.ItineraryStop, error)
	getStop              func(ctx context.Context, id int64) (domain.ItineraryStop, error)
	listStops            func(ctx context.Context, tripID int64) ([]domain.ItineraryStop, error)
	deleteStop           func(ctx context.Context, id int64) error
	createActivity       func(ctx context.Context, ia domain.ItineraryActivity) (domain.ItineraryActivity, error)
	listActivitiesByTrip func(ctx context.Context, tripID int64) ([]domain.ItineraryActivity, error)
}

func (m *mockItineraryRepo) CreateStop(ctx context.Context, stop domain.ItineraryStop) (domain.ItineraryStop, error) {
	return m.createStop(ctx, stop)
}
func (m *mockItineraryRepo) GetStop(ctx context.Context, id int64) (domain.ItineraryStop, error) {
	return m.getStop(ctx, id)
}
func (m *mockItineraryRepo) ListStops(ctx context.Context, tripID int64) ([]domain.ItineraryStop, error) {
	return m.listStops(ctx, tripID)
}
func (m *mockItineraryRepo) DeleteStop(ctx context.Context, id int64) error {
	return m.deleteStop(ctx, id)
}
func (m *mockItineraryRepo) CreateActivity(ctx context.Context, ia domain.ItineraryActivity) (domain.ItineraryActivity, error) {
	return m.createActivity(ctx, ia)
}
func (m *mockItineraryRepo) ListActivitiesByTrip(ctx context.Context, tripID int64) ([]domain.ItineraryActivity, error) {
	return m.listActivitiesByTrip(ctx, tripID)
}

var _ repo.ItineraryRepo = (*mockItineraryRepo)(nil)

type mockBudgetRepo struct {
	create     func(ctx context.Context, b domain.Budget) (domain.Budget, error)
	listByTrip func(ctx context.Context, tripID int64) ([]domain.Budget, error)
}

func (m *mockBudgetRepo) Create(ctx context.Context, b domain.Budget) (domain.Budget, error) {
	return m.create(ctx, b)
}
func (m *mockBudgetRepo) ListByTrip(ctx context.Context, tripID int64) ([]domain.Budget, error) {
	return m.listByTrip(ctx, tripID)
}

var _ repo.BudgetRepo = (*mockBudgetRepo)(nil)

type mockCityRepo struct {
	create  func(ctx context.Context, c domain.City) (domain.City, error)
	getByID func(ctx context.Context, id int64) (domain.City, error)
	search  func(ctx context.Context, f domain.CityFilter, limit int) ([]domain.City, error)
}

func (m *mockCityRepo) Create(ctx context.Context, c domain.City) (domain.City, error) {
	return m.create(ctx, c)
}
func (m *mockCityRepo) GetByID(ctx context.Context, id int64) (domain.City, error) {
	return m.getByID(ctx, id)
}
func (m *mockCityRepo) Search(ctx context.Context, f domain.CityFilter, limit int) ([]domain.City, error) {
	return m.search(ctx, f, limit)
}

var _ repo.CityRepo = (*mockCityRepo)(nil)

type mockActivityRepo struct {
	create  func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	getByID func(ctx context.Context, id int64) (domain.Activity, error)
	search  func(ctx context.Context, f domain.ActivityFilter, limit int) ([]domain.Activity, error)
}

func (m *mockActivityRepo) Create(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.create(ctx, a)
}
func (m *mockActivityRepo) GetByID(ctx context.Context, id int64) (domain.Activity, error) {
	return m.getByID(ctx, id)
}
func (m *mockActivityRepo) Search(ctx context.Context, f domain.ActivityFilter, limit int) ([]domain.Activity, error) {
	return m.search(ctx, f, limit)
}

var _ repo.ActivityRepo = (*mockActivityRepo)(nil)

type mockUserRepo struct {
	create        func(ctx context.Context, u domain.User) (domain.User, error)
	getByID       func(ctx context.Context, id int64) (domain.User, error)
	getByEmail    func(ctx context.Context, email string) (domain.User, error)
	getByLogin    func(ctx context.Context, login string) (domain.User, error)
	updateProfile func(ctx context.Context, id int64, fullName, photo *string) (domain.User, error)
}

func (m *mockUserRepo) Create(ctx context.Context, u domain.User) (domain.User, error) {
	return m.create(ctx, u)
}
func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (domain.User, error) {
	return m.getByID(ctx, id)
}
func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	return m.getByEmail(ctx, email)
}
func (m *mockUserRepo) GetByLogin(ctx context.Context, login string) (domain.User, error) {
	return m.getByLogin(ctx, login)
}
func (m *mockUserRepo) UpdateProfile(ctx context.Context, id int64, fullName, photo *string) (domain.User, error) {
	return m.updateProfile(ctx, id, fullName, photo)
}

var _ repo.UserRepo = (*mockUserRepo)(nil)

func ptr[T any](v T) *T { return &v }
