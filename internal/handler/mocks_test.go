package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/handler"
	"github.com/pkordes/globetrotter/backend/internal/middleware"
)

// Test doubles for the handler's consumer interfaces. Set only the function
// fields a test needs; calling an unset one panics, which fails the test.

type mockTrips struct {
	create    func(ctx context.Context, userID int64, trip domain.Trip) (domain.Trip, error)
	listMine  func(ctx context.Context, userID int64) ([]domain.Trip, error)
	get       func(ctx context.Context, userID, tripID int64) (domain.Trip, error)
	update    func(ctx context.Context, userID, tripID int64, patch domain.TripPatch) (domain.Trip, error)
	delete    func(ctx context.Context, userID, tripID int64) error
	getShared func(ctx context.Context, publicURL string) (domain.SharedTrip, error)
}

func (m *mockTrips) Create(ctx context.Context, userID int64, trip domain.Trip) (domain.Trip, error) {
	return m.create(ctx, userID, trip)
}
func (m *mockTrips) ListMine(ctx context.Context, userID int64) ([]domain.Trip, error) {
	return m.listMine(ctx, userID)
}
func (m *mockTrips) Get(ctx context.Context, userID, tripID int64) (domain.Trip, error) {
	return m.get(ctx, userID, tripID)
}
func (m *mockTrips) Update(ctx context.Context, userID, tripID int64, patch domain.TripPatch) (domain.Trip, error) {
	return m.update(ctx, userID, tripID, patch)
}
func (m *mockTrips) Delete(ctx context.Context, userID, tripID int64) error {
	return m.delete(ctx, userID, tripID)
}
func (m *mockTrips) GetShared(ctx context.Context, publicURL string) (domain.SharedTrip, error) {
	return m.getShared(ctx, publicURL)
}

var _ handler.TripServicer = (*mockTrips)(nil)

type mockItinerary struct {
	addStop     func(ctx context.Context, userID, tripID int64, stop domain.ItineraryStop) (domain.ItineraryStop, error)
	listStops   func(ctx context.Context, userID, tripID int64) ([]domain.ItineraryStop, error)
	addActivity func(ctx context.Context, userID, stopID int64, ia domain.ItineraryActivity) (domain.ItineraryActivity, error)
	deleteStop  func(ctx context.Context, userID, stopID int64) error
}

func (m *mockItinerary) AddStop(ctx context.Context, userID, tripID int64, stop domain.ItineraryStop) (domain.ItineraryStop, error) {
	return m.addStop(ctx, userID, tripID, stop)
}
func (m *mockItinerary) ListStops(ctx context.Context, userID, tripID int64) ([]domain.ItineraryStop, error) {
	return m.listStops(ctx, userID, tripID)
}
func (m *mockItinerary) AddActivity(ctx context.Context, userID, stopID int64, ia domain.ItineraryActivity) (domain.ItineraryActivity, error) {
	return m.addActivity(ctx, userID, stopID, ia)
}
func (m *mockItinerary) DeleteStop(ctx context.Context, userID, stopID int64) error {
	return m.deleteStop(ctx, userID, stopID)
}

var _ handler.ItineraryServicer = (*mockItinerary)(nil)

type mockBudgets struct {
	add       func(ctx context.Context, userID, tripID int64, b domain.Budget) (domain.Budget, error)
	list      func(ctx context.Context, userID, tripID int64) ([]domain.Budget, error)
	summarize func(ctx context.Context, userID, tripID int64) (domain.BudgetSummary, error)
}

func (m *mockBudgets) Add(ctx context.Context, userID, tripID int64, b domain.Budget) (domain.Budget, error) {
	return m.add(ctx, userID, tripID, b)
}
func (m *mockBudgets) List(ctx context.Context, userID, tripID int64) ([]domain.Budget, error) {
	return m.list(ctx, userID, tripID)
}
func (m *mockBudgets) Summarize(ctx context.Context, userID, tripID int64) (domain.BudgetSummary, error) {
	return m.summarize(ctx, userID, tripID)
}

var _ handler.BudgetServicer = (*mockBudgets)(nil)

type mockCatalog struct {
	createCity       func(ctx context.Context, c domain.City) (domain.City, error)
	searchCities     func(ctx context.Context, f domain.CityFilter, limit *int) ([]domain.City, error)
	getCity          func(ctx context.Context, id int64) (domain.City, error)
	createActivity   func(ctx context.Context, a domain.Activity) (domain.Activity, error)
	searchActivities func(ctx context.Context, f domain.ActivityFilter, limit *int) ([]domain.Activity, error)
	getActivity      func(ctx context.Context, id int64) (domain.Activity, error)
}

func (m *mockCatalog) CreateCity(ctx context.Context, c domain.City) (domain.City, error) {
	return m.createCity(ctx, c)
}
func (m *mockCatalog) SearchCities(ctx context.Context, f domain.CityFilter, limit *int) ([]domain.City, error) {
	return m.searchCities(ctx, f, limit)
}
func (m *mockCatalog) GetCity(ctx context.Context, id int64) (domain.City, error) {
	return m.getCity(ctx, id)
}
func (m *mockCatalog) CreateActivity(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	return m.createActivity(ctx, a)
}
func (m *mockCatalog) SearchActivities(ctx context.Context, f domain.ActivityFilter, limit *int) ([]domain.Activity, error) {
	return m.searchActivities(ctx, f, limit)
}
func (m *mockCatalog) GetActivity(ctx context.Context, id int64) (domain.Activity, error) {
	return m.getActivity(ctx, id)
}

var _ handler.CatalogServicer = (*mockCatalog)(nil)

type mockAuth struct {
	register func(ctx context.Context, reg domain.Registration) (domain.User, error)
	login    func(ctx context.Context, login, password string) (string, error)
}

func (m *mockAuth) Register(ctx context.Context, reg domain.Registration) (domain.User, error) {
	return m.register(ctx, reg)
}
func (m *mockAuth) Login(ctx context.Context, login, password string) (string, error) {
	return m.login(ctx, login, password)
}

var _ handler.AuthServicer = (*mockAuth)(nil)

type mockUsers struct {
	updateSelf func(ctx context.Context, caller domain.User, upd domain.ProfileUpdate) (domain.User, error)
}

func (m *mockUsers) GetSelf(_ context.Context, caller domain.User) domain.User { return caller }
func (m *mockUsers) UpdateSelf(ctx context.Context, caller domain.User, upd domain.ProfileUpdate) (domain.User, error) {
	return m.updateSelf(ctx, caller, upd)
}

var _ handler.UserServicer = (*mockUsers)(nil)

// ---- helpers ---------------------------------------------------------------

// testCaller is the user every authenticated test request runs as.
var testCaller = domain.User{ID: 1, Email: "alice@example.com", Username: "alice"}

// asCaller stands in for the bearer-token middleware: any request carrying
// an Authorization header runs as testCaller, anything else gets 401.
func asCaller(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") == "" {
			w.Header().Set("WWW-Authenticate", "Bearer")
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(middleware.WithUser(r.Context(), testCaller)))
	})
}

// newHTTPHandler wires a Server with the given mocks into its chi router,
// the same way main.go does in production.
func newHTTPHandler(svcs handler.Services) http.Handler {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return handler.NewServer(svcs, log).Routes(handler.Guards{RequireAuth: asCaller})
}

// do sends one request through h. Authenticated requests carry a dummy
// bearer token; body is JSON-encoded unless it is already a string.
func do(t *testing.T, h http.Handler, method, path string, body any, authed bool) *httptest.ResponseRecorder {
	t.Helper()
	var rdr io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		rdr = bytes.NewBufferString(b)
	default:
		raw, err := json.Marshal(b)
		require.NoError(t, err)
		rdr = bytes.NewBuffer(raw)
	}
	req := httptest.NewRequest(method, path, rdr)
	if rdr != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed {
		req.Header.Set("Authorization", "Bearer test")
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&v))
	return v
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	return decode[handler.ErrorResponse](t, rec).Error.Code
}
