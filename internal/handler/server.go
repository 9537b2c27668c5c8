// Package handler implements the HTTP handlers for the GlobeTrotter API.
// All handlers are methods on Server. Methods are split into resource files
// (trip.go, itinerary.go, etc.) but share the same Server struct so they can
// reach its dependencies.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// The interfaces below are defined here, in the consumer package, so handler
// tests can inject mocks without touching the service or database layers.

// TripServicer defines the trip operations the handlers depend on.
type TripServicer interface {
	Create(ctx context.Context, userID int64, trip domain.Trip) (domain.Trip, error)
	ListMine(ctx context.Context, userID int64) ([]domain.Trip, error)
	Get(ctx context.Context, userID, tripID int64) (domain.Trip, error)
	Update(ctx context.Context, userID, tripID int64, patch domain.TripPatch) (domain.Trip, error)
	Delete(ctx context.Context, userID, tripID int64) error
	GetShared(ctx context.Context, publicURL string) (domain.SharedTrip, error)
}

// ItineraryServicer defines the itinerary operations the handlers depend on.
type ItineraryServicer interface {
	AddStop(ctx context.Context, userID, tripID int64, stop domain.ItineraryStop) (domain.ItineraryStop, error)
	ListStops(ctx context.Context, userID, tripID int64) ([]domain.ItineraryStop, error)
	AddActivity(ctx context.Context, userID, stopID int64, ia domain.ItineraryActivity) (domain.ItineraryActivity, error)
	DeleteStop(ctx context.Context, userID, stopID int64) error
}

// BudgetServicer defines the budget operations the handlers depend on.
type BudgetServicer interface {
	Add(ctx context.Context, userID, tripID int64, b domain.Budget) (domain.Budget, error)
	List(ctx context.Context, userID, tripID int64) ([]domain.Budget, error)
	Summarize(ctx context.Context, userID, tripID int64) (domain.BudgetSummary, error)
}

// CatalogServicer defines the city and activity operations the handlers depend on.
type CatalogServicer interface {
	CreateCity(ctx context.Context, c domain.City) (domain.City, error)
	SearchCities(ctx context.Context, f domain.CityFilter, limit *int) ([]domain.City, error)
	GetCity(ctx context.Context, id int64) (domain.City, error)
	CreateActivity(ctx context.Context, a domain.Activity) (domain.Activity, error)
	SearchActivities(ctx context.Context, f domain.ActivityFilter, limit *int) ([]domain.Activity, error)
	GetActivity(ctx context.Context, id int64) (domain.Activity, error)
}

// AuthServicer defines the registration and login operations.
type AuthServicer interface {
	Register(ctx context.Context, reg domain.Registration) (domain.User, error)
	Login(ctx context.Context, login, password string) (string, error)
}

// UserServicer defines the caller's own profile operations.
type UserServicer interface {
	GetSelf(ctx context.Context, caller domain.User) domain.User
	UpdateSelf(ctx context.Context, caller domain.User, upd domain.ProfileUpdate) (domain.User, error)
}

// Services bundles every service the Server dispatches to.
type Services struct {
	Trips     TripServicer
	Itinerary ItineraryServicer
	Budgets   BudgetServicer
	Catalog   CatalogServicer
	Auth      AuthServicer
	Users     UserServicer
}

// Guards are the route-group middlewares applied by Routes. Nil entries
// leave the group unguarded.
type Guards struct {
	// RequireAuth resolves the bearer token and must be set for the
	// authenticated routes to see a caller.
	RequireAuth func(http.Handler) http.Handler
	// CatalogWrite gates POST /api/cities/ and POST /api/activities/.
	CatalogWrite func(http.Handler) http.Handler
	// AuthLimit rate-limits /api/auth/*.
	AuthLimit func(http.Handler) http.Handler
}

// Server holds the dependencies shared by every handler.
type Server struct {
	Services
	validate *validator.Validate
	log      *slog.Logger
}

// NewServer constructs the Server with all its dependencies.
func NewServer(svcs Services, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{Services: svcs, validate: newValidator(), log: log}
}

// Routes returns the API router. A trailing slash is accepted on every
// route, including when the router is mounted under a parent.
func (s *Server) Routes(g Guards) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.StripSlashes)

	r.Get("/", s.GetRoot)
	r.Get("/healthz", s.GetHealth)
	r.Get("/openapi.yaml", s.GetOpenAPI)

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Use(orPass(g.AuthLimit))
			r.Post("/register", s.Register)
			r.Post("/login", s.Login)
		})

		r.Get("/trips/public/{publicURL}", s.GetSharedTrip)

		r.Route("/cities", func(r chi.Router) {
			r.Get("/", s.SearchCities)
			r.Get("/{id}", s.GetCity)
			r.With(orPass(g.CatalogWrite)).Post("/", s.CreateCity)
		})
		r.Route("/activities", func(r chi.Router) {
			r.Get("/", s.SearchActivities)
			r.Get("/{id}", s.GetActivity)
			r.With(orPass(g.CatalogWrite)).Post("/", s.CreateActivity)
		})

		r.Group(func(r chi.Router) {
			r.Use(orPass(g.RequireAuth))

			r.Route("/trips", func(r chi.Router) {
				r.Post("/", s.CreateTrip)
				r.Get("/", s.ListTrips)
				r.Get("/{id}", s.GetTrip)
				r.Put("/{id}", s.UpdateTrip)
				r.Delete("/{id}", s.DeleteTrip)
			})

			r.Route("/itinerary", func(r chi.Router) {
				r.Post("/{tripID}/stops", s.AddStop)
				r.Get("/{tripID}/stops", s.ListStops)
				r.Post("/stops/{stopID}/activities", s.AddStopActivity)
				r.Delete("/stops/{stopID}", s.DeleteStop)
			})

			r.Route("/budget/{tripID}", func(r chi.Router) {
				r.Post("/", s.AddBudget)
				r.Get("/", s.ListBudgets)
				r.Get("/summary", s.GetBudgetSummary)
			})

			r.Get("/users/me", s.GetMe)
			r.Put("/users/me", s.UpdateMe)
		})
	})

	return r
}

func orPass(mw func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if mw == nil {
		return func(next http.Handler) http.Handler { return next }
	}
	return mw
}
