// Package main is the entry point for the GlobeTrotter API server.
// Its sole responsibility is wiring dependencies together and starting the server.
// No business logic belongs here.
package main

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" database/sql driver for goose
	"github.com/joho/godotenv"

	"github.com/pkordes/globetrotter/backend/internal/auth"
	"github.com/pkordes/globetrotter/backend/internal/config"
	"github.com/pkordes/globetrotter/backend/internal/handler"
	"github.com/pkordes/globetrotter/backend/internal/middleware"
	"github.com/pkordes/globetrotter/backend/internal/repo"
	"github.com/pkordes/globetrotter/backend/internal/service"
	"github.com/pkordes/globetrotter/backend/migrations"
)

func main() {
	// --- Config -----------------------------------------------------------
	// A .env file is optional; real environment variables win over it.
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		slog.Error("failed to read .env", "error", err)
		os.Exit(1)
	}
	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	// --- Logger -----------------------------------------------------------
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database ---------------------------------------------------------
	if cfg.AutoMigrate {
		if err := migrate(ctx, cfg.DatabaseURL); err != nil {
			slog.Error("failed to apply migrations", "error", err)
			os.Exit(1)
		}
	}

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Error("failed to create database pool", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	slog.Info("database connection established")

	// --- Services ---------------------------------------------------------
	tokens, err := auth.NewTokenService(cfg.JWTSecret, cfg.AccessTokenTTL)
	if err != nil {
		slog.Error("failed to configure tokens", "error", err)
		os.Exit(1)
	}

	trips := repo.NewTripRepo(pool)
	itinerary := repo.NewItineraryRepo(pool)
	users := repo.NewUserRepo(pool)

	authSvc := service.NewAuthService(users, tokens, auth.NewPasswordService())
	srv := handler.NewServer(handler.Services{
		Trips:     service.NewTripService(trips, itinerary),
		Itinerary: service.NewItineraryService(trips, itinerary),
		Budgets:   service.NewBudgetService(trips, repo.NewBudgetRepo(pool)),
		Catalog:   service.NewCatalogService(repo.NewCityRepo(pool), repo.NewActivityRepo(pool)),
		Auth:      authSvc,
		Users:     service.NewUserService(users),
	}, logger)

	limiter := middleware.NewIPRateLimiter(cfg.LoginRatePerMinute)
	go sweep(ctx, limiter)

	// --- Router -----------------------------------------------------------
	// RequestID → RealIP → Logger → Recoverer → CORS → body cap, then the API.
	r := chi.NewRouter()
	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.NewSlogLogger(logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.NewCORSHandler(cfg.CORSOrigins))
	r.Use(middleware.NewMaxBodySizeHandler(cfg.MaxBodyBytes))

	r.Mount("/", srv.Routes(handler.Guards{
		RequireAuth:  middleware.NewAuthHandler(authSvc, logger),
		CatalogWrite: middleware.NewCatalogKeyHandler(cfg.CatalogWriteKey),
		AuthLimit:    limiter.Handler,
	}))

	// --- HTTP Server ------------------------------------------------------
	httpSrv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", httpSrv.Addr)
		if err := httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down server")

	// In-flight requests get 15 seconds to finish.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := httpSrv.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
		os.Exit(1)
	}
	slog.Info("server stopped")
}

// migrate applies pending goose migrations over a short-lived database/sql
// handle; goose does not speak pgxpool.
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return err
	}
	defer db.Close()

	n, err := migrations.Up(ctx, db)
	if err != nil {
		return err
	}
	slog.Info("migrations applied", "count", n)
	return nil
}

// sweep drops idle rate-limiter buckets once a minute until ctx ends.
func sweep(ctx context.Context, l *middleware.IPRateLimiter) {
	t := time.NewTicker(time.Minute)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-t.C:
			l.Sweep()
		}
	}
}
