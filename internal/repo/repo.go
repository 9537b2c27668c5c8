// Package repo contains all database access logic for the GlobeTrotter API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here; only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Integration tests pass a transaction that is rolled back after each test.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// scanner is satisfied by both pgx.Row and pgx.Rows.
type scanner interface {
	Scan(dest ...any) error
}

// constraintMessages gives client-facing wording for the constraints a
// request can trip over. Names are the Postgres defaults from migrations/.
var constraintMessages = map[string]string{
	"users_email_key":                       "email already registered",
	"users_username_key":                    "username already taken",
	"trips_public_url_key":                  "public url already in use",
	"itinerary_stops_city_id_fkey":          "city_id does not reference an existing city",
	"itinerary_stops_trip_id_fkey":          "trip_id does not reference an existing trip",
	"itinerary_activities_activity_id_fkey": "activity_id does not reference an existing activity",
	"itinerary_activities_stop_id_fkey":     "stop_id does not reference an existing stop",
	"budgets_trip_id_fkey":                  "trip_id does not reference an existing trip",
}

// mapErr translates driver errors into domain sentinels:
// no rows → ErrNotFound, unique violation → ErrConflict,
// foreign-key violation → ErrValidation. Other errors pass through.
func mapErr(err error) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	msg, ok := constraintMessages[pgErr.ConstraintName]
	if !ok {
		msg = pgErr.ConstraintName
	}
	switch pgErr.Code {
	case "23505": // unique_violation
		return fmt.Errorf("%w: %s", domain.ErrConflict, msg)
	case "23503": // foreign_key_violation
		return fmt.Errorf("%w: %s", domain.ErrValidation, msg)
	}
	return err
}

// likeEscaper neutralises LIKE wildcards so user input is matched literally.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// containsPattern builds an ILIKE pattern matching s anywhere in the column.
func containsPattern(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}
