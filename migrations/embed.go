// Package migrations embeds the SQL migration files so they can be applied
// through the goose provider API at server start-up and in tests.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"fmt"

	"github.com/pressly/goose/v3"
)

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS

// Tables lists every table the migrations create, in creation order.
var Tables = []string{"users", "cities", "activities", "trips", "itinerary_stops", "itinerary_activities", "budgets"}

// NewProvider returns a goose provider for the embedded migrations.
func NewProvider(db *sql.DB) (*goose.Provider, error) {
	p, err := goose.NewProvider(goose.DialectPostgres, db, FS)
	if err != nil {
		return nil, fmt.Errorf("migrations.NewProvider: %w", err)
	}
	return p, nil
}

// Up applies all pending migrations and returns how many were applied.
func Up(ctx context.Context, db *sql.DB) (int, error) {
	p, err := NewProvider(db)
	if err != nil {
		return 0, err
	}
	results, err := p.Up(ctx)
	if err != nil {
		return 0, fmt.Errorf("migrations.Up: %w", err)
	}
	return len(results), nil
}
