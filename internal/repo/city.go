package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// CityRepo defines the persistence operations for the city catalog.
type CityRepo interface {
	Create(ctx context.Context, city domain.City) (domain.City, error)

	// GetByID returns domain.ErrNotFound if no city has that ID.
	GetByID(ctx context.Context, id int64) (domain.City, error)

	// Search returns at most limit cities whose name and country contain the
	// filter values, case-insensitively. Rows come back in storage order.
	Search(ctx context.Context, f domain.CityFilter, limit int) ([]domain.City, error)
}

type pgCityRepo struct {
	db db
}

// NewCityRepo constructs a CityRepo backed by the provided db connection.
func NewCityRepo(db db) CityRepo {
	return &pgCityRepo{db: db}
}

const cityColumns = `id, name, country, region, cost_index, popularity, description, image_url`

func (r *pgCityRepo) Create(ctx context.Context, city domain.City) (domain.City, error) {
	const q = `
		INSERT INTO cities (name, country, region, cost_index, popularity, description, image_url)
		VALUES (@name, @country, @region, @cost_index, @popularity, @description, @image_url)
		RETURNING ` + cityColumns

	args := pgx.NamedArgs{
		"name":        city.Name,
		"country":     city.Country,
		"region":      city.Region,
		"cost_index":  city.CostIndex,
		"popularity":  city.Popularity,
		"description": city.Description,
		"image_url":   city.ImageURL,
	}

	result, err := scanCity(r.db.QueryRow(ctx, q, args))
	if err != nil {
		return domain.City{}, fmt.Errorf("repo.CityRepo.Create: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgCityRepo) GetByID(ctx context.Context, id int64) (domain.City, error) {
	const q = `SELECT ` + cityColumns + ` FROM cities WHERE id = @id`

	result, err := scanCity(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.City{}, fmt.Errorf("repo.CityRepo.GetByID: %w", mapErr(err))
	}
	return result, nil
}

func (r *pgCityRepo) Search(ctx context.Context, f domain.CityFilter, limit int) ([]domain.City, error) {
	const q = `
		SELECT ` + cityColumns + `
		FROM cities
		WHERE (@q = '' OR name ILIKE @q_pattern)
		  AND (@country = '' OR country ILIKE @country_pattern)
		LIMIT @limit`

	args := pgx.NamedArgs{
		"q":               f.Query,
		"q_pattern":       containsPattern(f.Query),
		"country":         f.Country,
		"country_pattern": containsPattern(f.Country),
		"limit":           limit,
	}

	rows, err := r.db.Query(ctx, q, args)
	if err != nil {
		return nil, fmt.Errorf("repo.CityRepo.Search: %w", err)
	}
	defer rows.Close()

	cities := []domain.City{}
	for rows.Next() {
		c, err := scanCity(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.CityRepo.Search: scan: %w", err)
		}
		cities = append(cities, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.CityRepo.Search: rows: %w", err)
	}
	return cities, nil
}

func scanCity(s scanner) (domain.City, error) {
	var c domain.City
	err := s.Scan(&c.ID, &c.Name, &c.Country, &c.Region, &c.CostIndex, &c.Popularity, &c.Description, &c.ImageURL)
	return c, err
}
