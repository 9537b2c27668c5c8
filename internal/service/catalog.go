package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/repo"
)

// CatalogService manages the shared city and activity reference data.
// It performs no ownership checks: the catalog is global.
type CatalogService struct {
	cities     repo.CityRepo
	activities repo.ActivityRepo
}

// NewCatalogService constructs a CatalogService backed by the provided repos.
func NewCatalogService(cities repo.CityRepo, activities repo.ActivityRepo) *CatalogService {
	return &CatalogService{cities: cities, activities: activities}
}

// CreateCity validates and persists a city.
func (s *CatalogService) CreateCity(ctx context.Context, c domain.City) (domain.City, error) {
	if strings.TrimSpace(c.Name) == "" {
		return domain.City{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(c.Country) == "" {
		return domain.City{}, fmt.Errorf("%w: country is required", domain.ErrValidation)
	}
	created, err := s.cities.Create(ctx, c)
	if err != nil {
		return domain.City{}, fmt.Errorf("service.CatalogService.CreateCity: %w", err)
	}
	return created, nil
}

// SearchCities returns cities matching f. limit is optional and never
// exceeds domain.SearchLimit.
func (s *CatalogService) SearchCities(ctx context.Context, f domain.CityFilter, limit *int) ([]domain.City, error) {
	n := domain.NewSearchLimit(limit)
	cities, err := s.cities.Search(ctx, f, n)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.SearchCities: %w", err)
	}
	return capped(cities, n), nil
}

// GetCity returns a city by ID.
func (s *CatalogService) GetCity(ctx context.Context, id int64) (domain.City, error) {
	c, err := s.cities.GetByID(ctx, id)
	if err != nil {
		return domain.City{}, fmt.Errorf("service.CatalogService.GetCity: %w", err)
	}
	return c, nil
}

// CreateActivity validates and persists an activity.
func (s *CatalogService) CreateActivity(ctx context.Context, a domain.Activity) (domain.Activity, error) {
	if strings.TrimSpace(a.Name) == "" {
		return domain.Activity{}, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if strings.TrimSpace(a.Category) == "" {
		return domain.Activity{}, fmt.Errorf("%w: category is required", domain.ErrValidation)
	}
	if a.EstimatedCost < 0 || a.DurationHours < 0 {
		return domain.Activity{}, fmt.Errorf("%w: estimated_cost and duration_hours must not be negative", domain.ErrValidation)
	}
	created, err := s.activities.Create(ctx, a)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.CatalogService.CreateActivity: %w", err)
	}
	return created, nil
}

// SearchActivities returns activities matching f. limit is optional and
// never exceeds domain.SearchLimit.
func (s *CatalogService) SearchActivities(ctx context.Context, f domain.ActivityFilter, limit *int) ([]domain.Activity, error) {
	n := domain.NewSearchLimit(limit)
	activities, err := s.activities.Search(ctx, f, n)
	if err != nil {
		return nil, fmt.Errorf("service.CatalogService.SearchActivities: %w", err)
	}
	return capped(activities, n), nil
}

// GetActivity returns an activity by ID.
func (s *CatalogService) GetActivity(ctx context.Context, id int64) (domain.Activity, error) {
	a, err := s.activities.GetByID(ctx, id)
	if err != nil {
		return domain.Activity{}, fmt.Errorf("service.CatalogService.GetActivity: %w", err)
	}
	return a, nil
}

// capped returns a non-nil slice of at most n items.
func capped[T any](items []T, n int) []T {
	if items == nil {
		return []T{}
	}
	if len(items) > n {
		return items[:n]
	}
	return items
}
