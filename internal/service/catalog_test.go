package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pkordes/globetrotter/backend/internal/domain"
	"github.com/pkordes/globetrotter/backend/internal/service"
)

func TestCatalogService_CreateCity(t *testing.T) {
	cities := &mockCityRepo{
		create: func(_ context.Context, c domain.City) (domain.City, error) {
			c.ID = 1
			return c, nil
		},
	}
	svc := service.NewCatalogService(cities, &mockActivityRepo{})

	got, err := svc.CreateCity(context.Background(), domain.City{Name: "Lisbon", Country: "Portugal"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), got.ID)

	_, err = svc.CreateCity(context.Background(), domain.City{Name: "Lisbon"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.CreateCity(context.Background(), domain.City{Country: "Portugal"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestCatalogService_SearchCities_Limit(t *testing.T) {
	cases := []struct {
		name  string
		limit *int
		want  int
	}{
		{"absent", nil, domain.SearchLimit},
		{"small", ptr(5), 5},
		{"too large", ptr(500), domain.SearchLimit},
		{"zero", ptr(0), domain.SearchLimit},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var gotLimit int
			cities := &mockCityRepo{
				search: func(_ context.Context, _ domain.CityFilter, limit int) ([]domain.City, error) {
					gotLimit = limit
					return nil, nil
				},
			}
			svc := service.NewCatalogService(cities, &mockActivityRepo{})

			got, err := svc.SearchCities(context.Background(), domain.CityFilter{}, tc.limit)

			require.NoError(t, err)
			assert.Equal(t, tc.want, gotLimit)
			assert.NotNil(t, got)
		})
	}
}

func TestCatalogService_SearchCities_CapsOversizedResult(t *testing.T) {
	cities := &mockCityRepo{
		search: func(context.Context, domain.CityFilter, int) ([]domain.City, error) {
			return make([]domain.City, 80), nil
		},
	}
	svc := service.NewCatalogService(cities, &mockActivityRepo{})

	got, err := svc.SearchCities(context.Background(), domain.CityFilter{}, nil)

	require.NoError(t, err)
	assert.Len(t, got, domain.SearchLimit)
}

func TestCatalogService_CreateActivity(t *testing.T) {
	activities := &mockActivityRepo{
		create: func(_ context.Context, a domain.Activity) (domain.Activity, error) { return a, nil },
	}
	svc := service.NewCatalogService(&mockCityRepo{}, activities)

	_, err := svc.CreateActivity(context.Background(), domain.Activity{Name: "Tram 28", Category: "sightseeing", EstimatedCost: 3})
	require.NoError(t, err)

	cases := map[string]domain.Activity{
		"missing name":      {Category: "food"},
		"missing category":  {Name: "Pasteis"},
		"negative cost":     {Name: "Pasteis", Category: "food", EstimatedCost: -1},
		"negative duration": {Name: "Pasteis", Category: "food", DurationHours: -0.5},
	}
	for name, a := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := svc.CreateActivity(context.Background(), a)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestCatalogService_SearchActivities_PassesFilter(t *testing.T) {
	var got domain.ActivityFilter
	activities := &mockActivityRepo{
		search: func(_ context.Context, f domain.ActivityFilter, _ int) ([]domain.Activity, error) {
			got = f
			return []domain.Activity{{ID: 1}}, nil
		},
	}
	svc := service.NewCatalogService(&mockCityRepo{}, activities)
	filter := domain.ActivityFilter{Query: "tour", Category: "culture", MaxCost: ptr(0.0)}

	res, err := svc.SearchActivities(context.Background(), filter, nil)

	require.NoError(t, err)
	assert.Len(t, res, 1)
	assert.Equal(t, filter, got)
}

func TestCatalogService_GetNotFound(t *testing.T) {
	svc := service.NewCatalogService(
		&mockCityRepo{getByID: func(context.Context, int64) (domain.City, error) { return domain.City{}, domain.ErrNotFound }},
		&mockActivityRepo{getByID: func(context.Context, int64) (domain.Activity, error) { return domain.Activity{}, domain.ErrNotFound }},
	)

	_, err := svc.GetCity(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = svc.GetActivity(context.Background(), 1)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
