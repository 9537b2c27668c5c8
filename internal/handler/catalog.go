package handler

import (
	"net/http"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// CityRequest is the body of POST /api/cities/. Omitted cost_index and
// popularity take their catalog defaults (100 and 0).
type CityRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Country     string   `json:"country" validate:"required,max=100"`
	Region      *string  `json:"region"`
	CostIndex   *float64 `json:"cost_index" validate:"omitnil,gte=0"`
	Popularity  *int     `json:"popularity" validate:"omitnil,gte=0"`
	Description *string  `json:"description"`
	ImageURL    *string  `json:"image_url"`
}

// City is the wire form of a catalog city.
type City struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Country     string  `json:"country"`
	Region      *string `json:"region"`
	CostIndex   float64 `json:"cost_index"`
	Popularity  int     `json:"popularity"`
	Description *string `json:"description"`
	ImageURL    *string `json:"image_url"`
}

// ActivityRequest is the body of POST /api/activities/. Omitted
// estimated_cost and duration_hours default to 0 and 1.
type ActivityRequest struct {
	Name          string   `json:"name" validate:"required,max=100"`
	Category      string   `json:"category" validate:"required,max=50"`
	Description   *string  `json:"description"`
	EstimatedCost *float64 `json:"estimated_cost" validate:"omitnil,gte=0"`
	DurationHours *float64 `json:"duration_hours" validate:"omitnil,gte=0"`
	ImageURL      *string  `json:"image_url"`
}

// Activity is the wire form of a catalog activity.
type Activity struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Description   *string `json:"description"`
	EstimatedCost float64 `json:"estimated_cost"`
	DurationHours float64 `json:"duration_hours"`
	ImageURL      *string `json:"image_url"`
}

// CreateCity handles POST /api/cities/.
func (s *Server) CreateCity(w http.ResponseWriter, r *http.Request) {
	var req CityRequest
	if err := s.decodeJSON(r, &req); err != nil {
		rejectBody(w, err)
		return
	}

	c := domain.City{
		Name:        req.Name,
		Country:     req.Country,
		Region:      req.Region,
		CostIndex:   domain.DefaultCostIndex,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}
	if req.CostIndex != nil {
		c.CostIndex = *req.CostIndex
	}
	if req.Popularity != nil {
		c.Popularity = *req.Popularity
	}

	created, err := s.Catalog.CreateCity(r.Context(), c)
	if err != nil {
		s.fail(w, r, err, "city not found")
		return
	}
	writeJSON(w, http.StatusCreated, cityToResponse(created))
}

// SearchCities handles GET /api/cities/?q=&country=&limit=.
func (s *Server) SearchCities(w http.ResponseWriter, r *http.Request) {
	var q, country *string
	var limit *int
	for name, dst := range map[string]any{"q": &q, "country": &country, "limit": &limit} {
		if err := queryParam(r, name, dst); err != nil {
			requestError(w, err.Error())
			return
		}
	}

	f := domain.CityFilter{Query: deref(q), Country: deref(country)}
	cities, err := s.Catalog.SearchCities(r.Context(), f, limit)
	if err != nil {
		s.fail(w, r, err, "city not found")
		return
	}
	out := make([]City, len(cities))
	for i, c := range cities {
		out[i] = cityToResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetCity handles GET /api/cities/{id}.
func (s *Server) GetCity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		requestError(w, err.Error())
		return
	}

	c, err := s.Catalog.GetCity(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, "city not found")
		return
	}
	writeJSON(w, http.StatusOK, cityToResponse(c))
}

// CreateActivity handles POST /api/activities/.
func (s *Server) CreateActivity(w http.ResponseWriter, r *http.Request) {
	var req ActivityRequest
	if err := s.decodeJSON(r, &req); err != nil {
		rejectBody(w, err)
		return
	}

	a := domain.Activity{
		Name:          req.Name,
		Category:      req.Category,
		Description:   req.Description,
		EstimatedCost: domain.DefaultActivityCost,
		DurationHours: domain.DefaultActivityDuration,
		ImageURL:      req.ImageURL,
	}
	if req.EstimatedCost != nil {
		a.EstimatedCost = *req.EstimatedCost
	}
	if req.DurationHours != nil {
		a.DurationHours = *req.DurationHours
	}

	created, err := s.Catalog.CreateActivity(r.Context(), a)
	if err != nil {
		s.fail(w, r, err, "activity not found")
		return
	}
	writeJSON(w, http.StatusCreated, activityToResponse(created))
}

// SearchActivities handles GET /api/activities/?q=&category=&max_cost=&limit=.
// max_cost is inclusive whenever present, including 0.
func (s *Server) SearchActivities(w http.ResponseWriter, r *http.Request) {
	var q, category *string
	var f domain.ActivityFilter
	var limit *int
	for name, dst := range map[string]any{"q": &q, "category": &category, "max_cost": &f.MaxCost, "limit": &limit} {
		if err := queryParam(r, name, dst); err != nil {
			requestError(w, err.Error())
			return
		}
	}
	f.Query, f.Category = deref(q), deref(category)

	activities, err := s.Catalog.SearchActivities(r.Context(), f, limit)
	if err != nil {
		s.fail(w, r, err, "activity not found")
		return
	}
	out := make([]Activity, len(activities))
	for i, a := range activities {
		out[i] = activityToResponse(a)
	}
	writeJSON(w, http.StatusOK, out)
}

// GetActivity handles GET /api/activities/{id}.
func (s *Server) GetActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		requestError(w, err.Error())
		return
	}

	a, err := s.Catalog.GetActivity(r.Context(), id)
	if err != nil {
		s.fail(w, r, err, "activity not found")
		return
	}
	writeJSON(w, http.StatusOK, activityToResponse(a))
}

// --- mapping helpers --------------------------------------------------------

func cityToResponse(c domain.City) City {
	return City{
		ID:          c.ID,
		Name:        c.Name,
		Country:     c.Country,
		Region:      c.Region,
		CostIndex:   c.CostIndex,
		Popularity:  c.Popularity,
		Description: c.Description,
		ImageURL:    c.ImageURL,
	}
}

func activityToResponse(a domain.Activity) Activity {
	return Activity{
		ID:            a.ID,
		Name:          a.Name,
		Category:      a.Category,
		Description:   a.Description,
		EstimatedCost: a.EstimatedCost,
		DurationHours: a.DurationHours,
		ImageURL:      a.ImageURL,
	}
}

func optCity(c *domain.City) *City {
	if c == nil {
		return nil
	}
	out := cityToResponse(*c)
	return &out
}

func optActivity(a *domain.Activity) *Activity {
	if a == nil {
		return nil
	}
	out := activityToResponse(*a)
	return &out
}
