package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"reflect"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/oapi-codegen/runtime"
)

// Timestamp accepts either an RFC 3339 timestamp or a bare calendar date
// (YYYY-MM-DD, read as midnight UTC) and always encodes as RFC 3339.
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return fmt.Errorf("expected a date or timestamp string")
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", time.DateOnly} {
		if v, err := time.Parse(layout, s); err == nil {
			t.Time = v.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid date %q: want YYYY-MM-DD or RFC 3339", s)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.Time.UTC().Format(time.RFC3339))
}

// timestamp converts a domain time into its wire form.
func timestamp(t time.Time) Timestamp { return Timestamp{t} }

func optTimestamp(t *time.Time) *Timestamp {
	if t == nil {
		return nil
	}
	return &Timestamp{*t}
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// decodeJSON reads a JSON body into dst and runs its validate tags.
// The returned error text is safe to show to clients.
func (s *Server) decodeJSON(r *http.Request, dst any) error {
	if err := readJSON(r, dst); err != nil {
		return err
	}
	if err := s.validate.Struct(dst); err != nil {
		return validationMessage(err)
	}
	return nil
}

func readJSON(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var tooLarge *http.MaxBytesError
		switch {
		case errors.As(err, &tooLarge):
			return err
		case errors.Is(err, io.EOF):
			return errors.New("request body is required")
		default:
			return fmt.Errorf("malformed request body: %s", strings.TrimPrefix(err.Error(), "json: "))
		}
	}
	return nil
}

// validationMessage renders validator errors as "field: rule" pairs. Field
// names are the JSON names; see newValidator.
func validationMessage(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	parts := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		parts = append(parts, fmt.Sprintf("%s: failed %s", fe.Field(), fe.Tag()))
	}
	return errors.New(strings.Join(parts, "; "))
}

// bindPath binds a required path parameter into dst.
func bindPath(r *http.Request, name string, dst any) error {
	err := runtime.BindStyledParameterWithOptions("simple", name, chi.URLParam(r, name), dst,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return fmt.Errorf("invalid %s", name)
	}
	return nil
}

// pathID binds a positive integer path parameter.
func pathID(r *http.Request, name string) (int64, error) {
	var id int64
	if err := bindPath(r, name, &id); err != nil {
		return 0, fmt.Errorf("invalid %s: must be an integer", name)
	}
	if id <= 0 {
		return 0, fmt.Errorf("invalid %s: must be positive", name)
	}
	return id, nil
}

// queryParam binds an optional query parameter. dst must be a pointer to a
// pointer, which stays nil when the parameter is absent.
func queryParam(r *http.Request, name string, dst any) error {
	if err := runtime.BindQueryParameter("form", true, false, name, r.URL.Query(), dst); err != nil {
		return fmt.Errorf("invalid query parameter %s", name)
	}
	return nil
}

func deref[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
