package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// Authenticator resolves a bearer token to a user.
// *service.AuthService satisfies it.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (domain.User, error)
}

type userKey struct{}

// WithUser returns a copy of ctx carrying u as the request's caller.
func WithUser(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, userKey{}, u)
}

// UserFromContext returns the caller stored by NewAuthHandler.
func UserFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(userKey{}).(domain.User)
	return u, ok
}

// NewAuthHandler returns a middleware that requires an
// "Authorization: Bearer <token>" header, resolves it through auth, and
// stores the user in the request context. Failures get 401 with a
// WWW-Authenticate challenge before the next handler runs.
func NewAuthHandler(auth Authenticator, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				challenge(w, "not authenticated")
				return
			}

			u, err := auth.Authenticate(r.Context(), token)
			if err != nil {
				if !errors.Is(err, domain.ErrUnauthorized) {
					log.ErrorContext(r.Context(), "authenticate",
						"error", err,
						"request_id", chimiddleware.GetReqID(r.Context()),
					)
					writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
					return
				}
				challenge(w, "could not validate credentials")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
		})
	}
}

func bearerToken(r *http.Request) (string, bool) {
	scheme, token, ok := strings.Cut(r.Header.Get("Authorization"), " ")
	if !ok || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}
	token = strings.TrimSpace(token)
	return token, token != ""
}

func challenge(w http.ResponseWriter, message string) {
	w.Header().Set("WWW-Authenticate", "Bearer")
	writeError(w, http.StatusUnauthorized, "unauthorized", message)
}
