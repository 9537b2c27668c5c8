// Package middleware provides reusable HTTP middleware for the GlobeTrotter API.
package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// NewCORSHandler returns a middleware that applies CORS headers based on allowedOrigins.
// Each entry must be a full origin (scheme + host, no trailing slash), or "*"
// to allow any origin. Any method and any request header is allowed.
func NewCORSHandler(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
	})
	return func(next http.Handler) http.Handler {
		return c.Handler(next)
	}
}
