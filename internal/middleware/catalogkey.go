package middleware

import (
	"crypto/subtle"
	"net/http"
)

// CatalogKeyHeader carries the catalog write key.
const CatalogKeyHeader = "X-Catalog-Key"

// NewCatalogKeyHandler guards catalog writes with a shared key. An empty
// key disables the check and every request passes.
func NewCatalogKeyHandler(key string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if key == "" {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(CatalogKeyHeader)
			if subtle.ConstantTimeCompare([]byte(got), []byte(key)) != 1 {
				writeError(w, http.StatusForbidden, "forbidden", "catalog writes require a valid "+CatalogKeyHeader)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
