package middleware

import (
	"encoding/json"
	"net/http"
)

// writeError writes the API's standard error body. It mirrors the handler
// package's shape so clients see one format whichever layer rejects them.
func writeError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]map[string]string{
		"error": {"code": code, "message": message},
	})
}
