package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/pkordes/globetrotter/backend/internal/domain"
)

// ErrorDetail is the inner object of every error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response:
// {"error":{"code":"not_found","message":"trip not found"}}.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// MessageResponse is returned by the delete endpoints.
type MessageResponse struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, ErrorResponse{Error: ErrorDetail{Code: code, Message: message}})
}

// requestError reports a request rejected before reaching the service layer
// (malformed body, bad path or query parameter).
func requestError(w http.ResponseWriter, message string) {
	writeError(w, http.StatusUnprocessableEntity, "validation_error", message)
}

// fail maps a service error onto its HTTP status. notFound is the message
// used for domain.ErrNotFound, since only the handler knows what was being
// looked up.
func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found", notFound)
	case errors.Is(err, domain.ErrForbidden):
		writeError(w, http.StatusForbidden, "forbidden", "not authorized to modify this trip")
	case errors.Is(err, domain.ErrUnauthorized):
		w.Header().Set("WWW-Authenticate", "Bearer")
		writeError(w, http.StatusUnauthorized, "unauthorized", unwrapMessage(err, domain.ErrUnauthorized))
	case errors.Is(err, domain.ErrValidation):
		writeError(w, http.StatusUnprocessableEntity, "validation_error", unwrapMessage(err, domain.ErrValidation))
	case errors.Is(err, domain.ErrConflict):
		writeError(w, http.StatusConflict, "conflict", unwrapMessage(err, domain.ErrConflict))
	default:
		s.log.ErrorContext(r.Context(), "unhandled error",
			"error", err,
			"method", r.Method,
			"path", r.URL.Path,
			"request_id", chimiddleware.GetReqID(r.Context()),
		)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

// unwrapMessage extracts the human-readable part that follows a sentinel.
// e.g. "service.TripService.Create: validation error: name is required" -> "name is required"
func unwrapMessage(err error, sentinel error) string {
	msg := err.Error()
	prefix := sentinel.Error() + ": "
	if i := strings.LastIndex(msg, prefix); i >= 0 {
		return msg[i+len(prefix):]
	}
	return sentinel.Error()
}

// rejectBody answers a request whose body could not be decoded: 413 when it
// hit the size cap, 422 otherwise.
func rejectBody(w http.ResponseWriter, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		writeError(w, http.StatusRequestEntityTooLarge, "body_too_large", "request body too large")
		return
	}
	requestError(w, err.Error())
}
