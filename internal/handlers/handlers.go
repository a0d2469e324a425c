package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/fiton/internal/jwt"
	"github.com/sbilibin2017/fiton/internal/logger"
	"github.com/sbilibin2017/fiton/internal/policy"
	"github.com/sbilibin2017/fiton/internal/services"
)

// ErrorResponse is the error body returned by every endpoint
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`

	// Invalid request field, set for validation errors
	Field string `json:"field,omitempty"`
}

// MessageResponse is a plain confirmation message
// swagger:model MessageResponse
type MessageResponse struct {
	Message string `json:"message"`
}

var errInvalidID = errors.New("invalid id")

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// writeServiceError maps the shared service errors to status codes.
// notFound is the message used for services.ErrNotFound.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, notFound string) {
	var verr *services.ValidationError

	switch {
	case errors.As(err, &verr):
		writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: verr.Message, Field: verr.Field})
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, notFound)
	case errors.Is(err, services.ErrForbidden):
		writeError(w, http.StatusForbidden, "Admin access required.")
	default:
		logger.FromContext(r.Context()).Errorw("internal server error", "err", err)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

// subjectFromRequest returns the authenticated caller set by the auth middleware.
func subjectFromRequest(r *http.Request) (policy.Subject, bool) {
	claims, ok := jwt.ClaimsFromContext(r.Context())
	if !ok || claims == nil {
		return policy.Subject{}, false
	}
	return policy.Subject{UserID: claims.UserID, IsAdmin: claims.IsAdmin}, true
}

func pathID(r *http.Request) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}

func decodeBody(r *http.Request, v any) error {
	if r.Body == nil {
		return errors.New("empty body")
	}
	return json.NewDecoder(r.Body).Decode(v)
}
