package helpers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"gothamai/internal/domain"
)

// ErrorResponse is the envelope of every failed request.
// swagger:model ErrorResponse
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Error   string `json:"error"`
}

// MessageResponse is the envelope for confirmations that carry no data.
// swagger:model MessageResponse
type MessageResponse struct {
	Success bool   `json:"success" example:"true"`
	Message string `json:"message"`
}

// InternalErrorMessage is returned for unclassified errors when details are hidden.
const InternalErrorMessage = "Internal server error"

// WriteJSON sets Content-Type to application/json, writes statusCode and encodes v.
func WriteJSON(w http.ResponseWriter, statusCode int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteJSONError writes the failure envelope with the given status and message.
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	WriteJSON(w, statusCode, ErrorResponse{Success: false, Error: message})
}

// ErrorWriter maps service errors onto status codes. Every handler funnels its
// errors through one so the envelope and codes stay uniform.
type ErrorWriter struct {
	Logger *slog.Logger
	// ExposeInternal puts the message of unclassified errors in the response
	// instead of InternalErrorMessage.
	ExposeInternal bool
}

// Write responds with the status for err: 400 validation, 404 not found,
// 409 conflict, 429 rate limited, 403 forbidden, 500 anything else.
func (e ErrorWriter) Write(w http.ResponseWriter, r *http.Request, err error) {
	status := StatusFor(err)
	if status != http.StatusInternalServerError {
		WriteJSONError(w, status, err.Error())
		return
	}
	e.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	msg := InternalErrorMessage
	if e.ExposeInternal {
		msg = err.Error()
	}
	WriteJSONError(w, status, msg)
}

// StatusFor returns the HTTP status for err.
func StatusFor(err error) int {
	var maxBytes *http.MaxBytesError
	switch {
	case errors.Is(err, domain.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, domain.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, domain.ErrForbidden):
		return http.StatusForbidden
	case errors.As(err, &maxBytes):
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}
