package helpers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gothamai/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func TestErrorWriter(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		expose     bool
		wantStatus int
		wantMsg    string
	}{
		{"validation", domain.NewValidationError("Name is required", "Please provide a valid email address"), false, http.StatusBadRequest, "Name is required, Please provide a valid email address"},
		{"not found", &domain.NotFoundError{Entity: "Event"}, false, http.StatusNotFound, "Event not found"},
		{"wrapped not found", fmt.Errorf("get: %w", &domain.NotFoundError{Entity: "Resource"}), false, http.StatusNotFound, "get: Resource not found"},
		{"conflict", &domain.ConflictError{Entity: "Event", Field: "slug", Value: "ai-night"}, false, http.StatusConflict, `Event with slug "ai-night" already exists`},
		{"rate limited", &domain.RateLimitError{Message: "slow down"}, false, http.StatusTooManyRequests, "slow down"},
		{"forbidden", domain.ErrForbidden, false, http.StatusForbidden, "forbidden"},
		{"internal hidden", errors.New("dial tcp 10.0.0.5:5432: connection refused"), false, http.StatusInternalServerError, InternalErrorMessage},
		{"internal exposed", errors.New("dial tcp 10.0.0.5:5432: connection refused"), true, http.StatusInternalServerError, "dial tcp 10.0.0.5:5432: connection refused"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/api/events/x", nil)

			ErrorWriter{Logger: testLogger, ExposeInternal: tt.expose}.Write(rr, r, tt.err)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
			var body ErrorResponse
			require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
			assert.False(t, body.Success)
			assert.Equal(t, tt.wantMsg, body.Error)
		})
	}
}
