package middleware

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gothamai/internal/delivery/http/helpers"
	"gothamai/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

// fakeTokenVerifier implements domain.TokenVerifier for tests.
type fakeTokenVerifier struct {
	subject string
	err     error
}

func (f *fakeTokenVerifier) Verify(_ string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.subject, nil
}

func TestRequireAdmin(t *testing.T) {
	tests := []struct {
		name        string
		authHeader  string
		verifier    domain.TokenVerifier
		wantStatus  int
		wantError   string
		nextCalled  bool
		wantSubject string
	}{
		{
			name:        "valid token sets context and calls next",
			authHeader:  "Bearer valid-token",
			verifier:    &fakeTokenVerifier{subject: "ops@gotham.ai"},
			wantStatus:  http.StatusOK,
			nextCalled:  true,
			wantSubject: "ops@gotham.ai",
		},
		{
			name:       "no verifier leaves the route open",
			verifier:   nil,
			wantStatus: http.StatusOK,
			nextCalled: true,
		},
		{
			name:       "missing authorization header",
			verifier:   &fakeTokenVerifier{subject: "ops"},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Missing authorization header",
		},
		{
			name:       "invalid authorization format no Bearer prefix",
			authHeader: "Basic abc",
			verifier:   &fakeTokenVerifier{subject: "ops"},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid authorization format",
		},
		{
			name:       "empty token after Bearer",
			authHeader: "Bearer ",
			verifier:   &fakeTokenVerifier{subject: "ops"},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Missing token",
		},
		{
			name:       "verifier returns error",
			authHeader: "Bearer bad-token",
			verifier:   &fakeTokenVerifier{err: errors.New("token is expired")},
			wantStatus: http.StatusUnauthorized,
			wantError:  "Invalid or expired token",
		},
		{
			name:       "token without admin role",
			authHeader: "Bearer member-token",
			verifier:   &fakeTokenVerifier{err: domain.ErrForbidden},
			wantStatus: http.StatusForbidden,
			wantError:  "Admin access required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nextCalled := false
			var subject string
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				subject, _ = AdminSubjectFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})
			handler := RequireAdmin(tt.verifier, testLogger)(next)

			req := httptest.NewRequest(http.MethodGet, "http://test/api/contact", nil)
			if tt.authHeader != "" {
				req.Header.Set("Authorization", tt.authHeader)
			}
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			require.Equal(t, tt.wantStatus, rr.Code, "status code")
			assert.Equal(t, tt.nextCalled, nextCalled, "next handler called")
			assert.Equal(t, tt.wantSubject, subject)
			if tt.wantError != "" {
				var envelope helpers.ErrorResponse
				require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
				assert.False(t, envelope.Success)
				assert.Equal(t, tt.wantError, envelope.Error)
			}
		})
	}
}
