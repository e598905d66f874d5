package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	h "gothamai/internal/delivery/http/helpers"
	"gothamai/internal/domain"
)

const adminSubjectKey contextKey = "adminSubject"

// SetAdminSubject returns a context carrying the verified token subject.
func SetAdminSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, adminSubjectKey, subject)
}

// AdminSubjectFromContext returns the verified token subject, if present.
func AdminSubjectFromContext(ctx context.Context) (string, bool) {
	s, ok := ctx.Value(adminSubjectKey).(string)
	return s, ok
}

// RequireAdmin returns a wrapper that validates the Bearer token. A nil
// verifier leaves routes open.
func RequireAdmin(verifier domain.TokenVerifier, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if verifier == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")
			if auth == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, "Missing authorization header")
				return
			}
			const prefix = "Bearer "
			if !strings.HasPrefix(auth, prefix) {
				h.WriteJSONError(w, http.StatusUnauthorized, "Invalid authorization format")
				return
			}
			token := strings.TrimSpace(auth[len(prefix):])
			if token == "" {
				h.WriteJSONError(w, http.StatusUnauthorized, "Missing token")
				return
			}
			subject, err := verifier.Verify(token)
			if err != nil {
				if errors.Is(err, domain.ErrForbidden) {
					h.WriteJSONError(w, http.StatusForbidden, "Admin access required")
					return
				}
				logger.DebugContext(r.Context(), "token rejected", "path", r.URL.Path, "err", err)
				h.WriteJSONError(w, http.StatusUnauthorized, "Invalid or expired token")
				return
			}
			logger.InfoContext(r.Context(), "admin request", "subject", subject, "method", r.Method, "path", r.URL.Path)
			next.ServeHTTP(w, r.WithContext(SetAdminSubject(r.Context(), subject)))
		})
	}
}
