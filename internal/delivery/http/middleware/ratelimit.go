package middleware

import (
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"strings"
	"time"

	h "gothamai/internal/delivery/http/helpers"
	"gothamai/internal/domain"
)

// ContactRateLimitMessage is returned once a client exceeds the contact quota.
const ContactRateLimitMessage = "Too many contact submissions from this IP, please try again later."

// ClientIP returns the first X-Forwarded-For entry, else the remote address
// without its port.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// RateLimit counts every request to next against the client's quota and
// answers 429 with message once it is used up. Limiter failures let the
// request through.
func RateLimit(limiter domain.RateLimiter, limit int, message string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			allowed, remaining, resetAt, err := limiter.Allow(r.Context(), ClientIP(r))
			if err != nil {
				logger.WarnContext(r.Context(), "rate limiter unavailable", "path", r.URL.Path, "err", err)
				next.ServeHTTP(w, r)
				return
			}
			resetIn := max(int(time.Until(resetAt).Round(time.Second).Seconds()), 0)
			w.Header().Set("RateLimit-Limit", strconv.Itoa(limit))
			w.Header().Set("RateLimit-Remaining", strconv.Itoa(remaining))
			w.Header().Set("RateLimit-Reset", strconv.Itoa(resetIn))
			if !allowed {
				w.Header().Set("Retry-After", strconv.Itoa(resetIn))
				h.WriteJSONError(w, http.StatusTooManyRequests, (&domain.RateLimitError{Message: message}).Error())
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
