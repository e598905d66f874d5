package http

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"gothamai/internal/delivery/http/controllers"
	"gothamai/internal/delivery/http/helpers"
	"gothamai/internal/delivery/http/middleware"
	"gothamai/internal/domain"
)

// RouterConfig holds the collaborators the router wires into routes.
type RouterConfig struct {
	Logger         *slog.Logger
	AllowedOrigins []string

	Contacts  *controllers.ContactController
	Events    *controllers.EventController
	Resources *controllers.ResourceController
	Health    *controllers.HealthController

	// ContactLimiter throttles POST /api/contact.
	ContactLimiter domain.RateLimiter
	ContactLimit   int
	// AdminVerifier protects admin routes when not nil.
	AdminVerifier domain.TokenVerifier

	Registry *prometheus.Registry
}

// NewRouter initializes the HTTP router with all application routes and
// wraps it in the shared middleware chain.
func NewRouter(cfg RouterConfig) http.Handler {
	mux := http.NewServeMux()
	admin := middleware.RequireAdmin(cfg.AdminVerifier, cfg.Logger)
	contactLimit := middleware.RateLimit(cfg.ContactLimiter, cfg.ContactLimit, middleware.ContactRateLimitMessage, cfg.Logger)

	mux.HandleFunc("GET /health", cfg.Health.Health)

	// Contact
	mux.Handle("POST /api/contact", contactLimit(http.HandlerFunc(cfg.Contacts.SubmitContact)))
	mux.Handle("GET /api/contact", admin(http.HandlerFunc(cfg.Contacts.ListContacts)))

	// Events
	mux.HandleFunc("GET /api/events", cfg.Events.ListEvents)
	mux.HandleFunc("GET /api/events/{slug}", cfg.Events.GetEvent)
	mux.Handle("POST /api/events", admin(http.HandlerFunc(cfg.Events.CreateEvent)))
	mux.Handle("PUT /api/events/{id}", admin(http.HandlerFunc(cfg.Events.UpdateEvent)))
	mux.Handle("DELETE /api/events/{id}", admin(http.HandlerFunc(cfg.Events.DeleteEvent)))

	// Resources
	mux.HandleFunc("GET /api/resources", cfg.Resources.ListResources)
	mux.HandleFunc("GET /api/resources/featured", cfg.Resources.FeaturedResources)
	mux.HandleFunc("GET /api/resources/{slug}", cfg.Resources.GetResource)
	mux.Handle("POST /api/resources", admin(http.HandlerFunc(cfg.Resources.CreateResource)))

	// Operations
	mux.Handle("GET /metrics", promhttp.HandlerFor(cfg.Registry, promhttp.HandlerOpts{}))
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	mux.HandleFunc("/", notFound)

	metrics := middleware.NewMetrics(cfg.Registry)
	var handler http.Handler = metrics.Handler(mux)
	handler = middleware.Recover(cfg.Logger, handler)
	handler = middleware.CORS(cfg.AllowedOrigins, handler)
	return middleware.LoggingMiddleware(cfg.Logger, handler)
}

func notFound(w http.ResponseWriter, r *http.Request) {
	helpers.WriteJSONError(w, http.StatusNotFound, "Not found - "+r.URL.Path)
}
