package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gothamai/internal/adapters/ratelimit"
	"gothamai/internal/delivery/http/controllers"
	"gothamai/internal/delivery/http/helpers"
	"gothamai/internal/domain"
)

var testLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

type stubEvents struct{ domain.EventService }

func (stubEvents) List(context.Context, domain.EventQuery) ([]*domain.Event, error) {
	return []*domain.Event{}, nil
}

func (stubEvents) GetBySlug(context.Context, string) (*domain.Event, error) {
	return nil, &domain.NotFoundError{Entity: "Event"}
}

func (stubEvents) Create(_ context.Context, e *domain.Event) error {
	e.ID = "ev-1"
	return nil
}

type stubResources struct{ domain.ResourceService }

func (stubResources) Featured(context.Context) ([]*domain.Resource, error) {
	return []*domain.Resource{{Slug: "featured-one", Featured: true}}, nil
}

func (stubResources) GetBySlug(_ context.Context, slug string) (*domain.Resource, error) {
	return &domain.Resource{Slug: slug}, nil
}

type stubContacts struct{ domain.ContactService }

func (stubContacts) Submit(_ context.Context, sub domain.ContactSubmission, ip string) (*domain.Contact, error) {
	c := domain.NewContact(sub, ip, time.Now())
	c.ID = "c-1"
	return c, nil
}

type stubStore struct{}

func (stubStore) Ping(context.Context) error { return nil }

type stubVerifier struct{}

func (stubVerifier) Verify(token string) (string, error) {
	if token != "good" {
		return "", domain.ErrForbidden
	}
	return "ops", nil
}

func newTestRouter(verifier domain.TokenVerifier) http.Handler {
	errs := helpers.ErrorWriter{Logger: testLogger}
	return NewRouter(RouterConfig{
		Logger:         testLogger,
		AllowedOrigins: []string{"http://localhost:5173"},
		Contacts:       controllers.NewContactController(testLogger, stubContacts{}, errs),
		Events:         controllers.NewEventController(testLogger, stubEvents{}, errs),
		Resources:      controllers.NewResourceController(testLogger, stubResources{}, errs),
		Health:         controllers.NewHealthController(testLogger, stubStore{}, "test"),
		ContactLimiter: ratelimit.NewMemory(3, 15*time.Minute),
		ContactLimit:   3,
		AdminVerifier:  verifier,
		Registry:       prometheus.NewRegistry(),
	})
}

func serve(h http.Handler, method, target, body string, header ...string) *httptest.ResponseRecorder {
	var r io.Reader
	if body != "" {
		r = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, r)
	for i := 0; i+1 < len(header); i += 2 {
		req.Header.Set(header[i], header[i+1])
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func errorOf(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var body helpers.ErrorResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&body))
	assert.False(t, body.Success)
	return body.Error
}

func TestRouter_Routes(t *testing.T) {
	h := newTestRouter(nil)

	rr := serve(h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.NotEmpty(t, rr.Header().Get("X-Request-ID"))

	rr = serve(h, http.MethodGet, "/api/events", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"success":true,"count":0,"data":[]}`, rr.Body.String())

	rr = serve(h, http.MethodGet, "/api/events/nonexistent-slug", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Event not found", errorOf(t, rr))

	rr = serve(h, http.MethodGet, "/api/resources/featured", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"count":1`)

	rr = serve(h, http.MethodGet, "/api/resources/deep-learning", "")
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"slug":"deep-learning"`)

	rr = serve(h, http.MethodGet, "/api/unknown", "")
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, "Not found - /api/unknown", errorOf(t, rr))

	rr = serve(h, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "gothamai_http_requests_total")
}

func TestRouter_ContactRateLimit(t *testing.T) {
	h := newTestRouter(nil)
	body := `{"name":"Ada","email":"ada@example.com","subject":"Hi there","message":"Long enough message"}`

	for i := 0; i < 3; i++ {
		rr := serve(h, http.MethodPost, "/api/contact", body, "X-Forwarded-For", "203.0.113.7")
		require.Equal(t, http.StatusCreated, rr.Code, "submission %d", i+1)
	}
	rr := serve(h, http.MethodPost, "/api/contact", body, "X-Forwarded-For", "203.0.113.7")
	assert.Equal(t, http.StatusTooManyRequests, rr.Code)
	assert.Equal(t, "Too many contact submissions from this IP, please try again later.", errorOf(t, rr))

	rr = serve(h, http.MethodPost, "/api/contact", body, "X-Forwarded-For", "198.51.100.4")
	assert.Equal(t, http.StatusCreated, rr.Code)
}

func TestRouter_AdminRoutes(t *testing.T) {
	body := `{"title":"t","slug":"t","description":"d","content":"c","dateDisplay":"x","time":"y","location":"l","image":"i"}`

	open := newTestRouter(nil)
	assert.Equal(t, http.StatusCreated, serve(open, http.MethodPost, "/api/events", body).Code)

	guarded := newTestRouter(stubVerifier{})
	assert.Equal(t, http.StatusUnauthorized, serve(guarded, http.MethodPost, "/api/events", body).Code)
	assert.Equal(t, http.StatusForbidden, serve(guarded, http.MethodPost, "/api/events", body, "Authorization", "Bearer bad").Code)
	assert.Equal(t, http.StatusCreated, serve(guarded, http.MethodPost, "/api/events", body, "Authorization", "Bearer good").Code)
	assert.Equal(t, http.StatusOK, serve(guarded, http.MethodGet, "/api/events", "").Code, "public reads stay open")
}
