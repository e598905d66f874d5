package controllers

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"gothamai/internal/delivery/http/helpers"
	"gothamai/internal/domain"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

var testErrors = helpers.ErrorWriter{Logger: testLogger}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&v))
	return v
}

// fakeEventService implements domain.EventService for handler tests.
type fakeEventService struct {
	events     []*domain.Event
	bySlug     map[string]*domain.Event
	err        error
	lastQuery  domain.EventQuery
	lastCreate *domain.Event
	lastID     string
	lastUpdate *domain.Event
}

func (f *fakeEventService) List(_ context.Context, q domain.EventQuery) ([]*domain.Event, error) {
	f.lastQuery = q
	return f.events, f.err
}

func (f *fakeEventService) GetBySlug(_ context.Context, slug string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.bySlug[slug]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "Event"}
	}
	return e, nil
}

func (f *fakeEventService) Create(_ context.Context, e *domain.Event) error {
	f.lastCreate = e
	if f.err != nil {
		return f.err
	}
	e.ID = "ev-1"
	return nil
}

func (f *fakeEventService) Update(_ context.Context, id string, e *domain.Event) (*domain.Event, error) {
	f.lastID, f.lastUpdate = id, e
	if f.err != nil {
		return nil, f.err
	}
	e.ID = id
	return e, nil
}

func (f *fakeEventService) Delete(_ context.Context, id string) error {
	f.lastID = id
	return f.err
}

// fakeResourceService implements domain.ResourceService for handler tests.
type fakeResourceService struct {
	resources  []*domain.Resource
	total      int
	featured   []*domain.Resource
	views      map[string]int
	err        error
	lastQuery  domain.ResourceQuery
	lastCreate *domain.Resource
}

func (f *fakeResourceService) List(_ context.Context, q domain.ResourceQuery) ([]*domain.Resource, int, error) {
	f.lastQuery = q
	return f.resources, f.total, f.err
}

func (f *fakeResourceService) GetBySlug(_ context.Context, slug string) (*domain.Resource, error) {
	if f.err != nil {
		return nil, f.err
	}
	n, ok := f.views[slug]
	if !ok {
		return nil, &domain.NotFoundError{Entity: "Resource"}
	}
	f.views[slug] = n + 1
	return &domain.Resource{Slug: slug, Views: n + 1}, nil
}

func (f *fakeResourceService) Featured(_ context.Context) ([]*domain.Resource, error) {
	return f.featured, f.err
}

func (f *fakeResourceService) Create(_ context.Context, r *domain.Resource) error {
	f.lastCreate = r
	if f.err != nil {
		return f.err
	}
	r.ID = "res-1"
	return nil
}

// fakeContactService implements domain.ContactService for handler tests.
type fakeContactService struct {
	contacts  []*domain.Contact
	total     int
	err       error
	submitted []domain.ContactSubmission
	lastIP    string
	lastQuery domain.ContactQuery
}

func (f *fakeContactService) Submit(_ context.Context, sub domain.ContactSubmission, ip string) (*domain.Contact, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.submitted = append(f.submitted, sub)
	f.lastIP = ip
	c := domain.NewContact(sub, ip, fixedNow)
	c.ID = "c-1"
	return c, nil
}

func (f *fakeContactService) List(_ context.Context, q domain.ContactQuery) ([]*domain.Contact, int, error) {
	f.lastQuery = q
	return f.contacts, f.total, f.err
}

// fakeHealthChecker returns err from Ping.
type fakeHealthChecker struct {
	err error
}

func (f fakeHealthChecker) Ping(context.Context) error { return f.err }
