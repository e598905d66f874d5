package services

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"

	"gothamai/internal/domain"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var fixedNow = time.Date(2025, 11, 1, 9, 30, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// fakeContactRepo is an in-memory ContactRepository for tests.
type fakeContactRepo struct {
	mu       sync.Mutex
	contacts []*domain.Contact
	lastQ    domain.ContactQuery
	err      error
}

func (f *fakeContactRepo) Create(ctx context.Context, c *domain.Contact) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	c.ID = fmt.Sprintf("contact-%d", len(f.contacts)+1)
	f.contacts = append(f.contacts, c)
	return nil
}

func (f *fakeContactRepo) List(ctx context.Context, q domain.ContactQuery) ([]*domain.Contact, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQ = q
	if f.err != nil {
		return nil, 0, f.err
	}
	return f.contacts, len(f.contacts), nil
}

// fakeNotifier records the contacts it was asked to notify about.
type fakeNotifier struct {
	mu       sync.Mutex
	notified []*domain.Contact
}

func (f *fakeNotifier) NotifyContact(c *domain.Contact) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.notified = append(f.notified, c)
}

// fakeEventRepo is an in-memory EventRepository keyed by id.
type fakeEventRepo struct {
	byID   map[string]*domain.Event
	nextID int
	lastQ  domain.EventQuery
	err    error // if set, every call returns this error
}

func newFakeEventRepo() *fakeEventRepo {
	return &fakeEventRepo{byID: make(map[string]*domain.Event), nextID: 1}
}

func (f *fakeEventRepo) Create(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	for _, existing := range f.byID {
		if existing.Slug == e.Slug {
			return &domain.ConflictError{Entity: "Event", Field: "slug", Value: e.Slug}
		}
	}
	e.ID = fmt.Sprintf("ev-%d", f.nextID)
	f.nextID++
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) List(ctx context.Context, q domain.EventQuery) ([]*domain.Event, error) {
	f.lastQ = q
	if f.err != nil {
		return nil, f.err
	}
	var out []*domain.Event
	for _, e := range f.byID {
		if e.Published == q.Published {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	for _, e := range f.byID {
		if e.Slug == slug && e.Published {
			return e, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeEventRepo) Update(ctx context.Context, e *domain.Event) error {
	if f.err != nil {
		return f.err
	}
	old, ok := f.byID[e.ID]
	if !ok {
		return domain.ErrNotFound
	}
	e.CreatedAt = old.CreatedAt
	f.byID[e.ID] = e
	return nil
}

func (f *fakeEventRepo) Delete(ctx context.Context, id string) (*domain.Event, error) {
	if f.err != nil {
		return nil, f.err
	}
	e, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	delete(f.byID, id)
	return e, nil
}

// fakeResourceRepo is an in-memory ResourceRepository keyed by slug.
type fakeResourceRepo struct {
	mu           sync.Mutex
	bySlug       map[string]*domain.Resource
	lastQ        domain.ResourceQuery
	featuredSeen int
	err          error
}

func newFakeResourceRepo() *fakeResourceRepo {
	return &fakeResourceRepo{bySlug: make(map[string]*domain.Resource)}
}

func (f *fakeResourceRepo) Create(ctx context.Context, r *domain.Resource) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	if _, ok := f.bySlug[r.Slug]; ok {
		return &domain.ConflictError{Entity: "Resource", Field: "slug", Value: r.Slug}
	}
	r.ID = fmt.Sprintf("res-%d", len(f.bySlug)+1)
	f.bySlug[r.Slug] = r
	return nil
}

func (f *fakeResourceRepo) List(ctx context.Context, q domain.ResourceQuery) ([]*domain.Resource, int, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastQ = q
	if f.err != nil {
		return nil, 0, f.err
	}
	var out []*domain.Resource
	for _, r := range f.bySlug {
		out = append(out, r)
	}
	return out, len(out), nil
}

func (f *fakeResourceRepo) IncrementViewsBySlug(ctx context.Context, slug string) (*domain.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	r, ok := f.bySlug[slug]
	if !ok || !r.Published {
		return nil, domain.ErrNotFound
	}
	r.Views++
	cp := *r
	return &cp, nil
}

func (f *fakeResourceRepo) ListFeatured(ctx context.Context, limit int) ([]*domain.Resource, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.featuredSeen = limit
	if f.err != nil {
		return nil, f.err
	}
	return nil, nil
}

// fakeEmailService records sends and can fail either kind.
type fakeEmailService struct {
	mu            sync.Mutex
	confirmations []*domain.ContactConfirmationEmailData
	alerts        []*domain.ContactAlertEmailData
	confirmErr    error
	alertErr      error
	block         chan struct{}
}

func (f *fakeEmailService) SendContactConfirmation(ctx context.Context, data *domain.ContactConfirmationEmailData) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.confirmations = append(f.confirmations, data)
	return f.confirmErr
}

func (f *fakeEmailService) SendContactAlert(ctx context.Context, data *domain.ContactAlertEmailData) error {
	if f.block != nil {
		<-f.block
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.alerts = append(f.alerts, data)
	return f.alertErr
}

// fakeMailer records the last message handed to it.
type fakeMailer struct {
	to, subject, html, text string
	calls                   int
	err                     error
}

func (f *fakeMailer) Send(ctx context.Context, to, subject, html, text string) error {
	f.calls++
	f.to, f.subject, f.html, f.text = to, subject, html, text
	return f.err
}

// fakeRenderer returns the template name as the subject.
type fakeRenderer struct {
	err error
}

func (f *fakeRenderer) Render(name string, data any) (string, string, string, error) {
	if f.err != nil {
		return "", "", "", f.err
	}
	return name, "<p>" + name + "</p>", name, nil
}
