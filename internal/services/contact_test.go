package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gothamai/internal/domain"
)

func newTestContactService(repo domain.ContactRepository, notifier domain.ContactNotifier) *contactService {
	svc := NewContactService(repo, notifier, discardLogger(), time.Second).(*contactService)
	svc.now = fixedClock
	return svc
}

func TestContactService_Submit(t *testing.T) {
	repo := &fakeContactRepo{}
	notifier := &fakeNotifier{}
	svc := newTestContactService(repo, notifier)

	sub := domain.ContactSubmission{
		Name:    "Ada Lovelace",
		Email:   "ada@example.com",
		Subject: "Workshops",
		Message: "Do you run beginner workshops?",
	}
	c, err := svc.Submit(context.Background(), sub, "203.0.113.7")
	require.NoError(t, err)

	assert.Equal(t, "contact-1", c.ID)
	assert.Equal(t, domain.ContactStatusPending, c.Status)
	assert.Equal(t, "203.0.113.7", c.IPAddress)
	assert.Equal(t, fixedNow, c.CreatedAt)
	require.Len(t, notifier.notified, 1)
	assert.Same(t, c, notifier.notified[0])
}

func TestContactService_Submit_RepoErrorSkipsNotification(t *testing.T) {
	repo := &fakeContactRepo{err: errors.New("connection refused")}
	notifier := &fakeNotifier{}
	svc := newTestContactService(repo, notifier)

	_, err := svc.Submit(context.Background(), domain.ContactSubmission{Name: "Ada"}, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "create contact")
	assert.Empty(t, notifier.notified)
}

func TestContactService_List(t *testing.T) {
	repo := &fakeContactRepo{}
	svc := newTestContactService(repo, nil)

	contacts, total, err := svc.List(context.Background(), domain.ContactQuery{Status: "pending"})
	require.NoError(t, err)
	assert.NotNil(t, contacts)
	assert.Equal(t, 0, total)
	assert.Equal(t, []domain.SortField{{Field: domain.SortByCreatedAt, Desc: true}}, repo.lastQ.Sort)
	assert.Equal(t, "pending", repo.lastQ.Status)
}
