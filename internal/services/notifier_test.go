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

func testContact() *domain.Contact {
	return &domain.Contact{
		ID:        "contact-1",
		Name:      "Ada Lovelace",
		Email:     "ada@example.com",
		Phone:     "555-123-4567",
		Subject:   "Workshops",
		Message:   "Do you run beginner workshops?",
		CreatedAt: fixedNow,
	}
}

func TestContactNotifier_SendsBothEmails(t *testing.T) {
	emails := &fakeEmailService{}
	n := NewContactNotifier(emails, NotifierConfig{AdminEmail: "admin@gotham.ai", SiteURL: "https://gotham.ai"}, discardLogger())
	n.now = fixedClock

	n.NotifyContact(testContact())
	require.NoError(t, n.Shutdown(context.Background()))

	require.Len(t, emails.confirmations, 1)
	assert.Equal(t, &domain.ContactConfirmationEmailData{
		Email: "ada@example.com", Name: "Ada Lovelace", SiteURL: "https://gotham.ai", Year: 2025,
	}, emails.confirmations[0])

	require.Len(t, emails.alerts, 1)
	alert := emails.alerts[0]
	assert.Equal(t, "admin@gotham.ai", alert.AdminEmail)
	assert.Equal(t, "555-123-4567", alert.Phone)
	assert.Equal(t, fixedNow, alert.SubmittedAt)
}

func TestContactNotifier_OneFailureDoesNotStopTheOther(t *testing.T) {
	emails := &fakeEmailService{confirmErr: errors.New("smtp: 535 auth failed")}
	n := NewContactNotifier(emails, NotifierConfig{AdminEmail: "admin@gotham.ai"}, discardLogger())

	n.NotifyContact(testContact())
	require.NoError(t, n.Shutdown(context.Background()))

	assert.Len(t, emails.confirmations, 1)
	assert.Len(t, emails.alerts, 1)
}

func TestContactNotifier_DoesNotBlockCaller(t *testing.T) {
	emails := &fakeEmailService{block: make(chan struct{})}
	n := NewContactNotifier(emails, NotifierConfig{AdminEmail: "admin@gotham.ai"}, discardLogger())

	returned := make(chan struct{})
	go func() {
		n.NotifyContact(testContact())
		close(returned)
	}()
	select {
	case <-returned:
	case <-time.After(time.Second):
		t.Fatal("NotifyContact blocked on email delivery")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.ErrorIs(t, n.Shutdown(ctx), context.DeadlineExceeded)

	close(emails.block)
	require.NoError(t, n.Shutdown(context.Background()))
}
