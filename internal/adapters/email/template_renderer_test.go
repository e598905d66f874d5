package email

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gothamai/internal/domain"
)

func TestTemplateRenderer_ContactConfirmation(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	subject, html, text, err := r.Render("contact_confirmation", &domain.ContactConfirmationEmailData{
		Email: "ada@example.com", Name: "Ada", SiteURL: "https://gotham.ai", Year: 2025,
	})
	require.NoError(t, err)
	assert.Equal(t, "Thank You for Contacting Gotham AI", subject)
	assert.Contains(t, html, "Hello Ada!")
	assert.Contains(t, html, `href="https://gotham.ai/events"`)
	assert.Contains(t, html, "&copy; 2025 Gotham AI")
	assert.Contains(t, text, "Resources: https://gotham.ai/resources")
}

func TestTemplateRenderer_ContactAlert(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	data := &domain.ContactAlertEmailData{
		AdminEmail:  "admin@gotham.ai",
		Name:        "<b>Mallory</b>",
		Email:       "mallory@example.com",
		Subject:     "Sponsorship",
		Message:     "Hello there, we'd like to sponsor.",
		SubmittedAt: time.Date(2025, 11, 1, 9, 30, 0, 0, time.UTC),
	}
	subject, html, text, err := r.Render("contact_alert", data)
	require.NoError(t, err)

	assert.Equal(t, "New Contact Form Submission from <b>Mallory</b>", subject)
	assert.Contains(t, html, "&lt;b&gt;Mallory&lt;/b&gt;")
	assert.NotContains(t, html, "Phone:")
	assert.Contains(t, text, "Submitted At: Nov 1, 2025 at 9:30 AM UTC")

	data.Phone = "555-123-4567"
	_, html, _, err = r.Render("contact_alert", data)
	require.NoError(t, err)
	assert.Contains(t, html, "555-123-4567")
}

func TestTemplateRenderer_UnknownTemplate(t *testing.T) {
	r, err := NewTemplateRenderer()
	require.NoError(t, err)

	_, _, _, err = r.Render("welcome", nil)
	require.Error(t, err)
}
