package domain

import (
	"context"
	"time"
)

// Mailer defines the contract for sending emails (infrastructure port).
type Mailer interface {
	Send(ctx context.Context, to, subject, html, text string) error
}

// EmailTemplateRenderer renders email content from a named template with the given data.
type EmailTemplateRenderer interface {
	Render(templateName string, data any) (subject, htmlBody, textBody string, err error)
}

// ContactConfirmationEmailData holds data for the thank-you email sent to the submitter.
type ContactConfirmationEmailData struct {
	Email   string
	Name    string
	SiteURL string
	Year    int
}

// ContactAlertEmailData holds data for the new-inquiry email sent to the administrator.
type ContactAlertEmailData struct {
	AdminEmail  string
	Name        string
	Email       string
	Phone       string
	Subject     string
	Message     string
	SubmittedAt time.Time
}

// EmailService defines the contract for sending domain-level emails.
type EmailService interface {
	SendContactConfirmation(ctx context.Context, data *ContactConfirmationEmailData) error
	SendContactAlert(ctx context.Context, data *ContactAlertEmailData) error
}

// ContactNotifier dispatches contact emails without blocking the caller.
type ContactNotifier interface {
	NotifyContact(c *Contact)
}
