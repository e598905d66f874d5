package services

import (
	"context"
	"fmt"
	"log/slog"

	"gothamai/internal/domain"
)

type emailService struct {
	mailer   domain.Mailer
	renderer domain.EmailTemplateRenderer
	logger   *slog.Logger
}

// NewEmailService returns an EmailService that uses the given Mailer and template renderer.
func NewEmailService(mailer domain.Mailer, renderer domain.EmailTemplateRenderer, logger *slog.Logger) domain.EmailService {
	return &emailService{mailer: mailer, renderer: renderer, logger: logger}
}

// SendContactConfirmation thanks the submitter using the "contact_confirmation" template.
func (s *emailService) SendContactConfirmation(ctx context.Context, data *domain.ContactConfirmationEmailData) error {
	if data == nil {
		return fmt.Errorf("contact confirmation data is nil")
	}
	if err := s.send(ctx, "contact_confirmation", data.Email, data); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "contact confirmation sent", "to", data.Email)
	return nil
}

// SendContactAlert tells the administrator about a new inquiry using the "contact_alert" template.
func (s *emailService) SendContactAlert(ctx context.Context, data *domain.ContactAlertEmailData) error {
	if data == nil {
		return fmt.Errorf("contact alert data is nil")
	}
	if data.AdminEmail == "" {
		return fmt.Errorf("contact alert has no recipient")
	}
	if err := s.send(ctx, "contact_alert", data.AdminEmail, data); err != nil {
		return err
	}
	s.logger.InfoContext(ctx, "contact alert sent", "to", data.AdminEmail)
	return nil
}

func (s *emailService) send(ctx context.Context, template, to string, data any) error {
	subject, htmlBody, textBody, err := s.renderer.Render(template, data)
	if err != nil {
		return fmt.Errorf("failed to render %s template: %w", template, err)
	}
	if err := s.mailer.Send(ctx, to, subject, htmlBody, textBody); err != nil {
		return fmt.Errorf("failed to send %s email: %w", template, err)
	}
	return nil
}
