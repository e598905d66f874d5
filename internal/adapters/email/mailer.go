package email

import (
	"context"
	"fmt"
	"log/slog"
	"net/mail"

	"gothamai/internal/domain"
)

// Mail providers.
const (
	ProviderSES  = "ses"
	ProviderSMTP = "smtp"
	ProviderNoop = "noop"
)

// MailerConfig selects the delivery provider and the sender identity.
type MailerConfig struct {
	Provider    string
	FromAddress string
	FromName    string
	SES         SESConfig
	SMTP        SMTPConfig
}

// NewMailer builds the mailer for config.Provider. Without a provider, or with
// one it does not know, mail is only logged so local setups work unconfigured.
func NewMailer(config MailerConfig, logger *slog.Logger) (domain.Mailer, error) {
	from := formatAddress(config.FromName, config.FromAddress)
	switch config.Provider {
	case ProviderSES:
		return newSESMailer(config.SES, from, logger), nil
	case ProviderSMTP:
		if config.SMTP.Host == "" || config.FromAddress == "" {
			return nil, fmt.Errorf("smtp mailer needs a host and a from address")
		}
		return newSMTPMailer(config.SMTP, config.FromAddress, config.FromName, logger), nil
	case ProviderNoop, "":
		return &noopMailer{logger: logger}, nil
	default:
		logger.Warn("unknown email provider, using noop", "provider", config.Provider)
		return &noopMailer{logger: logger}, nil
	}
}

type noopMailer struct {
	logger *slog.Logger
}

func (n *noopMailer) Send(ctx context.Context, to, subject, html, text string) error {
	n.logger.InfoContext(ctx, "email would be sent (noop)", "to", to, "subject", subject)
	return nil
}

// formatAddress renders "Name <address>", quoting the name when needed.
func formatAddress(name, address string) string {
	if name == "" {
		return address
	}
	return (&mail.Address{Name: name, Address: address}).String()
}
