package services

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"gothamai/internal/domain"
)

// ContactNotifier sends the confirmation and alert emails for a new contact
// in the background. Delivery is best effort: failures are logged and never
// retried.
type ContactNotifier struct {
	emails     domain.EmailService
	adminEmail string
	siteURL    string
	timeout    time.Duration
	logger     *slog.Logger
	now        func() time.Time

	wg sync.WaitGroup
}

// NotifierConfig holds the recipients and limits used by ContactNotifier.
type NotifierConfig struct {
	AdminEmail string
	SiteURL    string
	// Timeout bounds both sends together.
	Timeout time.Duration
}

func NewContactNotifier(emails domain.EmailService, cfg NotifierConfig, logger *slog.Logger) *ContactNotifier {
	if cfg.Timeout <= 0 {
		cfg.Timeout = 30 * time.Second
	}
	return &ContactNotifier{
		emails:     emails,
		adminEmail: cfg.AdminEmail,
		siteURL:    cfg.SiteURL,
		timeout:    cfg.Timeout,
		logger:     logger,
		now:        time.Now,
	}
}

// NotifyContact returns immediately; the emails are sent concurrently on a
// detached goroutine.
func (n *ContactNotifier) NotifyContact(c *domain.Contact) {
	n.wg.Add(1)
	go func() {
		defer n.wg.Done()
		n.notify(c)
	}()
}

func (n *ContactNotifier) notify(c *domain.Contact) {
	ctx, cancel := context.WithTimeout(context.Background(), n.timeout)
	defer cancel()

	var g errgroup.Group
	g.Go(func() error {
		err := n.emails.SendContactConfirmation(ctx, &domain.ContactConfirmationEmailData{
			Email:   c.Email,
			Name:    c.Name,
			SiteURL: n.siteURL,
			Year:    n.now().Year(),
		})
		if err != nil {
			n.logger.Error("error sending thank you email", "contact_id", c.ID, "error", err)
		}
		return err
	})
	g.Go(func() error {
		submittedAt := c.CreatedAt
		if submittedAt.IsZero() {
			submittedAt = n.now()
		}
		err := n.emails.SendContactAlert(ctx, &domain.ContactAlertEmailData{
			AdminEmail:  n.adminEmail,
			Name:        c.Name,
			Email:       c.Email,
			Phone:       c.Phone,
			Subject:     c.Subject,
			Message:     c.Message,
			SubmittedAt: submittedAt,
		})
		if err != nil {
			n.logger.Error("error sending admin notification", "contact_id", c.ID, "error", err)
		}
		return err
	})
	if err := g.Wait(); err == nil {
		n.logger.Info("contact notifications sent", "contact_id", c.ID)
	}
}

// Shutdown waits for in-flight notifications or until ctx is done.
func (n *ContactNotifier) Shutdown(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		n.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
