package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gothamai/internal/domain"
)

type contactService struct {
	repo           domain.ContactRepository
	notifier       domain.ContactNotifier
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

// NewContactService persists contact submissions and hands them to the notifier.
func NewContactService(repo domain.ContactRepository, notifier domain.ContactNotifier, logger *slog.Logger, timeout time.Duration) domain.ContactService {
	return &contactService{
		repo:           repo,
		notifier:       notifier,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

// Submit stores an already validated submission. Notification happens after
// the contact is persisted and is not awaited.
func (s *contactService) Submit(ctx context.Context, sub domain.ContactSubmission, ipAddress string) (*domain.Contact, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	c := domain.NewContact(sub, ipAddress, s.now().UTC())
	if err := s.repo.Create(ctx, c); err != nil {
		return nil, fmt.Errorf("create contact: %w", err)
	}
	s.logger.InfoContext(ctx, "contact submitted", "contact_id", c.ID, "email", c.Email)

	if s.notifier != nil {
		s.notifier.NotifyContact(c)
	}
	return c, nil
}

func (s *contactService) List(ctx context.Context, q domain.ContactQuery) ([]*domain.Contact, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if len(q.Sort) == 0 {
		q.Sort = []domain.SortField{{Field: domain.SortByCreatedAt, Desc: true}}
	}
	contacts, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("list contacts: %w", err)
	}
	if contacts == nil {
		contacts = []*domain.Contact{}
	}
	return contacts, total, nil
}
