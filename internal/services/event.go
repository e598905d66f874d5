package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gothamai/internal/domain"
	"gothamai/internal/validation"
)

type eventService struct {
	repo           domain.EventRepository
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

func NewEventService(repo domain.EventRepository, logger *slog.Logger, timeout time.Duration) domain.EventService {
	return &eventService{
		repo:           repo,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *eventService) List(ctx context.Context, q domain.EventQuery) ([]*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if q.Now.IsZero() {
		q.Now = s.now().UTC()
	}
	if len(q.Sort) == 0 {
		q.Sort = []domain.SortField{{Field: domain.SortByDate, Desc: true}}
	}
	events, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	if events == nil {
		events = []*domain.Event{}
	}
	return events, nil
}

func (s *eventService) GetBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	e, err := s.repo.GetPublishedBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Entity: "Event"}
		}
		return nil, fmt.Errorf("get event: %w", err)
	}
	return e, nil
}

func (s *eventService) Create(ctx context.Context, e *domain.Event) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validation.Event(e); err != nil {
		return err
	}
	now := s.now().UTC()
	e.CreatedAt = now
	e.UpdatedAt = now
	if err := s.repo.Create(ctx, e); err != nil {
		return wrapWrite("create event", err)
	}
	s.logger.InfoContext(ctx, "event created", "event_id", e.ID, "slug", e.Slug)
	return nil
}

// Update replaces every editable field of the event with id.
func (s *eventService) Update(ctx context.Context, id string, e *domain.Event) (*domain.Event, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validation.Event(e); err != nil {
		return nil, err
	}
	e.ID = id
	e.UpdatedAt = s.now().UTC()
	if err := s.repo.Update(ctx, e); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Entity: "Event"}
		}
		return nil, wrapWrite("update event", err)
	}
	s.logger.InfoContext(ctx, "event updated", "event_id", e.ID, "slug", e.Slug)
	return e, nil
}

func (s *eventService) Delete(ctx context.Context, id string) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	e, err := s.repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return &domain.NotFoundError{Entity: "Event"}
		}
		return fmt.Errorf("delete event: %w", err)
	}
	s.logger.InfoContext(ctx, "event deleted", "event_id", id, "slug", e.Slug)
	return nil
}

// wrapWrite keeps conflicts unwrapped so their message reaches the client as is.
func wrapWrite(op string, err error) error {
	var conflict *domain.ConflictError
	if errors.As(err, &conflict) {
		return conflict
	}
	return fmt.Errorf("%s: %w", op, err)
}
