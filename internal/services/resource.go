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

type resourceService struct {
	repo           domain.ResourceRepository
	logger         *slog.Logger
	contextTimeout time.Duration
	now            func() time.Time
}

func NewResourceService(repo domain.ResourceRepository, logger *slog.Logger, timeout time.Duration) domain.ResourceService {
	return &resourceService{
		repo:           repo,
		logger:         logger,
		contextTimeout: timeout,
		now:            time.Now,
	}
}

func (s *resourceService) List(ctx context.Context, q domain.ResourceQuery) ([]*domain.Resource, int, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if len(q.Sort) == 0 {
		q.Sort = []domain.SortField{
			{Field: domain.SortByFeatured, Desc: true},
			{Field: domain.SortByCreatedAt, Desc: true},
		}
	}
	resources, total, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, 0, fmt.Errorf("list resources: %w", err)
	}
	if resources == nil {
		resources = []*domain.Resource{}
	}
	return resources, total, nil
}

// GetBySlug returns the published resource and counts the view in the same
// store operation.
func (s *resourceService) GetBySlug(ctx context.Context, slug string) (*domain.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	r, err := s.repo.IncrementViewsBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, &domain.NotFoundError{Entity: "Resource"}
		}
		return nil, fmt.Errorf("get resource: %w", err)
	}
	return r, nil
}

func (s *resourceService) Featured(ctx context.Context) ([]*domain.Resource, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	resources, err := s.repo.ListFeatured(ctx, domain.FeaturedResourcesLimit)
	if err != nil {
		return nil, fmt.Errorf("list featured resources: %w", err)
	}
	if resources == nil {
		resources = []*domain.Resource{}
	}
	return resources, nil
}

func (s *resourceService) Create(ctx context.Context, r *domain.Resource) error {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	if err := validation.Resource(r); err != nil {
		return err
	}
	now := s.now().UTC()
	r.CreatedAt = now
	r.UpdatedAt = now
	if err := s.repo.Create(ctx, r); err != nil {
		return wrapWrite("create resource", err)
	}
	s.logger.InfoContext(ctx, "resource created", "resource_id", r.ID, "slug", r.Slug)
	return nil
}
