package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"gothamai/internal/domain"
)

type resourceRepository struct {
	DB *sql.DB
}

// NewResourceRepository returns a domain.ResourceRepository implemented with Postgres.
func NewResourceRepository(db *sql.DB) domain.ResourceRepository {
	return &resourceRepository{DB: db}
}

var resourceSortColumns = map[string]string{
	domain.SortByFeatured:  "featured",
	domain.SortByCreatedAt: "created_at",
}

const resourceColumns = `id, title, slug, description, content, type, category, difficulty, image, url, author,
	tags, featured, views, likes, published, created_at, updated_at`

func scanResource(s scanner) (*domain.Resource, error) {
	res := &domain.Resource{}
	err := s.Scan(
		&res.ID, &res.Title, &res.Slug, &res.Description, &res.Content, &res.Type, &res.Category, &res.Difficulty,
		&res.Image, &res.URL, &res.Author, pq.Array(&res.Tags), &res.Featured, &res.Views, &res.Likes,
		&res.Published, &res.CreatedAt, &res.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if res.Tags == nil {
		res.Tags = []string{}
	}
	return res, nil
}

func scanResources(rows *sql.Rows) ([]*domain.Resource, error) {
	defer rows.Close()
	resources := make([]*domain.Resource, 0)
	for rows.Next() {
		res, err := scanResource(rows)
		if err != nil {
			return nil, err
		}
		resources = append(resources, res)
	}
	return resources, rows.Err()
}

func (r *resourceRepository) Create(ctx context.Context, res *domain.Resource) error {
	query := `
		INSERT INTO resources (title, slug, description, content, type, category, difficulty, image, url, author,
			tags, featured, views, likes, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		RETURNING id
	`
	err := r.DB.QueryRowContext(ctx, query,
		res.Title, res.Slug, res.Description, res.Content, res.Type, res.Category, res.Difficulty, res.Image,
		res.URL, res.Author, pq.Array(res.Tags), res.Featured, res.Views, res.Likes, res.Published,
		res.CreatedAt, res.UpdatedAt,
	).Scan(&res.ID)
	if isUniqueViolation(err) {
		return &domain.ConflictError{Entity: "Resource", Field: "slug", Value: res.Slug}
	}
	return err
}

func resourceConditions(q domain.ResourceQuery) *conditions {
	conds := &conditions{}
	conds.addRaw("published = TRUE")
	if q.Type != "" {
		conds.add("type = %s", q.Type)
	}
	if q.Category != "" {
		conds.add("category = %s", q.Category)
	}
	if q.Difficulty != "" {
		conds.add("difficulty = %s", q.Difficulty)
	}
	if q.Featured != nil {
		conds.add("featured = %s", *q.Featured)
	}
	if q.Search != "" {
		conds.add("(title ILIKE %s OR description ILIKE %s OR EXISTS (SELECT 1 FROM unnest(tags) AS tag WHERE tag ILIKE %s))",
			containsPattern(q.Search))
	}
	return conds
}

func (r *resourceRepository) List(ctx context.Context, q domain.ResourceQuery) ([]*domain.Resource, int, error) {
	conds := resourceConditions(q)

	var total int
	if err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM resources`+conds.where(), conds.args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `SELECT ` + resourceColumns + ` FROM resources` + conds.where() + pageOrderBy(q.Sort, resourceSortColumns)
	query += " LIMIT " + conds.next(q.Pagination.PageSize) + " OFFSET " + conds.next(q.Pagination.Offset())
	rows, err := r.DB.QueryContext(ctx, query, conds.args...)
	if err != nil {
		return nil, 0, err
	}
	resources, err := scanResources(rows)
	if err != nil {
		return nil, 0, err
	}
	return resources, total, nil
}

// IncrementViewsBySlug bumps the counter and reads the row in one statement so
// concurrent detail views never lose an increment.
func (r *resourceRepository) IncrementViewsBySlug(ctx context.Context, slug string) (*domain.Resource, error) {
	query := `UPDATE resources SET views = views + 1 WHERE slug = $1 AND published = TRUE RETURNING ` + resourceColumns
	res, err := scanResource(r.DB.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (r *resourceRepository) ListFeatured(ctx context.Context, limit int) ([]*domain.Resource, error) {
	query := `SELECT ` + resourceColumns + ` FROM resources
		WHERE published = TRUE AND featured = TRUE
		ORDER BY created_at DESC
		LIMIT $1`
	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	return scanResources(rows)
}
