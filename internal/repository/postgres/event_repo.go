package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"gothamai/internal/domain"
)

type eventRepository struct {
	DB *sql.DB
}

// NewEventRepository returns a domain.EventRepository implemented with Postgres.
func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{DB: db}
}

var eventSortColumns = map[string]string{
	domain.SortByDate:      "date",
	domain.SortByCreatedAt: "created_at",
}

const eventColumns = `id, title, slug, description, content, date, date_display, time, location, image,
	gallery, attendees, category, speakers, registration_link, tags, published, created_at, updated_at`

func scanEvent(s scanner) (*domain.Event, error) {
	e := &domain.Event{}
	var date sql.NullTime
	var speakers []byte
	err := s.Scan(
		&e.ID, &e.Title, &e.Slug, &e.Description, &e.Content, &date, &e.DateDisplay, &e.Time, &e.Location, &e.Image,
		pq.Array(&e.Gallery), &e.Attendees, &e.Category, &speakers, &e.RegistrationLink, pq.Array(&e.Tags),
		&e.Published, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if date.Valid {
		e.Date = &date.Time
	}
	if err := json.Unmarshal(speakers, &e.Speakers); err != nil {
		return nil, fmt.Errorf("decode speakers: %w", err)
	}
	if e.Gallery == nil {
		e.Gallery = []string{}
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	if e.Speakers == nil {
		e.Speakers = []domain.Speaker{}
	}
	return e, nil
}

func encodeSpeakers(speakers []domain.Speaker) ([]byte, error) {
	if speakers == nil {
		speakers = []domain.Speaker{}
	}
	return json.Marshal(speakers)
}

func nullTime(e *domain.Event) sql.NullTime {
	if e.Date == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: *e.Date, Valid: true}
}

func eventConflict(e *domain.Event) error {
	return &domain.ConflictError{Entity: "Event", Field: "slug", Value: e.Slug}
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	speakers, err := encodeSpeakers(e.Speakers)
	if err != nil {
		return err
	}
	query := `
		INSERT INTO events (title, slug, description, content, date, date_display, time, location, image,
			gallery, attendees, category, speakers, registration_link, tags, published, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING id
	`
	err = r.DB.QueryRowContext(ctx, query,
		e.Title, e.Slug, e.Description, e.Content, nullTime(e), e.DateDisplay, e.Time, e.Location, e.Image,
		pq.Array(e.Gallery), e.Attendees, e.Category, speakers, e.RegistrationLink, pq.Array(e.Tags),
		e.Published, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
	if isUniqueViolation(err) {
		return eventConflict(e)
	}
	return err
}

func (r *eventRepository) List(ctx context.Context, q domain.EventQuery) ([]*domain.Event, error) {
	var conds conditions
	conds.add("published = %s", q.Published)
	if q.Category != "" {
		conds.add("category = %s", q.Category)
	}
	switch q.Status {
	case "":
	case domain.EventStatusUpcoming:
		conds.add("date >= %s", q.Now)
	case domain.EventStatusPast:
		conds.add("date < %s", q.Now)
	default:
		conds.addRaw("FALSE")
	}

	query := `SELECT ` + eventColumns + ` FROM events` + conds.where() + orderBy(q.Sort, eventSortColumns)
	rows, err := r.DB.QueryContext(ctx, query, conds.args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetPublishedBySlug(ctx context.Context, slug string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE slug = $1 AND published = TRUE`
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, slug))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

// Update replaces every editable column of the event identified by e.ID.
func (r *eventRepository) Update(ctx context.Context, e *domain.Event) error {
	if !validID(e.ID) {
		return domain.ErrNotFound
	}
	speakers, err := encodeSpeakers(e.Speakers)
	if err != nil {
		return err
	}
	query := `
		UPDATE events SET title = $1, slug = $2, description = $3, content = $4, date = $5, date_display = $6,
			time = $7, location = $8, image = $9, gallery = $10, attendees = $11, category = $12, speakers = $13,
			registration_link = $14, tags = $15, published = $16, updated_at = $17
		WHERE id = $18
		RETURNING created_at
	`
	err = r.DB.QueryRowContext(ctx, query,
		e.Title, e.Slug, e.Description, e.Content, nullTime(e), e.DateDisplay, e.Time, e.Location, e.Image,
		pq.Array(e.Gallery), e.Attendees, e.Category, speakers, e.RegistrationLink, pq.Array(e.Tags),
		e.Published, e.UpdatedAt, e.ID,
	).Scan(&e.CreatedAt)
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return domain.ErrNotFound
	case isUniqueViolation(err):
		return eventConflict(e)
	}
	return err
}

// Delete removes the event and returns it as it was before deletion.
func (r *eventRepository) Delete(ctx context.Context, id string) (*domain.Event, error) {
	if !validID(id) {
		return nil, domain.ErrNotFound
	}
	query := `DELETE FROM events WHERE id = $1 RETURNING ` + eventColumns
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}
