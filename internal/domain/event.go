package domain

import (
	"context"
	"time"
)

// Event categories.
const (
	EventCategoryTechnology = "Technology"
	EventCategoryGaming     = "Gaming"
	EventCategoryNetworking = "Networking"
	EventCategoryWorkshop   = "Workshop"
	EventCategorySeminar    = "Seminar"
	EventCategoryOther      = "Other"
)

// EventCategories lists every accepted event category.
var EventCategories = []string{
	EventCategoryTechnology, EventCategoryGaming, EventCategoryNetworking,
	EventCategoryWorkshop, EventCategorySeminar, EventCategoryOther,
}

// Values accepted by the events list status filter. They are derived from Date.
const (
	EventStatusUpcoming = "upcoming"
	EventStatusPast     = "past"
)

// Speaker is a person presenting at an event.
// swagger:model Speaker
type Speaker struct {
	Name  string `json:"name"`
	Title string `json:"title,omitempty"`
	Bio   string `json:"bio,omitempty"`
	Image string `json:"image,omitempty"`
}

// Event is a public-facing scheduled happening. Date and DateDisplay/Time are
// edited independently; neither is derived from the other.
// swagger:model Event
type Event struct {
	ID               string     `json:"_id"`
	Title            string     `json:"title" validate:"required"`
	Slug             string     `json:"slug" validate:"required,slug"`
	Description      string     `json:"description" validate:"required"`
	Content          string     `json:"content" validate:"required"`
	Date             *time.Time `json:"date,omitempty"`
	DateDisplay      string     `json:"dateDisplay" validate:"required"`
	Time             string     `json:"time" validate:"required"`
	Location         string     `json:"location" validate:"required"`
	Image            string     `json:"image" validate:"required"`
	Gallery          []string   `json:"gallery"`
	Attendees        int        `json:"attendees" validate:"min=0,max=2147483647"`
	Category         string     `json:"category,omitempty" validate:"omitempty,eventcategory"`
	Speakers         []Speaker  `json:"speakers" validate:"dive"`
	RegistrationLink string     `json:"registrationLink,omitempty"`
	Tags             []string   `json:"tags"`
	Published        bool       `json:"published"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
}

// EventQuery selects events for the public listing.
type EventQuery struct {
	Published bool
	Status    string
	Category  string
	Now       time.Time
	Sort      []SortField
}

// EventRepository defines storage for events.
type EventRepository interface {
	Create(ctx context.Context, e *Event) error
	List(ctx context.Context, q EventQuery) ([]*Event, error)
	GetPublishedBySlug(ctx context.Context, slug string) (*Event, error)
	Update(ctx context.Context, e *Event) error
	Delete(ctx context.Context, id string) (*Event, error)
}

// EventService defines event listing and administration.
type EventService interface {
	List(ctx context.Context, q EventQuery) ([]*Event, error)
	GetBySlug(ctx context.Context, slug string) (*Event, error)
	Create(ctx context.Context, e *Event) error
	Update(ctx context.Context, id string, e *Event) (*Event, error)
	Delete(ctx context.Context, id string) error
}
