package domain

import (
	"context"
	"time"
)

// Resource types.
var ResourceTypes = []string{"article", "tutorial", "video", "book", "course", "dataset", "tool", "paper", "other"}

// Resource categories.
var ResourceCategories = []string{"AI", "Machine Learning", "Deep Learning", "NLP", "Computer Vision", "Robotics", "Data Science", "Other"}

// Resource difficulties. The first one is the default.
var ResourceDifficulties = []string{"Beginner", "Intermediate", "Advanced"}

// DefaultResourceDifficulty is applied when a resource is created without one.
const DefaultResourceDifficulty = "Beginner"

// FeaturedResourcesLimit caps the curated highlight list.
const FeaturedResourcesLimit = 6

// Resource is a learning-material listing.
// swagger:model Resource
type Resource struct {
	ID          string    `json:"_id"`
	Title       string    `json:"title" validate:"required"`
	Slug        string    `json:"slug" validate:"required,slug"`
	Description string    `json:"description" validate:"required"`
	Content     string    `json:"content,omitempty"`
	Type        string    `json:"type" validate:"required,resourcetype"`
	Category    string    `json:"category" validate:"required,resourcecategory"`
	Difficulty  string    `json:"difficulty" validate:"required,difficulty"`
	Image       string    `json:"image,omitempty"`
	URL         string    `json:"url,omitempty"`
	Author      string    `json:"author,omitempty"`
	Tags        []string  `json:"tags"`
	Featured    bool      `json:"featured"`
	Views       int       `json:"views" validate:"min=0,max=2147483647"`
	Likes       int       `json:"likes" validate:"min=0,max=2147483647"`
	Published   bool      `json:"published"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ResourceQuery selects published resources. Search matches title, description
// or any tag, case-insensitively, as a literal substring.
type ResourceQuery struct {
	Type       string
	Category   string
	Difficulty string
	Featured   *bool
	Search     string
	Sort       []SortField
	Pagination PaginationParams
}

// ResourceRepository defines storage for resources.
type ResourceRepository interface {
	Create(ctx context.Context, r *Resource) error
	List(ctx context.Context, q ResourceQuery) ([]*Resource, int, error)
	// IncrementViewsBySlug atomically adds one view to the published resource
	// with the slug and returns it after the increment.
	IncrementViewsBySlug(ctx context.Context, slug string) (*Resource, error)
	ListFeatured(ctx context.Context, limit int) ([]*Resource, error)
}

// ResourceService defines resource listing and administration.
type ResourceService interface {
	List(ctx context.Context, q ResourceQuery) ([]*Resource, int, error)
	GetBySlug(ctx context.Context, slug string) (*Resource, error)
	Featured(ctx context.Context) ([]*Resource, error)
	Create(ctx context.Context, r *Resource) error
}
