package validation

import (
	"strings"

	"gothamai/internal/domain"
)

// Event normalizes e in place (trimmed title, lowercase slug, non-nil lists)
// and checks the event invariants.
func Event(e *domain.Event) error {
	e.Title = strings.TrimSpace(e.Title)
	e.Slug = normalizeSlug(e.Slug)
	if e.Gallery == nil {
		e.Gallery = []string{}
	}
	if e.Speakers == nil {
		e.Speakers = []domain.Speaker{}
	}
	if e.Tags == nil {
		e.Tags = []string{}
	}
	return entityError(validate.Struct(e))
}

// Resource normalizes r in place, applies the default difficulty and checks
// the resource invariants.
func Resource(r *domain.Resource) error {
	r.Title = strings.TrimSpace(r.Title)
	r.Slug = normalizeSlug(r.Slug)
	if r.Difficulty == "" {
		r.Difficulty = domain.DefaultResourceDifficulty
	}
	if r.Tags == nil {
		r.Tags = []string{}
	}
	return entityError(validate.Struct(r))
}

func normalizeSlug(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
