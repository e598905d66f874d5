package validation

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gothamai/internal/domain"
)

func TestEvent(t *testing.T) {
	e := &domain.Event{
		Title:       "  AI Tech Session ",
		Slug:        " AI-Tech-Session-2025 ",
		Description: "Insights from industry leaders",
		Content:     "<p>About</p>",
		DateDisplay: "October 11, 2025",
		Time:        "12:30 PM - 4:00 PM",
		Location:    "Jaywant Auditorium",
		Image:       "/img/event.png",
		Category:    domain.EventCategoryTechnology,
	}
	require.NoError(t, Event(e))
	assert.Equal(t, "AI Tech Session", e.Title)
	assert.Equal(t, "ai-tech-session-2025", e.Slug)
	assert.NotNil(t, e.Gallery)
	assert.NotNil(t, e.Speakers)
	assert.NotNil(t, e.Tags)
}

func TestEvent_Invalid(t *testing.T) {
	e := &domain.Event{Title: "Only a title", Category: "Party", Attendees: -1}
	err := Event(e)
	require.Error(t, err)
	require.True(t, errors.Is(err, domain.ErrValidation))

	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Messages, "slug is required")
	assert.Contains(t, verr.Messages, "image is required")
	assert.Contains(t, verr.Messages, "attendees must be at least 0")
	assert.Contains(t, verr.Messages, "category must be one of: Technology, Gaming, Networking, Workshop, Seminar, Other")
}

func TestResource(t *testing.T) {
	r := &domain.Resource{
		Title:       "Natural Language Processing with Python",
		Slug:        "nlp-with-python",
		Description: "Hands-on NLP",
		Type:        "book",
		Category:    "NLP",
	}
	require.NoError(t, Resource(r))
	assert.Equal(t, domain.DefaultResourceDifficulty, r.Difficulty)
	assert.Equal(t, []string{}, r.Tags)
}

func TestResource_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		res     domain.Resource
		wantMsg string
	}{
		{"bad type", domain.Resource{Title: "t", Slug: "s", Description: "d", Type: "podcast", Category: "AI"},
			"type must be one of: article, tutorial, video, book, course, dataset, tool, paper, other"},
		{"bad difficulty", domain.Resource{Title: "t", Slug: "s", Description: "d", Type: "book", Category: "AI", Difficulty: "Expert"},
			"difficulty must be one of: Beginner, Intermediate, Advanced"},
		{"slug with spaces", domain.Resource{Title: "t", Slug: "two words", Description: "d", Type: "book", Category: "AI"},
			"slug must contain only lowercase letters, digits and dashes"},
		{"missing category", domain.Resource{Title: "t", Slug: "s", Description: "d", Type: "book"},
			"category is required"},
		{"views beyond column range", domain.Resource{Title: "t", Slug: "s", Description: "d", Type: "book", Category: "AI", Views: 1 << 31},
			"views must be at most 2147483647"},
		{"likes beyond column range", domain.Resource{Title: "t", Slug: "s", Description: "d", Type: "book", Category: "AI", Likes: 1 << 40},
			"likes must be at most 2147483647"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := tt.res
			err := Resource(&r)
			require.Error(t, err)
			assert.Equal(t, tt.wantMsg, err.Error())
		})
	}
}
