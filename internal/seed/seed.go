// Package seed loads starter events and resources into the store.
package seed

import (
	"context"
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gocarina/gocsv"

	"gothamai/internal/domain"
)

//go:embed data
var defaults embed.FS

// Embedded starter data.
const (
	DefaultEventsFile    = "data/events.json"
	DefaultResourcesFile = "data/resources.csv"
)

// tagList is a "|" separated CSV column.
type tagList []string

func (t *tagList) UnmarshalCSV(s string) error {
	out := []string{}
	for _, tag := range strings.Split(s, "|") {
		if tag = strings.TrimSpace(tag); tag != "" {
			out = append(out, tag)
		}
	}
	*t = out
	return nil
}

func (t tagList) MarshalCSV() (string, error) {
	return strings.Join(t, "|"), nil
}

// publishedFlag is the "published" CSV column. Empty means published.
type publishedFlag bool

func (p *publishedFlag) UnmarshalCSV(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		*p = true
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return fmt.Errorf("published: %w", err)
	}
	*p = publishedFlag(v)
	return nil
}

type resourceRow struct {
	Title       string         `csv:"title"`
	Slug        string         `csv:"slug"`
	Description string         `csv:"description"`
	Content     string         `csv:"content"`
	Type        string         `csv:"type"`
	Category    string         `csv:"category"`
	Difficulty  string         `csv:"difficulty"`
	Image       string         `csv:"image"`
	URL         string         `csv:"url"`
	Author      string         `csv:"author"`
	Tags        tagList        `csv:"tags"`
	Featured    bool           `csv:"featured"`
	Published   *publishedFlag `csv:"published"`
}

func (r resourceRow) toDomain() *domain.Resource {
	tags := []string(r.Tags)
	if tags == nil {
		tags = []string{}
	}
	return &domain.Resource{
		Title:       r.Title,
		Slug:        r.Slug,
		Description: r.Description,
		Content:     r.Content,
		Type:        r.Type,
		Category:    r.Category,
		Difficulty:  r.Difficulty,
		Image:       r.Image,
		URL:         r.URL,
		Author:      r.Author,
		Tags:        tags,
		Featured:    r.Featured,
		Published:   r.Published == nil || bool(*r.Published),
	}
}

// eventDoc and resourceDoc decode seed JSON. Published is a pointer so a
// missing key defaults to true, as it does for API writes.
type eventDoc struct {
	*domain.Event
	Published *bool `json:"published"`
}

type resourceDoc struct {
	*domain.Resource
	Published *bool `json:"published"`
}

// ReadEvents decodes a JSON array of events.
func ReadEvents(r io.Reader) ([]*domain.Event, error) {
	var docs []eventDoc
	if err := json.NewDecoder(r).Decode(&docs); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}
	events := make([]*domain.Event, 0, len(docs))
	for _, d := range docs {
		if d.Event == nil {
			d.Event = &domain.Event{}
		}
		d.Event.Published = d.Published == nil || *d.Published
		events = append(events, d.Event)
	}
	return events, nil
}

// ReadResources decodes resources as a JSON array or, when format is "csv",
// as CSV with a header row.
func ReadResources(r io.Reader, format string) ([]*domain.Resource, error) {
	if format != "csv" {
		var docs []resourceDoc
		if err := json.NewDecoder(r).Decode(&docs); err != nil {
			return nil, fmt.Errorf("decode resources: %w", err)
		}
		resources := make([]*domain.Resource, 0, len(docs))
		for _, d := range docs {
			if d.Resource == nil {
				d.Resource = &domain.Resource{}
			}
			d.Resource.Published = d.Published == nil || *d.Published
			resources = append(resources, d.Resource)
		}
		return resources, nil
	}

	var rows []*resourceRow
	if err := gocsv.Unmarshal(r, &rows); err != nil {
		return nil, fmt.Errorf("decode resources csv: %w", err)
	}
	resources := make([]*domain.Resource, 0, len(rows))
	for _, row := range rows {
		resources = append(resources, row.toDomain())
	}
	return resources, nil
}

// FormatOf picks the resource format from a file extension.
func FormatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".csv") {
		return "csv"
	}
	return "json"
}

// DefaultEvents returns the embedded starter events.
func DefaultEvents() ([]*domain.Event, error) {
	f, err := defaults.Open(DefaultEventsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadEvents(f)
}

// DefaultResources returns the embedded starter resources.
func DefaultResources() ([]*domain.Resource, error) {
	f, err := defaults.Open(DefaultResourcesFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return ReadResources(f, FormatOf(DefaultResourcesFile))
}

// Result counts what a Seeder run did.
type Result struct {
	EventsCreated    int
	EventsSkipped    int
	ResourcesCreated int
	ResourcesSkipped int
}

// Seeder creates entries through the services so they are validated and
// timestamped like API writes.
type Seeder struct {
	Events    domain.EventService
	Resources domain.ResourceService
	Logger    *slog.Logger
}

// Run creates every event and resource. Entries whose slug already exists
// are skipped, so running it twice is harmless. Any other error stops the run.
func (s *Seeder) Run(ctx context.Context, events []*domain.Event, resources []*domain.Resource) (Result, error) {
	var res Result
	for _, e := range events {
		created, err := skipConflict(s.Events.Create(ctx, e))
		if err != nil {
			return res, fmt.Errorf("event %q: %w", e.Slug, err)
		}
		if created {
			res.EventsCreated++
		} else {
			res.EventsSkipped++
			s.Logger.InfoContext(ctx, "event exists, skipping", "slug", e.Slug)
		}
	}
	for _, r := range resources {
		created, err := skipConflict(s.Resources.Create(ctx, r))
		if err != nil {
			return res, fmt.Errorf("resource %q: %w", r.Slug, err)
		}
		if created {
			res.ResourcesCreated++
		} else {
			res.ResourcesSkipped++
			s.Logger.InfoContext(ctx, "resource exists, skipping", "slug", r.Slug)
		}
	}
	return res, nil
}

func skipConflict(err error) (bool, error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, domain.ErrConflict) {
		return false, nil
	}
	return false, err
}
