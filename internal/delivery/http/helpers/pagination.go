package helpers

import (
	"math"
	"net/http"
	"strconv"
	"strings"

	"gothamai/internal/domain"
)

// Pagination query parameter defaults and limits.
const (
	DefaultPage          = 1
	DefaultResourceLimit = 12
	DefaultContactLimit  = 10
	MaxLimit             = 100
	// MaxPage keeps (page-1)*limit within int for any accepted limit.
	MaxPage = math.MaxInt / MaxLimit
)

// ParsePagination reads page and limit from the query string. Missing or
// non-numeric values fall back to the defaults; page is clamped to
// [1, MaxPage] and limit to [1, MaxLimit].
func ParsePagination(r *http.Request, defaultLimit int) domain.PaginationParams {
	q := r.URL.Query()
	page := DefaultPage
	if v, err := strconv.Atoi(strings.TrimSpace(q.Get("page"))); err == nil && v >= 1 {
		page = min(v, MaxPage)
	}
	limit := defaultLimit
	if v, err := strconv.Atoi(strings.TrimSpace(q.Get("limit"))); err == nil {
		limit = min(max(v, 1), MaxLimit)
	}
	return domain.PaginationParams{Page: page, PageSize: limit}
}

// PaginationMeta is the pagination block of list responses.
// swagger:model PaginationMeta
type PaginationMeta struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

// NewPaginationMeta builds PaginationMeta from the request pagination and the total match count.
func NewPaginationMeta(p domain.PaginationParams, total int) PaginationMeta {
	return PaginationMeta{
		Page:  p.Page,
		Limit: p.PageSize,
		Total: total,
		Pages: p.Pages(total),
	}
}

// EventQuery builds the public events listing query. published defaults to
// true; only an explicit "false" lists unpublished events.
func EventQuery(r *http.Request) domain.EventQuery {
	q := r.URL.Query()
	published := true
	if v, err := strconv.ParseBool(q.Get("published")); err == nil {
		published = v
	}
	return domain.EventQuery{
		Published: published,
		Status:    q.Get("status"),
		Category:  q.Get("category"),
		Sort:      []domain.SortField{{Field: domain.SortByDate, Desc: true}},
	}
}

// ResourceQuery builds the resources listing query. featured filters only
// when present, and is true only for the literal "true".
func ResourceQuery(r *http.Request) domain.ResourceQuery {
	q := r.URL.Query()
	rq := domain.ResourceQuery{
		Type:       q.Get("type"),
		Category:   q.Get("category"),
		Difficulty: q.Get("difficulty"),
		Search:     strings.TrimSpace(q.Get("search")),
		Sort: []domain.SortField{
			{Field: domain.SortByFeatured, Desc: true},
			{Field: domain.SortByCreatedAt, Desc: true},
		},
		Pagination: ParsePagination(r, DefaultResourceLimit),
	}
	if v := q.Get("featured"); v != "" {
		featured := v == "true"
		rq.Featured = &featured
	}
	return rq
}

// ContactQuery builds the administrative contacts listing query.
func ContactQuery(r *http.Request) domain.ContactQuery {
	return domain.ContactQuery{
		Status:     r.URL.Query().Get("status"),
		Sort:       []domain.SortField{{Field: domain.SortByCreatedAt, Desc: true}},
		Pagination: ParsePagination(r, DefaultContactLimit),
	}
}
