package domain

import "math"

// PaginationParams holds offset-based pagination parameters for list queries.
type PaginationParams struct {
	Page     int
	PageSize int
}

// Offset returns the row offset for the current page (0-based).
// Formula: (Page - 1) * PageSize, saturating at math.MaxInt.
func (p PaginationParams) Offset() int {
	if p.Page < 1 || p.PageSize < 1 {
		return 0
	}
	if p.Page-1 > math.MaxInt/p.PageSize {
		return math.MaxInt
	}
	return (p.Page - 1) * p.PageSize
}

// Pages returns ceil(total / PageSize), or 0 when PageSize is not positive.
func (p PaginationParams) Pages(total int) int {
	if p.PageSize <= 0 {
		return 0
	}
	return (total + p.PageSize - 1) / p.PageSize
}

// SortField is one key of a sort order.
type SortField struct {
	Field string
	Desc  bool
}

// Sortable field names shared by the repositories.
const (
	SortByDate      = "date"
	SortByCreatedAt = "createdAt"
	SortByFeatured  = "featured"
)
