// Package pagination implements the page/limit contract shared by list endpoints.
package pagination

// DefaultLimit applies when the caller omits or mangles the limit parameter.
const (
	DefaultLimit = 20
	MaxLimit     = 100
)

// Page carries the requested window.
type Page struct {
	Page  int
	Limit int
}

// Clamp normalizes out-of-range values: page >= 1, 1 <= limit <= MaxLimit.
func (p Page) Clamp() Page {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset converts the window to a row offset.
func (p Page) Offset() int {
	return (p.Page - 1) * p.Limit
}

// Pagination is the metadata block accompanying list responses.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// Build derives response metadata from a clamped page and a total row count.
func Build(p Page, total int64) Pagination {
	p = p.Clamp()
	pages := int((total + int64(p.Limit) - 1) / int64(p.Limit))
	if pages < 1 {
		pages = 1
	}
	return Pagination{Page: p.Page, Limit: p.Limit, Total: total, TotalPages: pages}
}
