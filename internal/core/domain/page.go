package domain

const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Page is a 1-based offset pagination request.
type Page struct {
	Number int
	Limit  int
}

// NewPage normalizes raw query values: page defaults to 1, limit defaults to
// DefaultPageLimit and is capped at MaxPageLimit.
func NewPage(number, limit int) Page {
	if number < 1 {
		number = 1
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if limit > MaxPageLimit {
		limit = MaxPageLimit
	}
	return Page{Number: number, Limit: limit}
}

// Skip is the number of rows preceding this page.
func (p Page) Skip() int {
	if p.Number < 1 {
		return 0
	}
	return (p.Number - 1) * p.Limit
}

// Pages returns how many pages of p.Limit rows total spans.
func (p Page) Pages(total int64) int {
	if p.Limit <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}

// Pagination is the page metadata returned alongside list results.
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// PaginationFor builds the response metadata for p over total rows.
func PaginationFor(p Page, total int64) Pagination {
	return Pagination{Page: p.Number, Limit: p.Limit, Total: total, Pages: p.Pages(total)}
}
