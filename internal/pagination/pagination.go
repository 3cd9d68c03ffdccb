// Package pagination computes page windows and envelope math for every
// listing endpoint. It is pure: callers apply the resulting offset/limit and
// any status filter identically to both the count and the fetch.
package pagination

const (
	// DefaultPage is used when no page is supplied
	DefaultPage = 1
	// DefaultLimit is used when no limit is supplied
	DefaultLimit = 10
	// MaxLimit caps the page size
	MaxLimit = 100
)

// Params holds the requested page window before normalization
type Params struct {
	Page  int
	Limit int
}

// Normalize applies defaults and clamps the window: page is at least 1,
// limit defaults to 10 and is clamped into [1, 100].
func (p Params) Normalize() Params {
	if p.Page < DefaultPage {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset returns the number of records to skip for the current window
func (p Params) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns ceil(total/limit), and 0 when total is 0
func TotalPages(total int64, limit int) int {
	if total <= 0 || limit <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
