package model

const (
	// DefaultPageSize is used when a search does not ask for a page size.
	DefaultPageSize = 10
	// MaxPageSize bounds a single search page.
	MaxPageSize = 100
)

// ListingFilter holds the optional search predicates. Every set field must
// match; a nil or empty field places no constraint on its column.
type ListingFilter struct {
	PropertyType PropertyType
	DealType     DealType
	City         string
	District     string
	Rooms        *int
	MinPrice     *int64
	MaxPrice     *int64
	MinArea      *float64
	MaxArea      *float64
}

// Pagination is a 1-indexed page request.
type Pagination struct {
	Page     int
	PageSize int
}

// Normalize clamps the page to at least 1 and the size to [1, MaxPageSize],
// using DefaultPageSize when unset.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset is the number of records preceding the page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ListingPage is one slice of a search result.
type ListingPage struct {
	Listings   []Listing
	Total      int64
	Page       int
	PageSize   int
	TotalPages int64
}

// TotalPages returns ceil(total / pageSize).
func TotalPages(total int64, pageSize int) int64 {
	if pageSize <= 0 || total <= 0 {
		return 0
	}
	size := int64(pageSize)
	return (total + size - 1) / size
}
