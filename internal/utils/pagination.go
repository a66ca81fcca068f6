package utils

import (
	"math"
	"strconv"
)

// Listing page sizes. Post listings use PerPage; short auxiliary lists
// (sidebars and the like) use PerPageAux.
const (
	PerPage    = 10
	PerPageAux = 5
)

// Pagination describes one page of an ordered result set. Pages are
// 1-indexed; a bad page request clamps to the nearest valid page instead of
// failing.
type Pagination struct {
	CurrentPage int
	TotalPages  int
	TotalCount  int64
	PerPage     int
	Offset      int
	HasNext     bool
	HasPrev     bool
}

// Paginate resolves a raw page parameter (usually the "page" query value)
// against a total item count. Non-numeric input lands on the first page,
// out-of-range input on the first or last page.
func Paginate(raw string, total int64, perPage int) Pagination {
	totalPages := int(math.Ceil(float64(total) / float64(perPage)))
	if totalPages == 0 {
		totalPages = 1
	}

	page := 1
	if raw != "" {
		if n, err := strconv.Atoi(raw); err == nil {
			page = n
		}
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Pagination{
		CurrentPage: page,
		TotalPages:  totalPages,
		TotalCount:  total,
		PerPage:     perPage,
		Offset:      (page - 1) * perPage,
		HasNext:     page < totalPages,
		HasPrev:     page > 1,
	}
}
