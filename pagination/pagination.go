// Package pagination provides skip/limit page math and query parameter
// parsing for listing endpoints. Pagination is purely positional: a
// concurrent insert between two page fetches can shift result
// boundaries, which is acceptable for a content site.
package pagination

import (
	"fmt"
	"strconv"
)

// ItemsPerPage is the fixed page size for category listings.
const ItemsPerPage = 10

// Metadata is included in paginated API responses.
type Metadata struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int   `json:"totalPages"`
}

// NewMetadata builds response metadata for the given page.
func NewMetadata(total int64, page, limit int) Metadata {
	return Metadata{
		Total:      total,
		Page:       page,
		Limit:      limit,
		TotalPages: TotalPages(total, limit),
	}
}

// ParsePage parses a raw page parameter. Empty input defaults to page 1;
// anything that is not a positive integer is rejected.
func ParsePage(raw string) (int, error) {
	if raw == "" {
		return 1, nil
	}
	page, err := strconv.Atoi(raw)
	if err != nil || page < 1 {
		return 0, fmt.Errorf("page must be a positive integer, got %q", raw)
	}
	return page, nil
}

// Offset returns the number of documents to skip for a 1-based page.
func Offset(page, limit int) int64 {
	return int64(page-1) * int64(limit)
}

// TotalPages returns the page count for total items, at least 1.
func TotalPages(total int64, limit int) int {
	if total <= 0 {
		return 1
	}
	return int((total + int64(limit) - 1) / int64(limit))
}
