package helpers

import (
	"github.com/revams/api/internal/app/models/dto"
)

const (
	DefaultPageSize = 10
	MaxPageSize     = 100
	DefaultPage     = 1 // Default page is 1-based
)

// CalculateOffsetLimit calculates the offset and limit for SQL queries based on 1-based page index.
func CalculateOffsetLimit(page, limit int) (offset uint64, size uint64) {
	if limit <= 0 || limit > MaxPageSize {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	return uint64((page - 1) * limit), uint64(limit)
}

// NewPagination builds the list envelope for a page of a result set holding
// totalItems rows.
func NewPagination(totalItems int64, page, limit int) dto.Pagination {
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if page < 1 {
		page = DefaultPage
	}

	totalPages := int((totalItems + int64(limit) - 1) / int64(limit))

	return dto.Pagination{
		HasNextPage: page < totalPages,
		HasPrevPage: page > 1,
		Limit:       limit,
		Page:        page,
		Total:       totalItems,
		TotalPages:  totalPages,
	}
}
