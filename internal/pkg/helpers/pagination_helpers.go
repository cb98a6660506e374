package helpers

import (
	"math"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentdesk/internal/app/models/dto"
)

const (
	// CatalogPageSize is the fixed page size of every catalog list view
	CatalogPageSize = 8
	DefaultPage     = 1 // Default page is 1-based
)

// NormalizePage clamps a page number to the first page
func NormalizePage(page int) int {
	if page < DefaultPage {
		return DefaultPage
	}
	return page
}

// CalculateOffsetLimit calculates the offset and limit for a 1-based page index.
// The offset saturates at the largest value a SQL OFFSET accepts.
func CalculateOffsetLimit(page, size int) (offset uint64, limit uint64) {
	if size <= 0 {
		size = CatalogPageSize
	}
	page = NormalizePage(page)
	if maxSkipped := math.MaxInt64 / size; page-1 > maxSkipped {
		page = maxSkipped + 1
	}
	return uint64(page-1) * uint64(size), uint64(size)
}

// TotalPages returns ceil(totalItems/size), never less than 1 so an empty
// result is still reported as page 1 of 1.
func TotalPages(totalItems int64, size int) int {
	if size <= 0 {
		size = CatalogPageSize
	}
	pages := int((totalItems + int64(size) - 1) / int64(size))
	if pages < 1 {
		return 1
	}
	return pages
}

// NewPaginationInfo creates a standard PaginationInfo DTO.
func NewPaginationInfo(totalItems int64, page, size int, basePath string) dto.PaginationInfo {
	if size <= 0 {
		size = CatalogPageSize
	}
	return dto.PaginationInfo{
		CurrentPage: NormalizePage(page),
		TotalPages:  TotalPages(totalItems, size),
		PageSize:    size,
		TotalItems:  totalItems,
		BasePath:    basePath,
	}
}

// ParsePage extracts the page query parameter. Missing, non-numeric,
// zero and negative values all coerce to the first page.
func ParsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return DefaultPage
	}
	return NormalizePage(page)
}
