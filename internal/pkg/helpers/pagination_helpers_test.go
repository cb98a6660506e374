package helpers

import (
	"math"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestCalculateOffsetLimit(t *testing.T) {
	tests := []struct {
		page       int
		wantOffset uint64
	}{
		{page: 1, wantOffset: 0},
		{page: 2, wantOffset: 8},
		{page: 5, wantOffset: 32},
		{page: 0, wantOffset: 0},
		{page: -3, wantOffset: 0},
	}
	for _, tt := range tests {
		offset, limit := CalculateOffsetLimit(tt.page, CatalogPageSize)
		assert.Equal(t, tt.wantOffset, offset, "page %d", tt.page)
		assert.Equal(t, uint64(CatalogPageSize), limit)
	}
}

func TestCalculateOffsetLimit_HugePageSaturates(t *testing.T) {
	for _, page := range []int{1 << 61, (1 << 61) + 1, math.MaxInt64} {
		offset, _ := CalculateOffsetLimit(page, CatalogPageSize)
		assert.LessOrEqual(t, offset, uint64(math.MaxInt64), "page %d", page)
		assert.Greater(t, offset, uint64(1<<62), "page %d must not wrap to the start", page)
	}
}

func TestTotalPages(t *testing.T) {
	assert.Equal(t, 1, TotalPages(0, CatalogPageSize), "empty result is page 1 of 1")
	assert.Equal(t, 1, TotalPages(8, CatalogPageSize))
	assert.Equal(t, 2, TotalPages(9, CatalogPageSize))
	assert.Equal(t, 3, TotalPages(17, CatalogPageSize))
}

func TestNewPaginationInfo(t *testing.T) {
	info := NewPaginationInfo(9, 2, CatalogPageSize, "/notes")
	assert.Equal(t, 2, info.CurrentPage)
	assert.Equal(t, 2, info.TotalPages)
	assert.Equal(t, 8, info.PageSize)
	assert.Equal(t, int64(9), info.TotalItems)
	assert.Equal(t, "/notes", info.BasePath)
}

func TestParsePage(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		query string
		want  int
	}{
		{"", 1},
		{"?page=3", 3},
		{"?page=0", 1},
		{"?page=-2", 1},
		{"?page=abc", 1},
		{"?page=", 1},
	}
	for _, tt := range tests {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest("GET", "/papers"+tt.query, nil)
		assert.Equal(t, tt.want, ParsePage(c), "query %q", tt.query)
	}
}

func TestParseResourceFilter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/?q=os&branch=CSE&sem=&foo=bar", nil)

	filter := ParseResourceFilter(c)
	if assert.NotNil(t, filter.Q) {
		assert.Equal(t, "os", *filter.Q)
	}
	if assert.NotNil(t, filter.Branch) {
		assert.Equal(t, "CSE", *filter.Branch)
	}
	if assert.NotNil(t, filter.Sem) {
		assert.Equal(t, "", *filter.Sem)
	}
	assert.Nil(t, filter.Year)
	assert.Nil(t, filter.ExamType)
}
