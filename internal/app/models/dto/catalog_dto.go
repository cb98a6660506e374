package dto

import "github.com/yigit/studentdesk/internal/app/models"

// PaginationInfo represents pagination metadata
type PaginationInfo struct {
	CurrentPage int    `json:"currentPage" example:"1"`
	TotalPages  int    `json:"totalPages" example:"2"`
	PageSize    int    `json:"pageSize" example:"8"`
	TotalItems  int64  `json:"totalItems" example:"9"`
	BasePath    string `json:"basePath,omitempty" example:"/notes"`
}

// ResourceListResponse is returned by every paginated catalog view
type ResourceListResponse struct {
	Title      string              `json:"title" example:"All Notes PDFs"`
	Type       string              `json:"type" example:"note" enums:"paper,note,all"`
	Resources  []models.Resource   `json:"resources"`
	Filters    models.FilterValues `json:"filters"`
	Pagination PaginationInfo      `json:"pagination"`
}

// HomeResponse is the landing page view model
type HomeResponse struct {
	Papers  []models.Resource   `json:"papers"`
	Notes   []models.Resource   `json:"notes"`
	Recent  []models.Resource   `json:"recent"`
	Filters models.FilterValues `json:"filters"`
}
