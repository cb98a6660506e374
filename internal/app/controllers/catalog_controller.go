package controllers

import (
	"net/http"
	"net/url"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentdesk/internal/app/models"
	"github.com/yigit/studentdesk/internal/app/models/dto"
	"github.com/yigit/studentdesk/internal/app/services"
	"github.com/yigit/studentdesk/internal/middleware"
	"github.com/yigit/studentdesk/internal/pkg/helpers"
)

// CatalogController serves the browse views
type CatalogController struct {
	catalogService services.CatalogService
}

// NewCatalogController creates a new CatalogController
func NewCatalogController(catalogService services.CatalogService) *CatalogController {
	return &CatalogController{catalogService: catalogService}
}

// Home returns the landing page sections
// @Summary Landing page
// @Description Recent papers, most downloaded notes and a global recent feed
// @Tags catalog
// @Produce json
// @Param q query string false "Free text search"
// @Param branch query string false "Branch"
// @Param year query string false "Year"
// @Param sem query string false "Semester"
// @Param examType query string false "Exam type"
// @Success 200 {object} dto.APIResponse{data=dto.HomeResponse}
// @Failure 500 {object} dto.ErrorResponse
// @Router / [get]
func (c *CatalogController) Home(ctx *gin.Context) {
	filter := helpers.ParseResourceFilter(ctx)

	view, err := c.catalogService.Home(ctx.Request.Context(), filter)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.HomeResponse{
		Papers:  view.Papers,
		Notes:   view.Notes,
		Recent:  view.Recent,
		Filters: filter.Values(),
	}))
}

// ListPapers lists question papers
// @Summary List papers
// @Tags catalog
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} dto.APIResponse{data=dto.ResourceListResponse}
// @Router /papers [get]
func (c *CatalogController) ListPapers(ctx *gin.Context) {
	filter := helpers.ParseResourceFilter(ctx)
	pred := models.BuildResourcePredicate(filter).WithType(models.ResourceTypePaper)
	c.respondList(ctx, "All Question Papers", string(models.ResourceTypePaper), pred, filter.Values(), "/papers")
}

// ListNotes lists notes
// @Summary List notes
// @Tags catalog
// @Produce json
// @Param page query int false "Page number (default: 1)"
// @Success 200 {object} dto.APIResponse{data=dto.ResourceListResponse}
// @Router /notes [get]
func (c *CatalogController) ListNotes(ctx *gin.Context) {
	filter := helpers.ParseResourceFilter(ctx)
	pred := models.BuildResourcePredicate(filter).WithType(models.ResourceTypeNote)
	c.respondList(ctx, "All Notes PDFs", string(models.ResourceTypeNote), pred, filter.Values(), "/notes")
}

// ListByBranch lists every resource of one branch
// @Summary List resources by branch
// @Tags catalog
// @Produce json
// @Param name path string true "Branch name"
// @Success 200 {object} dto.APIResponse{data=dto.ResourceListResponse}
// @Router /branch/{name} [get]
func (c *CatalogController) ListByBranch(ctx *gin.Context) {
	branch := ctx.Param("name")
	filter := helpers.ParseResourceFilter(ctx)
	pred := models.BuildResourcePredicate(filter).WithBranch(branch)

	values := filter.Values()
	values.Branch = branch
	c.respondList(ctx, "Resources for "+branch, "all", pred, values, "/branch/"+url.PathEscape(branch))
}

// ListBySubject lists every resource of one subject, ignoring case
// @Summary List resources by subject
// @Tags catalog
// @Produce json
// @Param name path string true "Subject name"
// @Success 200 {object} dto.APIResponse{data=dto.ResourceListResponse}
// @Router /subject/{name} [get]
func (c *CatalogController) ListBySubject(ctx *gin.Context) {
	subject := ctx.Param("name")
	filter := helpers.ParseResourceFilter(ctx)
	pred := models.BuildResourcePredicate(filter).WithSubject(subject)
	c.respondList(ctx, "Subject: "+subject, "all", pred, filter.Values(), "/subject/"+url.PathEscape(subject))
}

func (c *CatalogController) respondList(ctx *gin.Context, title, resourceType string, pred models.ResourcePredicate, filters models.FilterValues, basePath string) {
	page := helpers.ParsePage(ctx)

	result, err := c.catalogService.ListResources(ctx.Request.Context(), pred, models.DefaultSort, page)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewSuccessResponse(dto.ResourceListResponse{
		Title:      title,
		Type:       resourceType,
		Resources:  result.Items,
		Filters:    filters,
		Pagination: helpers.NewPaginationInfo(result.Total, result.Page, result.PageSize, basePath),
	}))
}
