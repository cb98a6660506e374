package controllers

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentdesk/internal/app/models/dto"
	"github.com/yigit/studentdesk/internal/app/services"
	"github.com/yigit/studentdesk/internal/middleware"
	"github.com/yigit/studentdesk/internal/pkg/apperrors"
	"github.com/yigit/studentdesk/internal/pkg/logger"
)

// uploadFileField is the multipart field carrying the PDF
const uploadFileField = "pdfFile"

// ResourceController handles upload, delete and download
type ResourceController struct {
	resourceService services.ResourceService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService services.ResourceService) *ResourceController {
	return &ResourceController{resourceService: resourceService}
}

// UploadResource creates a resource from a PDF upload or a pre-hosted URL
// @Summary Upload a resource
// @Tags resources
// @Accept multipart/form-data
// @Produce json
// @Param title formData string true "Title"
// @Param type formData string true "paper or note"
// @Param pdfFile formData file false "PDF file"
// @Param fileUrl formData string false "Pre-hosted file URL"
// @Success 201 {object} dto.APIResponse{data=models.Resource}
// @Failure 400 {object} dto.ErrorResponse "Missing required fields"
// @Failure 401 {object} dto.ErrorResponse "Admin login required"
// @Failure 415 {object} dto.ErrorResponse "Not a PDF"
// @Router /upload [post]
func (c *ResourceController) UploadResource(ctx *gin.Context) {
	var req dto.CreateResourceRequest
	if err := ctx.ShouldBind(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid form data")
		errorDetail = errorDetail.WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	// The PDF is optional; without it fileUrl is used as is
	file, err := uploadedFile(ctx)
	if err != nil {
		middleware.HandleAPIErrorWithDetails(ctx, err, gin.H{"form": req})
		return
	}

	resource, err := c.resourceService.CreateResource(ctx.Request.Context(), &req, file)
	if err != nil {
		middleware.HandleAPIErrorWithDetails(ctx, err, gin.H{"form": req})
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewSuccessResponse(resource))
}

// DeleteResource removes a resource and its locally stored file
// @Summary Delete a resource
// @Tags resources
// @Param id path string true "Resource ID"
// @Success 303 "Redirect back to the referring page"
// @Failure 401 {object} dto.ErrorResponse "Admin login required"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /delete/{id} [post]
func (c *ResourceController) DeleteResource(ctx *gin.Context) {
	id := ctx.Param("id")
	if err := c.resourceService.DeleteResource(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	logger.Info().Str("resourceID", id).Msg("Resource removed by admin")
	target := ctx.GetHeader("Referer")
	if target == "" {
		target = "/"
	}
	ctx.Redirect(http.StatusSeeOther, target)
}

// Download counts a download and redirects to the file
// @Summary Download a resource
// @Tags resources
// @Param id path string true "Resource ID"
// @Success 302 "Redirect to the file location"
// @Failure 404 {object} dto.ErrorResponse "File not found"
// @Router /download/{id} [get]
func (c *ResourceController) Download(ctx *gin.Context) {
	fileURL, err := c.resourceService.RegisterDownload(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}
	ctx.Redirect(http.StatusFound, fileURL)
}

// uploadedFile returns the PDF part, or nil when none was sent. A part that is
// present but unreadable is a client error, never a silent "no file".
func uploadedFile(ctx *gin.Context) (*multipart.FileHeader, error) {
	file, err := ctx.FormFile(uploadFileField)
	switch {
	case err == nil:
		return file, nil
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return nil, nil
	default:
		logger.Warn().Err(err).Msg("Unreadable file part in upload")
		return nil, apperrors.NewValidationError("Invalid file upload.")
	}
}
