package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentdesk/internal/app/models/dto"
	"github.com/yigit/studentdesk/internal/pkg/apperrors"
	"github.com/yigit/studentdesk/internal/pkg/logger"
)

// HandleAPIError maps application errors onto HTTP responses. Unknown errors
// are logged server side and reported with a generic message.
func HandleAPIError(c *gin.Context, err error) {
	HandleAPIErrorWithDetails(c, err, nil)
}

// HandleAPIErrorWithDetails is HandleAPIError with extra details attached to
// client errors, such as the submitted form of a rejected upload.
func HandleAPIErrorWithDetails(c *gin.Context, err error, details interface{}) {
	status, detail := classifyError(err)
	if status >= http.StatusInternalServerError {
		logger.Error().Err(err).Str("method", c.Request.Method).Str("path", c.Request.URL.Path).Msg("Request failed")
	} else if details != nil {
		detail = detail.WithDetails(details)
	}
	c.AbortWithStatusJSON(status, dto.NewErrorResponse(detail))
}

func classifyError(err error) (int, *dto.ErrorDetail) {
	message := func(fallback string) string {
		if msg, ok := apperrors.MessageOf(err); ok {
			return msg
		}
		return fallback
	}

	switch {
	case errors.Is(err, apperrors.ErrValidationFailed):
		return http.StatusBadRequest, dto.NewErrorDetail(dto.ErrorCodeValidationFailed, message("Validation failed"))
	case errors.Is(err, apperrors.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType, dto.NewErrorDetail(dto.ErrorCodeUnsupportedMediaType, message("Unsupported media type"))
	case errors.Is(err, apperrors.ErrInvalidCredentials):
		return http.StatusUnauthorized, dto.NewErrorDetail(dto.ErrorCodeInvalidCredentials, "Invalid credentials")
	case errors.Is(err, apperrors.ErrPermissionDenied):
		return http.StatusForbidden, dto.NewErrorDetail(dto.ErrorCodeForbidden, message("Permission denied"))
	case errors.Is(err, apperrors.ErrResourceNotFound):
		return http.StatusNotFound, dto.NewErrorDetail(dto.ErrorCodeResourceNotFound, message("Resource not found"))
	case errors.Is(err, apperrors.ErrConflict):
		return http.StatusConflict, dto.NewErrorDetail(dto.ErrorCodeResourceAlreadyExists, message("Resource already exists"))
	default:
		return http.StatusInternalServerError, dto.NewErrorDetail(dto.ErrorCodeInternalServer, "Internal server error")
	}
}
