package dto

import (
	"time"
)

// ErrorCode identifies a failure class independently of its message
type ErrorCode string

const (
	// Session failures
	ErrorCodeInvalidCredentials ErrorCode = "SESSION_INVALID_CREDENTIALS"
	ErrorCodeUnauthorized       ErrorCode = "SESSION_ADMIN_REQUIRED"
	ErrorCodeForbidden          ErrorCode = "SESSION_FORBIDDEN"

	// Catalog failures
	ErrorCodeResourceNotFound      ErrorCode = "CATALOG_NOT_FOUND"
	ErrorCodeResourceAlreadyExists ErrorCode = "CATALOG_CONFLICT"

	// Upload failures
	ErrorCodeValidationFailed     ErrorCode = "UPLOAD_INVALID_FORM"
	ErrorCodeUnsupportedMediaType ErrorCode = "UPLOAD_NOT_PDF"

	ErrorCodeInternalServer ErrorCode = "INTERNAL"
)

// ErrorDetail is the error part of the response envelope. Details carries
// whatever the handler wants echoed back, typically the submitted form.
type ErrorDetail struct {
	Code    ErrorCode   `json:"code" example:"UPLOAD_INVALID_FORM"`
	Message string      `json:"message" example:"Title and Type are required."`
	Details interface{} `json:"details,omitempty"`
}

// ErrorResponse is the envelope of every failed request
type ErrorResponse struct {
	Success   bool         `json:"success" example:"false"`
	Error     *ErrorDetail `json:"error"`
	Timestamp time.Time    `json:"timestamp" example:"2025-04-23T12:01:05.123Z"`
}

func NewErrorDetail(code ErrorCode, message string) *ErrorDetail {
	return &ErrorDetail{Code: code, Message: message}
}

// WithDetails attaches echo data to the error
func (e *ErrorDetail) WithDetails(details interface{}) *ErrorDetail {
	e.Details = details
	return e
}

func NewErrorResponse(errorDetail *ErrorDetail) *ErrorResponse {
	return &ErrorResponse{
		Success:   false,
		Error:     errorDetail,
		Timestamp: time.Now().UTC(),
	}
}
