package middleware

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/yigit/studentdesk/internal/app/models/dto"
	"github.com/yigit/studentdesk/internal/pkg/apperrors"
	"github.com/yigit/studentdesk/internal/pkg/auth"
)

func TestHandleAPIError_StatusMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"validation", apperrors.NewValidationError("Title and Type are required."), http.StatusBadRequest, "Title and Type are required."},
		{"media type", &apperrors.CustomError{Err: apperrors.ErrUnsupportedMediaType, Message: "Only PDF files are allowed"}, http.StatusUnsupportedMediaType, "Only PDF files are allowed"},
		{"credentials", apperrors.ErrInvalidCredentials, http.StatusUnauthorized, "Invalid credentials"},
		{"not found", apperrors.NewResourceNotFoundError("File not found"), http.StatusNotFound, "File not found"},
		{"wrapped not found", fmt.Errorf("lookup: %w", apperrors.ErrResourceNotFound), http.StatusNotFound, "Resource not found"},
		{"conflict", apperrors.NewConflictError("Roll number already registered. Please login."), http.StatusConflict, "Roll number already registered. Please login."},
		{"unknown", errors.New("pq: connection reset"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			HandleAPIErrorWithDetails(c, tt.err, gin.H{"form": "echo"})

			assert.Equal(t, tt.status, w.Code)
			var resp dto.ErrorResponse
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Error.Message)
			if tt.status >= http.StatusInternalServerError {
				assert.Nil(t, resp.Error.Details, "internal errors carry no details")
			} else {
				assert.NotNil(t, resp.Error.Details)
			}
		})
	}
}

func TestSessionAndRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	sessions := auth.NewSessionService(auth.SessionConfig{Secret: "s", TTL: time.Hour})
	mw := NewAuthMiddleware(sessions)

	router := gin.New()
	router.Use(mw.Session())
	router.GET("/admin-only", mw.RequireAdmin(), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin-only", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	token, err := sessions.Issue(auth.NewIdentity(true, nil))
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: token})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)

	req = httptest.NewRequest(http.MethodGet, "/admin-only", nil)
	req.AddCookie(&http.Cookie{Name: auth.SessionCookieName, Value: "garbage"})
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
