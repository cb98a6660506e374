package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yigit/studentdesk/internal/app/models/dto"
	"github.com/yigit/studentdesk/internal/pkg/auth"
	"github.com/yigit/studentdesk/internal/pkg/logger"
)

// identityKey is the gin context key holding the request identity
const identityKey = "identity"

// AuthMiddleware resolves request identities from the session cookie
type AuthMiddleware struct {
	sessions *auth.SessionService
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(sessions *auth.SessionService) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions}
}

// Session builds the request identity once, before any handler runs.
// A missing or invalid cookie yields the anonymous identity.
func (m *AuthMiddleware) Session() gin.HandlerFunc {
	return func(c *gin.Context) {
		identity := auth.Anonymous()
		if token, err := c.Cookie(auth.SessionCookieName); err == nil && token != "" {
			parsed, err := m.sessions.Parse(token)
			if err != nil {
				logger.Debug().Err(err).Msg("Ignoring invalid session cookie")
			} else {
				identity = parsed
			}
		} else if err != nil && !errors.Is(err, http.ErrNoCookie) {
			logger.Debug().Err(err).Msg("Failed to read session cookie")
		}

		c.Set(identityKey, identity)
		c.Next()
	}
}

// RequireAdmin rejects requests whose identity lacks the admin flag
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !GetIdentity(c).IsAdmin() {
			errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Admin login required")
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
			return
		}
		c.Next()
	}
}

// GetIdentity returns the identity built by Session, anonymous if none was set
func GetIdentity(c *gin.Context) auth.Identity {
	if value, ok := c.Get(identityKey); ok {
		if identity, ok := value.(auth.Identity); ok {
			return identity
		}
	}
	return auth.Anonymous()
}
