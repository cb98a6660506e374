package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/yigit/studentdesk/internal/pkg/apperrors"
)

// SessionCookieName is the cookie carrying the signed session
const SessionCookieName = "studentdesk_session"

const sessionIssuer = "studentdesk"

// SessionConfig defines session signing settings
type SessionConfig struct {
	Secret string
	TTL    time.Duration
}

// SessionService signs and verifies session tokens
type SessionService struct {
	config SessionConfig
	now    func() time.Time
}

// NewSessionService creates a new session service
func NewSessionService(config SessionConfig) *SessionService {
	return &SessionService{
		config: config,
		now:    time.Now,
	}
}

// sessionClaims defines session token content
type sessionClaims struct {
	Admin   bool             `json:"admin,omitempty"`
	Student *StudentIdentity `json:"student,omitempty"`
	jwt.RegisteredClaims
}

// TTL returns the configured session lifetime
func (s *SessionService) TTL() time.Duration {
	return s.config.TTL
}

// Issue signs a session token for identity
func (s *SessionService) Issue(identity Identity) (string, error) {
	now := s.now()
	claims := &sessionClaims{
		Admin: identity.IsAdmin(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.config.TTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    sessionIssuer,
			ID:        uuid.New().String(),
		},
	}
	if student, ok := identity.Student(); ok {
		claims.Student = &student
		claims.Subject = student.ID
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", fmt.Errorf("failed to sign session: %w", err)
	}
	return signed, nil
}

// Parse verifies a session token and rebuilds the identity it carries
func (s *SessionService) Parse(tokenString string) (Identity, error) {
	if tokenString == "" {
		return Anonymous(), apperrors.ErrSessionInvalid
	}

	token, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	},
		jwt.WithIssuer(sessionIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return Anonymous(), fmt.Errorf("%w: expired", apperrors.ErrSessionInvalid)
		}
		return Anonymous(), fmt.Errorf("%w: %v", apperrors.ErrSessionInvalid, err)
	}

	claims, ok := token.Claims.(*sessionClaims)
	if !ok || !token.Valid {
		return Anonymous(), apperrors.ErrSessionInvalid
	}
	return NewIdentity(claims.Admin, claims.Student), nil
}
