package middleware

import (
	"errors"
	"strings"

	jwtpkg "github.com/amadeudias/blog-core/internal/pkg/jwt"
	"github.com/amadeudias/blog-core/internal/pkg/response"
	sessionpkg "github.com/amadeudias/blog-core/internal/pkg/session"
	"github.com/gin-gonic/gin"
)

const (
	ContextKeyEmail = "auth_email"
	ContextKeySID   = "session_id"

	// CookieName carries the session token for browser clients.
	CookieName = "blog-token"
)

// Auth returns a middleware that rejects requests without a live session.
func Auth(sessions *sessionpkg.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, err := validateToken(sessions, ExtractToken(c))
		if err != nil {
			response.Unauthorized(c)
			return
		}
		c.Set(ContextKeyEmail, claims.Email)
		c.Set(ContextKeySID, claims.SessionID)
		c.Next()
	}
}

// OptionalAuth sets the identity if a valid token is present, but never blocks.
func OptionalAuth(sessions *sessionpkg.Registry) gin.HandlerFunc {
	return func(c *gin.Context) {
		if claims, err := validateToken(sessions, ExtractToken(c)); err == nil {
			c.Set(ContextKeyEmail, claims.Email)
			c.Set(ContextKeySID, claims.SessionID)
		}
		c.Next()
	}
}

func validateToken(sessions *sessionpkg.Registry, rawToken string) (*jwtpkg.Claims, error) {
	token := NormalizeToken(rawToken)
	if token == "" {
		return nil, errors.New("token is required")
	}

	claims, err := jwtpkg.Parse(token)
	if err != nil {
		return nil, err
	}
	if !sessions.IsActive(claims.SessionID) {
		return nil, errors.New("session expired or revoked")
	}
	return claims, nil
}

// CurrentEmail extracts the authenticated identity from context.
func CurrentEmail(c *gin.Context) string {
	v, _ := c.Get(ContextKeyEmail)
	email, _ := v.(string)
	return email
}

// CurrentSessionID extracts the authenticated session ID from context.
func CurrentSessionID(c *gin.Context) string {
	v, _ := c.Get(ContextKeySID)
	id, _ := v.(string)
	return id
}

// IsAuthenticated returns true if the request carries a live session.
func IsAuthenticated(c *gin.Context) bool {
	return CurrentEmail(c) != ""
}

// ExtractToken reads the token from the Authorization header, the token query
// parameter, or the session cookie, in that order.
func ExtractToken(c *gin.Context) string {
	if auth := c.GetHeader("Authorization"); auth != "" {
		return NormalizeToken(auth)
	}
	if token := c.Query("token"); token != "" {
		return NormalizeToken(token)
	}
	if raw, err := c.Cookie(CookieName); err == nil {
		return NormalizeToken(raw)
	}
	return ""
}

// NormalizeToken trims spaces and strips an optional Bearer prefix.
func NormalizeToken(raw string) string {
	token := strings.TrimSpace(raw)
	if token == "" {
		return ""
	}
	if strings.HasPrefix(strings.ToLower(token), "bearer ") {
		return strings.TrimSpace(token[7:])
	}
	return token
}
