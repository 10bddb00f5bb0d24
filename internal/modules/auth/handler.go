package auth

import (
	"errors"

	"github.com/amadeudias/blog-core/internal/middleware"
	"github.com/amadeudias/blog-core/internal/pkg/response"
	sessionpkg "github.com/amadeudias/blog-core/internal/pkg/session"
	"github.com/gin-gonic/gin"
)

type Handler struct {
	svc      *Service
	sessions *sessionpkg.Registry
	dev      bool
}

func NewHandler(svc *Service, sessions *sessionpkg.Registry, dev bool) *Handler {
	return &Handler{svc: svc, sessions: sessions, dev: dev}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	a := rg.Group("/auth")

	a.POST("/login", h.login)
	if h.dev {
		a.GET("/login", h.devLogin) // mocked identity auto-login
	}
	a.GET("/logout", middleware.OptionalAuth(h.sessions), h.logout)
	a.GET("/session", middleware.OptionalAuth(h.sessions), h.session)
}

// login POST /auth/login
func (h *Handler) login(c *gin.Context) {
	var dto LoginDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Email and password are required")
		return
	}
	token, err := h.svc.Login(dto.Email, dto.Password, c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		if errors.Is(err, errUnknownEmail) || errors.Is(err, errWrongPassword) {
			response.Unauthorized(c)
			return
		}
		response.InternalError(c)
		return
	}
	setTokenCookie(c, token, int(sessionpkg.DefaultTTL.Seconds()))
	response.OK(c, loginResponse{Token: token})
}

// devLogin GET /auth/login (development only)
func (h *Handler) devLogin(c *gin.Context) {
	token, err := h.svc.DevLogin(c.ClientIP(), c.Request.UserAgent())
	if err != nil {
		response.InternalError(c)
		return
	}
	setTokenCookie(c, token, int(sessionpkg.DevTTL.Seconds()))
	response.OK(c, loginResponse{Token: token})
}

// logout GET /auth/logout
func (h *Handler) logout(c *gin.Context) {
	if sid := middleware.CurrentSessionID(c); sid != "" {
		h.svc.Logout(sid)
	}
	clearTokenCookie(c)
	response.OK(c, gin.H{"success": true})
}

// session GET /auth/session
func (h *Handler) session(c *gin.Context) {
	if !middleware.IsAuthenticated(c) {
		response.OK(c, nil)
		return
	}
	s := h.svc.Session(middleware.CurrentSessionID(c))
	if s == nil {
		response.OK(c, nil)
		return
	}
	response.OK(c, gin.H{
		"email":     s.Email,
		"createdAt": s.CreatedAt,
		"expiresAt": s.ExpiresAt,
	})
}

func setTokenCookie(c *gin.Context, token string, maxAge int) {
	c.SetCookie(middleware.CookieName, token, maxAge, "/", "", false, true)
}

func clearTokenCookie(c *gin.Context) {
	c.SetCookie(middleware.CookieName, "", -1, "/", "", false, true)
}
