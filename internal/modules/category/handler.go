package category

import (
	"github.com/amadeudias/blog-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

// Handler handles category HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts category routes. Creation is admin-only; the public
// surface is read-only.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	categories := rg.Group("/categories")

	categories.GET("", h.list)
	categories.GET("/:slug", h.getBySlug)
	categories.POST("", authMW, h.create)
}

// list GET /categories
func (h *Handler) list(c *gin.Context) {
	response.OK(c, h.svc.List())
}

// getBySlug GET /categories/:slug
func (h *Handler) getBySlug(c *gin.Context) {
	cat := h.svc.GetBySlug(c.Param("slug"))
	if cat == nil {
		response.NotFound(c, "Category not found")
		return
	}
	response.OK(c, cat)
}

// create POST /categories  [auth]
func (h *Handler) create(c *gin.Context) {
	var dto CreateCategoryDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid category data")
		return
	}
	response.Created(c, h.svc.Create(&dto))
}
