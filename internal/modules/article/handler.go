package article

import (
	"errors"

	"github.com/amadeudias/blog-core/internal/pkg/response"
	"github.com/amadeudias/blog-core/internal/storage"
	"github.com/gin-gonic/gin"
)

// Handler handles article HTTP requests.
type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts article routes onto the given router group.
// Mutating routes sit behind the auth gate.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	articles := rg.Group("/articles")

	articles.GET("", h.list)
	articles.GET("/:identifier", h.getByIdentifier)

	authed := articles.Group("", authMW)
	authed.POST("", h.create)
	authed.PATCH("/:identifier", h.update)
	authed.DELETE("/:identifier", h.delete)
}

// list GET /articles
func (h *Handler) list(c *gin.Context) {
	var q ListQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return
	}
	response.OK(c, toResponseList(h.svc.List(q)))
}

// getByIdentifier GET /articles/:identifier
func (h *Handler) getByIdentifier(c *gin.Context) {
	a := h.svc.GetByIdentifier(c.Param("identifier"))
	if a == nil {
		response.NotFound(c, "Article not found")
		return
	}
	response.OK(c, toResponse(a))
}

// create POST /articles  [auth]
func (h *Handler) create(c *gin.Context) {
	var dto CreateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid article data")
		return
	}

	a, err := h.svc.Create(&dto)
	if err != nil {
		if errors.Is(err, storage.ErrSlugExists) {
			response.Conflict(c, "Slug already exists")
			return
		}
		response.InternalError(c)
		return
	}
	response.Created(c, toResponse(a))
}

// update PATCH /articles/:id  [auth]
func (h *Handler) update(c *gin.Context) {
	var dto UpdateArticleDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid article data")
		return
	}

	a := h.svc.Update(c.Param("identifier"), &dto)
	if a == nil {
		response.NotFound(c, "Article not found")
		return
	}
	response.OK(c, toResponse(a))
}

// delete DELETE /articles/:id  [auth]
func (h *Handler) delete(c *gin.Context) {
	if !h.svc.Delete(c.Param("identifier")) {
		response.NotFound(c, "Article not found")
		return
	}
	response.NoContent(c)
}
