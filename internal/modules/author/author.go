// Package author exposes the singleton author profile. There is exactly one
// author per process; writing replaces it wholesale.
package author

import (
	"github.com/amadeudias/blog-core/internal/models"
	"github.com/amadeudias/blog-core/internal/pkg/response"
	"github.com/amadeudias/blog-core/internal/storage"
	"github.com/gin-gonic/gin"
)

// UpsertAuthorDTO is the request body for replacing the author profile.
type UpsertAuthorDTO struct {
	Name          string `json:"name"          binding:"required"`
	Title         string `json:"title"         binding:"required"`
	Bio           string `json:"bio"           binding:"required"`
	Location      string `json:"location"      binding:"required"`
	Certification string `json:"certification" binding:"required"`
	ImageURL      string `json:"imageUrl"`
	LinkedinURL   string `json:"linkedinUrl"`
	GithubURL     string `json:"githubUrl"`
	TwitterURL    string `json:"twitterUrl"`
}

type Handler struct {
	store *storage.Store
}

func NewHandler(store *storage.Store) *Handler {
	return &Handler{store: store}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup, authMW gin.HandlerFunc) {
	rg.GET("/author", h.get)
	rg.PUT("/author", authMW, h.upsert)
}

// get GET /author
func (h *Handler) get(c *gin.Context) {
	a := h.store.GetAuthor()
	if a == nil {
		response.NotFound(c, "Author not found")
		return
	}
	response.OK(c, a)
}

// upsert PUT /author  [auth]
func (h *Handler) upsert(c *gin.Context) {
	var dto UpsertAuthorDTO
	if err := c.ShouldBindJSON(&dto); err != nil {
		response.BadRequest(c, "Invalid author data")
		return
	}
	a := h.store.SetAuthor(models.Author{
		Name:          dto.Name,
		Title:         dto.Title,
		Bio:           dto.Bio,
		Location:      dto.Location,
		Certification: dto.Certification,
		ImageURL:      dto.ImageURL,
		LinkedinURL:   dto.LinkedinURL,
		GithubURL:     dto.GithubURL,
		TwitterURL:    dto.TwitterURL,
	})
	response.OK(c, a)
}
