package category

import (
	"github.com/amadeudias/blog-core/internal/models"
	"github.com/amadeudias/blog-core/internal/storage"
)

// CreateCategoryDTO is the request body for creating a category. The slug is
// derived from the name when absent.
type CreateCategoryDTO struct {
	Name         string `json:"name"        binding:"required"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	ArticleCount int    `json:"articleCount" binding:"omitempty,gte=0"`
}

type Service struct {
	store *storage.Store
}

func NewService(store *storage.Store) *Service {
	return &Service{store: store}
}

func (s *Service) List() []*models.Category {
	return s.store.ListCategories()
}

func (s *Service) GetBySlug(slug string) *models.Category {
	return s.store.GetCategoryBySlug(slug)
}

func (s *Service) Create(dto *CreateCategoryDTO) *models.Category {
	slug := dto.Slug
	if slug == "" {
		slug = storage.Slugify(dto.Name)
	}
	return s.store.CreateCategory(storage.CategoryInput{
		Name:         dto.Name,
		Slug:         slug,
		Description:  dto.Description,
		Icon:         dto.Icon,
		Color:        dto.Color,
		ArticleCount: dto.ArticleCount,
	})
}
