package article

import (
	"github.com/amadeudias/blog-core/internal/models"
	"github.com/amadeudias/blog-core/internal/storage"
)

// Service handles article business logic over the in-memory store.
type Service struct {
	store *storage.Store
}

func NewService(store *storage.Store) *Service {
	return &Service{store: store}
}

// List applies at most one filter, in the spec'd precedence order.
func (s *Service) List(q ListQuery) []*models.Article {
	switch {
	case q.Search != "":
		return s.store.Search(q.Search)
	case q.Category != "":
		return s.store.ListByCategory(q.Category)
	case q.Featured == "true":
		return s.store.ListFeatured()
	case q.Latest == "true":
		return s.store.ListLatest(q.Limit)
	default:
		return s.store.ListArticles()
	}
}

// GetByIdentifier fetches an article by id first, then falls back to slug.
func (s *Service) GetByIdentifier(identifier string) *models.Article {
	if a := s.store.GetArticleByID(identifier); a != nil {
		return a
	}
	return s.store.GetArticleBySlug(identifier)
}

func (s *Service) Create(dto *CreateArticleDTO) (*models.Article, error) {
	return s.store.CreateArticle(storage.ArticleInput{
		Title:       dto.Title,
		Slug:        dto.Slug,
		Excerpt:     dto.Excerpt,
		Content:     dto.Content,
		Category:    dto.Category,
		Tags:        dto.Tags,
		ReadTime:    dto.ReadTime,
		Featured:    dto.Featured,
		ImageURL:    dto.ImageURL,
		CodePreview: dto.CodePreview,
	})
}

// Update merges the patch onto the record. Returns nil when absent.
func (s *Service) Update(id string, dto *UpdateArticleDTO) *models.Article {
	return s.store.UpdateArticle(id, storage.ArticlePatch{
		Title:       dto.Title,
		Slug:        dto.Slug,
		Excerpt:     dto.Excerpt,
		Content:     dto.Content,
		Category:    dto.Category,
		Tags:        dto.Tags,
		ReadTime:    dto.ReadTime,
		Featured:    dto.Featured,
		ImageURL:    dto.ImageURL,
		CodePreview: dto.CodePreview,
	})
}

func (s *Service) Delete(id string) bool {
	return s.store.DeleteArticle(id)
}
