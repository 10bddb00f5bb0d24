package storage

import (
	"sort"

	"github.com/amadeudias/blog-core/internal/models"
	"github.com/google/uuid"
)

// CategoryInput carries the validated fields for a new category.
type CategoryInput struct {
	Name         string
	Slug         string
	Description  string
	Icon         string
	Color        string
	ArticleCount int
}

// ListCategories returns all categories in name order.
func (s *Store) ListCategories() []*models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]*models.Category, 0, len(s.categories))
	for _, c := range s.categories {
		out = append(out, c.Clone())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// GetCategoryBySlug returns the category with the given slug, or nil.
func (s *Store) GetCategoryBySlug(slug string) *models.Category {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, c := range s.categories {
		if c.Slug == slug {
			return c.Clone()
		}
	}
	return nil
}

// CreateCategory assigns a fresh id and stores the record.
func (s *Store) CreateCategory(input CategoryInput) *models.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	category := &models.Category{
		ID:           uuid.New().String(),
		Name:         input.Name,
		Slug:         input.Slug,
		Description:  input.Description,
		Icon:         input.Icon,
		Color:        input.Color,
		ArticleCount: input.ArticleCount,
	}
	s.categories[category.ID] = category
	return category.Clone()
}

// GetAuthor returns the singleton author, or nil before seeding.
func (s *Store) GetAuthor() *models.Author {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.author.Clone()
}

// SetAuthor replaces the singleton wholesale and assigns a fresh id.
func (s *Store) SetAuthor(author models.Author) *models.Author {
	s.mu.Lock()
	defer s.mu.Unlock()
	author.ID = uuid.New().String()
	s.author = &author
	return s.author.Clone()
}
