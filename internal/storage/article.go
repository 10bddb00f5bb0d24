package storage

import (
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/amadeudias/blog-core/internal/models"
	"github.com/google/uuid"
)

const excerptLimit = 150

var nonAlphanumeric = regexp.MustCompile(`[^a-z0-9]+`)

// ArticleInput carries the validated fields for a new article. Slug and
// Excerpt may be empty, in which case they are derived from Title and Content.
type ArticleInput struct {
	Title       string
	Slug        string
	Excerpt     string
	Content     string
	Category    string
	Tags        []string
	ReadTime    int
	Featured    bool
	ImageURL    string
	CodePreview string
}

// ArticlePatch carries a partial update; nil fields are left untouched.
type ArticlePatch struct {
	Title       *string
	Slug        *string
	Excerpt     *string
	Content     *string
	Category    *string
	Tags        []string
	ReadTime    *int
	Featured    *bool
	ImageURL    *string
	CodePreview *string
}

// ListArticles returns all articles sorted by publishedAt descending.
func (s *Store) ListArticles() []*models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortByPublishedDesc(s.snapshotArticles(nil))
}

// GetArticleByID returns the article with the given id, or nil.
func (s *Store) GetArticleByID(id string) *models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.articles[id].Clone()
}

// GetArticleBySlug returns the article with the given slug, or nil.
func (s *Store) GetArticleBySlug(slug string) *models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, a := range s.articles {
		if a.Slug == slug {
			return a.Clone()
		}
	}
	return nil
}

// ListByCategory matches the category label case-insensitively, exact.
func (s *Store) ListByCategory(category string) []*models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortByPublishedDesc(s.snapshotArticles(func(a *models.Article) bool {
		return strings.EqualFold(a.Category, category)
	}))
}

// ListFeatured returns featured articles, publishedAt descending.
func (s *Store) ListFeatured() []*models.Article {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return sortByPublishedDesc(s.snapshotArticles(func(a *models.Article) bool {
		return a.Featured
	}))
}

// ListLatest returns up to limit articles, publishedAt descending.
// A non-positive limit falls back to 5.
func (s *Store) ListLatest(limit int) []*models.Article {
	if limit <= 0 {
		limit = 5
	}
	all := s.ListArticles()
	if len(all) > limit {
		all = all[:limit]
	}
	return all
}

// Search matches the query case-insensitively as a substring of title,
// content, or any tag.
func (s *Store) Search(query string) []*models.Article {
	term := strings.ToLower(query)
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotArticles(func(a *models.Article) bool {
		if strings.Contains(strings.ToLower(a.Title), term) ||
			strings.Contains(strings.ToLower(a.Content), term) {
			return true
		}
		for _, tag := range a.Tags {
			if strings.Contains(strings.ToLower(tag), term) {
				return true
			}
		}
		return false
	})
}

// CreateArticle assigns a fresh id and timestamps, derives slug and excerpt
// when absent, and stores the record. Duplicate slugs are rejected.
func (s *Store) CreateArticle(input ArticleInput) (*models.Article, error) {
	slug := input.Slug
	if slug == "" {
		slug = Slugify(input.Title)
	}
	excerpt := input.Excerpt
	if excerpt == "" {
		excerpt = deriveExcerpt(input.Content)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.articles {
		if a.Slug == slug {
			return nil, ErrSlugExists
		}
	}

	now := time.Now()
	article := &models.Article{
		ID:          uuid.New().String(),
		Title:       input.Title,
		Slug:        slug,
		Excerpt:     excerpt,
		Content:     input.Content,
		Category:    input.Category,
		Tags:        append([]string(nil), input.Tags...),
		ReadTime:    input.ReadTime,
		Featured:    input.Featured,
		ImageURL:    input.ImageURL,
		CodePreview: input.CodePreview,
		PublishedAt: now,
		CreatedAt:   now,
	}
	s.articles[article.ID] = article
	return article.Clone(), nil
}

// UpdateArticle shallow-merges the patch onto the record, preserving id and
// timestamps. Returns nil when no record with that id exists.
func (s *Store) UpdateArticle(id string, patch ArticlePatch) *models.Article {
	s.mu.Lock()
	defer s.mu.Unlock()

	article, ok := s.articles[id]
	if !ok {
		return nil
	}
	if patch.Title != nil {
		article.Title = *patch.Title
	}
	if patch.Slug != nil {
		article.Slug = *patch.Slug
	}
	if patch.Excerpt != nil {
		article.Excerpt = *patch.Excerpt
	}
	if patch.Content != nil {
		article.Content = *patch.Content
	}
	if patch.Category != nil {
		article.Category = *patch.Category
	}
	if patch.Tags != nil {
		article.Tags = append([]string(nil), patch.Tags...)
	}
	if patch.ReadTime != nil {
		article.ReadTime = *patch.ReadTime
	}
	if patch.Featured != nil {
		article.Featured = *patch.Featured
	}
	if patch.ImageURL != nil {
		article.ImageURL = *patch.ImageURL
	}
	if patch.CodePreview != nil {
		article.CodePreview = *patch.CodePreview
	}
	return article.Clone()
}

// DeleteArticle removes the record. Returns false when it did not exist.
func (s *Store) DeleteArticle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.articles[id]; !ok {
		return false
	}
	delete(s.articles, id)
	return true
}

// Slugify lower-cases the title and collapses runs of non-alphanumeric
// characters into single hyphens.
func Slugify(title string) string {
	slug := nonAlphanumeric.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}

func deriveExcerpt(content string) string {
	runes := []rune(content)
	if len(runes) <= excerptLimit {
		return content + "..."
	}
	return string(runes[:excerptLimit]) + "..."
}

// snapshotArticles clones matching articles; callers must hold at least a
// read lock.
func (s *Store) snapshotArticles(match func(*models.Article) bool) []*models.Article {
	out := make([]*models.Article, 0, len(s.articles))
	for _, a := range s.articles {
		if match == nil || match(a) {
			out = append(out, a.Clone())
		}
	}
	return out
}

func sortByPublishedDesc(articles []*models.Article) []*models.Article {
	sort.SliceStable(articles, func(i, j int) bool {
		return articles[i].PublishedAt.After(articles[j].PublishedAt)
	})
	return articles
}
