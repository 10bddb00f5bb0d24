package article

import (
	"time"

	"github.com/amadeudias/blog-core/internal/models"
)

// CreateArticleDTO is the request body for creating an article. Slug and
// excerpt are optional; the store derives them from title and content.
type CreateArticleDTO struct {
	Title       string   `json:"title"       binding:"required"`
	Slug        string   `json:"slug"`
	Excerpt     string   `json:"excerpt"`
	Content     string   `json:"content"     binding:"required"`
	Category    string   `json:"category"    binding:"required"`
	Tags        []string `json:"tags"`
	ReadTime    int      `json:"readTime"    binding:"required,gt=0"`
	Featured    bool     `json:"featured"`
	ImageURL    string   `json:"imageUrl"`
	CodePreview string   `json:"codePreview"`
}

// UpdateArticleDTO is the request body for a partial update. Absent fields
// are left untouched; present fields still satisfy their constraints.
type UpdateArticleDTO struct {
	Title       *string  `json:"title"       binding:"omitempty,min=1"`
	Slug        *string  `json:"slug"        binding:"omitempty,min=1"`
	Excerpt     *string  `json:"excerpt"`
	Content     *string  `json:"content"     binding:"omitempty,min=1"`
	Category    *string  `json:"category"    binding:"omitempty,min=1"`
	Tags        []string `json:"tags"`
	ReadTime    *int     `json:"readTime"    binding:"omitempty,gt=0"`
	Featured    *bool    `json:"featured"`
	ImageURL    *string  `json:"imageUrl"`
	CodePreview *string  `json:"codePreview"`
}

// ListQuery holds the filter parameters for listing articles. At most one
// filter applies, in the precedence order search > category > featured > latest.
type ListQuery struct {
	Search   string `form:"search"`
	Category string `form:"category"`
	Featured string `form:"featured"`
	Latest   string `form:"latest"`
	Limit    int    `form:"limit"`
}

// articleResponse is the API response shape for an article.
type articleResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	Category    string    `json:"category"`
	Tags        []string  `json:"tags"`
	ReadTime    int       `json:"readTime"`
	Featured    bool      `json:"featured"`
	ImageURL    string    `json:"imageUrl,omitempty"`
	CodePreview string    `json:"codePreview,omitempty"`
	PublishedAt time.Time `json:"publishedAt"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toResponse(a *models.Article) articleResponse {
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}
	return articleResponse{
		ID:          a.ID,
		Title:       a.Title,
		Slug:        a.Slug,
		Excerpt:     a.Excerpt,
		Content:     a.Content,
		Category:    a.Category,
		Tags:        tags,
		ReadTime:    a.ReadTime,
		Featured:    a.Featured,
		ImageURL:    a.ImageURL,
		CodePreview: a.CodePreview,
		PublishedAt: a.PublishedAt,
		CreatedAt:   a.CreatedAt,
	}
}

func toResponseList(articles []*models.Article) []articleResponse {
	items := make([]articleResponse, len(articles))
	for i, a := range articles {
		items[i] = toResponse(a)
	}
	return items
}
