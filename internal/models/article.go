package models

import "time"

// Article is a blog article.
// ID is a UUID string assigned by the store at creation time. Category is a
// free-text label matched against Category.Name by convention, not a foreign key.
type Article struct {
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

// Clone returns a deep copy so callers never hold references into the store.
func (a *Article) Clone() *Article {
	if a == nil {
		return nil
	}
	out := *a
	if a.Tags != nil {
		out.Tags = append([]string(nil), a.Tags...)
	}
	return &out
}
