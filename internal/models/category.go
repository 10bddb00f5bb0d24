package models

// Category is a content taxonomy entry. Icon and Color are opaque presentation
// tokens rendered by the frontend. ArticleCount is the seeded counter, not a
// value recomputed from the article collection.
type Category struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Slug         string `json:"slug"`
	Description  string `json:"description"`
	Icon         string `json:"icon"`
	Color        string `json:"color"`
	ArticleCount int    `json:"articleCount"`
}

func (c *Category) Clone() *Category {
	if c == nil {
		return nil
	}
	out := *c
	return &out
}
