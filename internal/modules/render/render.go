// Package render converts stored article markdown into HTML.
package render

import (
	"bytes"

	"github.com/amadeudias/blog-core/internal/modules/article"
	"github.com/amadeudias/blog-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

var markdownEngine = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Table,
		extension.Strikethrough,
		extension.TaskList,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithHardWraps(),
		htmlrenderer.WithXHTML(),
	),
)

// RegisterRoutes mounts the HTML rendering endpoint next to the article
// routes. The wildcard name must match the article group's.
func RegisterRoutes(rg *gin.RouterGroup, articles *article.Service) {
	rg.GET("/articles/:identifier/render", func(c *gin.Context) {
		a := articles.GetByIdentifier(c.Param("identifier"))
		if a == nil {
			response.NotFound(c, "Article not found")
			return
		}
		html, err := ToHTML(a.Content)
		if err != nil {
			response.InternalError(c)
			return
		}
		response.OK(c, gin.H{
			"id":   a.ID,
			"slug": a.Slug,
			"html": html,
		})
	})
}

// ToHTML renders GFM markdown to an HTML fragment.
func ToHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := markdownEngine.Convert([]byte(markdown), &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}
