// Package feed serves RSS and Atom feeds over the article collection.
package feed

import (
	"fmt"
	"time"

	"github.com/amadeudias/blog-core/internal/config"
	"github.com/amadeudias/blog-core/internal/storage"
	"github.com/gin-gonic/gin"
)

const feedItemLimit = 20

// RegisterRoutes mounts RSS and Atom feed endpoints.
func RegisterRoutes(rg *gin.RouterGroup, store *storage.Store, site config.SiteConfig) {
	rg.GET("/feed", func(c *gin.Context) {
		feedType := c.DefaultQuery("type", "rss") // rss | atom
		renderFeed(c, store, site, feedType)
	})
	rg.GET("/feed.xml", func(c *gin.Context) {
		renderFeed(c, store, site, "rss")
	})
	rg.GET("/atom.xml", func(c *gin.Context) {
		renderFeed(c, store, site, "atom")
	})
}

type feedItem struct {
	Title   string
	Link    string
	GUID    string
	PubDate time.Time
	Content string
}

func renderFeed(c *gin.Context, store *storage.Store, site config.SiteConfig, feedType string) {
	articles := store.ListLatest(feedItemLimit)

	items := make([]feedItem, len(articles))
	for i, a := range articles {
		items[i] = feedItem{
			Title:   a.Title,
			Link:    fmt.Sprintf("%s/articles/%s", site.URL, a.Slug),
			GUID:    a.ID,
			PubDate: a.PublishedAt,
			Content: a.Excerpt,
		}
	}

	switch feedType {
	case "atom":
		c.Header("Content-Type", "application/atom+xml; charset=utf-8")
		c.String(200, buildAtom(site.Title, site.Description, site.URL, items))
	default:
		c.Header("Content-Type", "application/rss+xml; charset=utf-8")
		c.String(200, buildRSS(site.Title, site.Description, site.URL, items))
	}
}

func buildRSS(title, desc, link string, items []feedItem) string {
	now := time.Now().Format(time.RFC1123Z)
	xml := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>%s</title>
    <link>%s</link>
    <description>%s</description>
    <lastBuildDate>%s</lastBuildDate>
`, escapeXML(title), escapeXML(link), escapeXML(desc), now)

	for _, item := range items {
		xml += fmt.Sprintf(`    <item>
      <title>%s</title>
      <link>%s</link>
      <guid>%s</guid>
      <pubDate>%s</pubDate>
      <description><![CDATA[%s]]></description>
    </item>
`, escapeXML(item.Title), escapeXML(item.Link), item.GUID,
			item.PubDate.Format(time.RFC1123Z), item.Content)
	}

	xml += `  </channel>
</rss>`
	return xml
}

func buildAtom(title, desc, link string, items []feedItem) string {
	now := time.Now().Format(time.RFC3339)
	xml := fmt.Sprintf(`<?xml version="1.0" encoding="UTF-8"?>
<feed xmlns="http://www.w3.org/2005/Atom">
  <title>%s</title>
  <subtitle>%s</subtitle>
  <link href="%s"/>
  <updated>%s</updated>
  <id>%s</id>
`, escapeXML(title), escapeXML(desc), escapeXML(link), now, escapeXML(link))

	for _, item := range items {
		xml += fmt.Sprintf(`  <entry>
    <title>%s</title>
    <link href="%s"/>
    <id>%s</id>
    <updated>%s</updated>
    <content type="html"><![CDATA[%s]]></content>
  </entry>
`, escapeXML(item.Title), escapeXML(item.Link), item.GUID,
			item.PubDate.Format(time.RFC3339), item.Content)
	}

	xml += `</feed>`
	return xml
}

// escapeXML replaces XML special characters in attribute/element content.
func escapeXML(s string) string {
	result := ""
	for _, r := range s {
		switch r {
		case '&':
			result += "&amp;"
		case '<':
			result += "&lt;"
		case '>':
			result += "&gt;"
		case '"':
			result += "&quot;"
		default:
			result += string(r)
		}
	}
	return result
}
