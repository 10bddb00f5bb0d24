package app

import (
	"net/http"
	"time"

	"github.com/amadeudias/blog-core/internal/middleware"
	"github.com/amadeudias/blog-core/internal/modules/article"
	authmodule "github.com/amadeudias/blog-core/internal/modules/auth"
	"github.com/amadeudias/blog-core/internal/modules/author"
	"github.com/amadeudias/blog-core/internal/modules/category"
	"github.com/amadeudias/blog-core/internal/modules/feed"
	"github.com/amadeudias/blog-core/internal/modules/newsletter"
	"github.com/amadeudias/blog-core/internal/modules/render"
	"github.com/amadeudias/blog-core/internal/pkg/response"
	"github.com/gin-gonic/gin"
)

func (a *App) registerRoutes() {
	r := a.router
	authMW := middleware.Auth(a.sessions)

	r.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "Not found")
	})
	r.NoMethod(func(c *gin.Context) {
		response.MethodNotAllowed(c)
	})

	// Root-level syndication aliases for feed readers.
	root := r.Group("")
	feed.RegisterRoutes(root, a.store, a.cfg.Site)

	api := r.Group("/api")

	api.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"data": "pong"})
	})
	api.GET("/uptime", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"timestamp": time.Since(processStart).Milliseconds()})
	})

	articleSvc := article.NewService(a.store)
	article.NewHandler(articleSvc).RegisterRoutes(api, authMW)
	render.RegisterRoutes(api, articleSvc)

	category.NewHandler(category.NewService(a.store)).RegisterRoutes(api, authMW)
	author.NewHandler(a.store).RegisterRoutes(api, authMW)
	newsletter.RegisterRoutes(api)

	feed.RegisterRoutes(api, a.store, a.cfg.Site)

	verifier := authmodule.NewStaticVerifier(a.cfg.Admin)
	authSvc := authmodule.NewService(verifier, a.sessions)
	authmodule.NewHandler(authSvc, a.sessions, a.cfg.IsDev()).RegisterRoutes(api)
}

var processStart = time.Now()
