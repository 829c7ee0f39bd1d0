package http

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/thanhmai/journal/internal/audit"
	"github.com/thanhmai/journal/internal/auth"
	"github.com/thanhmai/journal/internal/store"
)

// RouterConfig carries every dependency the router needs, keeping the
// constructor signature stable as handlers are added.
type RouterConfig struct {
	Store       *store.Store
	AuthService *auth.Service
	Auditor     *audit.Recorder
	StaticDir   string
	Version     string
}

// NewRouter creates and configures the HTTP router with all endpoints.
//
// Only the /api and /health paths are handled here; everything else falls
// through to the static site build, because in production the site is
// deployed as static files and this API only exists on the dev machine.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	health := NewHealthController(cfg.Store, cfg.Version)
	router.GET("/health", health.Status)

	authController := NewAuthController(cfg.AuthService)
	authController.RegisterRoutes(router)

	books := NewBooksController(cfg.Store, cfg.Auditor)
	articles := NewArticlesController(cfg.Store, cfg.Auditor)

	adminOnly := AdminTokenMiddleware(cfg.AuthService)

	api := router.Group("/api")
	{
		api.GET("/books/:collection", books.ListBooks)
		api.GET("/books/:collection/:id", books.GetBook)
		api.POST("/save-book", adminOnly, books.SaveBook)

		api.GET("/ramblings", articles.ListArticles)
		api.GET("/ramblings/:id", articles.GetArticle)
		api.POST("/save-rambling", adminOnly, articles.SaveArticle)
	}

	if cfg.StaticDir != "" {
		registerStaticSite(router, cfg.StaticDir)
	}

	return router
}

// registerStaticSite serves the built frontend for every unmatched path,
// falling back to index.html for client-side routes.
func registerStaticSite(router *gin.Engine, dir string) {
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.IndentedJSON(http.StatusNotFound, gin.H{"success": false, "error": "not found"})
			return
		}

		requested := filepath.Join(dir, filepath.Clean("/"+c.Request.URL.Path))
		if info, err := os.Stat(requested); err == nil && !info.IsDir() {
			c.File(requested)
			return
		}
		c.File(filepath.Join(dir, "index.html"))
	})
}
