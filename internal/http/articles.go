package http

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/thanhmai/journal/internal/audit"
	"github.com/thanhmai/journal/internal/entities"
	"github.com/thanhmai/journal/internal/store"
)

// ArticlesController handles the rambling read and write endpoints.
type ArticlesController struct {
	store   *store.Store
	auditor *audit.Recorder
}

func NewArticlesController(s *store.Store, auditor *audit.Recorder) *ArticlesController {
	return &ArticlesController{store: s, auditor: auditor}
}

// ListArticles returns the article list, newest first.
func (controller *ArticlesController) ListArticles(c *gin.Context) {
	articles := controller.store.ListArticles()
	c.IndentedJSON(http.StatusOK, gin.H{"articles": articles, "count": len(articles)})
}

// GetArticle returns a single article's full record.
func (controller *ArticlesController) GetArticle(c *gin.Context) {
	article, err := controller.store.GetArticle(c.Param("id"))
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"success": false, "error": "article not found"})
			return
		}
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, article)
}

// SaveArticle upserts a full article record, stamping createdAt on first
// save and updatedAt on every save.
func (controller *ArticlesController) SaveArticle(c *gin.Context) {
	var article entities.Article
	if err := c.ShouldBindJSON(&article); err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	now := time.Now().UTC().Format(time.RFC3339)
	if article.CreatedAt == "" {
		article.CreatedAt = now
	}
	article.UpdatedAt = now

	if controller.auditor != nil {
		if _, err := controller.auditor.Record("save-rambling", article); err != nil {
			log.Printf("failed to audit save-rambling payload: %v", err)
		}
	}

	if err := controller.store.SaveArticle(article); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrMissingID) || errors.Is(err, store.ErrInvalidID) {
			status = http.StatusBadRequest
		}
		c.IndentedJSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"success": true})
}
