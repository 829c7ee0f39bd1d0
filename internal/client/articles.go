package client

import (
	"context"
	"log"

	"github.com/thanhmai/journal/internal/entities"
)

// ListArticles fetches the article list. Failures log and yield an empty
// slice.
func (c *Client) ListArticles(ctx context.Context) []entities.ArticleSummary {
	var response struct {
		Articles []entities.ArticleSummary `json:"articles"`
	}
	if err := c.getJSON(ctx, "/api/ramblings", &response); err != nil {
		log.Printf("client: failed to load articles: %v", err)
		return []entities.ArticleSummary{}
	}
	return response.Articles
}

// GetArticleByID fetches an article's full record, or nil on any failure.
func (c *Client) GetArticleByID(ctx context.Context, id string) *entities.Article {
	var article entities.Article
	if err := c.getJSON(ctx, "/api/ramblings/"+id, &article); err != nil {
		log.Printf("client: failed to load article %s: %v", id, err)
		return nil
	}
	return &article
}

// SaveArticle submits a full article record with the session token
// attached, returning the server's success flag.
func (c *Client) SaveArticle(ctx context.Context, article entities.Article) bool {
	ok, err := c.postJSON(ctx, "/api/save-rambling", article)
	if err != nil {
		log.Printf("client: failed to save article %s: %v", article.ID, err)
		return false
	}
	return ok
}
