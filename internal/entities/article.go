package entities

// ArticleSummary is the list-view projection of an article ("rambling"):
// the full record without its content body.
type ArticleSummary struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Summary   string `json:"summary"`
	Thumbnail string `json:"thumbnail,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

// Article is the full article record.
type Article struct {
	ArticleSummary
	Content string `json:"content"`
}

// Lite returns the list-view projection of the article.
func (a Article) Lite() ArticleSummary {
	return a.ArticleSummary
}
