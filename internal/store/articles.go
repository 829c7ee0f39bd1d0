package store

import (
	"log"
	"os"
	"path/filepath"

	"github.com/thanhmai/journal/internal/entities"
)

func (s *Store) articleListPath() string {
	return filepath.Join(s.dataDir, articleListFile)
}

func (s *Store) articleDetailPath(id string) string {
	return filepath.Join(s.dataDir, articlesDirName, id+".json")
}

// SaveArticle upserts a full article record. The detail file is written
// verbatim; the lite projection (content stripped) is inserted at the head
// of the list file for new ids — the list is most-recent-first — or updated
// in place for existing ids, preserving their position.
func (s *Store) SaveArticle(article entities.Article) error {
	if err := validateID(article.ID); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeJSON(s.articleDetailPath(article.ID), article); err != nil {
		return err
	}

	summaries := s.readArticleList()
	lite := article.Lite()
	updated := false
	for i, existing := range summaries {
		if existing.ID == lite.ID {
			summaries[i] = lite
			updated = true
			break
		}
	}
	if !updated {
		summaries = append([]entities.ArticleSummary{lite}, summaries...)
	}

	return writeJSON(s.articleListPath(), summaries)
}

// GetArticle reads an article's detail file. Unlike books there is no lite
// fallback: a missing detail file is a not-found error.
func (s *Store) GetArticle(id string) (*entities.Article, error) {
	if err := validateID(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var article entities.Article
	if err := readJSON(s.articleDetailPath(id), &article); err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &article, nil
}

// ListArticles returns the article list in stored order (newest first).
// Missing or corrupt list files degrade to an empty slice.
func (s *Store) ListArticles() []entities.ArticleSummary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readArticleList()
}

func (s *Store) readArticleList() []entities.ArticleSummary {
	var summaries []entities.ArticleSummary
	if err := readJSON(s.articleListPath(), &summaries); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store: reading article list: %v (treating as empty)", err)
		}
		return []entities.ArticleSummary{}
	}
	if summaries == nil {
		summaries = []entities.ArticleSummary{}
	}
	return summaries
}
