package store

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/thanhmai/journal/internal/entities"
)

func (s *Store) listPath(collection entities.Collection) string {
	return filepath.Join(s.dataDir, collection.FileName())
}

func (s *Store) bookDetailPath(collection entities.Collection, id string) string {
	return filepath.Join(s.dataDir, booksDirName, string(collection), id+".json")
}

// SaveBook upserts a full book record into a collection. The detail file is
// written verbatim (minus the collection tag, which is implied by its
// location); the lite projection is then merged into the collection's list
// file, replacing the entry with the same id or appending a new one.
//
// The two writes are not transactional: if the list write fails after the
// detail write succeeded the files are inconsistent until the next save.
func (s *Store) SaveBook(collection entities.Collection, book entities.Book) error {
	if !collection.Valid() {
		return fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	if err := validateID(book.ID); err != nil {
		return err
	}

	// The file layout encodes the collection; don't store it twice.
	book.Collection = ""

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := writeJSON(s.bookDetailPath(collection, book.ID), book); err != nil {
		return err
	}

	summaries := s.readBookList(collection)
	lite := book.Lite()
	replaced := false
	for i, existing := range summaries {
		if existing.ID == lite.ID {
			summaries[i] = entities.MergeSummary(existing, lite)
			replaced = true
			break
		}
	}
	if !replaced {
		summaries = append(summaries, lite)
	}

	return writeJSON(s.listPath(collection), summaries)
}

// GetBook returns the full record for (collection, id). The detail file is
// preferred; if it is missing or unreadable the collection list is scanned
// and the lite entry returned as a degraded result. The returned record is
// tagged with its collection.
func (s *Store) GetBook(id string, collection entities.Collection) (*entities.Book, error) {
	if !collection.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}
	if err := validateID(id); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var book entities.Book
	if err := readJSON(s.bookDetailPath(collection, id), &book); err == nil {
		book.Collection = collection
		return &book, nil
	}

	for _, lite := range s.readBookList(collection) {
		if lite.ID == id {
			lite.Collection = collection
			return &entities.Book{BookSummary: lite}, nil
		}
	}
	return nil, ErrNotFound
}

// ListBooks returns every lite record in a collection, tagged with the
// collection name. A missing or corrupt list file yields an empty slice so
// that listing pages stay usable.
func (s *Store) ListBooks(collection entities.Collection) ([]entities.BookSummary, error) {
	if !collection.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCollection, collection)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	summaries := s.readBookList(collection)
	for i := range summaries {
		summaries[i].Collection = collection
	}
	return summaries, nil
}

// readBookList parses a collection list file, degrading missing or corrupt
// files to an empty list.
func (s *Store) readBookList(collection entities.Collection) []entities.BookSummary {
	var summaries []entities.BookSummary
	if err := readJSON(s.listPath(collection), &summaries); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("store: reading %s list: %v (treating as empty)", collection, err)
		}
		return []entities.BookSummary{}
	}
	if summaries == nil {
		summaries = []entities.BookSummary{}
	}
	return summaries
}
