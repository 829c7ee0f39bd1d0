// Package store implements the file-backed record store for books and
// articles. Every record lives in pretty-printed UTF-8 JSON files under a
// single data directory: one list file per book collection, one detail file
// per book id under books/<collection>/, one article list file and one
// detail file per article id under rambling/.
//
// A process-wide mutex serialises read-modify-write sequences on the list
// files. There is no cross-process locking: two processes writing the same
// collection can still lose an update, which is an accepted hazard for a
// single-admin tool.
package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sync"
)

var (
	ErrNotFound          = errors.New("record not found")
	ErrMissingID         = errors.New("record id is required")
	ErrInvalidID         = errors.New("record id contains invalid characters")
	ErrUnknownCollection = errors.New("unknown collection")
)

// Record ids double as file names, so they are restricted to a safe slug
// alphabet.
var idPattern = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._-]*$`)

const (
	booksDirName    = "books"
	articlesDirName = "rambling"
	articleListFile = "rambling.json"
)

// Store reads and writes the journal's JSON files.
type Store struct {
	dataDir string

	mu sync.Mutex
}

// New creates a store rooted at dataDir, creating the directory if needed.
func New(dataDir string) (*Store, error) {
	if dataDir == "" {
		return nil, fmt.Errorf("data directory is required")
	}
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &Store{dataDir: dataDir}, nil
}

// DataDir returns the root directory the store persists into.
func (s *Store) DataDir() string {
	return s.dataDir
}

func validateID(id string) error {
	if id == "" {
		return ErrMissingID
	}
	if !idPattern.MatchString(id) {
		return ErrInvalidID
	}
	return nil
}

// writeJSON marshals v pretty-printed and writes it, creating parent
// directories as needed.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// readJSON reads path into v. Missing files surface the os error unchanged
// so callers can branch on os.IsNotExist.
func readJSON(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return nil
}
