package auth

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/thanhmai/journal/internal/entities"
)

// UserStore persists accounts in a single flat JSON file. The file is owned
// exclusively by this package; records are append-only and never modified.
type UserStore struct {
	path string
	mu   sync.Mutex
}

// NewUserStore creates a store backed by the given file path. The file is
// created lazily on first append.
func NewUserStore(path string) (*UserStore, error) {
	if path == "" {
		return nil, fmt.Errorf("user file path is required")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create user file directory: %w", err)
	}
	return &UserStore{path: path}, nil
}

// All returns every stored user. A missing file is an empty store, not an
// error.
func (s *UserStore) All() ([]entities.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readAll()
}

// FindByUsername returns the user with the exact (case-sensitive) username,
// or nil if absent.
func (s *UserStore) FindByUsername(username string) (*entities.User, error) {
	users, err := s.All()
	if err != nil {
		return nil, err
	}
	for i := range users {
		if users[i].Username == username {
			return &users[i], nil
		}
	}
	return nil, nil
}

// Append adds a user record. It fails with ErrUserExists if the username is
// already taken, leaving the file untouched.
func (s *UserStore) Append(user entities.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.readAll()
	if err != nil {
		return err
	}
	for _, existing := range users {
		if existing.Username == user.Username {
			return ErrUserExists
		}
	}
	users = append(users, user)

	data, err := json.MarshalIndent(users, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal user file: %w", err)
	}
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return fmt.Errorf("failed to write user file: %w", err)
	}
	return nil
}

func (s *UserStore) readAll() ([]entities.User, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return []entities.User{}, nil
		}
		return nil, fmt.Errorf("failed to read user file: %w", err)
	}
	var users []entities.User
	if err := json.Unmarshal(data, &users); err != nil {
		return nil, fmt.Errorf("failed to parse user file: %w", err)
	}
	return users, nil
}
