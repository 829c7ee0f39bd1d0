// Package audit preserves accepted write payloads as JSON files, one per
// request, so hand-edited record files can always be reconstructed from
// what the API actually received.
package audit

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// Recorder writes audit files into a directory.
type Recorder struct {
	Dir string
}

// NewRecorder creates a recorder for the given directory. The directory is
// created on first record.
func NewRecorder(dir string) *Recorder {
	return &Recorder{Dir: dir}
}

// Record saves payload as "<kind>-<uuid>.json" and returns the filename.
func (r *Recorder) Record(kind string, payload any) (string, error) {
	if err := r.ensureDir(); err != nil {
		return "", fmt.Errorf("failed to ensure audit directory: %w", err)
	}

	filename := fmt.Sprintf("%s-%s.json", kind, uuid.New().String())
	path := filepath.Join(r.Dir, filename)

	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal audit payload: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write audit file: %w", err)
	}
	return filename, nil
}

func (r *Recorder) ensureDir() error {
	if _, err := os.Stat(r.Dir); os.IsNotExist(err) {
		if err := os.MkdirAll(r.Dir, 0755); err != nil {
			return fmt.Errorf("failed to create audit directory: %w", err)
		}
	}
	return nil
}
