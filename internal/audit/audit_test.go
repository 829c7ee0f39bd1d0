package audit

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder(t *testing.T) {
	t.Run("Record creates the directory and writes the payload", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "audit")
		recorder := NewRecorder(dir)

		payload := map[string]any{"id": "42", "title": "New Title"}
		filename, err := recorder.Record("save-book", payload)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(filename, "save-book-"))
		assert.True(t, strings.HasSuffix(filename, ".json"))

		data, err := os.ReadFile(filepath.Join(dir, filename))
		require.NoError(t, err)

		var saved map[string]any
		require.NoError(t, json.Unmarshal(data, &saved))
		assert.Equal(t, "42", saved["id"])
		assert.Equal(t, "New Title", saved["title"])
	})

	t.Run("Record generates unique filenames", func(t *testing.T) {
		recorder := NewRecorder(t.TempDir())

		first, err := recorder.Record("save-rambling", map[string]string{"id": "a"})
		require.NoError(t, err)
		second, err := recorder.Record("save-rambling", map[string]string{"id": "a"})
		require.NoError(t, err)

		assert.NotEqual(t, first, second)
	})
}
