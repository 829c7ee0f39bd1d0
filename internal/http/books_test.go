package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thanhmai/journal/internal/auth"
	"github.com/thanhmai/journal/internal/config"
	"github.com/thanhmai/journal/internal/entities"
	"github.com/thanhmai/journal/internal/store"
)

var testSecret = []byte("router-test-secret")

func setupTestRouter(t *testing.T) (*store.Store, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	recordStore, err := store.New(t.TempDir())
	require.NoError(t, err)

	users, err := auth.NewUserStore(filepath.Join(t.TempDir(), "users.json"))
	require.NoError(t, err)
	service := auth.NewService(users, testSecret, config.Auth{
		TokenTTL:   time.Hour,
		BcryptCost: 4,
	})

	router := NewRouter(RouterConfig{
		Store:       recordStore,
		AuthService: service,
		Version:     "test",
	})
	return recordStore, router
}

func adminToken() string {
	return auth.SignToken("root", entities.UserRoleAdmin, time.Hour, testSecret)
}

func userToken() string {
	return auth.SignToken("alice", entities.UserRoleUser, time.Hour, testSecret)
}

func postJSON(t *testing.T, router *gin.Engine, path, token string, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req, _ := http.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set(AdminTokenHeader, token)
	}
	router.ServeHTTP(w, req)
	return w
}

func sampleBook(id, title string, collection entities.Collection) entities.Book {
	return entities.Book{
		BookSummary: entities.BookSummary{
			ID:         id,
			Title:      title,
			Author:     "Author",
			Status:     entities.StatusRead,
			Type:       "fiction",
			Tags:       []string{},
			Date:       "2024-01-01",
			Collection: collection,
		},
		Summary: "Detail summary.",
	}
}

func TestSaveBookEndpoint(t *testing.T) {
	t.Run("rejects a missing token and leaves files untouched", func(t *testing.T) {
		recordStore, router := setupTestRouter(t)

		w := postJSON(t, router, "/api/save-book", "", sampleBook("42", "New", entities.CollectionManga))

		assert.Equal(t, http.StatusForbidden, w.Code)
		_, err := os.Stat(filepath.Join(recordStore.DataDir(), "manga.json"))
		assert.True(t, os.IsNotExist(err))
	})

	t.Run("rejects a token without the admin role", func(t *testing.T) {
		_, router := setupTestRouter(t)

		w := postJSON(t, router, "/api/save-book", userToken(), sampleBook("42", "New", entities.CollectionManga))

		assert.Equal(t, http.StatusForbidden, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, false, response["success"])
	})

	t.Run("rejects an unsigned token claiming admin", func(t *testing.T) {
		_, router := setupTestRouter(t)

		w := postJSON(t, router, "/api/save-book", "user:mallory|role:admin", sampleBook("42", "New", entities.CollectionManga))
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin token updates the list entry and detail file", func(t *testing.T) {
		recordStore, router := setupTestRouter(t)
		require.NoError(t, recordStore.SaveBook(entities.CollectionManga, sampleBook("42", "Old Title", "")))

		w := postJSON(t, router, "/api/save-book", adminToken(), sampleBook("42", "New Title", entities.CollectionManga))

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, true, response["success"])

		list, err := recordStore.ListBooks(entities.CollectionManga)
		require.NoError(t, err)
		require.Len(t, list, 1)
		assert.Equal(t, "New Title", list[0].Title)

		book, err := recordStore.GetBook("42", entities.CollectionManga)
		require.NoError(t, err)
		assert.Equal(t, "New Title", book.Title)
	})

	t.Run("malformed body is an error payload, not a panic", func(t *testing.T) {
		_, router := setupTestRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("POST", "/api/save-book", bytes.NewReader([]byte("{broken")))
		req.Header.Set(AdminTokenHeader, adminToken())
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusInternalServerError, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, false, response["success"])
	})

	t.Run("record without an id is rejected", func(t *testing.T) {
		_, router := setupTestRouter(t)

		w := postJSON(t, router, "/api/save-book", adminToken(), sampleBook("", "No ID", entities.CollectionManga))
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestBookReadEndpoints(t *testing.T) {
	t.Run("list returns lite records with count", func(t *testing.T) {
		recordStore, router := setupTestRouter(t)
		require.NoError(t, recordStore.SaveBook(entities.CollectionManga, sampleBook("a", "A", "")))
		require.NoError(t, recordStore.SaveBook(entities.CollectionManga, sampleBook("b", "B", "")))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books/manga", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(2), response["count"])
	})

	t.Run("list of an empty collection is empty, not an error", func(t *testing.T) {
		_, router := setupTestRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books/normal_books", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("unknown collection is a bad request", func(t *testing.T) {
		_, router := setupTestRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books/poetry", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("detail endpoint returns the full record", func(t *testing.T) {
		recordStore, router := setupTestRouter(t)
		require.NoError(t, recordStore.SaveBook(entities.CollectionManga, sampleBook("a", "A", "")))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books/manga/a", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var book entities.Book
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &book))
		assert.Equal(t, "Detail summary.", book.Summary)
		assert.Equal(t, entities.CollectionManga, book.Collection)
	})

	t.Run("missing book is 404", func(t *testing.T) {
		_, router := setupTestRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/books/manga/ghost", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestArticleEndpoints(t *testing.T) {
	t.Run("save requires admin, new article lands at the head", func(t *testing.T) {
		recordStore, router := setupTestRouter(t)

		first := entities.Article{
			ArticleSummary: entities.ArticleSummary{ID: "post-1", Title: "First", Summary: "s"},
			Content:        "body one",
		}
		second := entities.Article{
			ArticleSummary: entities.ArticleSummary{ID: "post-2", Title: "Second", Summary: "s"},
			Content:        "body two",
		}

		w := postJSON(t, router, "/api/save-rambling", "", first)
		assert.Equal(t, http.StatusForbidden, w.Code)

		w = postJSON(t, router, "/api/save-rambling", adminToken(), first)
		assert.Equal(t, http.StatusOK, w.Code)
		w = postJSON(t, router, "/api/save-rambling", adminToken(), second)
		assert.Equal(t, http.StatusOK, w.Code)

		list := recordStore.ListArticles()
		require.Len(t, list, 2)
		assert.Equal(t, "post-2", list[0].ID)
	})

	t.Run("save stamps createdAt and updatedAt", func(t *testing.T) {
		recordStore, router := setupTestRouter(t)

		article := entities.Article{
			ArticleSummary: entities.ArticleSummary{ID: "post-1", Title: "First", Summary: "s"},
			Content:        "body",
		}
		w := postJSON(t, router, "/api/save-rambling", adminToken(), article)
		assert.Equal(t, http.StatusOK, w.Code)

		got, err := recordStore.GetArticle("post-1")
		require.NoError(t, err)
		assert.NotEmpty(t, got.CreatedAt)
		assert.NotEmpty(t, got.UpdatedAt)
	})

	t.Run("detail endpoint surfaces missing articles as 404", func(t *testing.T) {
		_, router := setupTestRouter(t)

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/ramblings/ghost", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("list endpoint returns articles newest first", func(t *testing.T) {
		recordStore, router := setupTestRouter(t)
		require.NoError(t, recordStore.SaveArticle(entities.Article{
			ArticleSummary: entities.ArticleSummary{ID: "post-1", Title: "First", Summary: "s", CreatedAt: "c", UpdatedAt: "u"},
			Content:        "body",
		}))

		w := httptest.NewRecorder()
		req, _ := http.NewRequest("GET", "/api/ramblings", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		assert.Equal(t, float64(1), response["count"])
	})
}
