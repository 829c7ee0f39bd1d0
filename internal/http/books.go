package http

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thanhmai/journal/internal/audit"
	"github.com/thanhmai/journal/internal/entities"
	"github.com/thanhmai/journal/internal/store"
)

// BooksController handles the book read and write endpoints.
type BooksController struct {
	store   *store.Store
	auditor *audit.Recorder
}

func NewBooksController(s *store.Store, auditor *audit.Recorder) *BooksController {
	return &BooksController{store: s, auditor: auditor}
}

// ListBooks returns a collection's lite records.
func (controller *BooksController) ListBooks(c *gin.Context) {
	collection := entities.Collection(c.Param("collection"))
	books, err := controller.store.ListBooks(collection)
	if err != nil {
		c.IndentedJSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, gin.H{"books": books, "count": len(books)})
}

// GetBook returns a single book's full record, degrading to the lite entry
// when the detail file is unavailable.
func (controller *BooksController) GetBook(c *gin.Context) {
	collection := entities.Collection(c.Param("collection"))
	book, err := controller.store.GetBook(c.Param("id"), collection)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			c.IndentedJSON(http.StatusNotFound, gin.H{"success": false, "error": "book not found"})
			return
		}
		c.IndentedJSON(http.StatusBadRequest, gin.H{"success": false, "error": err.Error()})
		return
	}
	c.IndentedJSON(http.StatusOK, book)
}

// SaveBook upserts a full book record. The payload is the record itself
// carrying its collection tag. Admin gating happens in middleware; by the
// time this runs the caller is trusted.
func (controller *BooksController) SaveBook(c *gin.Context) {
	var book entities.Book
	if err := c.ShouldBindJSON(&book); err != nil {
		c.IndentedJSON(http.StatusInternalServerError, gin.H{"success": false, "error": "invalid request body"})
		return
	}

	collection := book.Collection
	if collection == "" {
		collection = entities.CollectionNormalBooks
	}

	if controller.auditor != nil {
		if _, err := controller.auditor.Record("save-book", book); err != nil {
			log.Printf("failed to audit save-book payload: %v", err)
		}
	}

	if err := controller.store.SaveBook(collection, book); err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, store.ErrMissingID) || errors.Is(err, store.ErrInvalidID) ||
			errors.Is(err, store.ErrUnknownCollection) {
			status = http.StatusBadRequest
		}
		c.IndentedJSON(status, gin.H{"success": false, "error": err.Error()})
		return
	}

	c.IndentedJSON(http.StatusOK, gin.H{"success": true})
}
