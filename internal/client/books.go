package client

import (
	"context"
	"fmt"
	"log"

	"github.com/thanhmai/journal/internal/entities"
)

// GetAllBooks fetches a collection's list records, each tagged with its
// collection. Failures log and yield an empty slice.
func (c *Client) GetAllBooks(ctx context.Context, collection entities.Collection) []entities.BookSummary {
	var response struct {
		Books []entities.BookSummary `json:"books"`
	}
	path := fmt.Sprintf("/api/books/%s", collection)
	if err := c.getJSON(ctx, path, &response); err != nil {
		log.Printf("client: failed to load collection %s: %v", collection, err)
		return []entities.BookSummary{}
	}

	for i := range response.Books {
		response.Books[i].Collection = collection
	}
	return response.Books
}

// GetBookByID fetches a book's full record. If the detail fetch fails the
// collection list is scanned and a matching lite entry accepted as a
// degraded result. Nil means both paths failed.
func (c *Client) GetBookByID(ctx context.Context, id string, collection entities.Collection) *entities.Book {
	var book entities.Book
	path := fmt.Sprintf("/api/books/%s/%s", collection, id)
	err := c.getJSON(ctx, path, &book)
	if err == nil {
		book.Collection = collection
		return &book
	}
	log.Printf("client: detail fetch for %s/%s failed, falling back to list: %v", collection, id, err)

	for _, lite := range c.GetAllBooks(ctx, collection) {
		if lite.ID == id {
			return &entities.Book{BookSummary: lite}
		}
	}
	return nil
}

// UpdateBook submits a full record to the save endpoint with the session
// token attached. HTTP failures log and return false; UI code never sees an
// error.
func (c *Client) UpdateBook(ctx context.Context, book entities.Book, collection entities.Collection) bool {
	book.Collection = collection
	ok, err := c.postJSON(ctx, "/api/save-book", book)
	if err != nil {
		log.Printf("client: failed to update book %s: %v", book.ID, err)
		return false
	}
	return ok
}
