package entities

// Collection identifies one of the three book catalogs. Each collection has
// its own list file and detail directory; a book id is only unique within
// its collection.
type Collection string

const (
	CollectionNormalBooks Collection = "normal_books"
	CollectionManga       Collection = "manga"
	CollectionSpecialized Collection = "specialized"
)

// Collections lists every known collection, in display order.
var Collections = []Collection{
	CollectionNormalBooks,
	CollectionManga,
	CollectionSpecialized,
}

// Valid reports whether c names a known collection.
func (c Collection) Valid() bool {
	switch c {
	case CollectionNormalBooks, CollectionManga, CollectionSpecialized:
		return true
	}
	return false
}

// FileName returns the name of the collection's list file.
func (c Collection) FileName() string {
	return string(c) + ".json"
}

// Book reading status values.
const (
	StatusRead      = "read"
	StatusReading   = "reading"
	StatusWannaRead = "wanna-read"
	StatusEnd       = "end"
	StatusFollowing = "following"
)

// Chapter is a single chapter of a book recap. Content is raw markup that is
// rendered, never executed.
type Chapter struct {
	ID      string `json:"id"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

// AmbientMedia is an optional hover-preview asset attached to a book.
type AmbientMedia struct {
	URL  string `json:"url"`
	Type string `json:"type"` // "image", "video" or "gif"
}

// BookSummary is the list-view projection of a book: everything except the
// large detail fields (summary, chapters, author bio). This is what the
// collection list files contain.
type BookSummary struct {
	ID            string        `json:"id"`
	Title         string        `json:"title"`
	Author        string        `json:"author"`
	CoverImage    string        `json:"coverImage"`
	Category      string        `json:"category"`
	Status        string        `json:"status"`
	Type          string        `json:"type"` // "fiction" or "non-fiction"
	Tags          []string      `json:"tags"`
	UserRating    *float64      `json:"userRating,omitempty"`
	AverageRating *float64      `json:"averageRating,omitempty"`
	ReadingTime   string        `json:"readingTime,omitempty"`
	Progress      *int          `json:"progress,omitempty"` // 0-100
	Date          string        `json:"date"`
	ReadAt        string        `json:"readAt,omitempty"`
	Year          string        `json:"year,omitempty"`
	Collection    Collection    `json:"collection,omitempty"`
	AmbientMedia  *AmbientMedia `json:"ambientMedia,omitempty"`
}

// Book is the full detail record. The embedded summary keeps the two
// projections structurally in sync: a field added to BookSummary is
// automatically part of Book, and the detail-only fields are exactly the
// ones declared here.
type Book struct {
	BookSummary
	AuthorBio string    `json:"authorBio,omitempty"`
	Summary   string    `json:"summary,omitempty"`
	Chapters  []Chapter `json:"chapters,omitempty"`
}

// Lite returns the list-view projection of the book.
func (b Book) Lite() BookSummary {
	return b.BookSummary
}

// MergeSummary combines an existing list entry with an updated one. Fields
// set on the update win; optional fields the update leaves empty are carried
// over from the existing entry, matching the old-then-new object merge the
// list files have always been written with.
func MergeSummary(existing, update BookSummary) BookSummary {
	merged := update
	if merged.Title == "" {
		merged.Title = existing.Title
	}
	if merged.Author == "" {
		merged.Author = existing.Author
	}
	if merged.CoverImage == "" {
		merged.CoverImage = existing.CoverImage
	}
	if merged.Category == "" {
		merged.Category = existing.Category
	}
	if merged.Status == "" {
		merged.Status = existing.Status
	}
	if merged.Type == "" {
		merged.Type = existing.Type
	}
	if merged.Tags == nil {
		merged.Tags = existing.Tags
	}
	if merged.UserRating == nil {
		merged.UserRating = existing.UserRating
	}
	if merged.AverageRating == nil {
		merged.AverageRating = existing.AverageRating
	}
	if merged.ReadingTime == "" {
		merged.ReadingTime = existing.ReadingTime
	}
	if merged.Progress == nil {
		merged.Progress = existing.Progress
	}
	if merged.Date == "" {
		merged.Date = existing.Date
	}
	if merged.ReadAt == "" {
		merged.ReadAt = existing.ReadAt
	}
	if merged.Year == "" {
		merged.Year = existing.Year
	}
	if merged.AmbientMedia == nil {
		merged.AmbientMedia = existing.AmbientMedia
	}
	return merged
}
