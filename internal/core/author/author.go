package author

import "time"

// Author represents a person credited as the writer of one or more books.
//
// The wire name "author_name" is kept for compatibility with the original
// admin frontend; newer clients should treat it as the display name.
type Author struct {
	ID        int       `json:"id"`
	Name      string    `json:"author_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter holds the parameters for an author search.
type Filter struct {
	Query string // Case-insensitive substring search against name
}

// Collection is the refcache collection key for the author list.
const Collection = "authors"

// Global field names for validation
const (
	FieldName = "author_name"
)
