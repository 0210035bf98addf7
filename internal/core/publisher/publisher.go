package publisher

import "time"

// Publisher represents the publishing house a book was released by.
type Publisher struct {
	ID        int       `json:"id"`
	Name      string    `json:"publisher_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Filter holds the parameters for a publisher search.
type Filter struct {
	Query string
}

// Collection is the refcache collection key for the publisher list.
const Collection = "publishers"

// Global field names for validation
const (
	FieldName = "publisher_name"
)
