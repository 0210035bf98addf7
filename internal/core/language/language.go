package language

import "time"

// Language represents the language a book edition is written in.
type Language struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Collection is the refcache collection key for the language list.
const Collection = "languages"

const (
	FieldName = "name"
)
