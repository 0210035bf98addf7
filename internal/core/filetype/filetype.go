package filetype

import "time"

// FileType is the controlled vocabulary of ebook formats ("pdf", "epub").
//
// Rows are created on demand the first time a format is seen, so the
// vocabulary can grow without a schema change.
type FileType struct {
	ID        int       `json:"id"`
	Name      string    `json:"type_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Collection is the refcache collection key for the file type list.
const Collection = "filetypes"

const (
	FieldName = "type_name"
)
