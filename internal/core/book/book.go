package book

import (
	"time"

	"github.com/thirawat/librarium/pkg/pagination"
)

// Book is a catalog record for a single ebook title.
//
// PublisherID is nullable: imported records frequently arrive without a
// publisher. LanguageID and FileTypeID always resolve to a reference row.
// Authors are attached through a pivot table, exposed here as AuthorIDs.
type Book struct {
	ID            int       `json:"id"`
	Title         string    `json:"title"`
	ISBN          string    `json:"isbn"`
	TotalPage     int       `json:"total_page"`
	Synopsis      string    `json:"synopsis"`
	PublishedYear int       `json:"published_year"`
	CoverImage    string    `json:"cover_image"`
	EbookFile     string    `json:"ebook_file"`
	PublisherID   *int      `json:"publisher_id"`
	LanguageID    int       `json:"language_id"`
	FileTypeID    int       `json:"file_type_id"`
	AuthorIDs     []int     `json:"author_ids,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// Filter narrows book list queries.
type Filter struct {
	Query string
	Page  pagination.Params
}
