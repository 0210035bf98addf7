package schema

// BookTable represents the 'catalog.book' table
type BookTable struct {
	Table         string
	ID            string
	Title         string
	ISBN          string
	TotalPage     string
	Synopsis      string
	PublishedYear string
	CoverImage    string
	EbookFile     string
	PublisherID   string
	LanguageID    string
	FileTypeID    string
	CreatedAt     string
	UpdatedAt     string
}

// Book is the schema definition for catalog.book
var Book = BookTable{
	Table:         "catalog.book",
	ID:            "id",
	Title:         "title",
	ISBN:          "isbn",
	TotalPage:     "total_page",
	Synopsis:      "synopsis",
	PublishedYear: "published_year",
	CoverImage:    "cover_image",
	EbookFile:     "ebook_file",
	PublisherID:   "publisher_id",
	LanguageID:    "language_id",
	FileTypeID:    "file_type_id",
	CreatedAt:     "created_at",
	UpdatedAt:     "updated_at",
}
