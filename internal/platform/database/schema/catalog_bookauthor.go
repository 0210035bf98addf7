package schema

// BookAuthorTable represents the 'catalog.bookauthor' pivot table
type BookAuthorTable struct {
	Table    string
	BookID   string
	AuthorID string
}

// BookAuthor is the schema definition for catalog.bookauthor
var BookAuthor = BookAuthorTable{
	Table:    "catalog.bookauthor",
	BookID:   "book_id",
	AuthorID: "author_id",
}
