package intake

import "context"

// Draft is the fully resolved book payload handed to the catalog once every
// reference field has an id. PublisherID stays nil when the form omitted a
// publisher.
type Draft struct {
	Title         string
	ISBN          string
	TotalPage     int
	Synopsis      string
	PublishedYear int
	CoverImage    string
	EbookFile     string
	PublisherID   *int
	LanguageID    int
	FileTypeID    int
}

// Catalog is the external catalog service as the engine consumes it. The
// engine never talks to storage directly; both the in-process services and
// the remote HTTP API satisfy this interface.
type Catalog interface {
	ListAuthors(ctx context.Context) ([]Reference, error)
	ListPublishers(ctx context.Context) ([]Reference, error)
	ListLanguages(ctx context.Context) ([]Reference, error)
	ListFileTypes(ctx context.Context) ([]Reference, error)

	CreateAuthor(ctx context.Context, name string) (Reference, error)
	CreatePublisher(ctx context.Context, name string) (Reference, error)
	CreateLanguage(ctx context.Context, name string) (Reference, error)
	CreateFileType(ctx context.Context, name string) (Reference, error)

	CreateBook(ctx context.Context, draft Draft) (int, error)
	UpdateBook(ctx context.Context, id int, draft Draft) (int, error)

	ListBookAuthors(ctx context.Context, bookID int) ([]int, error)
	LinkAuthor(ctx context.Context, bookID, authorID int) error
	UnlinkAuthor(ctx context.Context, bookID, authorID int) error
}
