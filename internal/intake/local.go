package intake

import (
	"context"

	"github.com/thirawat/librarium/internal/core/author"
	"github.com/thirawat/librarium/internal/core/book"
	"github.com/thirawat/librarium/internal/core/filetype"
	"github.com/thirawat/librarium/internal/core/language"
	"github.com/thirawat/librarium/internal/core/publisher"
	"github.com/thirawat/librarium/pkg/slice"
)

// LocalCatalog adapts the in-process catalog services to the [Catalog]
// interface, so the engine runs identically behind the admin endpoints and
// behind the remote [Client].
type LocalCatalog struct {
	authors    *author.Service
	publishers *publisher.Service
	languages  *language.Service
	fileTypes  *filetype.Service
	books      *book.Service
}

func NewLocalCatalog(
	authors *author.Service,
	publishers *publisher.Service,
	languages *language.Service,
	fileTypes *filetype.Service,
	books *book.Service,
) *LocalCatalog {
	return &LocalCatalog{
		authors:    authors,
		publishers: publishers,
		languages:  languages,
		fileTypes:  fileTypes,
		books:      books,
	}
}

func (catalog *LocalCatalog) ListAuthors(ctx context.Context) ([]Reference, error) {
	authors, err := catalog.authors.ListAuthors(ctx, author.Filter{})
	if err != nil {
		return nil, err
	}
	return slice.Map(authors, func(entry *author.Author) Reference {
		return Reference{ID: entry.ID, Name: entry.Name}
	}), nil
}

func (catalog *LocalCatalog) ListPublishers(ctx context.Context) ([]Reference, error) {
	publishers, err := catalog.publishers.ListPublishers(ctx, publisher.Filter{})
	if err != nil {
		return nil, err
	}
	return slice.Map(publishers, func(entry *publisher.Publisher) Reference {
		return Reference{ID: entry.ID, Name: entry.Name}
	}), nil
}

func (catalog *LocalCatalog) ListLanguages(ctx context.Context) ([]Reference, error) {
	languages, err := catalog.languages.ListLanguages(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(languages, func(entry *language.Language) Reference {
		return Reference{ID: entry.ID, Name: entry.Name}
	}), nil
}

func (catalog *LocalCatalog) ListFileTypes(ctx context.Context) ([]Reference, error) {
	fileTypes, err := catalog.fileTypes.ListFileTypes(ctx)
	if err != nil {
		return nil, err
	}
	return slice.Map(fileTypes, func(entry *filetype.FileType) Reference {
		return Reference{ID: entry.ID, Name: entry.Name}
	}), nil
}

func (catalog *LocalCatalog) CreateAuthor(ctx context.Context, name string) (Reference, error) {
	entry := &author.Author{Name: name}
	if err := catalog.authors.CreateAuthor(ctx, entry); err != nil {
		return Reference{}, err
	}
	return Reference{ID: entry.ID, Name: entry.Name}, nil
}

func (catalog *LocalCatalog) CreatePublisher(ctx context.Context, name string) (Reference, error) {
	entry := &publisher.Publisher{Name: name}
	if err := catalog.publishers.CreatePublisher(ctx, entry); err != nil {
		return Reference{}, err
	}
	return Reference{ID: entry.ID, Name: entry.Name}, nil
}

func (catalog *LocalCatalog) CreateLanguage(ctx context.Context, name string) (Reference, error) {
	entry := &language.Language{Name: name}
	if err := catalog.languages.CreateLanguage(ctx, entry); err != nil {
		return Reference{}, err
	}
	return Reference{ID: entry.ID, Name: entry.Name}, nil
}

func (catalog *LocalCatalog) CreateFileType(ctx context.Context, name string) (Reference, error) {
	entry := &filetype.FileType{Name: name}
	if err := catalog.fileTypes.CreateFileType(ctx, entry); err != nil {
		return Reference{}, err
	}
	return Reference{ID: entry.ID, Name: entry.Name}, nil
}

func (catalog *LocalCatalog) CreateBook(ctx context.Context, draft Draft) (int, error) {
	record := draftToBook(draft)
	if err := catalog.books.CreateBook(ctx, record); err != nil {
		return 0, err
	}
	return record.ID, nil
}

func (catalog *LocalCatalog) UpdateBook(ctx context.Context, id int, draft Draft) (int, error) {
	record := draftToBook(draft)
	if err := catalog.books.UpdateBook(ctx, id, record); err != nil {
		return 0, err
	}
	return record.ID, nil
}

func (catalog *LocalCatalog) ListBookAuthors(ctx context.Context, bookID int) ([]int, error) {
	return catalog.books.ListBookAuthors(ctx, bookID)
}

func (catalog *LocalCatalog) LinkAuthor(ctx context.Context, bookID, authorID int) error {
	return catalog.books.LinkAuthor(ctx, bookID, authorID)
}

func (catalog *LocalCatalog) UnlinkAuthor(ctx context.Context, bookID, authorID int) error {
	return catalog.books.UnlinkAuthor(ctx, bookID, authorID)
}

func draftToBook(draft Draft) *book.Book {
	return &book.Book{
		Title:         draft.Title,
		ISBN:          draft.ISBN,
		TotalPage:     draft.TotalPage,
		Synopsis:      draft.Synopsis,
		PublishedYear: draft.PublishedYear,
		CoverImage:    draft.CoverImage,
		EbookFile:     draft.EbookFile,
		PublisherID:   draft.PublisherID,
		LanguageID:    draft.LanguageID,
		FileTypeID:    draft.FileTypeID,
	}
}
