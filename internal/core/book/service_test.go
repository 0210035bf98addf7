package book_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thirawat/librarium/internal/core/book"
	"github.com/thirawat/librarium/internal/platform/apperr"
	"github.com/thirawat/librarium/internal/platform/dberr"
)

// fakeRepository is an in-memory Repository for service tests.
type fakeRepository struct {
	books  map[int]*book.Book
	links  map[int][]int
	nextID int
}

func newFakeRepository() *fakeRepository {
	return &fakeRepository{
		books:  map[int]*book.Book{},
		links:  map[int][]int{},
		nextID: 1,
	}
}

func (f *fakeRepository) ListBooks(_ context.Context, _ book.Filter) ([]*book.Book, int, error) {
	out := make([]*book.Book, 0, len(f.books))
	for _, b := range f.books {
		out = append(out, b)
	}
	return out, len(out), nil
}

func (f *fakeRepository) GetBook(_ context.Context, id int) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, apperr.NotFound("Book")
	}
	return b, nil
}

func (f *fakeRepository) GetBookByISBN(_ context.Context, isbn string) (*book.Book, error) {
	for _, b := range f.books {
		if b.ISBN == isbn {
			return b, nil
		}
	}
	return nil, apperr.NotFound("Book")
}

func (f *fakeRepository) CreateBook(_ context.Context, b *book.Book) error {
	b.ID = f.nextID
	f.nextID++
	f.books[b.ID] = b
	return nil
}

func (f *fakeRepository) UpdateBook(_ context.Context, b *book.Book) error {
	if _, ok := f.books[b.ID]; !ok {
		return apperr.NotFound("Book")
	}
	f.books[b.ID] = b
	return nil
}

func (f *fakeRepository) DeleteBook(_ context.Context, id int) error {
	if _, ok := f.books[id]; !ok {
		return apperr.NotFound("Book")
	}
	delete(f.books, id)
	return nil
}

func (f *fakeRepository) ListAuthorIDs(_ context.Context, bookID int) ([]int, error) {
	return f.links[bookID], nil
}

func (f *fakeRepository) LinkAuthor(_ context.Context, bookID, authorID int) error {
	for _, id := range f.links[bookID] {
		if id == authorID {
			return nil
		}
	}
	f.links[bookID] = append(f.links[bookID], authorID)
	return nil
}

func (f *fakeRepository) UnlinkAuthor(_ context.Context, bookID, authorID int) error {
	ids := f.links[bookID]
	for i, id := range ids {
		if id == authorID {
			f.links[bookID] = append(ids[:i], ids[i+1:]...)
			return nil
		}
	}
	return dberr.ErrNotFound
}

func newTestService() (*book.Service, *fakeRepository) {
	repo := newFakeRepository()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return book.NewService(repo, logger), repo
}

func validBook() *book.Book {
	return &book.Book{
		Title:         "The Go Programming Language",
		ISBN:          "978-0-13-419044-0",
		TotalPage:     380,
		PublishedYear: 2015,
		LanguageID:    1,
		FileTypeID:    1,
	}
}

/*
TestService_CreateBook verifies validation and normalization on create.
*/
func TestService_CreateBook(t *testing.T) {
	t.Run("valid_book_strips_isbn_hyphens", func(t *testing.T) {
		service, repo := newTestService()
		b := validBook()

		err := service.CreateBook(context.Background(), b)
		require.NoError(t, err)
		assert.Equal(t, "9780134190440", b.ISBN)
		assert.Len(t, repo.books, 1)
	})

	t.Run("missing_title_rejected", func(t *testing.T) {
		service, repo := newTestService()
		b := validBook()
		b.Title = "   "

		err := service.CreateBook(context.Background(), b)
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		assert.Empty(t, repo.books)
	})

	t.Run("year_out_of_range_rejected", func(t *testing.T) {
		service, _ := newTestService()
		b := validBook()
		b.PublishedYear = 99

		err := service.CreateBook(context.Background(), b)
		require.Error(t, err)
	})

	t.Run("malformed_isbn_rejected", func(t *testing.T) {
		service, _ := newTestService()
		b := validBook()
		b.ISBN = "not-an-isbn"

		err := service.CreateBook(context.Background(), b)
		require.Error(t, err)
	})

	t.Run("nil_publisher_allowed", func(t *testing.T) {
		service, _ := newTestService()
		b := validBook()
		b.PublisherID = nil

		err := service.CreateBook(context.Background(), b)
		require.NoError(t, err)
	})
}

/*
TestService_GetBook checks that author ids are attached to the returned book.
*/
func TestService_GetBook(t *testing.T) {
	service, repo := newTestService()
	b := validBook()
	require.NoError(t, service.CreateBook(context.Background(), b))
	repo.links[b.ID] = []int{3, 7}

	got, err := service.GetBook(context.Background(), b.ID)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 7}, got.AuthorIDs)
}

/*
TestService_LinkAuthor verifies pivot linking including idempotent relinks.
*/
func TestService_LinkAuthor(t *testing.T) {
	service, repo := newTestService()
	b := validBook()
	require.NoError(t, service.CreateBook(context.Background(), b))

	require.NoError(t, service.LinkAuthor(context.Background(), b.ID, 5))
	require.NoError(t, service.LinkAuthor(context.Background(), b.ID, 5))
	assert.Equal(t, []int{5}, repo.links[b.ID])

	err := service.LinkAuthor(context.Background(), b.ID, 0)
	require.Error(t, err)
}

/*
TestService_UnlinkAuthor verifies pivot removal and missing-pair handling.
*/
func TestService_UnlinkAuthor(t *testing.T) {
	service, repo := newTestService()
	b := validBook()
	require.NoError(t, service.CreateBook(context.Background(), b))
	repo.links[b.ID] = []int{5}

	require.NoError(t, service.UnlinkAuthor(context.Background(), b.ID, 5))
	assert.Empty(t, repo.links[b.ID])

	err := service.UnlinkAuthor(context.Background(), b.ID, 5)
	require.Error(t, err)
}
