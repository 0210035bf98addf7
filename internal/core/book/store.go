package book

import "context"

type Repository interface {
	ListBooks(context context.Context, filter Filter) ([]*Book, int, error)
	GetBook(context context.Context, id int) (*Book, error)
	GetBookByISBN(context context.Context, isbn string) (*Book, error)
	CreateBook(context context.Context, b *Book) error
	UpdateBook(context context.Context, b *Book) error
	DeleteBook(context context.Context, id int) error

	// Author pivot operations.
	ListAuthorIDs(context context.Context, bookID int) ([]int, error)
	LinkAuthor(context context.Context, bookID, authorID int) error
	UnlinkAuthor(context context.Context, bookID, authorID int) error
}
