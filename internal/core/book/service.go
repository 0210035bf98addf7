package book

import (
	"context"
	"log/slog"
	"strings"

	"github.com/thirawat/librarium/internal/platform/validate"
)

type Service struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (service *Service) ListBooks(context context.Context, filter Filter) ([]*Book, int, error) {
	return service.repo.ListBooks(context, filter)
}

func (service *Service) GetBook(context context.Context, id int) (*Book, error) {
	b, err := service.repo.GetBook(context, id)
	if err != nil {
		return nil, err
	}

	authorIDs, err := service.repo.ListAuthorIDs(context, id)
	if err != nil {
		return nil, err
	}
	b.AuthorIDs = authorIDs

	return b, nil
}

func (service *Service) CreateBook(context context.Context, b *Book) error {
	normalize(b)

	if err := validateBook(b); err != nil {
		return err
	}

	if err := service.repo.CreateBook(context, b); err != nil {
		return err
	}

	service.logger.Info("book_created",
		slog.Int("book_id", b.ID),
		slog.String("isbn", b.ISBN),
	)
	return nil
}

func (service *Service) UpdateBook(context context.Context, id int, b *Book) error {
	b.ID = id
	normalize(b)

	if err := validateBook(b); err != nil {
		return err
	}

	if err := service.repo.UpdateBook(context, b); err != nil {
		return err
	}

	service.logger.Info("book_updated", slog.Int("book_id", b.ID))
	return nil
}

func (service *Service) DeleteBook(context context.Context, id int) error {
	if err := service.repo.DeleteBook(context, id); err != nil {
		return err
	}

	service.logger.Warn("book_deleted", slog.Int("book_id", id))
	return nil
}

func (service *Service) ListBookAuthors(context context.Context, bookID int) ([]int, error) {
	// Verify the book exists so a bad id returns 404, not an empty list.
	if _, err := service.repo.GetBook(context, bookID); err != nil {
		return nil, err
	}
	return service.repo.ListAuthorIDs(context, bookID)
}

func (service *Service) LinkAuthor(context context.Context, bookID, authorID int) error {
	validator := &validate.Validator{}
	validator.Positive("book_id", bookID).Positive("author_id", authorID)
	if err := validator.Err(); err != nil {
		return err
	}

	if err := service.repo.LinkAuthor(context, bookID, authorID); err != nil {
		return err
	}

	service.logger.Info("book_author_linked",
		slog.Int("book_id", bookID),
		slog.Int("author_id", authorID),
	)
	return nil
}

func (service *Service) UnlinkAuthor(context context.Context, bookID, authorID int) error {
	if err := service.repo.UnlinkAuthor(context, bookID, authorID); err != nil {
		return err
	}

	service.logger.Info("book_author_unlinked",
		slog.Int("book_id", bookID),
		slog.Int("author_id", authorID),
	)
	return nil
}

// normalize trims free-text fields and strips ISBN hyphens before validation.
func normalize(b *Book) {
	b.Title = strings.TrimSpace(b.Title)
	b.ISBN = strings.ReplaceAll(strings.TrimSpace(b.ISBN), "-", "")
	b.Synopsis = strings.TrimSpace(b.Synopsis)
}

func validateBook(b *Book) error {
	validator := &validate.Validator{}
	validator.
		Required("title", b.Title).
		MaxLen("title", b.Title, 255).
		Required("isbn", b.ISBN).
		Positive("total_page", b.TotalPage).
		Range("published_year", b.PublishedYear, 1000, 2100).
		Positive("language_id", b.LanguageID).
		Positive("file_type_id", b.FileTypeID)

	if b.ISBN != "" {
		validator.ISBN("isbn", b.ISBN)
	}
	if b.PublisherID != nil {
		validator.Positive("publisher_id", *b.PublisherID)
	}
	if b.CoverImage != "" {
		validator.URL("cover_image", b.CoverImage)
	}
	if b.EbookFile != "" {
		validator.URL("ebook_file", b.EbookFile)
	}

	return validator.Err()
}
