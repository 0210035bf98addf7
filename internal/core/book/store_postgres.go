package book

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/thirawat/librarium/internal/platform/database/schema"
	"github.com/thirawat/librarium/internal/platform/dberr"
)

type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// bookColumns is the shared SELECT column list, in Scan order.
func bookColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		schema.Book.ID, schema.Book.Title, schema.Book.ISBN, schema.Book.TotalPage,
		schema.Book.Synopsis, schema.Book.PublishedYear, schema.Book.CoverImage,
		schema.Book.EbookFile, schema.Book.PublisherID, schema.Book.LanguageID,
		schema.Book.FileTypeID, schema.Book.CreatedAt, schema.Book.UpdatedAt,
	)
}

func scanBook(row interface{ Scan(...any) error }) (*Book, error) {
	b := &Book{}
	err := row.Scan(
		&b.ID, &b.Title, &b.ISBN, &b.TotalPage,
		&b.Synopsis, &b.PublishedYear, &b.CoverImage,
		&b.EbookFile, &b.PublisherID, &b.LanguageID,
		&b.FileTypeID, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return b, nil
}

func (repository *PostgresRepository) ListBooks(context context.Context, filter Filter) ([]*Book, int, error) {
	where := ""
	args := []any{filter.Page.Limit, filter.Page.Offset()}
	if filter.Query != "" {
		where = fmt.Sprintf("WHERE %s ILIKE $3 OR %s ILIKE $3", schema.Book.Title, schema.Book.ISBN)
		args = append(args, "%"+filter.Query+"%")
	}

	query := fmt.Sprintf(`
		SELECT %s, COUNT(*) OVER() AS total
		FROM %s
		%s
		ORDER BY %s DESC
		LIMIT $1 OFFSET $2
	`,
		bookColumns(), schema.Book.Table, where, schema.Book.CreatedAt,
	)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, 0, dberr.Wrap(err, "list_books")
	}
	defer rows.Close()

	books := make([]*Book, 0)
	total := 0
	for rows.Next() {
		b := &Book{}
		err := rows.Scan(
			&b.ID, &b.Title, &b.ISBN, &b.TotalPage,
			&b.Synopsis, &b.PublishedYear, &b.CoverImage,
			&b.EbookFile, &b.PublisherID, &b.LanguageID,
			&b.FileTypeID, &b.CreatedAt, &b.UpdatedAt,
			&total,
		)
		if err != nil {
			return nil, 0, dberr.Wrap(err, "scan_book")
		}
		books = append(books, b)
	}

	return books, total, nil
}

func (repository *PostgresRepository) GetBook(context context.Context, id int) (*Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		bookColumns(), schema.Book.Table, schema.Book.ID,
	)

	b, err := scanBook(repository.db.QueryRow(context, query, id))
	if err != nil {
		return nil, dberr.Wrap(err, "get_book")
	}
	return b, nil
}

func (repository *PostgresRepository) GetBookByISBN(context context.Context, isbn string) (*Book, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		bookColumns(), schema.Book.Table, schema.Book.ISBN,
	)

	b, err := scanBook(repository.db.QueryRow(context, query, isbn))
	if err != nil {
		return nil, dberr.Wrap(err, "get_book_by_isbn")
	}
	return b, nil
}

func (repository *PostgresRepository) CreateBook(context context.Context, b *Book) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.Book.Table,
		schema.Book.Title, schema.Book.ISBN, schema.Book.TotalPage, schema.Book.Synopsis,
		schema.Book.PublishedYear, schema.Book.CoverImage, schema.Book.EbookFile,
		schema.Book.PublisherID, schema.Book.LanguageID, schema.Book.FileTypeID,
		schema.Book.CreatedAt, schema.Book.UpdatedAt,
		schema.Book.ID, schema.Book.CreatedAt, schema.Book.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		b.Title, b.ISBN, b.TotalPage, b.Synopsis,
		b.PublishedYear, b.CoverImage, b.EbookFile,
		b.PublisherID, b.LanguageID, b.FileTypeID,
	).Scan(&b.ID, &b.CreatedAt, &b.UpdatedAt)
	return dberr.Wrap(err, "create_book")
}

func (repository *PostgresRepository) UpdateBook(context context.Context, b *Book) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7,
		    %s = $8, %s = $9, %s = $10, %s = $11, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Book.Table,
		schema.Book.Title, schema.Book.ISBN, schema.Book.TotalPage, schema.Book.Synopsis,
		schema.Book.PublishedYear, schema.Book.CoverImage, schema.Book.EbookFile,
		schema.Book.PublisherID, schema.Book.LanguageID, schema.Book.FileTypeID,
		schema.Book.UpdatedAt,
		schema.Book.ID, schema.Book.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		b.ID, b.Title, b.ISBN, b.TotalPage, b.Synopsis,
		b.PublishedYear, b.CoverImage, b.EbookFile,
		b.PublisherID, b.LanguageID, b.FileTypeID,
	).Scan(&b.UpdatedAt)
	return dberr.Wrap(err, "update_book")
}

func (repository *PostgresRepository) DeleteBook(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Book.Table, schema.Book.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_book")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (repository *PostgresRepository) ListAuthorIDs(context context.Context, bookID int) ([]int, error) {
	query := fmt.Sprintf(`
		SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC
	`,
		schema.BookAuthor.AuthorID, schema.BookAuthor.Table,
		schema.BookAuthor.BookID, schema.BookAuthor.AuthorID,
	)

	rows, err := repository.db.Query(context, query, bookID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_book_authors")
	}
	defer rows.Close()

	ids := make([]int, 0)
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, dberr.Wrap(err, "scan_book_author")
		}
		ids = append(ids, id)
	}

	return ids, nil
}

// LinkAuthor is idempotent: relinking an existing pair is a no-op, so retried
// submissions never fail on duplicate associations.
func (repository *PostgresRepository) LinkAuthor(context context.Context, bookID, authorID int) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s)
		VALUES ($1, $2)
		ON CONFLICT (%s, %s) DO NOTHING
	`,
		schema.BookAuthor.Table, schema.BookAuthor.BookID, schema.BookAuthor.AuthorID,
		schema.BookAuthor.BookID, schema.BookAuthor.AuthorID,
	)

	_, err := repository.db.Exec(context, query, bookID, authorID)
	return dberr.Wrap(err, "link_book_author")
}

func (repository *PostgresRepository) UnlinkAuthor(context context.Context, bookID, authorID int) error {
	query := fmt.Sprintf(`
		DELETE FROM %s WHERE %s = $1 AND %s = $2
	`,
		schema.BookAuthor.Table, schema.BookAuthor.BookID, schema.BookAuthor.AuthorID,
	)

	cmd, err := repository.db.Exec(context, query, bookID, authorID)
	if err != nil {
		return dberr.Wrap(err, "unlink_book_author")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
