package author

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

func (repository *PostgresRepository) ListAuthors(context context.Context, f Filter) ([]*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
	`,
		schema.Author.ID, schema.Author.Name, schema.Author.CreatedAt, schema.Author.UpdatedAt,
		schema.Author.Table,
	)

	args := []any{}
	if f.Query != "" {
		query += fmt.Sprintf(" WHERE %s ILIKE $1", schema.Author.Name)
		args = append(args, "%"+f.Query+"%")
	}
	query += fmt.Sprintf(" ORDER BY %s ASC", schema.Author.Name)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_authors")
	}
	defer rows.Close()

	authors := make([]*Author, 0)
	for rows.Next() {
		a := &Author{}
		if err := rows.Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_author")
		}
		authors = append(authors, a)
	}

	return authors, nil
}

func (repository *PostgresRepository) GetAuthor(context context.Context, id int) (*Author, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Author.ID, schema.Author.Name, schema.Author.CreatedAt, schema.Author.UpdatedAt,
		schema.Author.Table, schema.Author.ID,
	)
	a := &Author{}

	err := repository.db.QueryRow(context, query, id).Scan(&a.ID, &a.Name, &a.CreatedAt, &a.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_author")
	}

	return a, nil
}

func (repository *PostgresRepository) CreateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.Author.Table, schema.Author.Name, schema.Author.CreatedAt, schema.Author.UpdatedAt,
		schema.Author.ID, schema.Author.CreatedAt, schema.Author.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, a.Name).Scan(&a.ID, &a.CreatedAt, &a.UpdatedAt)
	return dberr.Wrap(err, "create_author")
}

func (repository *PostgresRepository) UpdateAuthor(context context.Context, a *Author) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Author.Table, schema.Author.Name, schema.Author.UpdatedAt,
		schema.Author.ID, schema.Author.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, a.ID, a.Name).Scan(&a.UpdatedAt)
	return dberr.Wrap(err, "update_author")
}

func (repository *PostgresRepository) DeleteAuthor(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Author.Table, schema.Author.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_author")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
