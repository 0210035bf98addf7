package language

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

func (repository *PostgresRepository) ListLanguages(context context.Context) ([]*Language, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.Language.ID, schema.Language.Name, schema.Language.CreatedAt, schema.Language.UpdatedAt,
		schema.Language.Table, schema.Language.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_languages")
	}
	defer rows.Close()

	languages := make([]*Language, 0)
	for rows.Next() {
		l := &Language{}
		if err := rows.Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_language")
		}
		languages = append(languages, l)
	}

	return languages, nil
}

func (repository *PostgresRepository) GetLanguage(context context.Context, id int) (*Language, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Language.ID, schema.Language.Name, schema.Language.CreatedAt, schema.Language.UpdatedAt,
		schema.Language.Table, schema.Language.ID,
	)
	l := &Language{}

	err := repository.db.QueryRow(context, query, id).Scan(&l.ID, &l.Name, &l.CreatedAt, &l.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_language")
	}

	return l, nil
}

func (repository *PostgresRepository) CreateLanguage(context context.Context, l *Language) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.Language.Table, schema.Language.Name, schema.Language.CreatedAt, schema.Language.UpdatedAt,
		schema.Language.ID, schema.Language.CreatedAt, schema.Language.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, l.Name).Scan(&l.ID, &l.CreatedAt, &l.UpdatedAt)
	return dberr.Wrap(err, "create_language")
}

func (repository *PostgresRepository) UpdateLanguage(context context.Context, l *Language) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Language.Table, schema.Language.Name, schema.Language.UpdatedAt,
		schema.Language.ID, schema.Language.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, l.ID, l.Name).Scan(&l.UpdatedAt)
	return dberr.Wrap(err, "update_language")
}

func (repository *PostgresRepository) DeleteLanguage(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Language.Table, schema.Language.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_language")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
