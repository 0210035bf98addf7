package filetype

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

func (repository *PostgresRepository) ListFileTypes(context context.Context) ([]*FileType, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.FileType.ID, schema.FileType.Name, schema.FileType.CreatedAt, schema.FileType.UpdatedAt,
		schema.FileType.Table, schema.FileType.Name,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_filetypes")
	}
	defer rows.Close()

	types := make([]*FileType, 0)
	for rows.Next() {
		t := &FileType{}
		if err := rows.Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_filetype")
		}
		types = append(types, t)
	}

	return types, nil
}

func (repository *PostgresRepository) GetFileType(context context.Context, id int) (*FileType, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.FileType.ID, schema.FileType.Name, schema.FileType.CreatedAt, schema.FileType.UpdatedAt,
		schema.FileType.Table, schema.FileType.ID,
	)
	t := &FileType{}

	err := repository.db.QueryRow(context, query, id).Scan(&t.ID, &t.Name, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_filetype")
	}

	return t, nil
}

func (repository *PostgresRepository) CreateFileType(context context.Context, t *FileType) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.FileType.Table, schema.FileType.Name, schema.FileType.CreatedAt, schema.FileType.UpdatedAt,
		schema.FileType.ID, schema.FileType.CreatedAt, schema.FileType.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, t.Name).Scan(&t.ID, &t.CreatedAt, &t.UpdatedAt)
	return dberr.Wrap(err, "create_filetype")
}

func (repository *PostgresRepository) UpdateFileType(context context.Context, t *FileType) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.FileType.Table, schema.FileType.Name, schema.FileType.UpdatedAt,
		schema.FileType.ID, schema.FileType.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, t.ID, t.Name).Scan(&t.UpdatedAt)
	return dberr.Wrap(err, "update_filetype")
}

func (repository *PostgresRepository) DeleteFileType(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.FileType.Table, schema.FileType.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_filetype")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
