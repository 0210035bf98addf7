package publisher

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

func (repository *PostgresRepository) ListPublishers(context context.Context, f Filter) ([]*Publisher, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
	`,
		schema.Publisher.ID, schema.Publisher.Name, schema.Publisher.CreatedAt, schema.Publisher.UpdatedAt,
		schema.Publisher.Table,
	)

	args := []any{}
	if f.Query != "" {
		query += fmt.Sprintf(" WHERE %s ILIKE $1", schema.Publisher.Name)
		args = append(args, "%"+f.Query+"%")
	}
	query += fmt.Sprintf(" ORDER BY %s ASC", schema.Publisher.Name)

	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_publishers")
	}
	defer rows.Close()

	publishers := make([]*Publisher, 0)
	for rows.Next() {
		p := &Publisher{}
		if err := rows.Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt); err != nil {
			return nil, dberr.Wrap(err, "scan_publisher")
		}
		publishers = append(publishers, p)
	}

	return publishers, nil
}

func (repository *PostgresRepository) GetPublisher(context context.Context, id int) (*Publisher, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.Publisher.ID, schema.Publisher.Name, schema.Publisher.CreatedAt, schema.Publisher.UpdatedAt,
		schema.Publisher.Table, schema.Publisher.ID,
	)
	p := &Publisher{}

	err := repository.db.QueryRow(context, query, id).Scan(&p.ID, &p.Name, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return nil, dberr.Wrap(err, "get_publisher")
	}

	return p, nil
}

func (repository *PostgresRepository) CreatePublisher(context context.Context, p *Publisher) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s)
		VALUES ($1, NOW(), NOW())
		RETURNING %s, %s, %s
	`,
		schema.Publisher.Table, schema.Publisher.Name, schema.Publisher.CreatedAt, schema.Publisher.UpdatedAt,
		schema.Publisher.ID, schema.Publisher.CreatedAt, schema.Publisher.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.Name).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	return dberr.Wrap(err, "create_publisher")
}

func (repository *PostgresRepository) UpdatePublisher(context context.Context, p *Publisher) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.Publisher.Table, schema.Publisher.Name, schema.Publisher.UpdatedAt,
		schema.Publisher.ID, schema.Publisher.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query, p.ID, p.Name).Scan(&p.UpdatedAt)
	return dberr.Wrap(err, "update_publisher")
}

func (repository *PostgresRepository) DeletePublisher(context context.Context, id int) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`, schema.Publisher.Table, schema.Publisher.ID)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_publisher")
	}

	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
