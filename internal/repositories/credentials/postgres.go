package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/pwkeeper/internal/common"
	"github.com/dmitrijs2005/pwkeeper/internal/dbx"
	"github.com/dmitrijs2005/pwkeeper/internal/models"
)

// PostgresRepository is a PostgreSQL-backed Repository. Uniqueness is
// enforced by the identifier constraint, so concurrent registrations of the
// same identifier cannot both succeed.
type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, c *models.Credential) (*models.Credential, error) {
	query :=
		`INSERT INTO credentials (identifier, salt, hash, iterations)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (identifier) DO NOTHING
		 RETURNING id, created_at
		 `

	stored := c.Clone()
	err := r.db.QueryRowContext(ctx, query,
		c.Identifier, c.Salt, c.Hash, c.Iterations).Scan(&stored.ID, &stored.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return stored, nil
}

func (r *PostgresRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.Credential, error) {
	query :=
		`SELECT id, identifier, salt, hash, iterations, created_at FROM credentials
		 WHERE identifier = $1
		 `

	c := &models.Credential{}
	err := r.db.QueryRowContext(ctx, query, identifier).
		Scan(&c.ID, &c.Identifier, &c.Salt, &c.Hash, &c.Iterations, &c.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	return c, nil
}

func (r *PostgresRepository) List(ctx context.Context) ([]string, error) {
	query :=
		`SELECT identifier FROM credentials
		 ORDER BY created_at, id
		 `

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("db error: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("db error: %w", err)
	}

	return ids, nil
}
