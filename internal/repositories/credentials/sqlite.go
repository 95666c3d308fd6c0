package credentials

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pwkeeper/internal/common"
	"github.com/dmitrijs2005/pwkeeper/internal/dbx"
	"github.com/dmitrijs2005/pwkeeper/internal/models"
	"github.com/google/uuid"
)

// SQLiteRepository is a SQLite-backed Repository. created_at is stored as
// Unix milliseconds; rowid gives registration order.
type SQLiteRepository struct {
	db dbx.DBTX
}

func NewSQLiteRepository(db dbx.DBTX) *SQLiteRepository {
	return &SQLiteRepository{db: db}
}

func (r *SQLiteRepository) Create(ctx context.Context, c *models.Credential) (*models.Credential, error) {
	stored := c.Clone()
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC().Truncate(time.Millisecond)

	res, err := r.db.ExecContext(ctx, `
		INSERT INTO credentials (id, identifier, salt, hash, iterations, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(identifier) DO NOTHING
	`, stored.ID, stored.Identifier, stored.Salt, stored.Hash, stored.Iterations, stored.CreatedAt.UnixMilli())
	if err != nil {
		return nil, fmt.Errorf("failed to insert credential[%s]: %w", c.Identifier, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to insert credential[%s]: %w", c.Identifier, err)
	}
	if n == 0 {
		return nil, common.ErrorAlreadyExists
	}

	return stored, nil
}

func (r *SQLiteRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.Credential, error) {
	var (
		c         models.Credential
		createdAt int64
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT id, identifier, salt, hash, iterations, created_at
		FROM credentials WHERE identifier = ?
	`, identifier).Scan(&c.ID, &c.Identifier, &c.Salt, &c.Hash, &c.Iterations, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrorNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get credential[%s]: %w", identifier, err)
	}

	c.CreatedAt = time.UnixMilli(createdAt).UTC()
	return &c, nil
}

func (r *SQLiteRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT identifier FROM credentials ORDER BY rowid`)
	if err != nil {
		return nil, fmt.Errorf("failed to list credentials: %w", err)
	}
	defer rows.Close()

	ids := make([]string, 0)
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan credential row: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate credential rows: %w", err)
	}

	return ids, nil
}
