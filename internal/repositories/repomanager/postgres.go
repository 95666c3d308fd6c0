package repomanager

import (
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/pwkeeper/internal/config"
	pgmigrations "github.com/dmitrijs2005/pwkeeper/internal/migrations/postgres"
	"github.com/dmitrijs2005/pwkeeper/internal/repositories/credentials"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewPostgresRepositoryManager opens a pgx connection pool for dsn. No
// connection is made until the first query (the migrations, via New).
func NewPostgresRepositoryManager(dsn string) (RepositoryManager, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}

	return &sqlRepositoryManager{
		db:          db,
		backend:     config.BackendPostgres,
		dialect:     "pgx",
		migrations:  pgmigrations.Migrations,
		credentials: credentials.NewPostgresRepository(db),
	}, nil
}
