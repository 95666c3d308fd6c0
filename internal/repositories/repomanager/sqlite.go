package repomanager

import (
	"database/sql"
	"fmt"

	"github.com/dmitrijs2005/pwkeeper/internal/config"
	"github.com/dmitrijs2005/pwkeeper/internal/filex"
	sqlitemigrations "github.com/dmitrijs2005/pwkeeper/internal/migrations/sqlite"
	"github.com/dmitrijs2005/pwkeeper/internal/repositories/credentials"

	_ "modernc.org/sqlite"
)

const sqliteMemory = ":memory:"

// NewSQLiteRepositoryManager opens (creating if needed) the SQLite database
// at path. ":memory:" is accepted and pinned to a single connection.
func NewSQLiteRepositoryManager(path string) (RepositoryManager, error) {
	if path != sqliteMemory {
		if _, err := filex.EnsureParentDir(path); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("db open error: %w", err)
	}
	// SQLite allows a single writer.
	db.SetMaxOpenConns(1)

	return &sqlRepositoryManager{
		db:          db,
		backend:     config.BackendSQLite,
		dialect:     "sqlite3",
		migrations:  sqlitemigrations.Migrations,
		credentials: credentials.NewSQLiteRepository(db),
	}, nil
}
