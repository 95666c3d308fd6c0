package repomanager

import (
	"context"
	"database/sql"
	"io/fs"
	"sync"

	"github.com/dmitrijs2005/pwkeeper/internal/repositories/credentials"
	"github.com/pressly/goose/v3"
)

// gooseMu serializes goose's package-level base FS and dialect settings.
var gooseMu sync.Mutex

// gooseUpContext is a seam for testing goose.UpContext.
var gooseUpContext = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// sqlRepositoryManager is shared by the database/sql backends.
type sqlRepositoryManager struct {
	db          *sql.DB
	backend     string
	dialect     string
	migrations  fs.FS
	credentials credentials.Repository
}

// RunMigrations sets up goose with the embedded migrations and runs them
// against the manager's database connection.
func (m *sqlRepositoryManager) RunMigrations(ctx context.Context) error {
	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(m.migrations)
	if err := goose.SetDialect(m.dialect); err != nil {
		return err
	}
	return gooseUpContext(ctx, m.db, ".")
}

func (m *sqlRepositoryManager) Credentials() credentials.Repository { return m.credentials }

func (m *sqlRepositoryManager) Backend() string { return m.backend }

func (m *sqlRepositoryManager) Close() error { return m.db.Close() }
