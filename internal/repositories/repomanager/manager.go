// Package repomanager opens the configured credential storage backend and
// prepares its schema.
package repomanager

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/pwkeeper/internal/common"
	"github.com/dmitrijs2005/pwkeeper/internal/config"
	"github.com/dmitrijs2005/pwkeeper/internal/repositories/credentials"
)

// RepositoryManager vends the credential repository of one backend.
type RepositoryManager interface {
	RunMigrations(ctx context.Context) error
	Credentials() credentials.Repository
	Backend() string
	Close() error
}

// New opens the backend selected by cfg.StorageBackend and runs its
// migrations. The caller owns the manager and must Close it.
func New(ctx context.Context, cfg *config.Config) (RepositoryManager, error) {
	var (
		m   RepositoryManager
		err error
	)

	switch cfg.StorageBackend {
	case config.BackendMemory:
		m = NewMemoryRepositoryManager()
	case config.BackendSQLite:
		m, err = NewSQLiteRepositoryManager(cfg.SQLitePath)
	case config.BackendPostgres:
		m, err = NewPostgresRepositoryManager(cfg.DatabaseDSN)
	default:
		return nil, fmt.Errorf("%w: %q", common.ErrUnsupportedBackend, cfg.StorageBackend)
	}
	if err != nil {
		return nil, fmt.Errorf("%s init error: %w", cfg.StorageBackend, err)
	}

	if err := m.RunMigrations(ctx); err != nil {
		_ = m.Close()
		return nil, fmt.Errorf("%s migration error: %w", cfg.StorageBackend, err)
	}

	return m, nil
}
