package repomanager

import (
	"context"

	"github.com/dmitrijs2005/pwkeeper/internal/config"
	"github.com/dmitrijs2005/pwkeeper/internal/repositories/credentials"
)

// MemoryRepositoryManager holds credentials for the lifetime of the process.
type MemoryRepositoryManager struct {
	credentials *credentials.MemoryRepository
}

func NewMemoryRepositoryManager() *MemoryRepositoryManager {
	return &MemoryRepositoryManager{credentials: credentials.NewMemoryRepository()}
}

func (m *MemoryRepositoryManager) RunMigrations(context.Context) error { return nil }

func (m *MemoryRepositoryManager) Credentials() credentials.Repository { return m.credentials }

func (m *MemoryRepositoryManager) Backend() string { return config.BackendMemory }

func (m *MemoryRepositoryManager) Close() error { return nil }
