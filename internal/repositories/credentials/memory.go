package credentials

import (
	"context"
	"sync"
	"time"

	"github.com/dmitrijs2005/pwkeeper/internal/common"
	"github.com/dmitrijs2005/pwkeeper/internal/models"
	"github.com/google/uuid"
)

// MemoryRepository keeps credentials in process memory. A single lock guards
// both the ordered slice and the identifier index.
type MemoryRepository struct {
	mu    sync.RWMutex
	items []*models.Credential
	index map[string]int
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{index: make(map[string]int)}
}

func (r *MemoryRepository) Create(ctx context.Context, c *models.Credential) (*models.Credential, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[c.Identifier]; ok {
		return nil, common.ErrorAlreadyExists
	}

	stored := c.Clone()
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now().UTC()

	r.index[stored.Identifier] = len(r.items)
	r.items = append(r.items, stored)

	return stored.Clone(), nil
}

func (r *MemoryRepository) GetByIdentifier(ctx context.Context, identifier string) (*models.Credential, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.index[identifier]
	if !ok {
		return nil, common.ErrorNotFound
	}
	return r.items[i].Clone(), nil
}

func (r *MemoryRepository) List(ctx context.Context) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.items))
	for _, c := range r.items {
		ids = append(ids, c.Identifier)
	}
	return ids, nil
}
