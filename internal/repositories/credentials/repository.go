// Package credentials stores credentials keyed by a unique identifier.
// Implementations keep registration order and never update a stored record.
package credentials

import (
	"context"

	"github.com/dmitrijs2005/pwkeeper/internal/models"
)

// Repository is the credential store backing.
//
// Create returns common.ErrorAlreadyExists if the identifier is taken and
// leaves the store unchanged. GetByIdentifier returns common.ErrorNotFound
// for an absent identifier. List returns identifiers in registration order.
type Repository interface {
	Create(ctx context.Context, c *models.Credential) (*models.Credential, error)
	GetByIdentifier(ctx context.Context, identifier string) (*models.Credential, error)
	List(ctx context.Context) ([]string, error)
}
