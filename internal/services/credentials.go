// Package services contains the business logic of pwkeeper. This file
// implements CredentialService, which registers identifiers with a derived
// password hash and authenticates them later.
package services

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/pwkeeper/internal/common"
	"github.com/dmitrijs2005/pwkeeper/internal/cryptox"
	"github.com/dmitrijs2005/pwkeeper/internal/logging"
	"github.com/dmitrijs2005/pwkeeper/internal/models"
	"github.com/dmitrijs2005/pwkeeper/internal/repositories/credentials"
)

// CredentialInfo is an inspection view of a stored credential. It carries
// only short previews of the salt and hash.
type CredentialInfo struct {
	Identifier  string
	Iterations  int
	SaltLength  int
	HashLength  int
	SaltPreview string
	HashPreview string
	CreatedAt   time.Time
}

// CredentialService provides the credential store operations:
// - Register: derive and store a credential for a new identifier
// - Authenticate: check a password against a stored credential
// - Info / List: inspect the store
type CredentialService struct {
	repo   credentials.Repository
	hasher cryptox.PasswordHasher
	logger logging.Logger

	decoyOnce sync.Once
	decoy     *cryptox.PasswordHash
}

// NewCredentialService constructs a CredentialService over repo.
func NewCredentialService(repo credentials.Repository, hasher cryptox.PasswordHasher, logger logging.Logger) *CredentialService {
	return &CredentialService{
		repo:   repo,
		hasher: hasher,
		logger: logger.With("component", "credentials"),
	}
}

// Register derives a credential for password and stores it under identifier.
// Identifiers are matched exactly, case included. On any error nothing is
// stored. Known errors: common.ErrInvalidIdentifier,
// common.ErrDuplicateIdentifier, common.ErrEmptyPassword,
// common.ErrRandomSource and common.ErrDerivation.
func (s *CredentialService) Register(ctx context.Context, identifier string, password []byte) error {
	if identifier == "" {
		return common.ErrInvalidIdentifier
	}

	_, err := s.repo.GetByIdentifier(ctx, identifier)
	if err == nil {
		s.logger.Warn(ctx, "registration rejected", "identifier", identifier, "reason", "duplicate")
		return common.ErrDuplicateIdentifier
	}
	if !errors.Is(err, common.ErrorNotFound) {
		return fmt.Errorf("error searching credential: %w", err)
	}

	ph, err := s.hasher.Derive(password, 0)
	if err != nil {
		s.logger.Error(ctx, "credential derivation failed", "identifier", identifier, "error", err)
		return fmt.Errorf("error deriving credential: %w", err)
	}

	c, err := s.repo.Create(ctx, models.NewCredential(identifier, ph))
	if err != nil {
		if errors.Is(err, common.ErrorAlreadyExists) {
			s.logger.Warn(ctx, "registration rejected", "identifier", identifier, "reason", "duplicate")
			return common.ErrDuplicateIdentifier
		}
		return fmt.Errorf("error creating credential: %w", err)
	}

	s.logger.Info(ctx, "credential registered", "identifier", c.Identifier, "iterations", c.Iterations)
	return nil
}

// Authenticate reports whether password matches the credential stored under
// identifier. An absent identifier yields (false, common.ErrUnknownIdentifier)
// after the same amount of hashing work as a wrong password, and is logged
// identically, so neither timing nor logs reveal which case occurred.
func (s *CredentialService) Authenticate(ctx context.Context, identifier string, password []byte) (bool, error) {
	c, err := s.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			s.verifyDecoy(password)
			s.logger.Info(ctx, "authentication failed", "identifier", identifier)
			return false, common.ErrUnknownIdentifier
		}
		return false, fmt.Errorf("error searching credential: %w", err)
	}

	if !s.hasher.Verify(password, c.PasswordHash()) {
		s.logger.Info(ctx, "authentication failed", "identifier", identifier)
		return false, nil
	}

	s.logger.Info(ctx, "authentication succeeded", "identifier", identifier)
	return true, nil
}

// Info returns an inspection view of the credential stored under identifier.
func (s *CredentialService) Info(ctx context.Context, identifier string) (*CredentialInfo, error) {
	c, err := s.repo.GetByIdentifier(ctx, identifier)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrUnknownIdentifier
		}
		return nil, fmt.Errorf("error searching credential: %w", err)
	}

	return &CredentialInfo{
		Identifier:  c.Identifier,
		Iterations:  c.Iterations,
		SaltLength:  len(c.Salt),
		HashLength:  len(c.Hash),
		SaltPreview: common.HexPreview(c.Salt, common.PreviewLength),
		HashPreview: common.HexPreview(c.Hash, common.PreviewLength),
		CreatedAt:   c.CreatedAt,
	}, nil
}

// List returns the registered identifiers in registration order.
func (s *CredentialService) List(ctx context.Context) ([]string, error) {
	ids, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing credentials: %w", err)
	}
	return ids, nil
}

// --- helpers below ---

// verifyDecoy spends one verification on a throwaway credential. If the
// decoy cannot be derived the work is skipped; the result is the same.
func (s *CredentialService) verifyDecoy(password []byte) {
	s.decoyOnce.Do(func() {
		ph, err := s.hasher.Derive([]byte("decoy-password"), 0)
		if err == nil {
			s.decoy = ph
		}
	})
	if s.decoy != nil {
		_ = s.hasher.Verify(password, s.decoy)
	}
}
