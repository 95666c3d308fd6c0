// Package models holds the records persisted by the credential repositories.
package models

import (
	"bytes"
	"time"

	"github.com/dmitrijs2005/pwkeeper/internal/cryptox"
)

// Credential binds an identifier to a derived password hash.
type Credential struct {
	ID         string
	Identifier string
	Salt       []byte
	Hash       []byte
	Iterations int
	CreatedAt  time.Time
}

// NewCredential builds an unsaved credential from a derivation result.
func NewCredential(identifier string, ph *cryptox.PasswordHash) *Credential {
	return &Credential{
		Identifier: identifier,
		Salt:       bytes.Clone(ph.Salt),
		Hash:       bytes.Clone(ph.Hash),
		Iterations: ph.Iterations,
	}
}

// PasswordHash returns the verification material of c.
func (c *Credential) PasswordHash() *cryptox.PasswordHash {
	return &cryptox.PasswordHash{Salt: c.Salt, Hash: c.Hash, Iterations: c.Iterations}
}

// Clone returns a deep copy of c.
func (c *Credential) Clone() *Credential {
	cp := *c
	cp.Salt = bytes.Clone(c.Salt)
	cp.Hash = bytes.Clone(c.Hash)
	return &cp
}
