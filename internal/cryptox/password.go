// Package cryptox implements salted, iterated password hashing on top of
// PBKDF2-HMAC-SHA256 and the constant-time verification of stored hashes.
package cryptox

import (
	"crypto/rand"
	"crypto/sha256"
	"crypto/subtle"
	"fmt"
	"io"

	"github.com/dmitrijs2005/pwkeeper/internal/common"
	"golang.org/x/crypto/pbkdf2"
)

// PasswordHash is the output of a derivation: everything needed to verify a
// password later, and nothing that reveals it.
type PasswordHash struct {
	Salt       []byte
	Hash       []byte
	Iterations int
}

// PasswordHasher derives and verifies password hashes.
type PasswordHasher interface {
	Derive(password []byte, iterations int) (*PasswordHash, error)
	Verify(password []byte, stored *PasswordHash) bool
}

// deriveKey is a seam for the PBKDF2 primitive so tests can force failures.
var deriveKey = func(password, salt []byte, iterations, keyLen int) ([]byte, error) {
	if iterations < 1 || keyLen < 1 {
		return nil, fmt.Errorf("invalid parameters: iterations=%d length=%d", iterations, keyLen)
	}
	return pbkdf2.Key(password, salt, iterations, keyLen, sha256.New), nil
}

// Hasher derives and verifies PBKDF2-HMAC-SHA256 password hashes according
// to a Policy. A Hasher holds no mutable state and is safe for concurrent use.
type Hasher struct {
	policy Policy
	rand   io.Reader
}

// NewHasher validates p and returns a Hasher that draws salts from
// crypto/rand.
func NewHasher(p Policy) (*Hasher, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return &Hasher{policy: p, rand: rand.Reader}, nil
}

// Policy returns the policy the hasher was built with.
func (h *Hasher) Policy() Policy { return h.policy }

// GenerateSalt reads a fresh salt of the policy length from the random source.
// A failing or short source yields common.ErrRandomSource.
func (h *Hasher) GenerateSalt() ([]byte, error) {
	salt := make([]byte, h.policy.SaltLength)
	if _, err := io.ReadFull(h.rand, salt); err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrRandomSource, err)
	}
	return salt, nil
}

// Derive hashes password with a freshly generated salt.
//
// Parameters:
//   - password: the plaintext password; must not be empty. Its encoding is
//     left to the caller and no length cap is applied.
//   - iterations: PBKDF2 iteration count. Zero selects the policy default;
//     values below the policy minimum are rejected.
//
// Returns:
//   - *PasswordHash: salt, derived hash and the iteration count used.
//   - error: common.ErrEmptyPassword, common.ErrIterationsBelowMinimum,
//     common.ErrRandomSource or common.ErrDerivation (all wrapped).
//
// Example:
//
//	h, _ := cryptox.NewHasher(cryptox.DefaultPolicy())
//	ph, err := h.Derive([]byte("Secr3t!"), 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(h.Verify([]byte("Secr3t!"), ph)) // true
func (h *Hasher) Derive(password []byte, iterations int) (*PasswordHash, error) {
	if len(password) == 0 {
		return nil, common.ErrEmptyPassword
	}
	if iterations == 0 {
		iterations = h.policy.Iterations
	}
	if iterations < h.policy.MinIterations {
		return nil, fmt.Errorf("%w: %d < %d", common.ErrIterationsBelowMinimum, iterations, h.policy.MinIterations)
	}

	salt, err := h.GenerateSalt()
	if err != nil {
		return nil, err
	}

	hash, err := deriveKey(password, salt, iterations, h.policy.HashLength)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", common.ErrDerivation, err)
	}
	if len(hash) != h.policy.HashLength {
		return nil, fmt.Errorf("%w: got %d bytes, want %d", common.ErrDerivation, len(hash), h.policy.HashLength)
	}

	return &PasswordHash{Salt: salt, Hash: hash, Iterations: iterations}, nil
}

// Verify reports whether password matches stored. The candidate is derived
// with the stored salt and iteration count and compared in constant time.
// Any failure along the way yields false.
func (h *Hasher) Verify(password []byte, stored *PasswordHash) bool {
	if stored == nil || len(stored.Salt) == 0 || len(stored.Hash) == 0 || stored.Iterations < 1 {
		return false
	}

	candidate, err := deriveKey(password, stored.Salt, stored.Iterations, len(stored.Hash))
	if err != nil || len(candidate) != len(stored.Hash) {
		return false
	}
	defer common.WipeByteArray(candidate)

	return subtle.ConstantTimeCompare(candidate, stored.Hash) == 1
}

var _ PasswordHasher = (*Hasher)(nil)
