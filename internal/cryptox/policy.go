package cryptox

import (
	"crypto/sha256"
	"fmt"

	"github.com/dmitrijs2005/pwkeeper/internal/common"
)

// Policy defaults. The pseudorandom function is always HMAC-SHA256, so the
// default hash length matches its output size.
const (
	DefaultSaltLength    = 32
	DefaultHashLength    = sha256.Size
	DefaultIterations    = 100_000
	DefaultMinIterations = 100_000
)

// Policy holds the cost and size parameters of password hashing.
//
// Fields:
//   - SaltLength: number of random salt bytes generated per credential.
//   - HashLength: number of derived bytes stored per credential.
//   - Iterations: PBKDF2 iteration count used when the caller passes none.
//   - MinIterations: lowest iteration count a new credential may be created with.
type Policy struct {
	SaltLength    int
	HashLength    int
	Iterations    int
	MinIterations int
}

// DefaultPolicy returns the 256-bit salt, 256-bit hash, 100k iteration policy.
func DefaultPolicy() Policy {
	return Policy{
		SaltLength:    DefaultSaltLength,
		HashLength:    DefaultHashLength,
		Iterations:    DefaultIterations,
		MinIterations: DefaultMinIterations,
	}
}

// Validate reports whether p can be used to derive credentials.
func (p Policy) Validate() error {
	switch {
	case p.SaltLength < 1:
		return fmt.Errorf("%w: salt length %d", common.ErrInvalidPolicy, p.SaltLength)
	case p.HashLength < 1:
		return fmt.Errorf("%w: hash length %d", common.ErrInvalidPolicy, p.HashLength)
	case p.MinIterations < 1:
		return fmt.Errorf("%w: minimum iterations %d", common.ErrInvalidPolicy, p.MinIterations)
	case p.Iterations < p.MinIterations:
		return fmt.Errorf("%w: default iterations %d below minimum %d", common.ErrInvalidPolicy, p.Iterations, p.MinIterations)
	}
	return nil
}
