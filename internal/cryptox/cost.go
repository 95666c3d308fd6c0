package cryptox

import (
	"fmt"
	"time"

	"github.com/dmitrijs2005/pwkeeper/internal/common"
)

// iterationStep is the granularity of suggested iteration counts.
const iterationStep = 10_000

var benchPassword = []byte("TestPassword123")

// now is a seam for time measurement.
var now = time.Now

// Measure times a single derivation at the given iteration count. The
// iteration count is not checked against the policy minimum, so cheaper
// settings can be compared as well.
func (h *Hasher) Measure(iterations int) (time.Duration, error) {
	salt, err := h.GenerateSalt()
	if err != nil {
		return 0, err
	}

	start := now()
	key, err := deriveKey(benchPassword, salt, iterations, h.policy.HashLength)
	elapsed := now().Sub(start)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", common.ErrDerivation, err)
	}
	common.WipeByteArray(key)

	return elapsed, nil
}

// SuggestIterations scales a measured sample linearly so that one derivation
// takes roughly target. The result is rounded up to a multiple of 10 000 and
// is never below minimum.
func SuggestIterations(sample int, elapsed, target time.Duration, minimum int) int {
	if sample < 1 || elapsed <= 0 || target <= 0 {
		return minimum
	}

	scaled := float64(sample) * float64(target) / float64(elapsed)
	n := int(scaled)
	if float64(n) < scaled {
		n++
	}
	if rem := n % iterationStep; rem != 0 {
		n += iterationStep - rem
	}
	if n < minimum {
		return minimum
	}
	return n
}
