package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pwkeeper/internal/cryptox"
)

// benchSamples are the iteration counts the bench command compares.
var benchSamples = []int{cryptox.DefaultIterations, 2 * cryptox.DefaultIterations}

// Bench times one derivation per sample and suggests an iteration count that
// makes a derivation take about the configured target. The suggestion is
// based on the last sample.
func (a *App) Bench(ctx context.Context) error {
	fmt.Fprintln(a.out, "Measuring PBKDF2-HMAC-SHA256 cost...")

	var (
		sample  int
		elapsed time.Duration
	)
	for _, n := range benchSamples {
		if err := ctx.Err(); err != nil {
			return err
		}
		d, err := a.hasher.Measure(n)
		if err != nil {
			fmt.Fprintf(a.out, "error: %v\n", err)
			return err
		}
		fmt.Fprintf(a.out, "  %7d iterations: %v\n", n, d.Round(time.Microsecond))
		sample, elapsed = n, d
	}

	policy := a.hasher.Policy()
	suggested := cryptox.SuggestIterations(sample, elapsed, a.benchTarget, policy.MinIterations)
	fmt.Fprintf(a.out, "Configured iterations: %d\n", policy.Iterations)
	fmt.Fprintf(a.out, "Suggested iterations for %v: %d\n", a.benchTarget, suggested)

	a.logger.Debug(ctx, "bench finished", "sample", sample, "elapsed", elapsed, "suggested", suggested)
	return nil
}
