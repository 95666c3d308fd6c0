package config

import (
	"flag"
	"os"
	"time"

	"github.com/dmitrijs2005/pwkeeper/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
// Other flags are filtered out first so -c/-config and unrelated arguments
// do not make parsing fail. The bench target is given in milliseconds.
func parseFlags(config *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"i", "m", "s", "d", "f", "t", "l"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.IntVar(&config.Iterations, "i", config.Iterations, "PBKDF2 iterations for new credentials")
	fs.IntVar(&config.MinIterations, "m", config.MinIterations, "minimum PBKDF2 iterations")
	fs.StringVar(&config.StorageBackend, "s", config.StorageBackend, "storage backend (memory, sqlite, postgres)")
	fs.StringVar(&config.DatabaseDSN, "d", config.DatabaseDSN, "database DSN")
	fs.StringVar(&config.SQLitePath, "f", config.SQLitePath, "sqlite database file")
	benchTarget := fs.Int("t", int(config.BenchTarget.Milliseconds()), "bench target (in milliseconds)")
	fs.StringVar(&config.LogLevel, "l", config.LogLevel, "log level (debug, info, warn, error)")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}

	config.BenchTarget = time.Duration(*benchTarget) * time.Millisecond
}
