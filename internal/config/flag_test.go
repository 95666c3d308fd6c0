package config

import (
	"flag"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	orig := os.Args
	t.Cleanup(func() { os.Args = orig })

	tests := []struct {
		expected    *Config
		name        string
		args        []string
		expectPanic bool
	}{
		{name: "Test1 OK", args: []string{"cmd",
			"-i", "200000", "-m", "150000", "-s", "postgres", "-d", "db", "-f", "x.db", "-t", "250", "-l", "debug",
		}, expectPanic: false,
			expected: &Config{
				Iterations:     200000,
				MinIterations:  150000,
				StorageBackend: "postgres",
				DatabaseDSN:    "db",
				SQLitePath:     "x.db",
				BenchTarget:    250 * time.Millisecond,
				LogLevel:       "debug",
			}},
		{name: "Test2 unrelated flags ignored", args: []string{"cmd", "-c", "conf.json", "-x", "1", "-i", "5"}, expectPanic: false,
			expected: &Config{Iterations: 5}},
		{name: "Test3 incorrect iterations", args: []string{"cmd", "-i", "abc"}, expectPanic: true, expected: &Config{}},
		{name: "Test4 incorrect bench target", args: []string{"cmd", "-t", "1s"}, expectPanic: true, expected: &Config{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.PanicOnError)

			os.Args = tt.args

			config := &Config{}

			if !tt.expectPanic {
				require.NotPanics(t, func() { parseFlags(config) })
				assert.Empty(t, cmp.Diff(config, tt.expected))
			} else {
				require.Panics(t, func() { parseFlags(config) })
			}
		})
	}
}
