package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/pwkeeper/internal/flagx"
	"github.com/dmitrijs2005/pwkeeper/internal/timex"
)

// JsonConfig is a DTO used exclusively for JSON unmarshalling. Pointer
// fields distinguish "absent" from zero values, so a partial file only
// overrides what it names.
type JsonConfig struct {
	Iterations     *int            `json:"iterations"`
	MinIterations  *int            `json:"min_iterations"`
	SaltLength     *int            `json:"salt_length"`
	HashLength     *int            `json:"hash_length"`
	StorageBackend *string         `json:"storage_backend"`
	DatabaseDSN    *string         `json:"database_dsn"`
	SQLitePath     *string         `json:"sqlite_path"`
	BenchTarget    *timex.Duration `json:"bench_target"`
	LogLevel       *string         `json:"log_level"`
	LogFormat      *string         `json:"log_format"`
}

// parseJson overlays config with the JSON file named by -c/-config.
// Without such a flag nothing happens. Read or decode errors panic, as
// in parseFlags.
func parseJson(config *Config) {
	path := flagx.ConfigFileFlag()
	if path == "" {
		return
	}

	file, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	if err := applyJson(config, file); err != nil {
		panic(err)
	}
}

func applyJson(config *Config, data []byte) error {
	c := &JsonConfig{}
	if err := json.Unmarshal(data, c); err != nil {
		return err
	}

	setIf(&config.Iterations, c.Iterations)
	setIf(&config.MinIterations, c.MinIterations)
	setIf(&config.SaltLength, c.SaltLength)
	setIf(&config.HashLength, c.HashLength)
	setIf(&config.StorageBackend, c.StorageBackend)
	setIf(&config.DatabaseDSN, c.DatabaseDSN)
	setIf(&config.SQLitePath, c.SQLitePath)
	setIf(&config.LogLevel, c.LogLevel)
	setIf(&config.LogFormat, c.LogFormat)
	if c.BenchTarget != nil {
		config.BenchTarget = c.BenchTarget.Duration
	}

	return nil
}

func setIf[T any](dst *T, src *T) {
	if src != nil {
		*dst = *src
	}
}
