package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Load reads and validates a configuration file.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadOrDefault loads path when it is non-empty, otherwise returns the
// default configuration with environment overrides applied. Validation of
// the default path is deferred so callers can layer flag overrides on top
// and validate the final result.
func LoadOrDefault(ctx context.Context, path string) (*Config, error) {
	if path != "" {
		return Load(ctx, path)
	}

	cfg := DefaultConfig()
	if err := cfg.applyEnvironmentOverrides(); err != nil {
		return nil, fmt.Errorf("applying environment overrides: %w", err)
	}
	return cfg, nil
}

// Validate checks a configuration for errors.
func Validate(cfg *Config) error {
	if cfg.Delimiter == 0 {
		return errors.New("delimiter: a delimiter is required")
	}

	if cfg.URLColumn == "" {
		return errors.New("url_column: a column name or index is required")
	}

	switch cfg.Format {
	case FormatCSV, FormatJSONL:
	case FormatSQLite:
		if cfg.Output == "" {
			return errors.New("output: a database path is required for the sqlite format")
		}
	default:
		return fmt.Errorf("format: invalid format %q (must be csv, jsonl, or sqlite)", cfg.Format)
	}

	return nil
}

// ResolveURLColumn maps the configured url_column to a 0-based index.
// header holds the input's column names and is nil when the input has no
// header row. Header names are checked before numeric indexes, so a column
// literally named "1" wins over the second column.
func (c *Config) ResolveURLColumn(header []string) (int, error) {
	for i, name := range header {
		if name == c.URLColumn {
			return i, nil
		}
	}

	idx, err := strconv.Atoi(c.URLColumn)
	if err != nil || idx < 0 {
		return 0, fmt.Errorf("url column %q is not a header name or non-negative index", c.URLColumn)
	}

	return idx, nil
}
