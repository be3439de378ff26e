package config

import "os"

// Default values for configuration.
const (
	DefaultDelimiter Delimiter = ','
	DefaultURLColumn           = "0"
	DefaultFormat              = FormatCSV
)

// Environment variable names.
const (
	EnvDelimiter = "URLSPLIT_DELIMITER"
	EnvFormat    = "URLSPLIT_FORMAT"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Delimiter: DefaultDelimiter,
		Headers:   true,
		URLColumn: DefaultURLColumn,
		Format:    DefaultFormat,
		Suffixes:  true,
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
func (c *Config) applyEnvironmentOverrides() error {
	if v := os.Getenv(EnvDelimiter); v != "" {
		d, err := ParseDelimiter(v)
		if err != nil {
			return err
		}
		c.Delimiter = d
	}

	if v := os.Getenv(EnvFormat); v != "" {
		c.Format = Format(v)
	}

	return nil
}
