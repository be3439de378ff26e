// Package config provides configuration loading and validation for urlsplit.
package config

// Format selects the output sink.
type Format string

const (
	// FormatCSV writes delimited rows to the output stream.
	FormatCSV Format = "csv"

	// FormatJSONL writes one JSON object per row.
	FormatJSONL Format = "jsonl"

	// FormatSQLite writes rows into a SQLite database file.
	FormatSQLite Format = "sqlite"
)

// Config is the root configuration structure loaded from YAML.
// Command-line flags override individual fields when set.
type Config struct {
	// Delimiter is the field delimiter for reading and writing rows.
	Delimiter Delimiter `yaml:"delimiter"`

	// Headers controls whether the input's first row is a header row and
	// whether a header row is written to the output.
	Headers bool `yaml:"headers"`

	// Raw disables CSV quote interpretation on input and quoting on
	// output. Fields are split and joined on the bare delimiter.
	Raw bool `yaml:"raw"`

	// URLColumn selects the input column holding the URL. A header name
	// when headers are enabled, otherwise a 0-based column index.
	URLColumn string `yaml:"url_column"`

	// Format selects the output sink (csv, jsonl, sqlite).
	Format Format `yaml:"format"`

	// Suffixes controls public suffix derivation for the hostname.
	Suffixes bool `yaml:"suffixes"`

	// Output is the output path. Empty means stdout. Required for the
	// sqlite format, where it names the database file.
	Output string `yaml:"output,omitempty"`
}
