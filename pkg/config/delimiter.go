package config

import (
	"fmt"
	"unicode"

	"gopkg.in/yaml.v3"
)

// Delimiter is a single ASCII field delimiter. The string form `\t`
// denotes a tab, both in YAML configs and on the command line.
type Delimiter byte

// Rune returns the delimiter as a rune, the form encoding/csv expects.
func (d Delimiter) Rune() rune {
	return rune(d)
}

// String returns the flag/YAML representation of the delimiter.
func (d Delimiter) String() string {
	if d == '\t' {
		return `\t`
	}
	return string(rune(d))
}

// ParseDelimiter converts a flag or YAML value into a Delimiter.
func ParseDelimiter(s string) (Delimiter, error) {
	if s == `\t` {
		return Delimiter('\t'), nil
	}

	runes := []rune(s)
	if len(runes) != 1 {
		return 0, fmt.Errorf("could not convert %q to a single ASCII character", s)
	}
	if runes[0] > unicode.MaxASCII {
		return 0, fmt.Errorf("could not convert %q to an ASCII delimiter", s)
	}

	return Delimiter(runes[0]), nil
}

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Delimiter) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}

	parsed, err := ParseDelimiter(s)
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Delimiter) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}
