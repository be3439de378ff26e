package splitter

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// ErrEmptyInput is returned when the input is empty or whitespace only.
var ErrEmptyInput = errors.New("empty input")

// ErrMissingScheme is returned for inputs that only parse as relative
// references. A bare hostname like "example.com" falls in this category.
var ErrMissingScheme = errors.New("relative URL without a base")

// Option configures Split behavior.
type Option func(*options)

type options struct {
	suffixes bool
}

// WithSuffixes toggles public suffix derivation (default on).
func WithSuffixes(enabled bool) Option {
	return func(o *options) {
		o.suffixes = enabled
	}
}

// Split parses raw into its URL components.
//
// Parsing follows the generic RFC 3986 grammar as implemented by net/url,
// with one tightening: the input must be an absolute URL. Scheme-less
// strings that net/url would accept as relative references are rejected
// with ErrMissingScheme, so "not a url" is a parse failure rather than a
// row of mostly-empty path columns.
func Split(raw string, opts ...Option) (*Components, error) {
	o := options{suffixes: true}
	for _, opt := range opts {
		opt(&o)
	}

	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return nil, ErrEmptyInput
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return nil, fmt.Errorf("parsing URL: %w", err)
	}
	if !u.IsAbs() {
		return nil, ErrMissingScheme
	}

	c := &Components{
		Scheme:   u.Scheme,
		Host:     u.Hostname(),
		Port:     u.Port(),
		Path:     u.Path,
		Query:    u.RawQuery,
		Fragment: u.Fragment,
	}
	if u.User != nil {
		c.Userinfo = u.User.String()
	}

	if c.Host != "" && !isIPLiteral(c.Host) {
		c.Hostname = c.Host
		if o.suffixes {
			deriveSuffixes(c, c.Host)
		}
	}

	return c, nil
}
