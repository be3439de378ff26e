package splitter

import (
	"net"
	"strings"

	"golang.org/x/net/publicsuffix"
)

func isIPLiteral(host string) bool {
	return net.ParseIP(host) != nil
}

// deriveSuffixes fills the public-suffix fields from a registered name.
// Failures leave the fields empty without erroring the row: a URL with an
// unrecognized host is still a valid URL.
func deriveSuffixes(c *Components, host string) {
	host = strings.TrimSuffix(strings.ToLower(host), ".")
	if host == "" {
		return
	}

	suffix, _ := publicsuffix.PublicSuffix(host)
	c.Suffix = suffix

	if suffix == "" || len(host) <= len(suffix) {
		// The host is itself a public suffix (e.g. "com"); there is
		// no registrable part.
		return
	}

	registration, err := publicsuffix.EffectiveTLDPlusOne(host)
	if err != nil {
		return
	}

	c.Registration = registration
	c.Domain = strings.TrimSuffix(registration, "."+suffix)
	if sub := strings.TrimSuffix(host, registration); sub != "" {
		c.Subdomain = strings.TrimSuffix(sub, ".")
	}
}
