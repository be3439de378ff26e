// Package output provides the sinks that emit split results as CSV,
// JSON lines, or SQLite rows.
package output

import "github.com/urltools/urlsplit/pkg/splitter"

// ComponentColumns is the fixed set of columns appended to every output
// row, in order. The error column is always last; on a parse failure it
// carries the message and every other component column is empty.
var ComponentColumns = []string{
	"scheme",
	"userinfo",
	"host",
	"port",
	"path",
	"query",
	"fragment",
	"hostname",
	"domain",
	"subdomain",
	"suffix",
	"registration",
	"error",
}

// componentFields flattens components (or a parse error) into the fixed
// column order.
func componentFields(c *splitter.Components, splitErr error) []string {
	if splitErr != nil {
		fields := make([]string, len(ComponentColumns))
		fields[len(fields)-1] = splitErr.Error()
		return fields
	}
	return []string{
		c.Scheme,
		c.Userinfo,
		c.Host,
		c.Port,
		c.Path,
		c.Query,
		c.Fragment,
		c.Hostname,
		c.Domain,
		c.Subdomain,
		c.Suffix,
		c.Registration,
		"",
	}
}
