// Package splitter breaks URL strings into their component parts.
package splitter

// Components holds the parts of a successfully parsed URL.
//
// The first group of fields follows the generic URI syntax
// (scheme://userinfo@host:port/path?query#fragment). The second group is
// derived from the public suffix list and is empty for IP-literal hosts,
// hosts with no registrable part, or when suffix derivation is disabled.
type Components struct {
	Scheme   string `json:"scheme"`
	Userinfo string `json:"userinfo,omitempty"`
	Host     string `json:"host,omitempty"`
	Port     string `json:"port,omitempty"`
	Path     string `json:"path,omitempty"`
	Query    string `json:"query,omitempty"`
	Fragment string `json:"fragment,omitempty"`

	// Hostname is the host when it is a registered name (not an IP literal).
	Hostname string `json:"hostname,omitempty"`

	// Domain is the registrable label, e.g. "example" for "my.example.com".
	Domain string `json:"domain,omitempty"`

	// Subdomain is the unregistered prefix, e.g. "my" for "my.example.com".
	Subdomain string `json:"subdomain,omitempty"`

	// Suffix is the public suffix, e.g. "com" or "co.uk".
	Suffix string `json:"suffix,omitempty"`

	// Registration is the domain and suffix combined (eTLD+1),
	// e.g. "example.com" for "my.example.com".
	Registration string `json:"registration,omitempty"`
}
