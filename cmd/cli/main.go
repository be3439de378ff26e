// urlsplit - URL to CSV component splitter
//
// urlsplit accepts a newline-separated list of URLs (optionally delimited
// rows with a URL column) and emits a row per URL with its component parts
// appended as fixed columns.
package main

import (
	"os"

	"github.com/urltools/urlsplit/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
