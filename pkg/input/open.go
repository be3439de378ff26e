package input

import (
	"fmt"
	"io"
	"os"
)

// StdinPath is the conventional path meaning standard input.
const StdinPath = "-"

// OpenPath returns a RecordSource reading from path. An empty path or "-"
// reads standard input. When raw is true, quote interpretation is disabled
// and rows are split on the bare delimiter.
func OpenPath(path string, delimiter rune, raw bool) (RecordSource, error) {
	var (
		r      io.Reader
		source string
	)

	if path == "" || path == StdinPath {
		// Stdin is not ours to close.
		r = io.NopCloser(os.Stdin)
		source = StdinPath
	} else {
		f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
		if err != nil {
			return nil, fmt.Errorf("opening input file %s: %w", path, err)
		}
		r = f
		source = path
	}

	if raw {
		return NewRawSource(r, source, delimiter), nil
	}
	return NewCSVSource(r, source, delimiter), nil
}
