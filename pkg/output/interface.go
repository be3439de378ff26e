package output

import "github.com/urltools/urlsplit/pkg/splitter"

// Sink consumes exactly one output row per input record.
type Sink interface {
	// WriteHeader records the input's column names and, where the format
	// has a header row, emits it with the component columns appended.
	WriteHeader(original []string) error

	// WriteRow emits one row: the original fields followed by the URL's
	// component fields. When splitErr is non-nil the component fields are
	// empty and the error column carries the message.
	WriteRow(original []string, c *splitter.Components, splitErr error) error

	// Close flushes buffered output and releases resources.
	Close() error
}
