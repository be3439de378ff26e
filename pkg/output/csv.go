package output

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/urltools/urlsplit/pkg/splitter"
)

// CSVSink writes output rows as delimited text.
//
// In the default mode fields are quoted per standard CSV rules (fields
// containing the delimiter, a quote character, or a line break are quoted,
// embedded quotes doubled), so the output round-trips through any CSV
// reader. In raw mode fields are joined on the bare delimiter with no
// quoting at all.
type CSVSink struct {
	writer *csv.Writer
	raw    io.Writer
	comma  string
}

// NewCSVSink creates a CSV sink writing to w with the given delimiter.
func NewCSVSink(w io.Writer, delimiter rune, raw bool) *CSVSink {
	if raw {
		return &CSVSink{raw: w, comma: string(delimiter)}
	}

	writer := csv.NewWriter(w)
	writer.Comma = delimiter
	return &CSVSink{writer: writer}
}

// WriteHeader emits the header row: original column names followed by the
// fixed component column names.
func (s *CSVSink) WriteHeader(original []string) error {
	return s.write(append(append([]string{}, original...), ComponentColumns...))
}

// WriteRow emits one output row.
func (s *CSVSink) WriteRow(original []string, c *splitter.Components, splitErr error) error {
	row := make([]string, 0, len(original)+len(ComponentColumns))
	row = append(row, original...)
	row = append(row, componentFields(c, splitErr)...)
	return s.write(row)
}

func (s *CSVSink) write(row []string) error {
	if s.writer != nil {
		return s.writer.Write(row)
	}

	_, err := fmt.Fprintln(s.raw, strings.Join(row, s.comma))
	return err
}

// Close flushes buffered rows.
func (s *CSVSink) Close() error {
	if s.writer != nil {
		s.writer.Flush()
		return s.writer.Error()
	}
	return nil
}
