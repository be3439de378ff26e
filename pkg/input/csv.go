package input

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
)

// CSVSource implements RecordSource for delimited input with standard CSV
// quote interpretation.
type CSVSource struct {
	reader *csv.Reader
	closer io.Closer
	source string
	rowNum int
}

// NewCSVSource creates a RecordSource reading CSV records from r.
// Rows may have varying field counts; lazy quotes are accepted so that
// URL lists with stray quote characters still read as data.
func NewCSVSource(r io.Reader, source string, delimiter rune) *CSVSource {
	reader := csv.NewReader(r)
	reader.Comma = delimiter
	reader.FieldsPerRecord = -1
	reader.LazyQuotes = true

	s := &CSVSource{
		reader: reader,
		source: source,
	}
	if c, ok := r.(io.Closer); ok {
		s.closer = c
	}
	return s
}

// Next returns the next input row.
// Returns io.EOF when the input has been exhausted.
func (s *CSVSource) Next(ctx context.Context) (*Record, error) {
	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	fields, err := s.reader.Read()
	if err == io.EOF {
		return nil, io.EOF
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", s.source, err)
	}

	s.rowNum++
	return &Record{
		Fields: fields,
		Source: s.source,
		RowNum: s.rowNum,
	}, nil
}

// Close releases resources.
func (s *CSVSource) Close() error {
	if s.closer != nil {
		c := s.closer
		s.closer = nil
		return c.Close()
	}
	return nil
}
