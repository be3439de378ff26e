package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/urltools/urlsplit/pkg/splitter"
)

// JSONLSink writes one JSON object per input row.
type JSONLSink struct {
	encoder *json.Encoder
	columns []string
}

// jsonRow is the wire shape of one output row.
type jsonRow struct {
	// Fields holds the original input columns keyed by column name, or
	// "col<N>" when the input has no header row.
	Fields map[string]string `json:"fields"`

	Components *splitter.Components `json:"components,omitempty"`
	Error      string               `json:"error,omitempty"`
}

// NewJSONLSink creates a JSON lines sink writing to w.
func NewJSONLSink(w io.Writer) *JSONLSink {
	return &JSONLSink{encoder: json.NewEncoder(w)}
}

// WriteHeader records the input column names used to key the fields
// object. No header line is written; JSON rows are self-describing.
func (s *JSONLSink) WriteHeader(original []string) error {
	s.columns = append([]string{}, original...)
	return nil
}

// WriteRow emits one JSON object.
func (s *JSONLSink) WriteRow(original []string, c *splitter.Components, splitErr error) error {
	row := jsonRow{
		Fields:     make(map[string]string, len(original)),
		Components: c,
	}
	if splitErr != nil {
		row.Error = splitErr.Error()
	}

	for i, value := range original {
		name := fmt.Sprintf("col%d", i)
		if i < len(s.columns) {
			name = s.columns[i]
		}
		row.Fields[name] = value
	}

	return s.encoder.Encode(row)
}

// Close is a no-op; the encoder writes through on every row.
func (s *JSONLSink) Close() error {
	return nil
}
