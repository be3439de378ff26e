package input

import "context"

// RecordSource provides an iterator over input rows.
// Implementations must be safe for sequential access (not concurrent).
type RecordSource interface {
	// Next returns the next input row.
	// Returns io.EOF when no more rows are available.
	Next(ctx context.Context) (*Record, error)

	// Close releases any resources held by the source.
	Close() error
}
