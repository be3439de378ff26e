// Package input reads delimited rows from files or standard input.
package input

// Record represents a single input row.
type Record struct {
	// Fields are the row's column values, in input order.
	Fields []string

	// Source is the file path this row came from ("-" for stdin).
	Source string

	// RowNum is the 1-based record number in the source. Quoted CSV
	// fields may span physical lines, so this counts records, not lines.
	RowNum int
}
