package output

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"github.com/urltools/urlsplit/pkg/splitter"
)

const sqliteSchema = `
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;

CREATE TABLE IF NOT EXISTS split_results (
    result_id INTEGER PRIMARY KEY AUTOINCREMENT,
    url TEXT NOT NULL,
    scheme TEXT,
    userinfo TEXT,
    host TEXT,
    port TEXT,
    path TEXT,
    query TEXT,
    fragment TEXT,
    hostname TEXT,
    domain TEXT,
    subdomain TEXT,
    suffix TEXT,
    registration TEXT,
    error TEXT,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_split_results_host ON split_results(host);
CREATE INDEX IF NOT EXISTS idx_split_results_registration ON split_results(registration);
`

const sqliteInsert = `
INSERT INTO split_results (
    url, scheme, userinfo, host, port, path, query, fragment,
    hostname, domain, subdomain, suffix, registration, error
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

// SQLiteSink writes split results into a SQLite database, one row per
// input record, in the split_results table.
type SQLiteSink struct {
	db       *sql.DB
	insert   *sql.Stmt
	urlIndex int
}

// NewSQLiteSink opens (or creates) the database at path and prepares the
// split_results table. urlIndex is the input column holding the URL; it is
// stored alongside the components so the table is queryable on its own.
func NewSQLiteSink(path string, urlIndex int) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initializing schema: %w", err)
	}

	insert, err := db.Prepare(sqliteInsert)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("preparing insert: %w", err)
	}

	return &SQLiteSink{
		db:       db,
		insert:   insert,
		urlIndex: urlIndex,
	}, nil
}

// WriteHeader is a no-op; the table schema is the header.
func (s *SQLiteSink) WriteHeader(_ []string) error {
	return nil
}

// WriteRow inserts one result row.
func (s *SQLiteSink) WriteRow(original []string, c *splitter.Components, splitErr error) error {
	url := ""
	if s.urlIndex < len(original) {
		url = original[s.urlIndex]
	}

	fields := componentFields(c, splitErr)

	args := make([]interface{}, 0, len(fields)+1)
	args = append(args, url)
	for _, f := range fields {
		args = append(args, f)
	}

	if _, err := s.insert.Exec(args...); err != nil {
		return fmt.Errorf("inserting row: %w", err)
	}
	return nil
}

// Close releases the prepared statement and the database handle.
func (s *SQLiteSink) Close() error {
	if err := s.insert.Close(); err != nil {
		_ = s.db.Close()
		return err
	}
	return s.db.Close()
}
