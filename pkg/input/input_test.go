package input

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func drain(t *testing.T, s RecordSource) []*Record {
	t.Helper()
	ctx := context.Background()

	var records []*Record
	for {
		rec, err := s.Next(ctx)
		if err == io.EOF {
			return records
		}
		if err != nil {
			t.Fatalf("Next() error = %v", err)
		}
		records = append(records, rec)
	}
}

func TestCSVSource_Next(t *testing.T) {
	in := `url,label
https://example.com/a,first
"https://example.com/with,comma",second
`
	source := NewCSVSource(strings.NewReader(in), "test.csv", ',')
	defer source.Close()

	records := drain(t, source)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}

	if !reflect.DeepEqual(records[0].Fields, []string{"url", "label"}) {
		t.Errorf("header fields = %v", records[0].Fields)
	}
	if records[2].Fields[0] != "https://example.com/with,comma" {
		t.Errorf("quoted field = %q, want embedded comma preserved", records[2].Fields[0])
	}
	if records[2].RowNum != 3 {
		t.Errorf("RowNum = %d, want 3", records[2].RowNum)
	}
	if records[0].Source != "test.csv" {
		t.Errorf("Source = %q, want %q", records[0].Source, "test.csv")
	}
}

func TestCSVSource_RaggedRows(t *testing.T) {
	in := "a,b,c\nonly-one\nx,y\n"
	source := NewCSVSource(strings.NewReader(in), "-", ',')
	defer source.Close()

	records := drain(t, source)
	if len(records) != 3 {
		t.Fatalf("got %d records, want 3", len(records))
	}
	if len(records[1].Fields) != 1 || len(records[2].Fields) != 2 {
		t.Errorf("field counts = %d, %d; want 1, 2",
			len(records[1].Fields), len(records[2].Fields))
	}
}

func TestCSVSource_CustomDelimiter(t *testing.T) {
	in := "https://example.com/a;one\nhttps://example.com/b;two\n"
	source := NewCSVSource(strings.NewReader(in), "-", ';')
	defer source.Close()

	records := drain(t, source)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	if !reflect.DeepEqual(records[0].Fields, []string{"https://example.com/a", "one"}) {
		t.Errorf("fields = %v", records[0].Fields)
	}
}

func TestRawSource_QuotesPassThrough(t *testing.T) {
	in := "\"https://example.com/a\",one\nplain,two\n"
	source := NewRawSource(strings.NewReader(in), "-", ',')
	defer source.Close()

	records := drain(t, source)
	if len(records) != 2 {
		t.Fatalf("got %d records, want 2", len(records))
	}
	// Raw mode keeps quote characters as data.
	if records[0].Fields[0] != `"https://example.com/a"` {
		t.Errorf("field = %q, want quotes preserved", records[0].Fields[0])
	}
}

func TestNext_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	source := NewCSVSource(strings.NewReader("a,b\n"), "-", ',')
	defer source.Close()

	if _, err := source.Next(ctx); err != context.Canceled {
		t.Errorf("Next() error = %v, want context.Canceled", err)
	}
}

func TestOpenPath_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "urls.csv")
	if err := os.WriteFile(path, []byte("https://example.com\n"), 0644); err != nil {
		t.Fatal(err)
	}

	source, err := OpenPath(path, ',', false)
	if err != nil {
		t.Fatalf("OpenPath() error = %v", err)
	}
	defer source.Close()

	records := drain(t, source)
	if len(records) != 1 {
		t.Fatalf("got %d records, want 1", len(records))
	}
	if records[0].Source != path {
		t.Errorf("Source = %q, want %q", records[0].Source, path)
	}
}

func TestOpenPath_MissingFile(t *testing.T) {
	if _, err := OpenPath(filepath.Join(t.TempDir(), "missing.csv"), ',', false); err == nil {
		t.Error("OpenPath() error = nil, want error")
	}
}
