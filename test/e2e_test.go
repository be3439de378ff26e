package test

import (
	"database/sql"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/urltools/urlsplit/internal/cli"
	"github.com/urltools/urlsplit/pkg/output"
)

func run(t *testing.T, args ...string) error {
	t.Helper()
	cmd := cli.NewRootCommand()
	cmd.SetArgs(args)
	return cmd.Execute()
}

func TestEndToEnd_SplitCSV(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.csv")
	out := filepath.Join(dir, "out.csv")

	content := `url,source
https://my.example.com/path?a=1#top,crawler
http://user@example.com:8080/x,manual
not a url,manual
`
	if err := os.WriteFile(in, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := run(t, "split", in, "-o", out); err != nil {
		t.Fatalf("split failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("output is not valid CSV: %v", err)
	}

	if len(rows) != 4 {
		t.Fatalf("got %d rows, want header + 3", len(rows))
	}
	if len(rows[0]) != 2+len(output.ComponentColumns) {
		t.Errorf("header width = %d, want %d", len(rows[0]), 2+len(output.ComponentColumns))
	}

	// Every row has the same width as the header: uniform schema.
	for i, row := range rows {
		if len(row) != len(rows[0]) {
			t.Errorf("row %d width = %d, want %d", i, len(row), len(rows[0]))
		}
	}

	// Spot-check the second data row.
	got := rows[2]
	for col, want := range map[int]string{
		0:  "http://user@example.com:8080/x",
		1:  "manual",
		2:  "http",        // scheme
		3:  "user",        // userinfo
		4:  "example.com", // host
		5:  "8080",        // port
		6:  "/x",          // path
		13: "example.com", // registration
	} {
		if got[col] != want {
			t.Errorf("row[%d] = %q, want %q", col, got[col], want)
		}
	}

	// The unparseable row keeps its input and reports the failure.
	bad := rows[3]
	if bad[0] != "not a url" {
		t.Errorf("bad row input = %q", bad[0])
	}
	if bad[len(bad)-1] == "" {
		t.Error("bad row has no error message")
	}
}

func TestEndToEnd_DetectThenSplit(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	configPath := filepath.Join(dir, "urlsplit.yaml")
	out := filepath.Join(dir, "out.csv")

	content := "https://example.com/a;one\nhttps://example.com/b;two\n"
	if err := os.WriteFile(in, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := run(t, "detect", in, "-w", configPath); err != nil {
		t.Fatalf("detect failed: %v", err)
	}
	if err := run(t, "validate", configPath); err != nil {
		t.Fatalf("generated config does not validate: %v", err)
	}
	if err := run(t, "split", in, "--config", configPath, "-o", out); err != nil {
		t.Fatalf("split with generated config failed: %v", err)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) == 0 {
		t.Fatal("split produced no output")
	}
}

func TestEndToEnd_SQLiteSink(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "in.txt")
	dbPath := filepath.Join(dir, "results.db")

	content := "https://a.example.com/1\nhttps://b.example.com/2\n"
	if err := os.WriteFile(in, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	if err := run(t, "split", in, "-n", "-f", "sqlite", "-o", dbPath); err != nil {
		t.Fatalf("split failed: %v", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM split_results WHERE registration = 'example.com'").Scan(&count); err != nil {
		t.Fatal(err)
	}
	if count != 2 {
		t.Errorf("rows with registration example.com = %d, want 2", count)
	}
}

func TestEndToEnd_UnknownCommand(t *testing.T) {
	if err := run(t, "frobnicate"); err == nil {
		t.Error("expected error for unknown command")
	}
}
