package commands

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/urltools/urlsplit/pkg/config"
	"github.com/urltools/urlsplit/pkg/detector"
)

func TestRunDetect_WritesStarterConfig(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "urls.csv")
	content := "link;label\nhttps://example.com/a;one\nhttps://example.com/b;two\n"
	if err := os.WriteFile(in, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(dir, "urlsplit.yaml")

	cmd := NewDetectCommand()
	cmd.SetArgs([]string{in, "-w", configPath})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("detect error = %v", err)
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		t.Fatalf("starter config not written: %v", err)
	}

	cfg := config.DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		t.Fatalf("starter config is not valid YAML: %v", err)
	}
	if cfg.Delimiter != config.Delimiter(';') {
		t.Errorf("Delimiter = %q, want ';'", cfg.Delimiter)
	}
	if !cfg.Headers {
		t.Error("Headers = false, want true (first line is a header)")
	}
}

func TestRunDetect_RefusesOverwrite(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "urls.csv")
	if err := os.WriteFile(in, []byte("https://example.com\n"), 0644); err != nil {
		t.Fatal(err)
	}

	configPath := filepath.Join(dir, "urlsplit.yaml")
	if err := os.WriteFile(configPath, []byte("# existing\n"), 0644); err != nil {
		t.Fatal(err)
	}

	cmd := NewDetectCommand()
	cmd.SetArgs([]string{in, "-w", configPath})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error when config file already exists")
	}

	data, _ := os.ReadFile(configPath)
	if string(data) != "# existing\n" {
		t.Error("existing config file was overwritten")
	}
}

func TestRunDetect_MissingFile(t *testing.T) {
	cmd := NewDetectCommand()
	cmd.SetArgs([]string{filepath.Join(t.TempDir(), "missing.csv")})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for missing input file")
	}
}

func TestWriteDetectionText(t *testing.T) {
	lines := []string{
		"id,link",
		"1,https://example.com/a",
		"2,https://example.com/b",
	}
	result := detector.New().DetectFromLines(lines)

	var buf bytes.Buffer
	if err := writeDetectionText(&buf, result, starterConfig(result), true); err != nil {
		t.Fatalf("writeDetectionText() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{"Delimiter:", "Confidence:", "Header row: true", "Config snippet:", "All candidates:"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestWriteDetectionJSON(t *testing.T) {
	result := detector.New().DetectFromLines([]string{
		"https://example.com/a\tone",
		"https://example.com/b\ttwo",
	})

	var buf bytes.Buffer
	if err := writeDetectionJSON(&buf, result, false); err != nil {
		t.Fatalf("writeDetectionJSON() error = %v", err)
	}

	var decoded struct {
		SampledLines int  `json:"sampled_lines"`
		HasHeader    bool `json:"has_header"`
		Best         struct {
			Delimiter  string `json:"delimiter"`
			FieldCount int    `json:"field_count"`
		} `json:"best"`
	}
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Best.Delimiter != `\t` {
		t.Errorf("delimiter = %q, want tab", decoded.Best.Delimiter)
	}
	if decoded.Best.FieldCount != 2 {
		t.Errorf("field count = %d, want 2", decoded.Best.FieldCount)
	}
}
