package commands

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestInspectURL_Success(t *testing.T) {
	result := inspectURL("http://user@example.com:8080/path?q=1#frag", true)

	if result.Error != "" {
		t.Fatalf("Error = %q, want empty", result.Error)
	}

	c := result.Components
	if c.Scheme != "http" || c.Userinfo != "user" || c.Host != "example.com" ||
		c.Port != "8080" || c.Path != "/path" || c.Query != "q=1" || c.Fragment != "frag" {
		t.Errorf("components = %+v", c)
	}
	if c.Registration != "example.com" {
		t.Errorf("Registration = %q, want %q", c.Registration, "example.com")
	}
}

func TestInspectURL_Failure(t *testing.T) {
	result := inspectURL("not a url", true)

	if result.Error == "" {
		t.Fatal("Error empty, want parse failure")
	}
	if result.Components != nil {
		t.Errorf("Components = %+v, want nil", result.Components)
	}
	if result.URL != "not a url" {
		t.Errorf("URL = %q, want original input preserved", result.URL)
	}
}

func TestWriteInspectionText(t *testing.T) {
	var buf bytes.Buffer
	result := inspectURL("https://my.example.com/x?a=1", true)

	if err := writeInspectionText(&buf, result); err != nil {
		t.Fatalf("writeInspectionText() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"https://my.example.com/x?a=1",
		"scheme:", "https",
		"subdomain:", "my",
		"registration:", "example.com",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	// Empty fields are omitted.
	if strings.Contains(out, "userinfo:") {
		t.Errorf("output includes empty userinfo field:\n%s", out)
	}
}

func TestWriteInspectionText_Error(t *testing.T) {
	var buf bytes.Buffer
	if err := writeInspectionText(&buf, inspectURL("", true)); err != nil {
		t.Fatalf("writeInspectionText() error = %v", err)
	}
	if !strings.Contains(buf.String(), "error:") {
		t.Errorf("output missing error line:\n%s", buf.String())
	}
}

func TestWriteInspectionJSON(t *testing.T) {
	var buf bytes.Buffer
	if err := writeInspectionJSON(&buf, inspectURL("https://example.com", true)); err != nil {
		t.Fatalf("writeInspectionJSON() error = %v", err)
	}

	var decoded inspection
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded.Components == nil || decoded.Components.Scheme != "https" {
		t.Errorf("decoded = %+v", decoded)
	}
}

func TestRunInspect_SetsExitCodeOnFailure(t *testing.T) {
	defer func() { ExitCode = 0 }()

	cmd := NewInspectCommand()
	cmd.SetArgs([]string{"not a url"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	if ExitCode != 1 {
		t.Errorf("ExitCode = %d, want 1", ExitCode)
	}
}

func TestRunInspect_UnknownFormat(t *testing.T) {
	cmd := NewInspectCommand()
	cmd.SetArgs([]string{"-o", "xml", "https://example.com"})
	if err := cmd.Execute(); err == nil {
		t.Error("expected error for unknown output format")
	}
}
