package cli

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestTextFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatText)

	if err := f.FormatTo(&buf, "hello"); err != nil {
		t.Fatalf("FormatTo() error: %v", err)
	}
	if buf.String() != "hello\n" {
		t.Errorf("output = %q, want %q", buf.String(), "hello\n")
	}
}

func TestJSONFormatter(t *testing.T) {
	var buf bytes.Buffer
	f := NewFormatter(FormatJSON)

	data := map[string]int{"routes": 3}
	if err := f.FormatTo(&buf, data); err != nil {
		t.Fatalf("FormatTo() error: %v", err)
	}

	var decoded map[string]int
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v", err)
	}
	if decoded["routes"] != 3 {
		t.Errorf("routes = %d, want 3", decoded["routes"])
	}
	if !strings.Contains(buf.String(), "  ") {
		t.Error("JSON output should be indented")
	}
}

func TestNewFormatterDefaultsToText(t *testing.T) {
	if _, ok := NewFormatter("bogus").(*TextFormatter); !ok {
		t.Error("unknown format should fall back to text")
	}
}
