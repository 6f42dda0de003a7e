package storage

import (
	"path/filepath"
	"strings"
	"testing"
)

type doc struct {
	Name  string `json:"name" yaml:"name"`
	Count int    `json:"count" yaml:"count"`
}

func TestNormalizeFormat(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"", FormatJSON, false},
		{"JSON", FormatJSON, false},
		{"yml", FormatYAML, false},
		{" yaml ", FormatYAML, false},
		{"csv", "", true},
	}
	for _, tt := range tests {
		got, err := NormalizeFormat(tt.in)
		if (err != nil) != tt.wantErr || got != tt.want {
			t.Errorf("NormalizeFormat(%q) = %q, %v", tt.in, got, err)
		}
	}
}

func TestEncode(t *testing.T) {
	j, err := Encode(doc{"a", 2}, "json")
	if err != nil {
		t.Fatalf("Encode json: %v", err)
	}
	if !strings.Contains(string(j), `"name": "a"`) {
		t.Errorf("json = %s", j)
	}

	y, err := Encode(doc{"a", 2}, "yaml")
	if err != nil {
		t.Fatalf("Encode yaml: %v", err)
	}
	if !strings.Contains(string(y), "count: 2") {
		t.Errorf("yaml = %s", y)
	}

	if _, err := Encode(doc{}, "xml"); err == nil {
		t.Error("expected error for xml")
	}
}

func TestOutputPath(t *testing.T) {
	got := OutputPath("out", "articles/go-intro.md", "yaml", 0)
	if want := filepath.Join("out", "go-intro.blueprint.yaml"); got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
	got = OutputPath("out", "drafts/go-intro.md", "", 1)
	if want := filepath.Join("out", "go-intro-1.blueprint.json"); got != want {
		t.Errorf("OutputPath() = %q, want %q", got, want)
	}
}

func TestSaveAndRead(t *testing.T) {
	s := &Storage{}
	path := filepath.Join(t.TempDir(), "nested", "doc.json")
	if err := s.Save(path, doc{"b", 3}, "json"); err != nil {
		t.Fatalf("Save: %v", err)
	}
	data, err := s.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if !strings.Contains(string(data), `"count": 3`) {
		t.Errorf("content = %s", data)
	}
	if _, err := s.ReadFile(filepath.Join(t.TempDir(), "missing")); err == nil {
		t.Error("expected error for missing file")
	}
}
