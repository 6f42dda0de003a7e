// Package storage reads inputs and writes encoded blueprints to disk.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

type Storage struct{}

// Output formats.
const (
	FormatJSON = "json"
	FormatYAML = "yaml"
)

func (s *Storage) SaveFile(filePath string, content []byte) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(filePath, content, 0o644); err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}

func (s *Storage) ReadFile(filePath string) ([]byte, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return data, nil
}

// NormalizeFormat maps a user-supplied format to json or yaml.
func NormalizeFormat(format string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", FormatJSON:
		return FormatJSON, nil
	case FormatYAML, "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

// Encode marshals v as indented JSON or YAML.
func Encode(v any, format string) ([]byte, error) {
	f, err := NormalizeFormat(format)
	if err != nil {
		return nil, err
	}
	if f == FormatYAML {
		data, err := yaml.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal yaml: %w", err)
		}
		return data, nil
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal json: %w", err)
	}
	return data, nil
}

// OutputPath is where the blueprint for input is written: the input's base
// name with the format extension, inside dir. A positive n is appended to the
// name to keep inputs with equal base names apart.
func OutputPath(dir, input, format string, n int) string {
	base := filepath.Base(input)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if n > 0 {
		base = fmt.Sprintf("%s-%d", base, n)
	}
	ext := FormatJSON
	if f, err := NormalizeFormat(format); err == nil {
		ext = f
	}
	return filepath.Join(dir, base+".blueprint."+ext)
}

// Save encodes v and writes it to path.
func (s *Storage) Save(path string, v any, format string) error {
	data, err := Encode(v, format)
	if err != nil {
		return err
	}
	return s.SaveFile(path, data)
}
