package common

import (
	"crypto/sha256"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// fieldNameMap maps verbose result field names to terse equivalents.
var fieldNameMap = map[string]string{
	"input":           "in",
	"output_path":     "p",
	"status":          "s",
	"error":           "e",
	"error_type":      "et",
	"blueprint_id":    "id",
	"sections":        "n",
	"hero_section":    "h",
	"language":        "l",
	"average_weight":  "w",
	"file_size_bytes": "sz",
}

// TerseName returns the short name for a result field, or the field itself.
func TerseName(field string) string {
	if terse, ok := fieldNameMap[field]; ok {
		return terse
	}
	return field
}

func FilterResultFields(result interface{}, fieldsStr string, isTerse bool) map[string]interface{} {
	if fieldsStr == "" {
		return structToMap(result)
	}

	includeFields := make(map[string]bool)
	for _, field := range strings.Split(fieldsStr, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		if isTerse {
			// Verbose names are accepted in terse mode too.
			field = TerseName(field)
		}
		includeFields[field] = true
	}

	filtered := make(map[string]interface{})
	for key, value := range structToMap(result) {
		if includeFields[key] {
			filtered[key] = value
		}
	}
	return filtered
}

// structToMap converts a struct to map[string]interface{} using JSON marshaling.
func structToMap(obj interface{}) map[string]interface{} {
	data, _ := json.Marshal(obj)
	var result map[string]interface{}
	_ = json.Unmarshal(data, &result)
	return result
}

// ContentHash computes the SHA256 hash of content and returns a hex string.
func ContentHash(data []byte) string {
	hash := sha256.Sum256(data)
	return fmt.Sprintf("%x", hash)
}

var markdownLinkPattern = regexp.MustCompile(`^\[.*?\]\(([^)]+)\)$`)

// SanitizePath cleans copy-paste artifacts from a path argument: surrounding
// whitespace, quotes, brackets and markdown link syntax.
func SanitizePath(raw string) string {
	cleaned := strings.TrimSpace(raw)

	if matches := markdownLinkPattern.FindStringSubmatch(cleaned); len(matches) > 1 {
		cleaned = matches[1]
	}

	for _, char := range []string{",", ";", ")", "]", ">", "\"", "'"} {
		cleaned = strings.TrimSuffix(cleaned, char)
	}
	for _, char := range []string{"(", "[", "<", "\"", "'"} {
		cleaned = strings.TrimPrefix(cleaned, char)
	}

	return strings.TrimSpace(cleaned)
}

// ExpandInputs sanitizes each argument and expands glob patterns. Directories
// expand to their .md, .markdown, .html and .htm files. The result is sorted
// and de-duplicated; arguments that match nothing are returned as missing.
func ExpandInputs(args []string) ([]string, []string) {
	seen := make(map[string]struct{})
	var files, missing []string

	add := func(path string) {
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, raw := range args {
		for _, part := range strings.Split(raw, ",") {
			arg := SanitizePath(part)
			if arg == "" {
				continue
			}

			matches, err := filepath.Glob(arg)
			if err != nil || len(matches) == 0 {
				missing = append(missing, arg)
				continue
			}

			for _, m := range matches {
				info, err := os.Stat(m)
				if err != nil {
					missing = append(missing, m)
					continue
				}
				if !info.IsDir() {
					add(m)
					continue
				}
				entries, err := os.ReadDir(m)
				if err != nil {
					missing = append(missing, m)
					continue
				}
				for _, e := range entries {
					if !e.IsDir() && IsArticleFile(e.Name()) {
						add(filepath.Join(m, e.Name()))
					}
				}
			}
		}
	}

	sort.Strings(files)
	return files, missing
}

// IsArticleFile reports whether name has a markdown or HTML extension.
func IsArticleFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".md", ".markdown", ".html", ".htm":
		return true
	}
	return false
}

// IsHTMLFile reports whether name has an HTML extension.
func IsHTMLFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".html", ".htm":
		return true
	}
	return false
}
