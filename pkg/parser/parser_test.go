package parser

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
)

func lines(t *testing.T, html string) []string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to load html: %v", err)
	}
	var out []string
	doc.Find(contentTags).Each(func(i int, s *goquery.Selection) {
		if line := blockLine(s); line != "" {
			out = append(out, line)
		}
	})
	return out
}

func TestBlockLine(t *testing.T) {
	tests := []struct {
		name string
		html string
		want []string
	}{
		{"heading levels", "<h2>Setup  guide</h2><h3>Next</h3>", []string{"## Setup guide", "### Next"}},
		{"ordered list", "<ol><li>one</li><li>two</li></ol>", []string{"1. one", "2. two"}},
		{"unordered list with nested paragraph", "<ul><li><p>alpha</p></li></ul>", []string{"- alpha"}},
		{"quote", "<blockquote><p>said so</p></blockquote>", []string{"> said so"}},
		{"image", `<p>text</p><img src="/a.png" alt="A chart">`, []string{"text", "![A chart](/a.png)"}},
		{"image without src", `<img alt="x">`, nil},
		{"code", "<pre><code>go test ./...</code></pre>", []string{"```\ngo test ./...\n```"}},
		{"empty paragraph", "<p>   </p>", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := lines(t, tt.html)
			if len(got) != len(tt.want) {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %q, want %q", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestBlockLine_TableKeptWhole(t *testing.T) {
	got := lines(t, "<table><tr><td><p>cell</p></td></tr></table>")
	if len(got) != 1 || !strings.HasPrefix(got[0], "<table>") || !strings.Contains(got[0], "cell") {
		t.Errorf("got %q", got)
	}
}

func TestNormalizeText(t *testing.T) {
	if got := normalizeText("  a\n\n   b  c \n"); got != "a b c" {
		t.Errorf("normalizeText() = %q", got)
	}
}

func TestParseArticle_InvalidURL(t *testing.T) {
	p := &Parser{}
	if _, err := p.ParseArticle("://missing-scheme", "<html></html>"); err == nil {
		t.Error("expected error for invalid url")
	}
}
