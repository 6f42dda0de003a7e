// Package markup gives a uniform DOM view over markdown, HTML, or a mix of both.
// Markdown is rendered through goldmark (raw HTML passes through untouched) and
// the result is queried with goquery.
package markup

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
)

// goldmark's Markdown is safe for concurrent Convert calls.
var renderer = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
)

var blockTags = map[string]struct{}{
	"p": {}, "div": {}, "li": {}, "ul": {}, "ol": {}, "table": {}, "tr": {},
	"td": {}, "th": {}, "blockquote": {}, "pre": {}, "br": {}, "section": {},
	"article": {}, "figure": {}, "figcaption": {}, "dt": {}, "dd": {},
	"h1": {}, "h2": {}, "h3": {}, "h4": {}, "h5": {}, "h6": {},
}

var skipTags = map[string]struct{}{
	"script": {}, "style": {}, "noscript": {},
}

// Document is a parsed section body.
type Document struct {
	doc *goquery.Document
}

// Parse renders content to HTML and loads it for querying. It never fails:
// unparseable input yields an empty document.
func Parse(content string) *Document {
	var buf bytes.Buffer
	source := content
	if err := renderer.Convert([]byte(content), &buf); err == nil {
		source = buf.String()
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(source))
	if err != nil {
		return &Document{}
	}
	return &Document{doc: doc}
}

// PlainText returns the visible text, one line per block element.
func (d *Document) PlainText() string {
	if d.doc == nil {
		return ""
	}

	var sb strings.Builder
	for _, n := range d.doc.Find("body").Nodes {
		writeText(&sb, n)
	}

	var lines []string
	for _, line := range strings.Split(sb.String(), "\n") {
		if fields := strings.Fields(line); len(fields) > 0 {
			lines = append(lines, strings.Join(fields, " "))
		}
	}
	return strings.Join(lines, "\n")
}

func writeText(sb *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		sb.WriteString(n.Data)
		sb.WriteString(" ")
		return
	case html.ElementNode:
		if _, skip := skipTags[n.Data]; skip {
			return
		}
	}

	_, block := blockTags[n.Data]
	if block {
		sb.WriteString("\n")
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeText(sb, c)
	}
	if block {
		sb.WriteString("\n")
	}
}

// WordCount counts whitespace-separated words of the plain text.
func (d *Document) WordCount() int {
	return len(strings.Fields(d.PlainText()))
}

func (d *Document) texts(selector string) []string {
	if d.doc == nil {
		return nil
	}
	var out []string
	d.doc.Find(selector).Each(func(i int, s *goquery.Selection) {
		text := strings.Join(strings.Fields(s.Text()), " ")
		if text != "" {
			out = append(out, text)
		}
	})
	return out
}

// ListItems returns the text of every list item, ordered or not.
func (d *Document) ListItems() []string {
	return d.texts("li")
}

// LargestOrderedList returns the item count of the longest ordered list.
func (d *Document) LargestOrderedList() int {
	if d.doc == nil {
		return 0
	}
	largest := 0
	d.doc.Find("ol").Each(func(i int, s *goquery.Selection) {
		if n := s.ChildrenFiltered("li").Length(); n > largest {
			largest = n
		}
	})
	return largest
}

// BoldTexts returns the text of every strong/b run.
func (d *Document) BoldTexts() []string {
	return d.texts("strong, b")
}

// Paragraphs returns the text of every paragraph.
func (d *Document) Paragraphs() []string {
	return d.texts("p")
}
