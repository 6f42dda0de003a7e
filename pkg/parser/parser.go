// Package parser turns a full HTML page into heading-delimited article text the
// analyzer can split.
package parser

import (
	"bufio"
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-shiori/go-readability"
)

type Parser struct{}

// Article is the readable part of a page.
type Article struct {
	Title string
	// Content is markdown-flavored text: headings as "#" lines, list items as
	// "-" or "1." lines, tables kept as HTML.
	Content string
}

const contentTags = "h1,h2,h3,h4,h5,h6,p,li,table,pre,blockquote,img"

// ParseArticle uses go-readability to find the main article in html and then
// rewrites that clean content as heading-delimited text. pageURL resolves
// relative links and may be a file:// URL.
func (p *Parser) ParseArticle(pageURL, html string) (*Article, error) {
	parsedURL, err := url.Parse(pageURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse page url: %w", err)
	}

	rp := readability.NewParser()
	article, err := rp.Parse(strings.NewReader(html), parsedURL)
	if err != nil {
		return nil, fmt.Errorf("failed to extract readable content: %w", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(article.Content))
	if err != nil {
		return nil, fmt.Errorf("failed to load readable content: %w", err)
	}

	var lines []string
	doc.Find(contentTags).Each(func(i int, s *goquery.Selection) {
		if line := blockLine(s); line != "" {
			lines = append(lines, line)
		}
	})

	return &Article{
		Title:   normalizeText(article.Title),
		Content: strings.Join(lines, "\n\n"),
	}, nil
}

// blockLine renders one content element. Elements nested in another content
// block are rendered by their container.
func blockLine(s *goquery.Selection) string {
	tag := goquery.NodeName(s)
	if tag != "li" && s.ParentsFiltered("li,table,pre,blockquote").Length() > 0 {
		return ""
	}
	if tag == "li" && s.ParentsFiltered("table,pre,blockquote").Length() > 0 {
		return ""
	}

	switch tag {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		text := normalizeText(s.Text())
		if text == "" {
			return ""
		}
		return strings.Repeat("#", int(tag[1]-'0')) + " " + text
	case "li":
		text := normalizeText(s.Text())
		if text == "" {
			return ""
		}
		if goquery.NodeName(s.Parent()) == "ol" {
			return fmt.Sprintf("%d. %s", s.PrevAllFiltered("li").Length()+1, text)
		}
		return "- " + text
	case "table":
		out, err := goquery.OuterHtml(s)
		if err != nil {
			return ""
		}
		return out
	case "pre":
		code := strings.TrimSpace(s.Text())
		if code == "" {
			return ""
		}
		return "```\n" + code + "\n```"
	case "blockquote":
		text := normalizeText(s.Text())
		if text == "" {
			return ""
		}
		return "> " + text
	case "img":
		src, ok := s.Attr("src")
		if !ok || src == "" {
			return ""
		}
		alt, _ := s.Attr("alt")
		return fmt.Sprintf("![%s](%s)", normalizeText(alt), src)
	default:
		return normalizeText(s.Text())
	}
}

// normalizeText joins the non-blank lines of input with single spaces.
func normalizeText(input string) string {
	var b strings.Builder
	b.Grow(len(input))
	scanner := bufio.NewScanner(strings.NewReader(input))
	for scanner.Scan() {
		line := strings.Join(strings.Fields(scanner.Text()), " ")
		if line != "" {
			b.WriteString(line)
			b.WriteString(" ")
		}
	}
	return strings.TrimSpace(b.String())
}
