package analyzer

import (
	"html"
	"regexp"
	"strconv"
	"strings"
)

var (
	mdHeadingRe   = regexp.MustCompile(`^\s{0,3}(#{1,6})\s+(.+?)(?:\s+#+)?\s*$`)
	htmlHeadingRe = regexp.MustCompile(`(?is)<h([1-6])(?:\s[^>]*)?>(.*?)</h[1-6]\s*>`)
	fenceRe       = regexp.MustCompile("^\\s{0,3}(```|~~~)")

	inlineLinkRe = regexp.MustCompile(`!?\[([^\]]*)\]\([^)]*\)`)
	inlineTagRe  = regexp.MustCompile(`<[^>]+>`)
	emphasisRe   = regexp.MustCompile("[*_`~]+")
)

// rawSection is one heading-delimited slice of the input.
type rawSection struct {
	Heading string
	Level   int
	Body    string
}

// split segments content at markdown and HTML heading boundaries. Text before
// the first heading becomes a heading-less section when it is not blank.
func split(content string) []rawSection {
	if strings.TrimSpace(content) == "" {
		return nil
	}

	// Put every HTML heading on a single line of its own so the scan below
	// sees it, even when the tag spans several lines.
	content = htmlHeadingRe.ReplaceAllStringFunc(content, func(m string) string {
		return "\n" + strings.Join(strings.Fields(m), " ") + "\n"
	})

	var sections []rawSection
	current := rawSection{}
	var body []string
	inFence := false

	flush := func() {
		current.Body = strings.Trim(strings.Join(body, "\n"), "\n")
		if current.Level > 0 || strings.TrimSpace(current.Body) != "" {
			sections = append(sections, current)
		}
		body = nil
	}

	for _, line := range strings.Split(content, "\n") {
		if fenceRe.MatchString(line) {
			inFence = !inFence
			body = append(body, line)
			continue
		}
		if inFence {
			body = append(body, line)
			continue
		}

		if heading, level, ok := parseHeadingLine(line); ok {
			flush()
			current = rawSection{Heading: heading, Level: level}
			continue
		}
		body = append(body, line)
	}
	flush()

	return sections
}

// parseHeadingLine recognizes a line that is exactly one markdown or HTML heading.
func parseHeadingLine(line string) (string, int, bool) {
	if m := mdHeadingRe.FindStringSubmatch(line); m != nil {
		return cleanHeading(m[2]), len(m[1]), true
	}

	trimmed := strings.TrimSpace(line)
	if m := htmlHeadingRe.FindStringSubmatch(trimmed); m != nil && m[0] == trimmed {
		level, err := strconv.Atoi(m[1])
		if err != nil {
			return "", 0, false
		}
		return cleanHeading(m[2]), level, true
	}
	return "", 0, false
}

// cleanHeading strips inline markup from heading text.
func cleanHeading(raw string) string {
	text := inlineLinkRe.ReplaceAllString(raw, "$1")
	text = inlineTagRe.ReplaceAllString(text, " ")
	text = emphasisRe.ReplaceAllString(text, "")
	return strings.Join(strings.Fields(html.UnescapeString(text)), " ")
}
