package component

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/dtnitsch/layout-blueprint/models"
	"github.com/dtnitsch/layout-blueprint/pkg/markup"
	"github.com/dtnitsch/layout-blueprint/pkg/textutil"
)

// Keyword families match against folded text (lowercase, no diacritics).
var (
	alertPrefixRe = regexp.MustCompile(`^(warning|caution|danger|important|attention|let op|waarschuwing|pas op|opgelet|achtung|vorsicht)\b`)
	alertWordRe   = regexp.MustCompile(`\b(warning|caution|danger|dangerous|risk|risky|avoid|never|careful|waarschuwing|gevaar|gevaarlijk|risico|vermijd|nooit|voorzichtig)\b`)

	tipPrefixRe = regexp.MustCompile(`^(pro tip|tip|hint|note|good to know|did you know|info|goed om te weten|wist je dat|opmerking|hinweis)\b`)
	tipWordRe   = regexp.MustCompile(`\b(tip|tips|hint|recommend|recommended|suggestion|advice|handy|advies|aanrader|handig|suggestie|aanbevolen)\b`)

	featureWordRe = regexp.MustCompile(`\b(feature|features|benefit|benefits|advantage|advantages|fast|faster|easy|easier|secure|simple|powerful|flexible|free|reliable|voordeel|voordelen|snel|sneller|eenvoudig|veilig|gratis|makkelijk|krachtig|flexibel|betrouwbaar)\b`)

	sequenceWordRe = regexp.MustCompile(`\b(first|firstly|second|secondly|then|next|after that|afterwards|finally|lastly|eerst|daarna|vervolgens|tenslotte|ten slotte|als laatste|zuerst|dann|danach|schliesslich)\b`)
)

const (
	minFeatureItems    = 3
	maxFeatureItems    = 5
	maxFeatureItemLen  = 100
	minPatternKeywords = 2
	minQuestions       = 2
	minOrderedItems    = 2
)

// detector recognizes one content pattern. Detectors run in slice order and
// the first hit wins.
type detector struct {
	name   string
	detect func(c *patternContext) (pick, bool)
}

// patternContext holds the parsed section body so each detector can query it
// without re-rendering.
type patternContext struct {
	analysis       models.SectionAnalysis
	isFirstSection bool
	doc            *markup.Document
	folded         string
}

func newPatternContext(a models.SectionAnalysis, opts models.PatternOptions) *patternContext {
	content := opts.Content
	if content == "" {
		content = a.Content
	}
	doc := markup.Parse(content)
	return &patternContext{
		analysis:       a,
		isFirstSection: opts.IsFirstSection,
		doc:            doc,
		folded:         textutil.Fold(doc.PlainText()),
	}
}

var detectors = []detector{
	{"lead-paragraph", detectLeadParagraph},
	{"alert", detectAlert},
	{"info-tip", detectTip},
	{"question-answer", detectQuestions},
	{"feature-list", detectFeatureList},
	{"sequential", detectSequence},
}

// distinctMatches counts distinct keyword hits of re in text.
func distinctMatches(re *regexp.Regexp, text string) int {
	seen := make(map[string]struct{})
	for _, m := range re.FindAllString(text, -1) {
		seen[m] = struct{}{}
	}
	return len(seen)
}

// boldPrefix returns the first prefix match of re among the bold runs.
func (c *patternContext) boldPrefix(re *regexp.Regexp) (string, bool) {
	for _, b := range c.doc.BoldTexts() {
		if m := re.FindString(textutil.Fold(strings.TrimSpace(b))); m != "" {
			return m, true
		}
	}
	return "", false
}

func detectLeadParagraph(c *patternContext) (pick, bool) {
	if c.isFirstSection && c.analysis.ContentType == models.ContentIntroduction {
		return pick{models.ComponentLeadParagraph, "intro"}, true
	}
	return pick{}, false
}

func detectAlert(c *patternContext) (pick, bool) {
	if _, ok := c.boldPrefix(alertPrefixRe); ok {
		return pick{models.ComponentAlertBox, "warning"}, true
	}
	if distinctMatches(alertWordRe, c.folded) >= minPatternKeywords {
		return pick{models.ComponentAlertBox, "warning"}, true
	}
	return pick{}, false
}

func detectTip(c *patternContext) (pick, bool) {
	if m, ok := c.boldPrefix(tipPrefixRe); ok {
		variant := "info"
		if strings.Contains(m, "tip") || m == "hint" {
			variant = "tip"
		}
		return pick{models.ComponentInfoBox, variant}, true
	}
	if distinctMatches(tipWordRe, c.folded) >= minPatternKeywords {
		return pick{models.ComponentInfoBox, "tip"}, true
	}
	return pick{}, false
}

func detectQuestions(c *patternContext) (pick, bool) {
	boldQuestions := 0
	for _, b := range c.doc.BoldTexts() {
		if strings.HasSuffix(strings.TrimSpace(b), "?") {
			boldQuestions++
		}
	}
	if boldQuestions >= minQuestions {
		return pick{models.ComponentFAQAccordion, "qa"}, true
	}

	paragraphs := c.doc.Paragraphs()
	questions := 0
	for _, p := range paragraphs {
		if strings.HasSuffix(strings.TrimSpace(p), "?") {
			questions++
		}
	}
	// A body made only of questions has no answers to fold away.
	if questions >= minQuestions && questions < len(paragraphs) {
		return pick{models.ComponentFAQAccordion, "qa"}, true
	}
	return pick{}, false
}

func detectFeatureList(c *patternContext) (pick, bool) {
	items := c.doc.ListItems()
	if len(items) < minFeatureItems || len(items) > maxFeatureItems {
		return pick{}, false
	}

	keyword := false
	for _, item := range items {
		if utf8.RuneCountInString(item) >= maxFeatureItemLen {
			return pick{}, false
		}
		if featureWordRe.MatchString(textutil.Fold(item)) {
			keyword = true
		}
	}
	if !keyword {
		return pick{}, false
	}
	return pick{models.ComponentFeatureGrid, "benefits"}, true
}

func detectSequence(c *patternContext) (pick, bool) {
	if c.doc.LargestOrderedList() >= minOrderedItems {
		return pick{models.ComponentStepList, "numbered"}, true
	}
	if distinctMatches(sequenceWordRe, c.folded) >= minPatternKeywords {
		return pick{models.ComponentStepList, "sequential"}, true
	}
	return pick{}, false
}

// detectPattern runs the detectors in order and reports the first hit
// together with the detector name.
func detectPattern(a models.SectionAnalysis, opts models.PatternOptions) (pick, string, bool) {
	c := newPatternContext(a, opts)
	for _, d := range detectors {
		if p, ok := d.detect(c); ok {
			return p, d.name, true
		}
	}
	return pick{}, "", false
}
