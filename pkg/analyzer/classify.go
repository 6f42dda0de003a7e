package analyzer

import (
	"regexp"
	"strings"

	"github.com/dtnitsch/layout-blueprint/models"
	"github.com/dtnitsch/layout-blueprint/pkg/textutil"
)

type headingFamily struct {
	contentType models.ContentType
	pattern     *regexp.Regexp
}

// headingFamilies are tried in order against the folded, punctuation-free
// heading. Each family carries English, Dutch, and German phrasings.
var headingFamilies = []headingFamily{
	{models.ContentIntroduction, regexp.MustCompile(`\b(introduction|intro|overview|getting started|background|inleiding|introductie|overzicht|achtergrond|einleitung|uberblick)\b`)},
	{models.ContentFAQ, regexp.MustCompile(`\b(faqs?|frequently asked|questions|q a|veelgestelde vragen|veel gestelde vragen|vragen|haufige fragen|fragen)\b`)},
	{models.ContentComparison, regexp.MustCompile(`\b(vs|versus|compared?|comparison|comparing|differences?|alternatives?|pros and cons|vergelijk\w*|verschil\w*|voor en nadelen|vergleich\w*|unterschied\w*)\b`)},
	{models.ContentSummary, regexp.MustCompile(`\b(summary|conclusions?|key takeaways|takeaways|wrap up|wrapping up|in short|tl dr|final thoughts|recap|samenvatting|conclusie|tot slot|kortom|fazit|zusammenfassung)\b`)},
	{models.ContentDefinition, regexp.MustCompile(`\b(definition|what is|what are|meaning of|defined|definitie|wat is|wat zijn|betekenis|was ist|bedeutung)\b`)},
	{models.ContentSteps, regexp.MustCompile(`\b(how to|steps?|guide|tutorial|instructions|process|stappenplan|stappen|stap|hoe|handleiding|anleitung|schritte?)\b`)},
	{models.ContentTestimonial, regexp.MustCompile(`\b(testimonials?|reviews?|what (our )?(customers|clients|users) say|case stud(y|ies)|success stor(y|ies)|ervaringen?|beoordelingen?|klantverhalen|erfahrungen)\b`)},
}

// formatContentTypes are format codes that fix the content type outright.
var formatContentTypes = map[string]models.ContentType{
	models.FormatListing:       models.ContentSteps,
	models.FormatTable:         models.ContentComparison,
	models.FormatPeopleAlsoAsk: models.ContentFAQ,
	models.FormatDefinition:    models.ContentDefinition,
}

var supplementaryHeadingRe = regexp.MustCompile(`\b(related|further reading|read more|see also|resources|sources|references|more information|gerelateerd|lees ook|lees meer|zie ook|bronnen|meer informatie|weiterfuhrende|quellen)\b`)

// classify resolves the content type: format code, then heading families,
// then content shape, then the explanation default.
func classify(formatCode, heading string, f features, wordCount int) models.ContentType {
	if ct, ok := formatContentTypes[strings.ToUpper(strings.TrimSpace(formatCode))]; ok {
		return ct
	}

	if ct, ok := classifyHeading(heading); ok {
		return ct
	}

	switch {
	case f.HasTable:
		return models.ContentComparison
	case f.HasOrderedList:
		return models.ContentSteps
	case f.HasUnordered:
		return models.ContentList
	case f.isDataHeavy(wordCount):
		return models.ContentData
	}

	return models.ContentExplanation
}

func classifyHeading(heading string) (models.ContentType, bool) {
	normalized := textutil.Normalize(heading)
	if normalized == "" {
		return "", false
	}
	for _, family := range headingFamilies {
		if family.pattern.MatchString(normalized) {
			return family.contentType, true
		}
	}
	return "", false
}

// isSupplementaryHeading reports headings that introduce secondary material.
func isSupplementaryHeading(heading string) bool {
	normalized := textutil.Normalize(heading)
	return normalized != "" && supplementaryHeadingRe.MatchString(normalized)
}
