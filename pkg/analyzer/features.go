package analyzer

import "regexp"

// Structural feature families. Each family matches the markdown and the HTML
// spelling of the same construct.
var (
	tablePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^\s*\|?(\s*:?-{3,}:?\s*\|)+\s*(:?-{3,}:?\s*)?$`),
		regexp.MustCompile(`(?i)<table[\s>]`),
	}
	orderedListPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^\s*\d+\.\s+\S`),
		regexp.MustCompile(`(?i)<ol[\s>]`),
	}
	unorderedListPatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^\s*[-*+]\s+(?:[-*+]\S|[^-*+\s])`),
		regexp.MustCompile(`(?i)<ul[\s>]`),
	}
	quotePatterns = []*regexp.Regexp{
		regexp.MustCompile(`(?m)^\s{0,3}>\s*\S`),
		regexp.MustCompile(`(?i)<blockquote[\s>]`),
	}
	imagePatterns = []*regexp.Regexp{
		regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`),
		regexp.MustCompile(`(?i)<img\s`),
	}

	statisticRe      = regexp.MustCompile(`(?i)\d+(?:[.,]\d+)?\s?(?:%|percent\b|procent\b)|[$€£]\s?\d+|\b\d{1,3}(?:[.,]\d{3})+\b`)
	numberedBulletRe = regexp.MustCompile(`(?m)^\s*\(?\d+\)\s+\S`)
)

const (
	minStatistics       = 3
	minStatisticDensity = 0.02
	minNumberedBullets  = 2
)

// features are the structural signals found in a section body.
type features struct {
	HasTable        bool
	HasOrderedList  bool
	HasUnordered    bool
	HasQuote        bool
	HasImage        bool
	Statistics      int
	NumberedBullets int
}

func (f features) hasList() bool {
	return f.HasOrderedList || f.HasUnordered
}

// isDataHeavy reports statistic-dense or numbered-bullet content.
func (f features) isDataHeavy(wordCount int) bool {
	if f.NumberedBullets >= minNumberedBullets {
		return true
	}
	if f.Statistics < minStatistics || wordCount == 0 {
		return false
	}
	return float64(f.Statistics)/float64(wordCount) >= minStatisticDensity
}

func matchAny(patterns []*regexp.Regexp, text string) bool {
	for _, p := range patterns {
		if p.MatchString(text) {
			return true
		}
	}
	return false
}

func detectFeatures(body string) features {
	return features{
		HasTable:        matchAny(tablePatterns, body),
		HasOrderedList:  matchAny(orderedListPatterns, body),
		HasUnordered:    matchAny(unorderedListPatterns, body),
		HasQuote:        matchAny(quotePatterns, body),
		HasImage:        matchAny(imagePatterns, body),
		Statistics:      len(statisticRe.FindAllString(body, -1)),
		NumberedBullets: len(numberedBulletRe.FindAllString(body, -1)),
	}
}
