// Package langdetect detects the natural language of section text.
package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// Detector returns an ISO 639-1 code for text, or "" when unsure.
type Detector interface {
	Detect(text string) string
}

// DefaultLanguages are the languages the keyword families cover, plus the
// neighbours most often confused with them.
var DefaultLanguages = []lingua.Language{
	lingua.English,
	lingua.Dutch,
	lingua.German,
	lingua.French,
	lingua.Spanish,
}

const defaultMinWords = 5

// Lingua wraps a lingua-go detector. Build it once; it is read-only afterwards.
type Lingua struct {
	detector lingua.LanguageDetector
	minWords int
}

// NewLingua builds a detector restricted to languages (DefaultLanguages when empty).
func NewLingua(languages ...lingua.Language) *Lingua {
	if len(languages) == 0 {
		languages = DefaultLanguages
	}
	detector := lingua.NewLanguageDetectorBuilder().
		FromLanguages(languages...).
		Build()
	return &Lingua{detector: detector, minWords: defaultMinWords}
}

// Detect returns the lowercase ISO 639-1 code of text. Very short texts are
// skipped because lingua's guesses on them are noise.
func (l *Lingua) Detect(text string) string {
	if len(strings.Fields(text)) < l.minWords {
		return ""
	}
	lang, ok := l.detector.DetectLanguageOf(text)
	if !ok {
		return ""
	}
	return strings.ToLower(lang.IsoCode639_1().String())
}

// Dominant returns the most frequent non-empty code; ties go to the code seen first.
func Dominant(codes []string) string {
	counts := make(map[string]int)
	best, bestCount := "", 0
	for _, c := range codes {
		if c == "" {
			continue
		}
		counts[c]++
	}
	for _, c := range codes {
		if c == "" {
			continue
		}
		if counts[c] > bestCount {
			best, bestCount = c, counts[c]
		}
	}
	return best
}
