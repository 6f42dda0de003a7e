// Package textutil normalizes headings and short texts for keyword matching.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fold case-folds s and strips diacritics so "Één" and "een" compare equal.
// Transformers are stateful, so a fresh chain is built per call.
func Fold(s string) string {
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	stripped, _, err := transform.String(t, s)
	if err != nil {
		stripped = s
	}
	return cases.Fold().String(stripped)
}

// Words splits folded text into letter/digit tokens.
func Words(s string) []string {
	return strings.FieldsFunc(Fold(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// WordSet returns the distinct tokens of s.
func WordSet(s string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, w := range Words(s) {
		set[w] = struct{}{}
	}
	return set
}

// Normalize returns the folded tokens of s joined by single spaces.
func Normalize(s string) string {
	return strings.Join(Words(s), " ")
}

// HeadingSimilarity scores two headings in [0,1]: 1 for an exact normalized
// match, otherwise shared distinct words over the larger word set.
func HeadingSimilarity(a, b string) float64 {
	na, nb := Normalize(a), Normalize(b)
	if na == "" || nb == "" {
		return 0
	}
	if na == nb {
		return 1
	}

	setA, setB := WordSet(na), WordSet(nb)
	shared := 0
	for w := range setA {
		if _, ok := setB[w]; ok {
			shared++
		}
	}

	larger := len(setA)
	if len(setB) > larger {
		larger = len(setB)
	}
	return float64(shared) / float64(larger)
}

// FirstSentence returns the first sentence of s, capped at maxWords words.
func FirstSentence(s string, maxWords int) string {
	s = strings.TrimSpace(s)
	if i := strings.IndexAny(s, ".?!\n"); i >= 0 {
		s = s[:i]
	}
	fields := strings.Fields(s)
	if maxWords > 0 && len(fields) > maxWords {
		fields = fields[:maxWords]
	}
	return strings.Join(fields, " ")
}
