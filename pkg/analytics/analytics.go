// Package analytics extracts frequent content terms from section text. The
// image handler uses them to describe placeholders.
package analytics

import (
	"sort"
	"strings"

	"github.com/dtnitsch/layout-blueprint/pkg/textutil"
)

type Analytics struct{}

// minTermLength drops tokens too short to describe anything.
const minTermLength = 3

// stopwords are folded function words (English and Dutch) plus common
// layout noise that would otherwise dominate frequency counts.
var stopwords = map[string]struct{}{}

func init() {
	for _, list := range []string{
		// English
		`a about above after again against all also am an and any are around as at
		 be because been before being below between both but by can cannot could
		 did do does doing done down during each either else even ever every few
		 for from further had has have having he her here hers him his how however
		 i if in into is it its itself just last less let like made make many may
		 me might more most much must my never next no nor not now of off often on
		 once one only or other our ours out over own per perhaps rather same see
		 she should since so some still such than that the their them then there
		 these they this those through thus to too under until up upon us use used
		 using very via was we well were what when where whether which while who
		 whom whose why will with within without would yet you your yours`,
		// Dutch
		`aan al alle als altijd ben bij daar dan dat de der deze die dit doch doen
		 door dus een eens en er ge geen geweest haar had heb hebben heeft hem het
		 hier hij hoe hun iemand iets ik in is ja je jij jou jouw kan kon kunnen
		 maar me meer men met mij mijn moet na naar niet niets nog nu of om omdat
		 ons ook op over reeds te tegen toch toen tot u uit uw van veel voor want
		 waren was wat we wel werd wie wij wil worden zal ze zei zelf zich zij zijn
		 zo zonder zou`,
		// layout noise
		`click button link menu page pages website site home homepage read more
		 section image images figure table`,
	} {
		for _, w := range strings.Fields(list) {
			stopwords[w] = struct{}{}
		}
	}
}

// IsStopword reports whether word is ignored by frequency analysis.
func IsStopword(word string) bool {
	_, ok := stopwords[textutil.Fold(word)]
	return ok
}

// WordFrequency counts the folded content terms of text.
func (a *Analytics) WordFrequency(text string) map[string]int {
	frequencies := make(map[string]int)
	for _, word := range textutil.Words(text) {
		if len([]rune(word)) < minTermLength {
			continue
		}
		if _, skip := stopwords[word]; skip {
			continue
		}
		frequencies[word]++
	}
	return frequencies
}

type wordCount struct {
	Word  string
	Count int
}

// TopNWords returns up to n of the most frequent terms. Equal counts are
// ordered alphabetically so the result is stable across runs.
func (a *Analytics) TopNWords(text string, n int) []string {
	if n <= 0 {
		return nil
	}
	frequencies := a.WordFrequency(text)

	counts := make([]wordCount, 0, len(frequencies))
	for k, v := range frequencies {
		counts = append(counts, wordCount{k, v})
	}

	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Word < counts[j].Word
	})

	limit := min(n, len(counts))
	topN := make([]string, limit)
	for i := 0; i < limit; i++ {
		topN[i] = counts[i].Word
	}
	return topN
}
