package mapreduce

import (
	"github.com/dtnitsch/layout-blueprint/models"
	"github.com/dtnitsch/layout-blueprint/pkg/analytics"
)

// Map generates a word frequency map for a single document's content.
func Map(content string, a *analytics.Analytics) map[string]int {
	return a.WordFrequency(content)
}

// MapContentTypes counts the content types of a blueprint's sections.
func MapContentTypes(bp *models.Blueprint) map[string]int {
	counts := make(map[string]int)
	if bp == nil {
		return counts
	}
	for _, s := range bp.Sections {
		counts[string(s.ContentType)]++
	}
	return counts
}

// Reduce aggregates a slice of frequency maps into a single map.
func Reduce(intermediate []map[string]int) map[string]int {
	finalResults := make(map[string]int)

	for _, counts := range intermediate {
		for word, count := range counts {
			finalResults[word] += count
		}
	}

	return finalResults
}
