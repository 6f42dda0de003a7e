package analyzer

import (
	"github.com/dtnitsch/layout-blueprint/models"
	"github.com/dtnitsch/layout-blueprint/pkg/textutil"
)

const briefKeyWords = 12

// briefScore compares a section key with both headings a brief entry carries.
func briefScore(key string, b models.BriefSection) float64 {
	score := textutil.HeadingSimilarity(key, b.Heading)
	if s := textutil.HeadingSimilarity(key, b.SectionHeading); s > score {
		score = s
	}
	return score
}

// matchBriefs pairs each section with at most one unused brief entry. Sections
// are visited in document order and greedily take the best remaining candidate
// at or above the threshold; ties go to the earlier brief entry. keys holds the
// heading of each section, or its first sentence when the heading is empty.
func matchBriefs(keys []string, briefs []models.BriefSection) []*models.BriefSection {
	matches := make([]*models.BriefSection, len(keys))
	if len(briefs) == 0 {
		return matches
	}

	used := make([]bool, len(briefs))
	for i, key := range keys {
		best, bestScore := -1, 0.0
		for j, b := range briefs {
			if used[j] {
				continue
			}
			score := briefScore(key, b)
			if score >= models.HeadingMatchThreshold && score > bestScore {
				best, bestScore = j, score
			}
		}
		if best >= 0 {
			used[best] = true
			matched := briefs[best]
			matches[i] = &matched
		}
	}
	return matches
}
