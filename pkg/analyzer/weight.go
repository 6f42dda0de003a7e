package analyzer

import (
	"strings"

	"github.com/dtnitsch/layout-blueprint/models"
)

const (
	uniqueBonus       = 2.0
	rareBonus         = 1.0
	secondaryBonus    = 0.5
	coreTopicBonus    = 0.5
	snippetBonus      = 0.5
	mainIntentBonus   = 0.5
	firstMainBonus    = 1.0
	introductionBonus = 0.5
)

var secondaryCategories = map[string]struct{}{
	models.CategoryRoot:         {},
	models.CategoryCore:         {},
	models.CategorySearchDemand: {},
	models.CategoryComposite:    {},
}

func categoryBonus(category string) float64 {
	switch c := strings.ToLower(strings.TrimSpace(category)); c {
	case models.CategoryUnique:
		return uniqueBonus
	case models.CategoryRare:
		return rareBonus
	default:
		if _, ok := secondaryCategories[c]; ok {
			return secondaryBonus
		}
		return 0
	}
}

// scoreWeight is the per-section pass: base 3 plus the bonuses that depend
// only on the section itself, clamped to [1,5].
func scoreWeight(a models.SectionAnalysis) models.WeightFactors {
	wf := models.WeightFactors{
		Base:          models.BaseSemanticWeight,
		CategoryBonus: categoryBonus(a.AttributeCategory),
	}
	if a.IsCoreTopic {
		wf.CoreTopicBonus = coreTopicBonus
	}
	if a.IsSnippetProtected() {
		wf.SnippetBonus = snippetBonus
	}
	if a.AnswersMainIntent {
		wf.MainIntentBonus = mainIntentBonus
	}
	wf.Total = models.ClampWeight(wf.Base + wf.CategoryBonus + wf.CoreTopicBonus + wf.SnippetBonus + wf.MainIntentBonus)
	return wf
}

// Rebalance is the whole-document pass. The first MAIN section gets +1 and
// every introduction gets +0.5, both re-clamped. It returns a new slice and
// leaves sections untouched; run it exactly once per document.
func Rebalance(sections []models.SectionAnalysis) []models.SectionAnalysis {
	out := make([]models.SectionAnalysis, len(sections))
	firstMainSeen := false

	for i, s := range sections {
		bonus := 0.0
		if s.ContentZone == models.ZoneMain && !firstMainSeen {
			firstMainSeen = true
			s.WeightFactors.PositionBonus = firstMainBonus
			bonus += firstMainBonus
		}
		if s.ContentType == models.ContentIntroduction {
			s.WeightFactors.IntroductionBonus = introductionBonus
			bonus += introductionBonus
		}

		s.SemanticWeight = models.ClampWeight(s.SemanticWeight + bonus)
		s.WeightFactors.Total = s.SemanticWeight
		out[i] = s
	}
	return out
}
