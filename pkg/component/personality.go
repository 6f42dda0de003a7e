package component

import (
	"strings"

	"github.com/dtnitsch/layout-blueprint/models"
)

// neutralScore stands in for a missing or out-of-range 1-5 score.
const neutralScore = 3

func score(v int) int {
	if v < 1 || v > 5 {
		return neutralScore
	}
	return v
}

// InferPersonality maps formality, energy and warmth scores (1-5) onto a brand
// personality. Scores outside 1-5 count as neutral.
func InferPersonality(formality, energy, warmth int) string {
	f, e, w := score(formality), score(energy), score(warmth)

	switch {
	case f >= 4 && e <= 2:
		return models.PersonalityCorporate
	case f >= 4 && e >= 4:
		return models.PersonalityBold
	case f >= 4:
		return models.PersonalityElegant
	case f <= 2 && e >= 4 && w >= 5:
		return models.PersonalityPlayful
	case f <= 2 && e >= 4:
		return models.PersonalityBold
	case f <= 2 && e <= 2:
		return models.PersonalityMinimal
	case w >= 4:
		return models.PersonalityFriendly
	default:
		return models.PersonalityCorporate
	}
}

// ResolvePersonality returns the profile's explicit personality when it is a
// known one, otherwise infers it from the scores. A nil profile is corporate.
func ResolvePersonality(profile *models.StyleProfile) string {
	if profile == nil {
		return models.PersonalityCorporate
	}

	explicit := strings.ToLower(strings.TrimSpace(profile.Personality))
	for _, p := range personalityOrder {
		if p == explicit {
			return p
		}
	}
	return InferPersonality(profile.Formality, profile.Energy, profile.Warmth)
}
