// Package emphasis maps semantic weight to visual weight.
package emphasis

import (
	"github.com/dtnitsch/layout-blueprint/models"
	"github.com/dtnitsch/layout-blueprint/pkg/component"
)

// featuredEnergy is the minimum profile energy for featured decoration.
const featuredEnergy = 3

var levelByWeight = map[int]models.EmphasisLevel{
	5: models.EmphasisHero,
	4: models.EmphasisFeatured,
	3: models.EmphasisStandard,
	2: models.EmphasisSupporting,
	1: models.EmphasisMinimal,
}

// presets are the profile-independent properties of each level.
var presets = map[models.EmphasisLevel]models.VisualEmphasis{
	models.EmphasisHero: {
		Level:             models.EmphasisHero,
		HeadingSize:       "xxl",
		HeadingWeight:     800,
		PaddingMultiplier: 2,
		MarginMultiplier:  2,
		Background:        models.BackgroundGradient,
		AccentBorder:      models.BorderBottom,
		Elevation:         3,
		Animate:           true,
		Animation:         "fade-in-up",
	},
	models.EmphasisFeatured: {
		Level:             models.EmphasisFeatured,
		HeadingSize:       "xl",
		HeadingWeight:     700,
		PaddingMultiplier: 1.5,
		MarginMultiplier:  1.5,
		Background:        models.BackgroundNone,
		AccentBorder:      models.BorderLeft,
		Elevation:         2,
	},
	models.EmphasisStandard: {
		Level:             models.EmphasisStandard,
		HeadingSize:       "lg",
		HeadingWeight:     600,
		PaddingMultiplier: 1,
		MarginMultiplier:  1,
		Background:        models.BackgroundNone,
		AccentBorder:      models.BorderNone,
		Elevation:         1,
	},
	models.EmphasisSupporting: {
		Level:             models.EmphasisSupporting,
		HeadingSize:       "md",
		HeadingWeight:     500,
		PaddingMultiplier: 0.75,
		MarginMultiplier:  0.75,
		Background:        models.BackgroundNone,
		AccentBorder:      models.BorderNone,
	},
	models.EmphasisMinimal: {
		Level:             models.EmphasisMinimal,
		HeadingSize:       "sm",
		HeadingWeight:     400,
		PaddingMultiplier: 0.5,
		MarginMultiplier:  0.5,
		Background:        models.BackgroundNone,
		AccentBorder:      models.BorderNone,
	},
}

// Level buckets a semantic weight. Out-of-range weights clamp to 1..5.
func Level(weight float64) models.EmphasisLevel {
	return levelByWeight[models.RoundWeight(weight)]
}

// CalculateEmphasis derives the visual emphasis for a semantic weight.
// profile may be nil.
func CalculateEmphasis(weight float64, profile *models.StyleProfile) models.VisualEmphasis {
	e := presets[Level(weight)]

	switch e.Level {
	case models.EmphasisHero:
		if component.ResolvePersonality(profile) == models.PersonalityMinimal {
			e.Background = models.BackgroundSolid
		}
	case models.EmphasisFeatured:
		if profile != nil && profile.Energy >= featuredEnergy {
			e.Background = models.BackgroundSubtle
			e.Animate = true
			e.Animation = "fade-in"
		}
	}

	if profile.IsStatic() {
		e.Animate = false
		e.Animation = ""
	}
	return e
}

// CalculateEmphases applies CalculateEmphasis to every section, in order.
func CalculateEmphases(sections []models.SectionAnalysis, profile *models.StyleProfile) []models.VisualEmphasis {
	out := make([]models.VisualEmphasis, len(sections))
	for i, s := range sections {
		out[i] = CalculateEmphasis(s.SemanticWeight, profile)
	}
	return out
}
