package emphasis

import (
	"math"
	"testing"

	"github.com/dtnitsch/layout-blueprint/models"
)

func TestLevel(t *testing.T) {
	tests := []struct {
		weight float64
		want   models.EmphasisLevel
	}{
		{7, models.EmphasisHero},
		{5, models.EmphasisHero},
		{4.5, models.EmphasisHero},
		{3.5, models.EmphasisFeatured},
		{4, models.EmphasisFeatured},
		{3, models.EmphasisStandard},
		{2, models.EmphasisSupporting},
		{1, models.EmphasisMinimal},
		{-1, models.EmphasisMinimal},
		{math.NaN(), models.EmphasisMinimal},
	}
	for _, tt := range tests {
		if got := Level(tt.weight); got != tt.want {
			t.Errorf("Level(%v) = %q, want %q", tt.weight, got, tt.want)
		}
	}
}

func TestCalculateEmphasis_Multipliers(t *testing.T) {
	tests := []struct {
		weight    float64
		padding   float64
		elevation int
	}{
		{5, 2, 3},
		{4, 1.5, 2},
		{3, 1, 1},
		{2, 0.75, 0},
		{1, 0.5, 0},
	}
	for _, tt := range tests {
		got := CalculateEmphasis(tt.weight, nil)
		if got.PaddingMultiplier != tt.padding || got.MarginMultiplier != tt.padding {
			t.Errorf("weight %v: multipliers %v/%v, want %v", tt.weight, got.PaddingMultiplier, got.MarginMultiplier, tt.padding)
		}
		if got.Elevation != tt.elevation {
			t.Errorf("weight %v: elevation %d, want %d", tt.weight, got.Elevation, tt.elevation)
		}
		if got.Elevation < 0 || got.Elevation > 3 {
			t.Errorf("weight %v: elevation %d out of range", tt.weight, got.Elevation)
		}
	}
}

func TestCalculateEmphasis_HeroBackground(t *testing.T) {
	tests := []struct {
		name    string
		profile *models.StyleProfile
		want    models.BackgroundType
	}{
		{"no profile", nil, models.BackgroundGradient},
		{"bold", &models.StyleProfile{Personality: "bold"}, models.BackgroundGradient},
		{"minimal", &models.StyleProfile{Personality: "Minimal"}, models.BackgroundSolid},
		{"inferred minimal", &models.StyleProfile{Formality: 1, Energy: 1, Warmth: 3}, models.BackgroundSolid},
		{"inferred corporate", &models.StyleProfile{Formality: 5, Energy: 1}, models.BackgroundGradient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateEmphasis(5, tt.profile).Background; got != tt.want {
				t.Errorf("Background = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestCalculateEmphasis_FeaturedNeedsEnergy(t *testing.T) {
	tests := []struct {
		name       string
		profile    *models.StyleProfile
		background models.BackgroundType
		animate    bool
	}{
		{"no profile", nil, models.BackgroundNone, false},
		{"low energy", &models.StyleProfile{Energy: 2}, models.BackgroundNone, false},
		{"energy three", &models.StyleProfile{Energy: 3}, models.BackgroundSubtle, true},
		{"static motion", &models.StyleProfile{Energy: 5, Motion: "static"}, models.BackgroundSubtle, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CalculateEmphasis(4, tt.profile)
			if got.Background != tt.background || got.Animate != tt.animate {
				t.Errorf("got background %q animate %v, want %q %v", got.Background, got.Animate, tt.background, tt.animate)
			}
		})
	}
}

func TestCalculateEmphasis_StaticDisablesAllAnimation(t *testing.T) {
	profile := &models.StyleProfile{Energy: 5, Motion: " STATIC "}
	for w := 1.0; w <= 5; w++ {
		got := CalculateEmphasis(w, profile)
		if got.Animate || got.Animation != "" {
			t.Errorf("weight %v animates under static motion: %+v", w, got)
		}
	}
	if !CalculateEmphasis(5, nil).Animate {
		t.Errorf("hero without profile should animate")
	}
}

func TestCalculateEmphases(t *testing.T) {
	sections := []models.SectionAnalysis{{SemanticWeight: 5}, {SemanticWeight: 2}}
	got := CalculateEmphases(sections, nil)
	if len(got) != 2 || got[0].Level != models.EmphasisHero || got[1].Level != models.EmphasisSupporting {
		t.Errorf("CalculateEmphases() = %+v", got)
	}
}
