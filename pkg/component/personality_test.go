package component

import (
	"testing"

	"github.com/dtnitsch/layout-blueprint/models"
)

func TestInferPersonality(t *testing.T) {
	tests := []struct {
		f, e, w int
		want    string
	}{
		{4, 2, 3, models.PersonalityCorporate},
		{1, 5, 5, models.PersonalityPlayful},
		{1, 1, 3, models.PersonalityMinimal},
		{5, 5, 1, models.PersonalityBold},
		{4, 3, 3, models.PersonalityElegant},
		{2, 4, 4, models.PersonalityBold},
		{3, 3, 4, models.PersonalityFriendly},
		{3, 3, 3, models.PersonalityCorporate},
		{0, 0, 0, models.PersonalityCorporate},
		{9, -1, 0, models.PersonalityCorporate},
	}
	for _, tt := range tests {
		if got := InferPersonality(tt.f, tt.e, tt.w); got != tt.want {
			t.Errorf("InferPersonality(%d, %d, %d) = %q, want %q", tt.f, tt.e, tt.w, got, tt.want)
		}
	}
}

func TestResolvePersonality(t *testing.T) {
	tests := []struct {
		name    string
		profile *models.StyleProfile
		want    string
	}{
		{"nil", nil, models.PersonalityCorporate},
		{"explicit", &models.StyleProfile{Personality: " Elegant "}, models.PersonalityElegant},
		{"explicit beats scores", &models.StyleProfile{Personality: "minimal", Formality: 1, Energy: 5, Warmth: 5}, models.PersonalityMinimal},
		{"scores", &models.StyleProfile{Formality: 1, Energy: 5, Warmth: 5}, models.PersonalityPlayful},
		{"empty profile", &models.StyleProfile{}, models.PersonalityCorporate},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ResolvePersonality(tt.profile); got != tt.want {
				t.Errorf("ResolvePersonality() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatrix_CoversEveryTypeAndPersonality(t *testing.T) {
	for _, ct := range models.AllContentTypes() {
		row, ok := matrix[ct]
		if !ok {
			t.Errorf("matrix missing %s", ct)
			continue
		}
		for _, p := range personalityOrder {
			if row[p] == "" {
				t.Errorf("matrix[%s][%s] is empty", ct, p)
			}
		}
		if _, ok := enhanced[ct]; !ok {
			t.Errorf("enhanced missing %s", ct)
		}
	}
}
