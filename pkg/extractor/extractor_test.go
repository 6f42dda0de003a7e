package extractor

import (
	"testing"

	"github.com/dtnitsch/layout-blueprint/models"
)

func bpSection(id string, weight float64, ct models.ContentType, zone models.ContentZone, comp models.ComponentType) models.BlueprintSection {
	return models.BlueprintSection{
		ID:             id,
		SemanticWeight: weight,
		ContentType:    ct,
		ContentZone:    zone,
		Component:      models.ComponentSelection{Primary: comp},
	}
}

func TestParseStrategy_Errors(t *testing.T) {
	tests := []string{
		"weight",
		"weight:~4",
		"weight:>=abc",
		"color:red",
	}
	for _, in := range tests {
		if _, err := ParseStrategy(in); err == nil {
			t.Errorf("ParseStrategy(%q) expected error", in)
		}
	}
}

func TestFilterBlueprint(t *testing.T) {
	bp := &models.Blueprint{
		ID: "bp",
		Sections: []models.BlueprintSection{
			bpSection("a", 5, models.ContentIntroduction, models.ZoneMain, models.ComponentHero),
			bpSection("b", 4, models.ContentFAQ, models.ZoneMain, models.ComponentFAQAccordion),
			bpSection("c", 3, models.ContentSteps, models.ZoneMain, models.ComponentStepList),
			bpSection("d", 4.5, models.ContentSteps, models.ZoneSupplementary, models.ComponentTimeline),
		},
		Metadata: models.BlueprintMetadata{TotalSections: 4},
	}

	tests := []struct {
		strategy string
		want     []string
	}{
		{"", []string{"a", "b", "c", "d"}},
		{"weight:>=4", []string{"a", "b", "d"}},
		{"weight:<4", []string{"c"}},
		{"weight:=4", []string{"b"}},
		{"type:faq|STEPS", []string{"b", "c", "d"}},
		{"weight:>=4,type:faq|steps,zone:main", []string{"b"}},
		{"zone:supplementary", []string{"d"}},
		{"component:timeline|hero", []string{"a", "d"}},
		{"type:data", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.strategy, func(t *testing.T) {
			s, err := ParseStrategy(tt.strategy)
			if err != nil {
				t.Fatalf("ParseStrategy() error = %v", err)
			}
			got := FilterBlueprint(bp, s)
			if len(got.Sections) != len(tt.want) {
				t.Fatalf("got %d sections, want %v", len(got.Sections), tt.want)
			}
			for i, id := range tt.want {
				if got.Sections[i].ID != id {
					t.Errorf("section %d = %q, want %q", i, got.Sections[i].ID, id)
				}
			}
			if got.Metadata.TotalSections != 4 {
				t.Errorf("metadata changed: %+v", got.Metadata)
			}
		})
	}

	if len(bp.Sections) != 4 {
		t.Errorf("input blueprint mutated")
	}
}

func TestFilterBlueprint_NilStrategy(t *testing.T) {
	bp := &models.Blueprint{ID: "x"}
	if got := FilterBlueprint(bp, nil); got != bp {
		t.Errorf("nil strategy should return the input")
	}
}
