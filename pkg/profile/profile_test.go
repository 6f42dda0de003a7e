package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/layout-blueprint/models"
)

func writeYAML(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeYAML(t, `
workers: 2
format: yaml
options:
  is_core_topic: true
  main_intent: how to brew coffee
style_profile:
  formality: 2
  energy: 5
  warmth: 5
  density: airy
  colors:
    primary: "#ff6600"
brief_sections:
  - heading: How to brew
    format_code: FS
    attribute_category: unique
website_type: blog
website_layouts:
  blog:
    roles:
      - role: story
        preferred_component: prose
`)

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.WorkerCount != 2 || cfg.Format != "yaml" {
		t.Errorf("flags = %+v", cfg)
	}
	if !cfg.Options.IsCoreTopic || cfg.Options.MainIntent != "how to brew coffee" {
		t.Errorf("options = %+v", cfg.Options)
	}
	if cfg.StyleProfile == nil || cfg.StyleProfile.Energy != 5 || cfg.StyleProfile.Colors["primary"] != "#ff6600" {
		t.Errorf("profile = %+v", cfg.StyleProfile)
	}
	if len(cfg.BriefSections) != 1 || cfg.BriefSections[0].FormatCode != models.FormatFeaturedSnippet {
		t.Errorf("briefs = %+v", cfg.BriefSections)
	}
	if got := cfg.WebsiteLayouts["blog"].Roles[0].PreferredComponent; got != models.ComponentProse {
		t.Errorf("website layout component = %q", got)
	}
}

func TestLoadConfig_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"unknown key", "colour: red\n", "failed to parse"},
		{"score out of range", "style_profile:\n  energy: 9\n", "energy"},
		{"brief without heading", "brief_sections:\n  - format_code: FS\n", "heading is required"},
		{"layout without roles", "website_layouts:\n  blog: {}\n", "at least one role"},
		{"negative workers", "workers: -1\n", "workers"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadConfig(writeYAML(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("LoadConfig() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	cfg, err := LoadConfig(writeYAML(t, ""))
	if err != nil {
		t.Fatalf("LoadConfig() error = %v", err)
	}
	if cfg.StyleProfile != nil || len(cfg.BriefSections) != 0 {
		t.Errorf("empty config = %+v", cfg)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadProfile(t *testing.T) {
	p, err := LoadProfile(writeYAML(t, "personality: bold\nmotion: static\n"))
	if err != nil {
		t.Fatalf("LoadProfile() error = %v", err)
	}
	if p.Personality != models.PersonalityBold || !p.IsStatic() {
		t.Errorf("profile = %+v", p)
	}
}

func TestMerge(t *testing.T) {
	base := &models.StyleProfile{
		Personality: "corporate",
		Formality:   4,
		Density:     "compact",
		Colors:      map[string]string{"primary": "#000", "accent": "#111"},
	}
	override := &models.StyleProfile{
		Density: "airy",
		Energy:  5,
		Colors:  map[string]string{"accent": "#f00"},
	}

	got := Merge(base, override)
	if got.Personality != "corporate" || got.Formality != 4 || got.Density != "airy" || got.Energy != 5 {
		t.Errorf("Merge() = %+v", got)
	}
	if got.Colors["primary"] != "#000" || got.Colors["accent"] != "#f00" {
		t.Errorf("colors = %v", got.Colors)
	}
	if base.Colors["accent"] != "#111" || base.Density != "compact" {
		t.Error("base was mutated")
	}

	if Merge(nil, nil) != nil {
		t.Error("Merge(nil, nil) should be nil")
	}
	if got := Merge(nil, override); got.Density != "airy" {
		t.Errorf("Merge(nil, override) = %+v", got)
	}
}
