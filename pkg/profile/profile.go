// Package profile loads build configuration and style profiles from YAML.
package profile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/dtnitsch/layout-blueprint/models"
	"gopkg.in/yaml.v3"
)

// LoadConfig reads a YAML build config. Unknown keys are rejected so typos in
// profile fields do not silently fall back to defaults.
func LoadConfig(path string) (*models.BuildConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := &models.BuildConfig{}
	if err := decodeStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", path, err)
	}
	return cfg, nil
}

// LoadProfile reads a standalone style profile YAML file.
func LoadProfile(path string) (*models.StyleProfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read style profile: %w", err)
	}

	p := &models.StyleProfile{}
	if err := decodeStrict(data, p); err != nil {
		return nil, fmt.Errorf("failed to parse style profile %s: %w", path, err)
	}
	if err := validateProfile(p); err != nil {
		return nil, fmt.Errorf("invalid style profile %s: %w", path, err)
	}
	return p, nil
}

func decodeStrict(data []byte, out any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Validate checks the parts of a config the engine cannot repair by itself.
func Validate(cfg *models.BuildConfig) error {
	if cfg.WorkerCount < 0 {
		return fmt.Errorf("workers must not be negative: %d", cfg.WorkerCount)
	}
	if err := validateProfile(cfg.StyleProfile); err != nil {
		return err
	}
	for i, b := range cfg.BriefSections {
		if strings.TrimSpace(b.Heading) == "" && strings.TrimSpace(b.SectionHeading) == "" {
			return fmt.Errorf("brief_sections[%d]: heading is required", i)
		}
	}
	for name, layout := range cfg.WebsiteLayouts {
		if len(layout.Roles) == 0 {
			return fmt.Errorf("website_layouts.%s: at least one role is required", name)
		}
		for j, r := range layout.Roles {
			if r.PreferredComponent == "" {
				return fmt.Errorf("website_layouts.%s.roles[%d]: preferred_component is required", name, j)
			}
		}
	}
	return nil
}

func validateProfile(p *models.StyleProfile) error {
	if p == nil {
		return nil
	}
	scores := []struct {
		name  string
		value int
	}{
		{"formality", p.Formality},
		{"energy", p.Energy},
		{"warmth", p.Warmth},
	}
	for _, s := range scores {
		if s.value < 0 || s.value > 5 {
			return fmt.Errorf("%s must be between 1 and 5 (0 = unset), got %d", s.name, s.value)
		}
	}
	return nil
}

// Merge overlays the non-empty fields of override onto base and returns a new
// profile. Either argument may be nil.
func Merge(base, override *models.StyleProfile) *models.StyleProfile {
	if base == nil && override == nil {
		return nil
	}
	out := &models.StyleProfile{}
	if base != nil {
		*out = *base
		out.Colors = copyMap(base.Colors)
		out.Typography = copyMap(base.Typography)
	}
	if override == nil {
		return out
	}

	setString(&out.Personality, override.Personality)
	setString(&out.Density, override.Density)
	setString(&out.GridStyle, override.GridStyle)
	setString(&out.Alignment, override.Alignment)
	setString(&out.Backdrop, override.Backdrop)
	setString(&out.Motion, override.Motion)
	setInt(&out.Formality, override.Formality)
	setInt(&out.Energy, override.Energy)
	setInt(&out.Warmth, override.Warmth)

	out.Colors = mergeMap(out.Colors, override.Colors)
	out.Typography = mergeMap(out.Typography, override.Typography)
	return out
}

func setString(dst *string, v string) {
	if strings.TrimSpace(v) != "" {
		*dst = v
	}
}

func setInt(dst *int, v int) {
	if v != 0 {
		*dst = v
	}
}

func copyMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func mergeMap(base, override map[string]string) map[string]string {
	if len(override) == 0 {
		return base
	}
	out := copyMap(base)
	if out == nil {
		out = make(map[string]string, len(override))
	}
	for k, v := range override {
		out[k] = v
	}
	return out
}
