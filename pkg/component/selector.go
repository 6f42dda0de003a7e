// Package component chooses the presentation component for a section through
// a fixed priority cascade: compliance, high-value topics, content patterns,
// external hints, website type, the personality matrix, and a prose fallback.
package component

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/layout-blueprint/models"
)

// Confidence per tier. Earlier tiers are always more confident.
const (
	ConfidenceCompliance = 0.95
	ConfidenceHighValue  = 0.85
	ConfidencePattern    = 0.80
	ConfidenceHint       = 0.75
	ConfidenceWebsite    = 0.72
	ConfidenceMatrix     = 0.70
	ConfidenceFallback   = 0.30

	maxAlternatives = 3
)

// request is everything one selection may look at.
type request struct {
	analysis models.SectionAnalysis
	profile  *models.StyleProfile
	opts     models.PatternOptions
	layouts  map[string]models.WebsiteLayout
}

type resolution struct {
	pick
	reason string
}

// tier is one step of the cascade.
type tier struct {
	name       models.SelectionTier
	confidence float64
	resolve    func(r request) (resolution, bool)
}

var tiers = []tier{
	{models.TierCompliance, ConfidenceCompliance, resolveCompliance},
	{models.TierHighValue, ConfidenceHighValue, resolveHighValue},
	{models.TierPattern, ConfidencePattern, resolvePattern},
	{models.TierHint, ConfidenceHint, resolveHint},
	{models.TierWebsite, ConfidenceWebsite, resolveWebsite},
	{models.TierMatrix, ConfidenceMatrix, resolveMatrix},
	{models.TierFallback, ConfidenceFallback, resolveFallback},
}

// Selector resolves components against a website-type layout catalog.
type Selector struct {
	layouts map[string]models.WebsiteLayout
}

// NewSelector builds a Selector. A nil or empty catalog uses DefaultWebsiteLayouts.
func NewSelector(layouts map[string]models.WebsiteLayout) *Selector {
	if len(layouts) == 0 {
		layouts = DefaultWebsiteLayouts()
	}
	normalized := make(map[string]models.WebsiteLayout, len(layouts))
	for k, v := range layouts {
		normalized[strings.ToLower(strings.TrimSpace(k))] = v
	}
	return &Selector{layouts: normalized}
}

var defaultSelector = NewSelector(nil)

// SelectComponent picks a component with the built-in website catalog.
func SelectComponent(a models.SectionAnalysis, profile *models.StyleProfile, opts models.PatternOptions) models.ComponentSelection {
	return defaultSelector.Select(a, profile, opts)
}

// SelectComponents picks components for a whole document with the built-in
// website catalog.
func SelectComponents(sections []models.SectionAnalysis, profile *models.StyleProfile, websiteType string) []models.ComponentSelection {
	return defaultSelector.SelectAll(sections, profile, websiteType)
}

// Select runs the cascade for one section. It always returns a selection.
func (s *Selector) Select(a models.SectionAnalysis, profile *models.StyleProfile, opts models.PatternOptions) models.ComponentSelection {
	r := request{analysis: a, profile: profile, opts: opts, layouts: s.layouts}
	for _, t := range tiers {
		res, ok := t.resolve(r)
		if !ok {
			continue
		}
		return models.ComponentSelection{
			Primary:       res.component,
			Alternatives:  alternatives(a.ContentType, res.component),
			Variant:       res.variant,
			Confidence:    t.confidence,
			Tier:          t.name,
			Justification: fmt.Sprintf("%s: %s", t.name, res.reason),
		}
	}
	// resolveFallback always matches; this is unreachable.
	return models.ComponentSelection{Primary: models.ComponentProse, Alternatives: []models.ComponentType{}, Confidence: ConfidenceFallback, Tier: models.TierFallback}
}

// SelectAll selects for each section in order. The first section is flagged
// for lead-paragraph detection and each section's own body feeds the pattern
// detectors.
func (s *Selector) SelectAll(sections []models.SectionAnalysis, profile *models.StyleProfile, websiteType string) []models.ComponentSelection {
	out := make([]models.ComponentSelection, len(sections))
	for i, sec := range sections {
		out[i] = s.Select(sec, profile, models.PatternOptions{
			Content:        sec.Content,
			IsFirstSection: i == 0,
			WebsiteType:    websiteType,
		})
	}
	return out
}

func alternatives(ct models.ContentType, primary models.ComponentType) []models.ComponentType {
	out := []models.ComponentType{}
	for _, c := range Compatible(ct) {
		if c == primary {
			continue
		}
		out = append(out, c)
		if len(out) == maxAlternatives {
			break
		}
	}
	return out
}

func resolveCompliance(r request) (resolution, bool) {
	if !r.analysis.IsSnippetProtected() {
		return resolution{}, false
	}
	return resolution{
		pick:   snippetPick(r.analysis.ContentType),
		reason: fmt.Sprintf("format %s pins the component for %s content", models.FormatFeaturedSnippet, r.analysis.ContentType),
	}, true
}

func resolveHighValue(r request) (resolution, bool) {
	category := strings.ToLower(strings.TrimSpace(r.analysis.AttributeCategory))
	if category != models.CategoryUnique && category != models.CategoryRare {
		return resolution{}, false
	}
	p, ok := enhanced[r.analysis.ContentType]
	if !ok {
		return resolution{}, false
	}
	return resolution{
		pick:   p,
		reason: fmt.Sprintf("%s topic upgrades %s content", category, r.analysis.ContentType),
	}, true
}

func resolvePattern(r request) (resolution, bool) {
	p, name, ok := detectPattern(r.analysis, r.opts)
	if !ok {
		return resolution{}, false
	}
	return resolution{pick: p, reason: name + " pattern detected"}, true
}

func resolveHint(r request) (resolution, bool) {
	hint := normalizeHint(string(r.opts.PreferredComponent))
	if hint == "" {
		hint = normalizeHint(r.analysis.Constraints.PreferredComponent)
	}
	if hint == "" || !isCompatible(r.analysis.ContentType, hint) {
		return resolution{}, false
	}
	return resolution{
		pick:   pick{component: hint},
		reason: fmt.Sprintf("preferred component %s fits %s content", hint, r.analysis.ContentType),
	}, true
}

func normalizeHint(s string) models.ComponentType {
	return models.ComponentType(strings.ToLower(strings.TrimSpace(s)))
}

func resolveWebsite(r request) (resolution, bool) {
	role, ok := websiteRole(r.layouts, r.opts.WebsiteType, r.analysis.ContentType)
	if !ok {
		return resolution{}, false
	}
	return resolution{
		pick:   pick{component: role.PreferredComponent, variant: role.Role},
		reason: fmt.Sprintf("%s role %q prefers %s", r.opts.WebsiteType, role.Role, role.PreferredComponent),
	}, true
}

func resolveMatrix(r request) (resolution, bool) {
	row, ok := matrix[r.analysis.ContentType]
	if !ok {
		return resolution{}, false
	}
	personality := ResolvePersonality(r.profile)
	return resolution{
		pick:   pick{component: row[personality], variant: personality},
		reason: fmt.Sprintf("%s content for a %s brand", r.analysis.ContentType, personality),
	}, true
}

func resolveFallback(r request) (resolution, bool) {
	return resolution{
		pick:   pick{component: models.ComponentProse},
		reason: fmt.Sprintf("no rule for content type %q", r.analysis.ContentType),
	}, true
}
