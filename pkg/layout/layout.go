// Package layout turns a section analysis into structural layout parameters.
package layout

import "github.com/dtnitsch/layout-blueprint/models"

var widthScale = []models.Width{
	models.WidthNarrow,
	models.WidthMedium,
	models.WidthWide,
	models.WidthFull,
}

var spacingScale = []models.Spacing{
	models.SpacingTight,
	models.SpacingNormal,
	models.SpacingGenerous,
	models.SpacingDramatic,
}

// widthByWeight maps rounded weight 1..5 to a width.
var widthByWeight = map[int]models.Width{
	1: models.WidthNarrow,
	2: models.WidthNarrow,
	3: models.WidthMedium,
	4: models.WidthWide,
	5: models.WidthFull,
}

var spacingByDensity = map[string]models.Spacing{
	models.DensityCompact:     models.SpacingTight,
	models.DensityComfortable: models.SpacingNormal,
	models.DensitySpacious:    models.SpacingGenerous,
	models.DensityAiry:        models.SpacingDramatic,
}

// ShiftWidth moves w delta steps along narrow<medium<wide<full, clamped at both ends.
func ShiftWidth(w models.Width, delta int) models.Width {
	return shift(widthScale, w, delta)
}

// ShiftSpacing moves s delta steps along tight<normal<generous<dramatic, clamped.
func ShiftSpacing(s models.Spacing, delta int) models.Spacing {
	return shift(spacingScale, s, delta)
}

func shift[T comparable](scale []T, v T, delta int) T {
	idx := 0
	for i, s := range scale {
		if s == v {
			idx = i
			break
		}
	}
	idx = max(0, min(len(scale)-1, idx+delta))
	return scale[idx]
}

// PlanLayout derives the layout parameters of one section. profile may be nil.
func PlanLayout(a models.SectionAnalysis, profile *models.StyleProfile) models.LayoutParameters {
	weight := a.RoundedWeight()
	spacing := planSpacing(weight, profile)

	return models.LayoutParameters{
		Width:         planWidth(a, weight, profile),
		Columns:       planColumns(a, weight, profile),
		ImagePosition: planImagePosition(a, weight, profile),
		SpacingBefore: spacing,
		SpacingAfter:  spacing,
		BreakBefore:   planBreakBefore(a, weight),
		BreakAfter:    planBreakAfter(weight),
		AlignText:     planAlignment(weight, profile),
	}
}

// PlanLayouts applies PlanLayout with the same profile to every section, in order.
func PlanLayouts(sections []models.SectionAnalysis, profile *models.StyleProfile) []models.LayoutParameters {
	out := make([]models.LayoutParameters, len(sections))
	for i, s := range sections {
		out[i] = PlanLayout(s, profile)
	}
	return out
}

func planWidth(a models.SectionAnalysis, weight int, profile *models.StyleProfile) models.Width {
	// Tables need the room; the profile does not get a say.
	if a.HasTable {
		return models.WidthWide
	}

	width := widthByWeight[weight]
	switch profile.DensityValue() {
	case models.DensitySpacious, models.DensityAiry:
		width = ShiftWidth(width, 1)
	case models.DensityCompact:
		width = ShiftWidth(width, -1)
	}
	return width
}

func planColumns(a models.SectionAnalysis, weight int, profile *models.StyleProfile) models.Columns {
	switch {
	case a.IsSnippetProtected() || a.HasTable:
		return models.Columns1
	case a.ContentType == models.ContentComparison:
		return models.Columns2
	case a.ContentZone == models.ZoneSupplementary && weight <= 2 && profile.IsAsymmetric():
		return models.ColumnsAsymmetricRight
	case a.ContentType == models.ContentFAQ && weight >= 3:
		return models.Columns2
	default:
		return models.Columns1
	}
}

func planSpacing(weight int, profile *models.StyleProfile) models.Spacing {
	spacing, ok := spacingByDensity[profile.DensityValue()]
	if !ok {
		spacing = models.SpacingNormal
	}
	switch {
	case weight >= 5:
		spacing = ShiftSpacing(spacing, 1)
	case weight <= 2:
		spacing = ShiftSpacing(spacing, -1)
	}
	return spacing
}

func planBreakBefore(a models.SectionAnalysis, weight int) models.Break {
	if weight >= 4 && a.ContentType == models.ContentSummary {
		return models.BreakSoft
	}
	return models.BreakNone
}

func planBreakAfter(weight int) models.Break {
	if weight >= 5 {
		return models.BreakHard
	}
	return models.BreakNone
}

func planImagePosition(a models.SectionAnalysis, weight int, profile *models.StyleProfile) models.ImagePosition {
	switch {
	case !a.HasImage:
		return models.ImageNone
	case weight >= 5 && profile.FavorsOverlay():
		return models.ImageBackground
	case weight >= 5:
		return models.ImageAbove
	case a.HasList:
		return models.ImageInline
	default:
		return models.ImageLeft
	}
}

func planAlignment(weight int, profile *models.StyleProfile) models.TextAlign {
	if weight >= 5 || profile.PrefersCenter() {
		return models.AlignCenter
	}
	return models.AlignLeft
}

// GridColumns is the renderer's track count for a column arrangement.
// Asymmetric layouts render on a two-track grid.
func GridColumns(c models.Columns) int {
	switch c {
	case models.Columns2, models.ColumnsAsymmetricLeft, models.ColumnsAsymmetricRight:
		return 2
	case models.Columns3:
		return 3
	default:
		return 1
	}
}
