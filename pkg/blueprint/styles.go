package blueprint

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/dtnitsch/layout-blueprint/models"
	"github.com/dtnitsch/layout-blueprint/pkg/layout"
)

const classPrefix = "bp-"

var nonClassChars = regexp.MustCompile(`[^a-z0-9]+`)

// classToken lowercases v and replaces runs of other characters with "-".
func classToken(v string) string {
	return strings.Trim(nonClassChars.ReplaceAllString(strings.ToLower(v), "-"), "-")
}

func class(parts ...string) string {
	return classPrefix + strings.Join(parts, "-")
}

// cssClasses lists the renderer hooks for a section. The order is fixed.
func cssClasses(s models.BlueprintSection) []string {
	classes := []string{
		classPrefix + "section",
		class("type", classToken(string(s.ContentType))),
		class("emphasis", string(s.Emphasis.Level)),
		class("width", string(s.Layout.Width)),
		class("cols", strconv.Itoa(layout.GridColumns(s.Layout.Columns))),
	}
	if s.Layout.Columns == models.ColumnsAsymmetricLeft || s.Layout.Columns == models.ColumnsAsymmetricRight {
		classes = append(classes, class(string(s.Layout.Columns)))
	}
	classes = append(classes, class("component", string(s.Component.Primary)))
	if v := classToken(s.Component.Variant); v != "" {
		classes = append(classes, class("variant", v))
	}
	classes = append(classes, class("zone", classToken(string(s.ContentZone))))
	if s.Layout.BreakBefore != models.BreakNone && s.Layout.BreakBefore != "" {
		classes = append(classes, class("break-before", string(s.Layout.BreakBefore)))
	}
	if s.Layout.BreakAfter != models.BreakNone && s.Layout.BreakAfter != "" {
		classes = append(classes, class("break-after", string(s.Layout.BreakAfter)))
	}
	if s.Layout.AlignText == models.AlignCenter {
		classes = append(classes, class("align", string(models.AlignCenter)))
	}
	if s.Image != nil {
		classes = append(classes, class("img", string(s.Image.Position)))
	}
	if s.Emphasis.Animate && s.Emphasis.Animation != "" {
		classes = append(classes, class("animate", classToken(s.Emphasis.Animation)))
	}
	return classes
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// styleHooks are CSS custom properties for a section. Brand colors and
// typography are passed through under --bp-color-* and --bp-font-*.
func styleHooks(s models.BlueprintSection, profile *models.StyleProfile) map[string]string {
	hooks := map[string]string{
		"--bp-padding":        fmt.Sprintf("calc(var(--bp-space) * %s)", formatFloat(s.Emphasis.PaddingMultiplier)),
		"--bp-margin":         fmt.Sprintf("calc(var(--bp-space) * %s)", formatFloat(s.Emphasis.MarginMultiplier)),
		"--bp-heading-size":   fmt.Sprintf("var(--bp-size-%s)", s.Emphasis.HeadingSize),
		"--bp-heading-weight": strconv.Itoa(s.Emphasis.HeadingWeight),
		"--bp-elevation":      strconv.Itoa(s.Emphasis.Elevation),
		"--bp-spacing-before": fmt.Sprintf("var(--bp-spacing-%s)", s.Layout.SpacingBefore),
		"--bp-spacing-after":  fmt.Sprintf("var(--bp-spacing-%s)", s.Layout.SpacingAfter),
	}
	if profile == nil {
		return hooks
	}
	passThrough(hooks, "--bp-color-", profile.Colors)
	passThrough(hooks, "--bp-font-", profile.Typography)
	return hooks
}

func passThrough(hooks map[string]string, prefix string, values map[string]string) {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		token := classToken(k)
		if token == "" || strings.TrimSpace(values[k]) == "" {
			continue
		}
		hooks[prefix+token] = strings.TrimSpace(values[k])
	}
}
