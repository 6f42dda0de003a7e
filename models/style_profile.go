package models

import "strings"

// Brand personalities used by the component matrix.
const (
	PersonalityCorporate = "corporate"
	PersonalityMinimal   = "minimal"
	PersonalityPlayful   = "playful"
	PersonalityBold      = "bold"
	PersonalityElegant   = "elegant"
	PersonalityFriendly  = "friendly"
)

// Recognized style profile values.
const (
	DensityCompact     = "compact"
	DensityComfortable = "comfortable"
	DensitySpacious    = "spacious"
	DensityAiry        = "airy"

	GridAsymmetric = "asymmetric"

	BackdropOverlay = "overlay"

	MotionStatic = "static"
)

// StyleProfile is the optional "brand DNA" bag. Every field is optional; the
// zero value means "no preference".
type StyleProfile struct {
	Personality string `json:"personality,omitempty" yaml:"personality,omitempty"`

	// 1-5 scores; 0 means unset.
	Formality int `json:"formality,omitempty" yaml:"formality,omitempty"`
	Energy    int `json:"energy,omitempty" yaml:"energy,omitempty"`
	Warmth    int `json:"warmth,omitempty" yaml:"warmth,omitempty"`

	Density   string `json:"density,omitempty" yaml:"density,omitempty"`
	GridStyle string `json:"grid_style,omitempty" yaml:"grid_style,omitempty"`
	Alignment string `json:"alignment,omitempty" yaml:"alignment,omitempty"`
	Backdrop  string `json:"backdrop,omitempty" yaml:"backdrop,omitempty"`
	Motion    string `json:"motion,omitempty" yaml:"motion,omitempty"`

	Colors     map[string]string `json:"colors,omitempty" yaml:"colors,omitempty"`
	Typography map[string]string `json:"typography,omitempty" yaml:"typography,omitempty"`
}

func norm(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// DensityValue returns the normalized density, or "" when no profile is set.
func (p *StyleProfile) DensityValue() string {
	if p == nil {
		return ""
	}
	return norm(p.Density)
}

// IsAsymmetric reports whether the profile asks for an asymmetric grid.
func (p *StyleProfile) IsAsymmetric() bool {
	return p != nil && norm(p.GridStyle) == GridAsymmetric
}

// PrefersCenter reports whether the profile requests centered text.
func (p *StyleProfile) PrefersCenter() bool {
	return p != nil && norm(p.Alignment) == string(AlignCenter)
}

// FavorsOverlay reports whether images should be set as section backgrounds.
func (p *StyleProfile) FavorsOverlay() bool {
	return p != nil && norm(p.Backdrop) == BackdropOverlay
}

// IsStatic reports whether all motion is disabled.
func (p *StyleProfile) IsStatic() bool {
	return p != nil && norm(p.Motion) == MotionStatic
}
