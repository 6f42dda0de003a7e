package models

// EmphasisLevel is a coarse bucketing of semantic weight.
type EmphasisLevel string

const (
	EmphasisHero       EmphasisLevel = "hero"
	EmphasisFeatured   EmphasisLevel = "featured"
	EmphasisStandard   EmphasisLevel = "standard"
	EmphasisSupporting EmphasisLevel = "supporting"
	EmphasisMinimal    EmphasisLevel = "minimal"
)

// BackgroundType is the section background treatment.
type BackgroundType string

const (
	BackgroundNone     BackgroundType = "none"
	BackgroundSubtle   BackgroundType = "subtle"
	BackgroundSolid    BackgroundType = "solid"
	BackgroundGradient BackgroundType = "gradient"
)

// AccentBorder is where an accent border is drawn, if anywhere.
type AccentBorder string

const (
	BorderNone   AccentBorder = "none"
	BorderLeft   AccentBorder = "left"
	BorderTop    AccentBorder = "top"
	BorderBottom AccentBorder = "bottom"
)

// VisualEmphasis holds the concrete visual-weight properties of a section.
type VisualEmphasis struct {
	Level             EmphasisLevel  `json:"level" yaml:"level"`
	HeadingSize       string         `json:"heading_size" yaml:"heading_size"`
	HeadingWeight     int            `json:"heading_weight" yaml:"heading_weight"`
	PaddingMultiplier float64        `json:"padding_multiplier" yaml:"padding_multiplier"`
	MarginMultiplier  float64        `json:"margin_multiplier" yaml:"margin_multiplier"`
	Background        BackgroundType `json:"background" yaml:"background"`
	AccentBorder      AccentBorder   `json:"accent_border" yaml:"accent_border"`
	Elevation         int            `json:"elevation" yaml:"elevation"`
	Animate           bool           `json:"animate" yaml:"animate"`
	Animation         string         `json:"animation,omitempty" yaml:"animation,omitempty"`
}
