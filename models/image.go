package models

// ImagePlacement is where an image goes inside a section. None of the values
// places an image between a heading and its first paragraph.
type ImagePlacement string

const (
	PlaceAfterIntroParagraph ImagePlacement = "after-intro-paragraph"
	PlaceAfterList           ImagePlacement = "after-list"
	PlaceFullWidthBreak      ImagePlacement = "full-width-break"
	PlaceFloatLeft           ImagePlacement = "float-left"
	PlaceFloatRight          ImagePlacement = "float-right"
	PlaceSectionEnd          ImagePlacement = "section-end"
)

// AllImagePlacements returns every placement value.
func AllImagePlacements() []ImagePlacement {
	return []ImagePlacement{
		PlaceAfterIntroParagraph,
		PlaceAfterList,
		PlaceFullWidthBreak,
		PlaceFloatLeft,
		PlaceFloatRight,
		PlaceSectionEnd,
	}
}

// ParseImagePlacement maps a hint string to a placement. Hints that would put an
// image directly under the heading are rejected.
func ParseImagePlacement(s string) (ImagePlacement, bool) {
	for _, p := range AllImagePlacements() {
		if string(p) == s {
			return p, true
		}
	}
	return "", false
}

// ImageSource is where the image comes from.
type ImageSource string

const (
	SourceArticleGenerated  ImageSource = "article_generated"
	SourceBrandKit          ImageSource = "brand_kit"
	SourceScreenshotDerived ImageSource = "screenshot_derived"
	SourcePlaceholder       ImageSource = "placeholder"
	SourceNone              ImageSource = "none"
)

// ImageRole is the semantic job the image does.
type ImageRole string

const (
	RoleHero        ImageRole = "hero"
	RoleExplanatory ImageRole = "explanatory"
	RoleEvidence    ImageRole = "evidence"
	RoleDecorative  ImageRole = "decorative"
)

// PlaceholderSpec describes an image that still has to be produced.
type PlaceholderSpec struct {
	AspectRatio      string `json:"aspect_ratio" yaml:"aspect_ratio"`
	SuggestedContent string `json:"suggested_content" yaml:"suggested_content"`
	AltText          string `json:"alt_text" yaml:"alt_text"`
}

// SemanticImagePlacement is the image decision for one section.
type SemanticImagePlacement struct {
	Position    ImagePlacement   `json:"position" yaml:"position"`
	Source      ImageSource      `json:"source" yaml:"source"`
	Role        ImageRole        `json:"role" yaml:"role"`
	Placeholder *PlaceholderSpec `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
	Reason      string           `json:"reason" yaml:"reason"`
}

// ImageContext carries cross-section state for a single placement call.
type ImageContext struct {
	// FloatIndex counts earlier sections whose required brand image was floated.
	FloatIndex int
	// Hint overrides float alternation when it names a float placement.
	Hint ImagePlacement
}
