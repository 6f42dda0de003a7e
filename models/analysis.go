// Package models defines the data contracts shared by the analysis and layout packages.
package models

import (
	"math"
	"strings"
)

// ContentType is the detected role of a section's content.
type ContentType string

const (
	ContentIntroduction ContentType = "introduction"
	ContentExplanation  ContentType = "explanation"
	ContentSteps        ContentType = "steps"
	ContentFAQ          ContentType = "faq"
	ContentComparison   ContentType = "comparison"
	ContentSummary      ContentType = "summary"
	ContentTestimonial  ContentType = "testimonial"
	ContentDefinition   ContentType = "definition"
	ContentList         ContentType = "list"
	ContentData         ContentType = "data"
)

// AllContentTypes returns every content type in a fixed order.
func AllContentTypes() []ContentType {
	return []ContentType{
		ContentIntroduction,
		ContentExplanation,
		ContentSteps,
		ContentFAQ,
		ContentComparison,
		ContentSummary,
		ContentTestimonial,
		ContentDefinition,
		ContentList,
		ContentData,
	}
}

// ContentZone separates primary article content from secondary content.
type ContentZone string

const (
	ZoneMain          ContentZone = "MAIN"
	ZoneSupplementary ContentZone = "SUPPLEMENTARY"
)

// ParseContentZone normalizes a zone string; anything unknown is MAIN.
func ParseContentZone(s string) ContentZone {
	if strings.EqualFold(strings.TrimSpace(s), string(ZoneSupplementary)) {
		return ZoneSupplementary
	}
	return ZoneMain
}

// Format codes supplied by content briefs.
const (
	FormatFeaturedSnippet = "FS"
	FormatPeopleAlsoAsk   = "PAA"
	FormatListing         = "LISTING"
	FormatTable           = "TABLE"
	FormatDefinition      = "DEFINITION"
)

// Topical categories that drive weight bonuses.
const (
	CategoryUnique       = "unique"
	CategoryRare         = "rare"
	CategoryRoot         = "root"
	CategoryCore         = "core"
	CategorySearchDemand = "search_demand"
	CategoryComposite    = "composite"
	CategoryCommon       = "common"
)

const (
	MinSemanticWeight     = 1.0
	MaxSemanticWeight     = 5.0
	BaseSemanticWeight    = 3.0
	HeadingMatchThreshold = 0.7
)

// Constraints carries requirements a section must keep regardless of scoring.
type Constraints struct {
	FSTarget           bool   `json:"fs_target,omitempty" yaml:"fs_target,omitempty"`
	RequiresImage      bool   `json:"requires_image,omitempty" yaml:"requires_image,omitempty"`
	ImageHint          string `json:"image_hint,omitempty" yaml:"image_hint,omitempty"`
	PreferredComponent string `json:"preferred_component,omitempty" yaml:"preferred_component,omitempty"`
}

// WeightFactors is the transparent breakdown of a semantic weight.
type WeightFactors struct {
	Base              float64 `json:"base"`
	CategoryBonus     float64 `json:"category_bonus,omitempty"`
	CoreTopicBonus    float64 `json:"core_topic_bonus,omitempty"`
	SnippetBonus      float64 `json:"snippet_bonus,omitempty"`
	MainIntentBonus   float64 `json:"main_intent_bonus,omitempty"`
	PositionBonus     float64 `json:"position_bonus,omitempty"`
	IntroductionBonus float64 `json:"introduction_bonus,omitempty"`
	Total             float64 `json:"total"`
}

// SectionAnalysis is the analyzer's view of one heading-delimited section.
type SectionAnalysis struct {
	ID                string        `json:"id"`
	Order             int           `json:"order"`
	Heading           string        `json:"heading"`
	HeadingLevel      int           `json:"heading_level"`
	ContentType       ContentType   `json:"content_type"`
	SemanticWeight    float64       `json:"semantic_weight"`
	WeightFactors     WeightFactors `json:"weight_factors"`
	AttributeCategory string        `json:"attribute_category,omitempty"`
	FormatCode        string        `json:"format_code,omitempty"`
	HasTable          bool          `json:"has_table"`
	HasList           bool          `json:"has_list"`
	HasOrderedList    bool          `json:"has_ordered_list"`
	HasQuote          bool          `json:"has_quote"`
	HasImage          bool          `json:"has_image"`
	WordCount         int           `json:"word_count"`
	IsCoreTopic       bool          `json:"is_core_topic"`
	AnswersMainIntent bool          `json:"answers_main_intent"`
	ContentZone       ContentZone   `json:"content_zone"`
	Constraints       Constraints   `json:"constraints"`
	Language          string        `json:"language,omitempty"`
	Content           string        `json:"-"`
}

// IsSnippetProtected reports whether the section must stay eligible for a
// featured-answer snippet.
func (a SectionAnalysis) IsSnippetProtected() bool {
	return strings.EqualFold(a.FormatCode, FormatFeaturedSnippet) || a.Constraints.FSTarget
}

// RoundedWeight is the section's semantic weight rounded and clamped to 1..5.
func (a SectionAnalysis) RoundedWeight() int {
	return RoundWeight(a.SemanticWeight)
}

// ClampWeight bounds w to [1,5].
func ClampWeight(w float64) float64 {
	if math.IsNaN(w) {
		return MinSemanticWeight
	}
	return math.Max(MinSemanticWeight, math.Min(MaxSemanticWeight, w))
}

// RoundWeight rounds w half away from zero and clamps it to 1..5.
func RoundWeight(w float64) int {
	return int(math.Round(ClampWeight(w)))
}

// AnalyzeOptions are document-level hints for the analyzer.
type AnalyzeOptions struct {
	IsCoreTopic bool   `json:"is_core_topic,omitempty" yaml:"is_core_topic,omitempty"`
	MainIntent  string `json:"main_intent,omitempty" yaml:"main_intent,omitempty"`
	TopicTitle  string `json:"topic_title,omitempty" yaml:"topic_title,omitempty"`
}

// BriefSection is an externally authored outline entry matched against headings.
type BriefSection struct {
	Heading            string `json:"heading" yaml:"heading"`
	SectionHeading     string `json:"section_heading,omitempty" yaml:"section_heading,omitempty"`
	FormatCode         string `json:"format_code,omitempty" yaml:"format_code,omitempty"`
	AttributeCategory  string `json:"attribute_category,omitempty" yaml:"attribute_category,omitempty"`
	ContentZone        string `json:"content_zone,omitempty" yaml:"content_zone,omitempty"`
	RequiresImage      bool   `json:"requires_image,omitempty" yaml:"requires_image,omitempty"`
	PreferredComponent string `json:"preferred_component,omitempty" yaml:"preferred_component,omitempty"`
}
