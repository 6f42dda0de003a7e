package models

// BlueprintSection packages every layout decision for one source section.
type BlueprintSection struct {
	ID             string                  `json:"id" yaml:"id"`
	Order          int                     `json:"order" yaml:"order"`
	Heading        string                  `json:"heading" yaml:"heading"`
	ContentType    ContentType             `json:"content_type" yaml:"content_type"`
	SemanticWeight float64                 `json:"semantic_weight" yaml:"semantic_weight"`
	ContentZone    ContentZone             `json:"content_zone" yaml:"content_zone"`
	Layout         LayoutParameters        `json:"layout" yaml:"layout"`
	Component      ComponentSelection      `json:"component" yaml:"component"`
	Emphasis       VisualEmphasis          `json:"emphasis" yaml:"emphasis"`
	Image          *SemanticImagePlacement `json:"image,omitempty" yaml:"image,omitempty"`
	CSSClasses     []string                `json:"css_classes" yaml:"css_classes"`
	StyleHooks     map[string]string       `json:"style_hooks,omitempty" yaml:"style_hooks,omitempty"`
}

// BlueprintMetadata summarizes a blueprint.
type BlueprintMetadata struct {
	TotalSections         int     `json:"total_sections" yaml:"total_sections"`
	MainSections          int     `json:"main_sections" yaml:"main_sections"`
	SupplementarySections int     `json:"supplementary_sections" yaml:"supplementary_sections"`
	AverageSemanticWeight float64 `json:"average_semantic_weight" yaml:"average_semantic_weight"`
	HeroSectionID         string  `json:"hero_section_id,omitempty" yaml:"hero_section_id,omitempty"`
	Language              string  `json:"language,omitempty" yaml:"language,omitempty"`
	ContentHash           string  `json:"content_hash" yaml:"content_hash"`
	WebsiteType           string  `json:"website_type,omitempty" yaml:"website_type,omitempty"`
}

// Blueprint is the document-level layout plan.
type Blueprint struct {
	ID       string             `json:"id" yaml:"id"`
	Title    string             `json:"title,omitempty" yaml:"title,omitempty"`
	Sections []BlueprintSection `json:"sections" yaml:"sections"`
	Metadata BlueprintMetadata  `json:"metadata" yaml:"metadata"`
}
