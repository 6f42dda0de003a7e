package models

// ComponentType is a presentation component a renderer knows how to draw.
type ComponentType string

const (
	ComponentProse           ComponentType = "prose"
	ComponentHero            ComponentType = "hero"
	ComponentLeadParagraph   ComponentType = "lead-paragraph"
	ComponentFeatureGrid     ComponentType = "feature-grid"
	ComponentCardGrid        ComponentType = "card-grid"
	ComponentTimeline        ComponentType = "timeline"
	ComponentStepList        ComponentType = "step-list"
	ComponentComparisonTable ComponentType = "comparison-table"
	ComponentFAQAccordion    ComponentType = "faq-accordion"
	ComponentAccordion       ComponentType = "accordion"
	ComponentAlertBox        ComponentType = "alert-box"
	ComponentInfoBox         ComponentType = "info-box"
	ComponentTestimonialCard ComponentType = "testimonial-card"
	ComponentQuoteBlock      ComponentType = "quote-block"
	ComponentDefinitionBox   ComponentType = "definition-box"
	ComponentStatHighlight   ComponentType = "stat-highlight"
	ComponentDataTable       ComponentType = "data-table"
	ComponentChecklist       ComponentType = "checklist"
	ComponentKeyTakeaways    ComponentType = "key-takeaways"
)

// SelectionTier names the rule family that produced a component selection.
type SelectionTier string

const (
	TierCompliance SelectionTier = "compliance"
	TierHighValue  SelectionTier = "high-value"
	TierPattern    SelectionTier = "pattern"
	TierHint       SelectionTier = "hint"
	TierWebsite    SelectionTier = "website-type"
	TierMatrix     SelectionTier = "matrix"
	TierFallback   SelectionTier = "fallback"
)

// ComponentSelection is the chosen component for a section.
type ComponentSelection struct {
	Primary       ComponentType   `json:"primary" yaml:"primary"`
	Alternatives  []ComponentType `json:"alternatives" yaml:"alternatives"`
	Variant       string          `json:"variant,omitempty" yaml:"variant,omitempty"`
	Confidence    float64         `json:"confidence" yaml:"confidence"`
	Tier          SelectionTier   `json:"tier" yaml:"tier"`
	Justification string          `json:"justification" yaml:"justification"`
}

// PatternOptions are per-section hints for content-pattern detection.
type PatternOptions struct {
	Content            string        `json:"-"`
	IsFirstSection     bool          `json:"is_first_section,omitempty"`
	PreferredComponent ComponentType `json:"preferred_component,omitempty"`
	WebsiteType        string        `json:"website_type,omitempty"`
}

// LayoutRole is one entry of a website type's preferred component ordering.
type LayoutRole struct {
	Role               string        `json:"role" yaml:"role"`
	PreferredComponent ComponentType `json:"preferred_component" yaml:"preferred_component"`
}

// WebsiteLayout is the ordered role list for one website type.
type WebsiteLayout struct {
	Roles []LayoutRole `json:"roles" yaml:"roles"`
}
