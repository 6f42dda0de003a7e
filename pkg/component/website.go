package component

import (
	"strings"

	"github.com/dtnitsch/layout-blueprint/models"
)

// DefaultWebsiteLayouts is the built-in website-type catalog: for each type,
// the roles a page usually plays and the component each role prefers, in
// priority order.
func DefaultWebsiteLayouts() map[string]models.WebsiteLayout {
	return map[string]models.WebsiteLayout{
		"saas": {Roles: []models.LayoutRole{
			{Role: "hero", PreferredComponent: models.ComponentHero},
			{Role: "features", PreferredComponent: models.ComponentFeatureGrid},
			{Role: "how-it-works", PreferredComponent: models.ComponentStepList},
			{Role: "pricing", PreferredComponent: models.ComponentComparisonTable},
			{Role: "social-proof", PreferredComponent: models.ComponentTestimonialCard},
			{Role: "faq", PreferredComponent: models.ComponentFAQAccordion},
		}},
		"blog": {Roles: []models.LayoutRole{
			{Role: "lead", PreferredComponent: models.ComponentLeadParagraph},
			{Role: "body", PreferredComponent: models.ComponentProse},
			{Role: "pull-quote", PreferredComponent: models.ComponentQuoteBlock},
			{Role: "takeaways", PreferredComponent: models.ComponentKeyTakeaways},
		}},
		"ecommerce": {Roles: []models.LayoutRole{
			{Role: "hero", PreferredComponent: models.ComponentHero},
			{Role: "products", PreferredComponent: models.ComponentCardGrid},
			{Role: "specs", PreferredComponent: models.ComponentDataTable},
			{Role: "reviews", PreferredComponent: models.ComponentTestimonialCard},
			{Role: "faq", PreferredComponent: models.ComponentFAQAccordion},
		}},
		"agency": {Roles: []models.LayoutRole{
			{Role: "hero", PreferredComponent: models.ComponentHero},
			{Role: "services", PreferredComponent: models.ComponentCardGrid},
			{Role: "process", PreferredComponent: models.ComponentTimeline},
			{Role: "results", PreferredComponent: models.ComponentStatHighlight},
			{Role: "clients", PreferredComponent: models.ComponentTestimonialCard},
		}},
		"documentation": {Roles: []models.LayoutRole{
			{Role: "overview", PreferredComponent: models.ComponentProse},
			{Role: "procedure", PreferredComponent: models.ComponentStepList},
			{Role: "reference", PreferredComponent: models.ComponentDataTable},
			{Role: "glossary", PreferredComponent: models.ComponentDefinitionBox},
			{Role: "callout", PreferredComponent: models.ComponentInfoBox},
		}},
		"local-business": {Roles: []models.LayoutRole{
			{Role: "intro", PreferredComponent: models.ComponentLeadParagraph},
			{Role: "services", PreferredComponent: models.ComponentChecklist},
			{Role: "reviews", PreferredComponent: models.ComponentTestimonialCard},
			{Role: "faq", PreferredComponent: models.ComponentFAQAccordion},
		}},
	}
}

// websiteRole finds the first role of the website type whose component fits
// the content type.
func websiteRole(layouts map[string]models.WebsiteLayout, websiteType string, ct models.ContentType) (models.LayoutRole, bool) {
	key := strings.ToLower(strings.TrimSpace(websiteType))
	if key == "" {
		return models.LayoutRole{}, false
	}
	layout, ok := layouts[key]
	if !ok {
		return models.LayoutRole{}, false
	}
	for _, role := range layout.Roles {
		if isCompatible(ct, role.PreferredComponent) {
			return role, true
		}
	}
	return models.LayoutRole{}, false
}
