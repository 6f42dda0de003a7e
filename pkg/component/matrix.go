package component

import "github.com/dtnitsch/layout-blueprint/models"

type pick struct {
	component models.ComponentType
	variant   string
}

// personalityOrder fixes the column order of the matrix for compatibility sets.
var personalityOrder = []string{
	models.PersonalityCorporate,
	models.PersonalityMinimal,
	models.PersonalityPlayful,
	models.PersonalityBold,
	models.PersonalityElegant,
	models.PersonalityFriendly,
}

// matrix is content type x brand personality.
var matrix = map[models.ContentType]map[string]models.ComponentType{
	models.ContentIntroduction: {
		models.PersonalityCorporate: models.ComponentLeadParagraph,
		models.PersonalityMinimal:   models.ComponentProse,
		models.PersonalityPlayful:   models.ComponentHero,
		models.PersonalityBold:      models.ComponentHero,
		models.PersonalityElegant:   models.ComponentLeadParagraph,
		models.PersonalityFriendly:  models.ComponentLeadParagraph,
	},
	models.ContentExplanation: {
		models.PersonalityCorporate: models.ComponentProse,
		models.PersonalityMinimal:   models.ComponentProse,
		models.PersonalityPlayful:   models.ComponentCardGrid,
		models.PersonalityBold:      models.ComponentFeatureGrid,
		models.PersonalityElegant:   models.ComponentProse,
		models.PersonalityFriendly:  models.ComponentInfoBox,
	},
	models.ContentSteps: {
		models.PersonalityCorporate: models.ComponentStepList,
		models.PersonalityMinimal:   models.ComponentStepList,
		models.PersonalityPlayful:   models.ComponentTimeline,
		models.PersonalityBold:      models.ComponentTimeline,
		models.PersonalityElegant:   models.ComponentTimeline,
		models.PersonalityFriendly:  models.ComponentStepList,
	},
	models.ContentFAQ: {
		models.PersonalityCorporate: models.ComponentFAQAccordion,
		models.PersonalityMinimal:   models.ComponentAccordion,
		models.PersonalityPlayful:   models.ComponentFAQAccordion,
		models.PersonalityBold:      models.ComponentFAQAccordion,
		models.PersonalityElegant:   models.ComponentAccordion,
		models.PersonalityFriendly:  models.ComponentFAQAccordion,
	},
	models.ContentComparison: {
		models.PersonalityCorporate: models.ComponentComparisonTable,
		models.PersonalityMinimal:   models.ComponentDataTable,
		models.PersonalityPlayful:   models.ComponentCardGrid,
		models.PersonalityBold:      models.ComponentComparisonTable,
		models.PersonalityElegant:   models.ComponentComparisonTable,
		models.PersonalityFriendly:  models.ComponentCardGrid,
	},
	models.ContentSummary: {
		models.PersonalityCorporate: models.ComponentKeyTakeaways,
		models.PersonalityMinimal:   models.ComponentProse,
		models.PersonalityPlayful:   models.ComponentCardGrid,
		models.PersonalityBold:      models.ComponentKeyTakeaways,
		models.PersonalityElegant:   models.ComponentQuoteBlock,
		models.PersonalityFriendly:  models.ComponentChecklist,
	},
	models.ContentTestimonial: {
		models.PersonalityCorporate: models.ComponentTestimonialCard,
		models.PersonalityMinimal:   models.ComponentQuoteBlock,
		models.PersonalityPlayful:   models.ComponentTestimonialCard,
		models.PersonalityBold:      models.ComponentTestimonialCard,
		models.PersonalityElegant:   models.ComponentQuoteBlock,
		models.PersonalityFriendly:  models.ComponentTestimonialCard,
	},
	models.ContentDefinition: {
		models.PersonalityCorporate: models.ComponentDefinitionBox,
		models.PersonalityMinimal:   models.ComponentProse,
		models.PersonalityPlayful:   models.ComponentInfoBox,
		models.PersonalityBold:      models.ComponentDefinitionBox,
		models.PersonalityElegant:   models.ComponentDefinitionBox,
		models.PersonalityFriendly:  models.ComponentInfoBox,
	},
	models.ContentList: {
		models.PersonalityCorporate: models.ComponentChecklist,
		models.PersonalityMinimal:   models.ComponentProse,
		models.PersonalityPlayful:   models.ComponentCardGrid,
		models.PersonalityBold:      models.ComponentFeatureGrid,
		models.PersonalityElegant:   models.ComponentProse,
		models.PersonalityFriendly:  models.ComponentChecklist,
	},
	models.ContentData: {
		models.PersonalityCorporate: models.ComponentStatHighlight,
		models.PersonalityMinimal:   models.ComponentDataTable,
		models.PersonalityPlayful:   models.ComponentStatHighlight,
		models.PersonalityBold:      models.ComponentStatHighlight,
		models.PersonalityElegant:   models.ComponentDataTable,
		models.PersonalityFriendly:  models.ComponentStatHighlight,
	},
}

// enhanced is the upgraded component used for unique and rare topics.
var enhanced = map[models.ContentType]pick{
	models.ContentIntroduction: {models.ComponentHero, "spotlight"},
	models.ContentExplanation:  {models.ComponentFeatureGrid, "highlighted"},
	models.ContentSteps:        {models.ComponentTimeline, "detailed"},
	models.ContentFAQ:          {models.ComponentFAQAccordion, "expanded"},
	models.ContentComparison:   {models.ComponentComparisonTable, "highlighted"},
	models.ContentSummary:      {models.ComponentKeyTakeaways, "highlighted"},
	models.ContentTestimonial:  {models.ComponentTestimonialCard, "featured"},
	models.ContentDefinition:   {models.ComponentDefinitionBox, "highlighted"},
	models.ContentList:         {models.ComponentCardGrid, "highlighted"},
	models.ContentData:         {models.ComponentStatHighlight, "featured"},
}

// snippetComponents are the single-structure components a featured-snippet
// section may use, by content type.
var snippetComponents = map[models.ContentType]pick{
	models.ContentSteps:      {models.ComponentStepList, "featured-snippet"},
	models.ContentComparison: {models.ComponentComparisonTable, "featured-snippet"},
	models.ContentList:       {models.ComponentChecklist, "featured-snippet"},
	models.ContentFAQ:        {models.ComponentFAQAccordion, "featured-snippet"},
}

var snippetDefault = pick{models.ComponentProse, "featured-snippet"}

// snippetPick is the component a featured-snippet section is pinned to.
func snippetPick(ct models.ContentType) pick {
	if p, ok := snippetComponents[ct]; ok {
		return p
	}
	return snippetDefault
}

// Compatible returns the components that are a sensible rendering of ct: its
// matrix row in personality order followed by its enhanced component, without
// duplicates. Unknown types have no compatible components.
func Compatible(ct models.ContentType) []models.ComponentType {
	row, ok := matrix[ct]
	if !ok {
		return nil
	}

	seen := make(map[models.ComponentType]bool)
	var out []models.ComponentType
	add := func(c models.ComponentType) {
		if !seen[c] {
			seen[c] = true
			out = append(out, c)
		}
	}
	for _, p := range personalityOrder {
		add(row[p])
	}
	if e, ok := enhanced[ct]; ok {
		add(e.component)
	}
	return out
}

func isCompatible(ct models.ContentType, c models.ComponentType) bool {
	for _, candidate := range Compatible(ct) {
		if candidate == c {
			return true
		}
	}
	return false
}
