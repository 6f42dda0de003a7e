// Package imagery decides where a section gets an image, where the image comes
// from, and what a still-missing image should show.
//
// No placement ever sits between a heading and its first paragraph: the
// placement enum has no such value.
package imagery

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/dtnitsch/layout-blueprint/models"
	"github.com/dtnitsch/layout-blueprint/pkg/analytics"
	"github.com/dtnitsch/layout-blueprint/pkg/markup"
	"github.com/dtnitsch/layout-blueprint/pkg/textutil"
)

const (
	prominentWeight = 4
	heroWeight      = 5
	subjectWords    = 12
	altTerms        = 3
)

// PlaceImage decides the image for one section. It returns nil when the
// section gets no image. profile may be nil.
func PlaceImage(a models.SectionAnalysis, profile *models.StyleProfile, ctx models.ImageContext) *models.SemanticImagePlacement {
	weight := a.RoundedWeight()

	switch {
	case a.HasImage:
		return placeArticleImage(a, weight)
	case a.Constraints.RequiresImage:
		return placeBrandImage(a, weight, profile, ctx)
	case a.IsSnippetProtected():
		return nil
	default:
		return suggestPlaceholder(a, weight)
	}
}

// PlaceImages decides images for a document in order, alternating floated
// brand images left and right.
func PlaceImages(sections []models.SectionAnalysis, profile *models.StyleProfile) []*models.SemanticImagePlacement {
	out := make([]*models.SemanticImagePlacement, len(sections))
	floats := 0
	for i, s := range sections {
		p := PlaceImage(s, profile, models.ImageContext{FloatIndex: floats})
		if p != nil && (p.Position == models.PlaceFloatLeft || p.Position == models.PlaceFloatRight) {
			floats++
		}
		out[i] = p
	}
	return out
}

func placeArticleImage(a models.SectionAnalysis, weight int) *models.SemanticImagePlacement {
	position := models.PlaceAfterIntroParagraph
	reason := "article image follows the opening paragraph"
	if weight >= prominentWeight {
		position = models.PlaceFullWidthBreak
		reason = fmt.Sprintf("article image on a weight %d section breaks full width", weight)
	}
	return &models.SemanticImagePlacement{
		Position: position,
		Source:   models.SourceArticleGenerated,
		Role:     roleFor(a, weight),
		Reason:   reason,
	}
}

func placeBrandImage(a models.SectionAnalysis, weight int, profile *models.StyleProfile, ctx models.ImageContext) *models.SemanticImagePlacement {
	p := &models.SemanticImagePlacement{
		Source: models.SourceBrandKit,
		Role:   roleFor(a, weight),
	}

	hint := ctx.Hint
	if hint == "" {
		hint, _ = models.ParseImagePlacement(strings.ToLower(strings.TrimSpace(a.Constraints.ImageHint)))
	}

	switch {
	case weight >= prominentWeight:
		p.Position = models.PlaceFullWidthBreak
		p.Reason = fmt.Sprintf("required image on a weight %d section breaks full width", weight)
	case profile.IsAsymmetric() && (hint == models.PlaceFloatLeft || hint == models.PlaceFloatRight):
		p.Position = hint
		p.Reason = "asymmetric grid, float side set by hint"
	case profile.IsAsymmetric():
		p.Position = models.PlaceFloatLeft
		if ctx.FloatIndex%2 == 1 {
			p.Position = models.PlaceFloatRight
		}
		p.Reason = fmt.Sprintf("asymmetric grid, float #%d alternates sides", ctx.FloatIndex+1)
	default:
		p.Position = models.PlaceSectionEnd
		p.Reason = "required image closes the section"
	}
	return p
}

func roleFor(a models.SectionAnalysis, weight int) models.ImageRole {
	if weight >= heroWeight {
		return models.RoleHero
	}
	switch a.ContentType {
	case models.ContentData, models.ContentComparison, models.ContentTestimonial:
		return models.RoleEvidence
	case models.ContentSteps, models.ContentExplanation, models.ContentDefinition:
		return models.RoleExplanatory
	default:
		return models.RoleDecorative
	}
}

// concept is a family of "hard to explain in prose" language and the visual
// that explains it instead.
type concept struct {
	pattern     *regexp.Regexp
	kind        string
	aspectRatio string
}

var concepts = []concept{
	{regexp.MustCompile(`\b(relationships?|relations?|connections?|connected|depends on|dependenc(y|ies)|interactions?|relaties?|verbanden?|samenhang|afhankelijk\w*)\b`), "Diagram", "4:3"},
	{regexp.MustCompile(`\b(process(es)?|flows?|workflows?|pipelines?|lifecycle|processen|proces|werkwijze|stroom|doorloop)\b`), "Flowchart", "16:9"},
	{regexp.MustCompile(`\b(architecture|structures?|components?|layers|modules|architectuur|structuur|opbouw|componenten|onderdelen|lagen)\b`), "Architecture diagram", "16:9"},
	{regexp.MustCompile(`\b(stages?|phases?|milestones|fasen?|fases|stadia|etappes)\b`), "Timeline", "21:9"},
}

var typeConcepts = map[models.ContentType]concept{
	models.ContentSteps:       {kind: "Step-by-step illustration", aspectRatio: "4:3"},
	models.ContentExplanation: {kind: "Explanatory illustration", aspectRatio: "3:2"},
}

const (
	suggestionTemplate = "{kind} of {subject}{terms}"
	altTemplate        = "{kind} illustrating {subject}{terms}"
)

var (
	tokenRe       = regexp.MustCompile(`\{[^{}]*\}`)
	textAnalytics = &analytics.Analytics{}
)

func suggestPlaceholder(a models.SectionAnalysis, weight int) *models.SemanticImagePlacement {
	plain := markup.Parse(a.Content).PlainText()
	folded := textutil.Fold(a.Heading + "\n" + plain)

	var match concept
	found := false
	for _, c := range concepts {
		if c.pattern.MatchString(folded) {
			match, found = c, true
			break
		}
	}
	if !found {
		match, found = typeConcepts[a.ContentType]
	}
	if !found {
		return nil
	}

	subject := strings.TrimSpace(a.Heading)
	if subject == "" {
		subject = textutil.FirstSentence(plain, subjectWords)
	}
	if subject == "" {
		subject = "this section"
	}

	terms := ""
	if top := textAnalytics.TopNWords(a.Heading+" "+plain, altTerms); len(top) > 0 {
		terms = " covering " + strings.Join(top, ", ")
	}
	vars := map[string]string{
		"kind":    match.kind,
		"subject": subject,
		"terms":   terms,
	}

	position := models.PlaceAfterIntroParagraph
	if a.HasList {
		position = models.PlaceAfterList
	}

	return &models.SemanticImagePlacement{
		Position: position,
		Source:   models.SourcePlaceholder,
		Role:     roleFor(a, weight),
		Placeholder: &models.PlaceholderSpec{
			AspectRatio:      match.aspectRatio,
			SuggestedContent: expand(suggestionTemplate, vars),
			AltText:          expand(altTemplate, vars),
		},
		Reason: fmt.Sprintf("%s suggested for %s content", strings.ToLower(match.kind), a.ContentType),
	}
}

// expand fills {name} tokens from vars; unknown tokens expand to nothing.
// Brace characters carried in by values are stripped so the result never
// reads as a template.
func expand(template string, vars map[string]string) string {
	out := tokenRe.ReplaceAllStringFunc(template, func(tok string) string {
		return vars[strings.Trim(tok, "{}")]
	})
	out = strings.NewReplacer("{", "", "}", "").Replace(out)
	return strings.Join(strings.Fields(out), " ")
}
