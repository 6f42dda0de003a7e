// Package blueprint assembles per-section layout decisions into a document
// blueprint a renderer can consume.
package blueprint

import (
	"log/slog"
	"math"

	"github.com/dtnitsch/layout-blueprint/internal/common"
	"github.com/dtnitsch/layout-blueprint/models"
	"github.com/dtnitsch/layout-blueprint/pkg/analyzer"
	"github.com/dtnitsch/layout-blueprint/pkg/component"
	"github.com/dtnitsch/layout-blueprint/pkg/emphasis"
	"github.com/dtnitsch/layout-blueprint/pkg/imagery"
	"github.com/dtnitsch/layout-blueprint/pkg/langdetect"
	"github.com/dtnitsch/layout-blueprint/pkg/layout"
	"github.com/google/uuid"
)

// namespace scopes blueprint ids so equal content always yields the same id.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://github.com/dtnitsch/layout-blueprint"))

// Config configures a Builder. Every field is optional.
type Config struct {
	Detector       langdetect.Detector
	Profile        *models.StyleProfile
	WebsiteType    string
	WebsiteLayouts map[string]models.WebsiteLayout
	Logger         *slog.Logger
}

// Builder turns article content into blueprints. It keeps no per-document
// state and may be shared between goroutines.
type Builder struct {
	analyzer    *analyzer.Analyzer
	selector    *component.Selector
	profile     *models.StyleProfile
	websiteType string
	logger      *slog.Logger
}

func NewBuilder(cfg Config) *Builder {
	return &Builder{
		analyzer:    analyzer.NewAnalyzer(cfg.Detector),
		selector:    component.NewSelector(cfg.WebsiteLayouts),
		profile:     cfg.Profile,
		websiteType: cfg.WebsiteType,
		logger:      cfg.Logger,
	}
}

// Build analyzes content with the default builder settings and a profile.
func Build(content string, briefs []models.BriefSection, opts models.AnalyzeOptions, profile *models.StyleProfile) *models.Blueprint {
	return NewBuilder(Config{Profile: profile}).Build(content, briefs, opts)
}

// Build analyzes content and assembles its blueprint. Empty content yields a
// blueprint with no sections.
func (b *Builder) Build(content string, briefs []models.BriefSection, opts models.AnalyzeOptions) *models.Blueprint {
	sections := b.analyzer.Analyze(content, briefs, opts)
	return b.Assemble(content, title(opts, sections), sections)
}

// Assemble builds the blueprint for already analyzed sections.
func (b *Builder) Assemble(content, title string, sections []models.SectionAnalysis) *models.Blueprint {
	layouts := layout.PlanLayouts(sections, b.profile)
	components := b.selector.SelectAll(sections, b.profile, b.websiteType)
	emphases := emphasis.CalculateEmphases(sections, b.profile)
	images := imagery.PlaceImages(sections, b.profile)

	out := make([]models.BlueprintSection, len(sections))
	for i, a := range sections {
		bs := models.BlueprintSection{
			ID:             a.ID,
			Order:          a.Order,
			Heading:        a.Heading,
			ContentType:    a.ContentType,
			SemanticWeight: a.SemanticWeight,
			ContentZone:    a.ContentZone,
			Layout:         layouts[i],
			Component:      components[i],
			Emphasis:       emphases[i],
			Image:          images[i],
		}
		bs.CSSClasses = cssClasses(bs)
		bs.StyleHooks = styleHooks(bs, b.profile)
		out[i] = bs

		if b.logger != nil {
			b.logger.Debug("section planned",
				"section_id", a.ID,
				"content_type", a.ContentType,
				"weight", a.SemanticWeight,
				"width", bs.Layout.Width,
				"columns", bs.Layout.Columns,
				"component", bs.Component.Primary,
				"tier", bs.Component.Tier,
				"emphasis", bs.Emphasis.Level,
				"has_image", bs.Image != nil,
			)
		}
	}

	hash := common.ContentHash([]byte(content))
	return &models.Blueprint{
		ID:       uuid.NewSHA1(namespace, []byte(hash)).String(),
		Title:    title,
		Sections: out,
		Metadata: metadata(sections, out, hash, b.websiteType),
	}
}

// title prefers the topic title, then the first top-level heading.
func title(opts models.AnalyzeOptions, sections []models.SectionAnalysis) string {
	if opts.TopicTitle != "" {
		return opts.TopicTitle
	}
	for _, s := range sections {
		if s.HeadingLevel == 1 && s.Heading != "" {
			return s.Heading
		}
	}
	return ""
}

func metadata(sections []models.SectionAnalysis, out []models.BlueprintSection, hash, websiteType string) models.BlueprintMetadata {
	md := models.BlueprintMetadata{
		TotalSections: len(sections),
		ContentHash:   hash,
		WebsiteType:   websiteType,
	}

	languages := make([]string, 0, len(sections))
	var total float64
	for i, s := range sections {
		total += s.SemanticWeight
		languages = append(languages, s.Language)
		if s.ContentZone == models.ZoneSupplementary {
			md.SupplementarySections++
		} else {
			md.MainSections++
		}
		if md.HeroSectionID == "" && out[i].Emphasis.Level == models.EmphasisHero {
			md.HeroSectionID = s.ID
		}
	}
	if len(sections) > 0 {
		md.AverageSemanticWeight = math.Round(total/float64(len(sections))*100) / 100
	}
	md.Language = langdetect.Dominant(languages)
	return md
}
