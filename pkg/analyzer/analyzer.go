// Package analyzer splits article content into sections, classifies each one,
// and scores its semantic weight.
package analyzer

import (
	"fmt"
	"strings"

	"github.com/dtnitsch/layout-blueprint/models"
	"github.com/dtnitsch/layout-blueprint/pkg/langdetect"
	"github.com/dtnitsch/layout-blueprint/pkg/markup"
	"github.com/dtnitsch/layout-blueprint/pkg/textutil"
)

// Analyzer turns raw content into section analyses. It holds no per-document
// state and may be shared between goroutines.
type Analyzer struct {
	detector langdetect.Detector
}

// NewAnalyzer creates an Analyzer. A nil detector skips language detection.
func NewAnalyzer(detector langdetect.Detector) *Analyzer {
	return &Analyzer{detector: detector}
}

// Analyze runs analysis without language detection.
func Analyze(content string, briefs []models.BriefSection, opts models.AnalyzeOptions) []models.SectionAnalysis {
	return NewAnalyzer(nil).Analyze(content, briefs, opts)
}

// Analyze splits content at heading boundaries, analyzes every section, and
// applies the whole-document rebalancing pass. Empty input yields no sections.
func (a *Analyzer) Analyze(content string, briefs []models.BriefSection, opts models.AnalyzeOptions) []models.SectionAnalysis {
	raws := split(content)
	if len(raws) == 0 {
		return []models.SectionAnalysis{}
	}

	docs := make([]*markup.Document, len(raws))
	keys := make([]string, len(raws))
	for i, raw := range raws {
		docs[i] = markup.Parse(raw.Body)
		keys[i] = raw.Heading
		if keys[i] == "" {
			keys[i] = textutil.FirstSentence(docs[i].PlainText(), briefKeyWords)
		}
	}
	matches := matchBriefs(keys, briefs)

	sections := make([]models.SectionAnalysis, len(raws))
	for i, raw := range raws {
		sections[i] = a.analyzeSection(i, raw, docs[i], matches[i], opts)
	}
	return Rebalance(sections)
}

// analyzeSection is the per-section pass; it never looks at neighbours.
func (a *Analyzer) analyzeSection(index int, raw rawSection, doc *markup.Document, brief *models.BriefSection, opts models.AnalyzeOptions) models.SectionAnalysis {
	plain := doc.PlainText()
	wordCount := doc.WordCount()
	f := detectFeatures(raw.Body)

	s := models.SectionAnalysis{
		ID:             fmt.Sprintf("section-%d", index),
		Order:          index,
		Heading:        raw.Heading,
		HeadingLevel:   raw.Level,
		HasTable:       f.HasTable,
		HasList:        f.hasList(),
		HasOrderedList: f.HasOrderedList,
		HasQuote:       f.HasQuote,
		HasImage:       f.HasImage,
		WordCount:      wordCount,
		IsCoreTopic:    opts.IsCoreTopic,
		ContentZone:    models.ZoneMain,
		Content:        raw.Body,
	}

	if brief != nil {
		applyBrief(&s, *brief)
	} else if isSupplementaryHeading(s.Heading) {
		s.ContentZone = models.ZoneSupplementary
	}

	intent := opts.MainIntent
	if strings.TrimSpace(intent) == "" {
		intent = opts.TopicTitle
	}
	s.AnswersMainIntent = textutil.HeadingSimilarity(s.Heading, intent) >= models.HeadingMatchThreshold

	s.ContentType = classify(s.FormatCode, s.Heading, f, wordCount)
	s.WeightFactors = scoreWeight(s)
	s.SemanticWeight = s.WeightFactors.Total

	if a.detector != nil {
		s.Language = a.detector.Detect(plain)
	}
	return s
}

// applyBrief copies matched brief data onto the section. The brief heading is
// only a fallback for sections without one.
func applyBrief(s *models.SectionAnalysis, b models.BriefSection) {
	if s.Heading == "" {
		s.Heading = strings.TrimSpace(b.Heading)
		if s.Heading == "" {
			s.Heading = strings.TrimSpace(b.SectionHeading)
		}
	}
	s.FormatCode = strings.ToUpper(strings.TrimSpace(b.FormatCode))
	s.AttributeCategory = strings.ToLower(strings.TrimSpace(b.AttributeCategory))
	if b.ContentZone != "" {
		s.ContentZone = models.ParseContentZone(b.ContentZone)
	} else if isSupplementaryHeading(s.Heading) {
		s.ContentZone = models.ZoneSupplementary
	}
	s.Constraints.FSTarget = s.FormatCode == models.FormatFeaturedSnippet
	s.Constraints.RequiresImage = b.RequiresImage
	s.Constraints.PreferredComponent = strings.TrimSpace(b.PreferredComponent)
}
