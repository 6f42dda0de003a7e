// Package extractor filters blueprint sections with a compact strategy string
// such as "weight:>=4,type:faq|steps,zone:main".
package extractor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dtnitsch/layout-blueprint/models"
)

// Strategy keeps sections that satisfy every set criterion. The zero value
// keeps everything.
type Strategy struct {
	WeightOp     string
	Weight       float64
	ContentTypes map[string]struct{}
	Zones        map[string]struct{}
	Components   map[string]struct{}
	Emphasis     map[string]struct{}
}

var weightOps = []string{">=", "<=", ">", "<", "="}

func ParseStrategy(strategyStr string) (*Strategy, error) {
	strategy := &Strategy{}
	if strings.TrimSpace(strategyStr) == "" {
		return strategy, nil
	}

	parts := strings.Split(strategyStr, ",")
	for _, part := range parts {
		kv := strings.SplitN(part, ":", 2)
		if len(kv) != 2 {
			return nil, fmt.Errorf("invalid strategy part: %s", part)
		}
		key := strings.ToLower(strings.TrimSpace(kv[0]))
		value := strings.TrimSpace(kv[1])

		switch key {
		case "weight":
			op, n, err := parseComparison(value)
			if err != nil {
				return nil, err
			}
			strategy.WeightOp, strategy.Weight = op, n
		case "type":
			strategy.ContentTypes = parseSet(value, strings.ToLower)
		case "zone":
			strategy.Zones = parseSet(value, strings.ToUpper)
		case "component":
			strategy.Components = parseSet(value, strings.ToLower)
		case "emphasis":
			strategy.Emphasis = parseSet(value, strings.ToLower)
		default:
			return nil, fmt.Errorf("unknown strategy key: %s", key)
		}
	}

	return strategy, nil
}

func parseComparison(value string) (string, float64, error) {
	for _, op := range weightOps {
		if strings.HasPrefix(value, op) {
			n, err := strconv.ParseFloat(strings.TrimSpace(value[len(op):]), 64)
			if err != nil {
				return "", 0, fmt.Errorf("invalid weight value: %s", value)
			}
			return op, n, nil
		}
	}
	return "", 0, fmt.Errorf("unsupported weight operator in: %s", value)
}

func parseSet(value string, normalize func(string) string) map[string]struct{} {
	set := make(map[string]struct{})
	for _, v := range strings.Split(value, "|") {
		if v = strings.TrimSpace(v); v != "" {
			set[normalize(v)] = struct{}{}
		}
	}
	return set
}

func inSet(set map[string]struct{}, v string) bool {
	if len(set) == 0 {
		return true
	}
	_, ok := set[v]
	return ok
}

func (s *Strategy) matchWeight(w float64) bool {
	switch s.WeightOp {
	case ">=":
		return w >= s.Weight
	case "<=":
		return w <= s.Weight
	case ">":
		return w > s.Weight
	case "<":
		return w < s.Weight
	case "=":
		return w == s.Weight
	default:
		return true
	}
}

// Match reports whether a section passes the strategy.
func (s *Strategy) Match(section models.BlueprintSection) bool {
	return s.matchWeight(section.SemanticWeight) &&
		inSet(s.ContentTypes, string(section.ContentType)) &&
		inSet(s.Zones, string(section.ContentZone)) &&
		inSet(s.Components, string(section.Component.Primary)) &&
		inSet(s.Emphasis, string(section.Emphasis.Level))
}

// FilterBlueprint returns a copy of bp holding only matching sections. The
// metadata still describes the full document. A nil strategy returns bp.
func FilterBlueprint(bp *models.Blueprint, strategy *Strategy) *models.Blueprint {
	if strategy == nil || bp == nil {
		return bp
	}

	filtered := &models.Blueprint{
		ID:       bp.ID,
		Title:    bp.Title,
		Metadata: bp.Metadata,
		Sections: []models.BlueprintSection{},
	}
	for _, section := range bp.Sections {
		if strategy.Match(section) {
			filtered.Sections = append(filtered.Sections, section)
		}
	}
	return filtered
}
