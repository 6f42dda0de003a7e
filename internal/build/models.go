package build

import (
	"github.com/dtnitsch/layout-blueprint/models"
)

type Job struct {
	Index      int
	Input      string
	NameSuffix int
}

// Result holds the outcome of one input file.
type Result struct {
	Input         string
	OutputPath    string
	Blueprint     *models.Blueprint
	Error         error
	ErrorType     string
	WordCounts    map[string]int
	ContentTypes  map[string]int
	FileSizeBytes int64
}

// Error types reported per input.
const (
	ErrorTypeRead     = "read_error"
	ErrorTypeParse    = "parse_error"
	ErrorTypeSave     = "save_error"
	ErrorTypeCanceled = "canceled"
)

// ResultOutput is the structured output for a single input.
type ResultOutput struct {
	Input         string            `json:"input" yaml:"input"`
	OutputPath    string            `json:"output_path,omitempty" yaml:"output_path,omitempty"`
	Status        string            `json:"status" yaml:"status"`
	Error         string            `json:"error,omitempty" yaml:"error,omitempty"`
	ErrorType     string            `json:"error_type,omitempty" yaml:"error_type,omitempty"`
	BlueprintID   string            `json:"blueprint_id,omitempty" yaml:"blueprint_id,omitempty"`
	Sections      int               `json:"sections" yaml:"sections"`
	HeroSection   string            `json:"hero_section,omitempty" yaml:"hero_section,omitempty"`
	Language      string            `json:"language,omitempty" yaml:"language,omitempty"`
	AverageWeight float64           `json:"average_weight,omitempty" yaml:"average_weight,omitempty"`
	FileSizeBytes int64             `json:"file_size_bytes,omitempty" yaml:"file_size_bytes,omitempty"`
	Blueprint     *models.Blueprint `json:"blueprint,omitempty" yaml:"blueprint,omitempty"`
}

// ResultOutputTerse is the abbreviated result format.
type ResultOutputTerse struct {
	Input         string  `json:"in" yaml:"in"`
	OutputPath    string  `json:"p,omitempty" yaml:"p,omitempty"`
	Status        int     `json:"s" yaml:"s"` // 0=success, 1=failed
	Error         string  `json:"e,omitempty" yaml:"e,omitempty"`
	ErrorType     string  `json:"et,omitempty" yaml:"et,omitempty"`
	BlueprintID   string  `json:"id,omitempty" yaml:"id,omitempty"`
	Sections      int     `json:"n" yaml:"n"`
	HeroSection   string  `json:"h,omitempty" yaml:"h,omitempty"`
	Language      string  `json:"l,omitempty" yaml:"l,omitempty"`
	AverageWeight float64 `json:"w,omitempty" yaml:"w,omitempty"`
	FileSizeBytes int64   `json:"sz,omitempty" yaml:"sz,omitempty"`
}

// FinalOutput is the structured output for the entire run.
type FinalOutput struct {
	Status  string      `json:"status" yaml:"status"`
	Results interface{} `json:"results" yaml:"results"`
	Stats   Stats       `json:"stats" yaml:"stats"`
}

// Stats provides summary statistics for the run.
type Stats struct {
	TotalInputs      int            `json:"total_inputs" yaml:"total_inputs"`
	Successful       int            `json:"successful" yaml:"successful"`
	Failed           int            `json:"failed" yaml:"failed"`
	TotalSections    int            `json:"total_sections" yaml:"total_sections"`
	TotalTimeSeconds float64        `json:"total_time_seconds" yaml:"total_time_seconds"`
	ContentTypes     map[string]int `json:"content_types,omitempty" yaml:"content_types,omitempty"`
	TopKeywords      []string       `json:"top_keywords,omitempty" yaml:"top_keywords,omitempty"`
}

func ToTerseResult(r ResultOutput) ResultOutputTerse {
	status := 0
	if r.Status != StatusSuccess {
		status = 1
	}
	return ResultOutputTerse{
		Input:         r.Input,
		OutputPath:    r.OutputPath,
		Status:        status,
		Error:         r.Error,
		ErrorType:     r.ErrorType,
		BlueprintID:   r.BlueprintID,
		Sections:      r.Sections,
		HeroSection:   r.HeroSection,
		Language:      r.Language,
		AverageWeight: r.AverageWeight,
		FileSizeBytes: r.FileSizeBytes,
	}
}
