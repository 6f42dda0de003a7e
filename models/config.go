package models

// BuildConfig holds runtime configuration for a build run.
// Flags populate it; an optional YAML file fills the profile and tables.
type BuildConfig struct {
	Inputs      []string `yaml:"inputs,omitempty"`
	WorkerCount int      `yaml:"workers,omitempty"`
	Format      string   `yaml:"format,omitempty"`
	OutputDir   string   `yaml:"output_dir,omitempty"`
	Filter      string   `yaml:"filter,omitempty"`
	HTMLInput   bool     `yaml:"html,omitempty"`

	Options        AnalyzeOptions           `yaml:"options,omitempty"`
	StyleProfile   *StyleProfile            `yaml:"style_profile,omitempty"`
	BriefSections  []BriefSection           `yaml:"brief_sections,omitempty"`
	WebsiteType    string                   `yaml:"website_type,omitempty"`
	WebsiteLayouts map[string]WebsiteLayout `yaml:"website_layouts,omitempty"`
}
