package build

import (
	"context"
	"errors"
	"flag"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dtnitsch/layout-blueprint/models"
	"github.com/dtnitsch/layout-blueprint/pkg/analytics"
	"github.com/dtnitsch/layout-blueprint/pkg/blueprint"
	"github.com/dtnitsch/layout-blueprint/pkg/extractor"
	"github.com/dtnitsch/layout-blueprint/pkg/parser"
	"github.com/dtnitsch/layout-blueprint/pkg/storage"
	"github.com/urfave/cli/v2"
)

const markdownArticle = `# Getting started with sourdough

Sourdough needs only flour, water and patience.

## How to feed a starter

1. Discard half.
2. Add flour.
3. Add water.

## FAQ

**How often?** Daily at room temperature.
`

func newContext(t *testing.T, args ...string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("build", flag.ContinueOnError)
	for _, f := range Flags() {
		if err := f.Apply(set); err != nil {
			t.Fatalf("apply flag: %v", err)
		}
	}
	if err := set.Parse(args); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	return cli.NewContext(cli.NewApp(), set, nil)
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func newRunner(config *models.BuildConfig, filter *extractor.Strategy) *runner {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	return &runner{
		logger:  logger,
		config:  config,
		builder: blueprint.NewBuilder(blueprint.Config{Logger: logger}),
		filter:  filter,
		store:   &storage.Storage{},
		parser:  &parser.Parser{},
		words:   &analytics.Analytics{},
	}
}

func TestLoadConfig_FlagsOverrideFile(t *testing.T) {
	dir := t.TempDir()
	cfgPath := writeFile(t, dir, "config.yaml", `
workers: 8
format: yaml
website_type: saas
style_profile:
  energy: 2
`)
	profilePath := writeFile(t, dir, "profile.yaml", "energy: 5\ndensity: airy\n")

	c := newContext(t,
		"--config", cfgPath,
		"--profile", profilePath,
		"--website-type", "blog",
		"--main-intent", "feed a starter",
		"--inputs", "a.md",
		"b.md",
	)
	config, err := loadConfig(c)
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}

	if config.WorkerCount != 8 {
		t.Errorf("WorkerCount = %d, want 8 from file", config.WorkerCount)
	}
	if config.Format != "yaml" {
		t.Errorf("Format = %q, want yaml from file", config.Format)
	}
	if config.WebsiteType != "blog" {
		t.Errorf("WebsiteType = %q, want flag value", config.WebsiteType)
	}
	if config.StyleProfile.Energy != 5 || config.StyleProfile.Density != "airy" {
		t.Errorf("StyleProfile = %+v", config.StyleProfile)
	}
	if config.Options.MainIntent != "feed a starter" {
		t.Errorf("MainIntent = %q", config.Options.MainIntent)
	}
	if strings.Join(config.Inputs, ",") != "a.md,b.md" {
		t.Errorf("Inputs = %v", config.Inputs)
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	config, err := loadConfig(newContext(t))
	if err != nil {
		t.Fatalf("loadConfig() error = %v", err)
	}
	if config.WorkerCount != defaultWorkers || config.Format != "json" {
		t.Errorf("defaults = %+v", config)
	}
}

func TestLoadConfig_BadFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "config.yaml", "nonsense: true\n")
	if _, err := loadConfig(newContext(t, "--config", path)); err == nil {
		t.Error("expected error for unknown config key")
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	md := writeFile(t, dir, "sourdough.md", markdownArticle)
	html := writeFile(t, dir, "page.html", `<html><head><title>Starter care</title></head><body>
<article><h1>Starter care</h1>
<p>Keeping a sourdough starter alive takes a few minutes a day and a warm kitchen corner.</p>
<h2>How to feed it</h2>
<ol><li>Discard half of the starter.</li><li>Add equal weights of flour and water.</li></ol>
<p>Cover loosely and leave it on the counter until it doubles in size.</p>
</article></body></html>`)
	missing := filepath.Join(dir, "missing.md")
	outDir := filepath.Join(dir, "out")

	config := &models.BuildConfig{
		Inputs:      []string{md, missing, html},
		WorkerCount: 2,
		Format:      "json",
		OutputDir:   outDir,
	}
	results, words, err := run(context.Background(), newRunner(config, nil))
	if err == nil {
		t.Error("expected run error for missing input")
	}
	if len(results) != 3 {
		t.Fatalf("got %d results", len(results))
	}

	if results[0].Error != nil || results[0].Blueprint == nil {
		t.Fatalf("markdown result = %+v", results[0])
	}
	if len(results[0].Blueprint.Sections) != 3 {
		t.Errorf("markdown sections = %d, want 3", len(results[0].Blueprint.Sections))
	}
	if _, statErr := os.Stat(results[0].OutputPath); statErr != nil {
		t.Errorf("blueprint file not written: %v", statErr)
	}
	if results[0].FileSizeBytes != int64(len(markdownArticle)) {
		t.Errorf("FileSizeBytes = %d, want %d", results[0].FileSizeBytes, len(markdownArticle))
	}
	if results[0].ContentTypes["steps"] != 1 {
		t.Errorf("content types = %v", results[0].ContentTypes)
	}

	if results[1].ErrorType != ErrorTypeRead {
		t.Errorf("missing result = %+v", results[1])
	}

	if results[2].Error != nil {
		t.Fatalf("html result error = %v", results[2].Error)
	}
	if results[2].Blueprint.Title == "" {
		t.Error("html blueprint should take the page title")
	}

	if words["starter"] == 0 {
		t.Errorf("aggregated word counts missing starter: %v", words)
	}
}

func TestRun_FilterAndCancel(t *testing.T) {
	dir := t.TempDir()
	md := writeFile(t, dir, "sourdough.md", markdownArticle)

	strategy, err := extractor.ParseStrategy("type:steps")
	if err != nil {
		t.Fatal(err)
	}
	results, _, err := run(context.Background(), newRunner(&models.BuildConfig{Inputs: []string{md}}, strategy))
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}
	bp := results[0].Blueprint
	if len(bp.Sections) != 1 || bp.Sections[0].ContentType != models.ContentSteps {
		t.Errorf("filtered sections = %+v", bp.Sections)
	}
	if bp.Metadata.TotalSections != 3 {
		t.Errorf("metadata should describe the full document: %+v", bp.Metadata)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, _, _ = run(ctx, newRunner(&models.BuildConfig{Inputs: []string{md}}, nil))
	if results[0].ErrorType != ErrorTypeCanceled {
		t.Errorf("canceled result = %+v", results[0])
	}
}

func TestSummarize(t *testing.T) {
	bp := &models.Blueprint{
		ID:       "id-1",
		Sections: []models.BlueprintSection{{ID: "section-0"}, {ID: "section-1"}},
		Metadata: models.BlueprintMetadata{HeroSectionID: "section-0", Language: "en", AverageSemanticWeight: 3.75},
	}
	results := []Result{
		{Input: "a.md", Blueprint: bp, ContentTypes: map[string]int{"faq": 1, "steps": 1}, FileSizeBytes: 512},
		{Input: "b.md", Error: errors.New("boom"), ErrorType: ErrorTypeRead},
	}

	outputs, stats := summarize(results, false)
	if stats.TotalInputs != 2 || stats.Successful != 1 || stats.Failed != 1 || stats.TotalSections != 2 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.ContentTypes["faq"] != 1 {
		t.Errorf("content types = %v", stats.ContentTypes)
	}
	if outputs[0].BlueprintID != "id-1" || outputs[0].HeroSection != "section-0" || outputs[0].Blueprint != nil {
		t.Errorf("success output = %+v", outputs[0])
	}
	if outputs[0].FileSizeBytes != 512 || ToTerseResult(outputs[0]).FileSizeBytes != 512 {
		t.Errorf("file size not carried: %+v", outputs[0])
	}
	if outputs[1].Status != StatusFailed || outputs[1].Error != "boom" {
		t.Errorf("failed output = %+v", outputs[1])
	}

	outputs, _ = summarize(results, true)
	if outputs[0].Blueprint != bp {
		t.Error("print mode should include the blueprint")
	}
}

func TestProjectResults(t *testing.T) {
	outputs := []ResultOutput{{Input: "a.md", Status: StatusSuccess, Sections: 4, Language: "en"}}

	got := projectResults(outputs, "input,sections", false).([]map[string]interface{})
	if len(got[0]) != 2 || got[0]["input"] != "a.md" {
		t.Errorf("verbose projection = %v", got)
	}

	got = projectResults(outputs, "input,language", true).([]map[string]interface{})
	if len(got[0]) != 2 || got[0]["in"] != "a.md" || got[0]["l"] != "en" {
		t.Errorf("terse projection = %v", got)
	}

	outputs[0].FileSizeBytes = 2048
	got = projectResults(outputs, "file_size_bytes", true).([]map[string]interface{})
	if len(got[0]) != 1 || got[0]["sz"] != float64(2048) {
		t.Errorf("terse projection = %v", got)
	}

	all := projectResults(nil, "", false).([]interface{})
	if all == nil || len(all) != 0 {
		t.Errorf("empty projection = %#v", all)
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name  string
		stats Stats
		want  int
	}{
		{"all ok", Stats{TotalInputs: 2, Successful: 2}, 0},
		{"some failed", Stats{TotalInputs: 2, Successful: 1, Failed: 1}, 1},
		{"all failed", Stats{TotalInputs: 2, Failed: 2}, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := exitCode(tt.stats); got != tt.want {
				t.Errorf("exitCode() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestFileURL(t *testing.T) {
	got := fileURL("article.html")
	if !strings.HasPrefix(got, "file:///") || !strings.HasSuffix(got, "/article.html") {
		t.Errorf("fileURL() = %q", got)
	}
}

func TestNameSuffixes(t *testing.T) {
	got := nameSuffixes([]string{"a/intro.md", "b/intro.html", "c/other.md", "d/intro.md"})
	want := []int{0, 1, 0, 2}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("nameSuffixes()[%d] = %d, want %d", i, got[i], want[i])
		}
	}
}
