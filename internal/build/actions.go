package build

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dtnitsch/layout-blueprint/internal/common"
	"github.com/dtnitsch/layout-blueprint/models"
	"github.com/dtnitsch/layout-blueprint/pkg/analytics"
	"github.com/dtnitsch/layout-blueprint/pkg/blueprint"
	"github.com/dtnitsch/layout-blueprint/pkg/extractor"
	"github.com/dtnitsch/layout-blueprint/pkg/langdetect"
	"github.com/dtnitsch/layout-blueprint/pkg/mapreduce"
	"github.com/dtnitsch/layout-blueprint/pkg/parser"
	"github.com/dtnitsch/layout-blueprint/pkg/profile"
	"github.com/dtnitsch/layout-blueprint/pkg/storage"
	"github.com/urfave/cli/v2"
)

// Run statuses.
const (
	StatusSuccess        = "success"
	StatusFailed         = "failed"
	StatusPartialFailure = "partial_failure"
)

const topKeywordCount = 25

func BuildAction(c *cli.Context) error {
	logLevel := slog.LevelInfo
	if c.Bool("verbose") {
		logLevel = slog.LevelDebug
	}
	if c.Bool("quiet") {
		logLevel = slog.LevelError
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
	startTime := time.Now()

	config, err := loadConfig(c)
	if err != nil {
		logger.Error("failed to load configuration", "error", err)
		os.Exit(2)
	}

	files, missing := common.ExpandInputs(config.Inputs)
	if len(missing) > 0 {
		fmt.Fprintf(os.Stderr, "Error: %d input(s) matched no files:\n", len(missing))
		for _, m := range missing {
			fmt.Fprintf(os.Stderr, "  - %s\n", m)
		}
		os.Exit(1)
	}
	if len(files) == 0 {
		fmt.Fprintln(os.Stderr, "Error: No inputs provided")
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Usage:")
		fmt.Fprintln(os.Stderr, `  layout-blueprint build --inputs article.md`)
		fmt.Fprintln(os.Stderr, `  layout-blueprint build --inputs "content/*.md" --output-dir blueprints`)
		fmt.Fprintln(os.Stderr, "")
		fmt.Fprintln(os.Stderr, "Need help? Run: layout-blueprint quickstart")
		os.Exit(1)
	}
	config.Inputs = files

	config.Format, err = storage.NormalizeFormat(config.Format)
	if err != nil {
		logger.Error("invalid output format", "error", err)
		os.Exit(2)
	}

	var filterStrategy *extractor.Strategy
	if config.Filter != "" {
		filterStrategy, err = extractor.ParseStrategy(config.Filter)
		if err != nil {
			logger.Error("invalid filter strategy", "error", err)
			os.Exit(2)
		}
		logger.Info("Filter strategy parsed", "filter", config.Filter)
	}

	var detector langdetect.Detector
	if !c.Bool("no-language") {
		detector = langdetect.NewLingua()
	}

	r := &runner{
		logger: logger,
		config: config,
		builder: blueprint.NewBuilder(blueprint.Config{
			Detector:       detector,
			Profile:        config.StyleProfile,
			WebsiteType:    config.WebsiteType,
			WebsiteLayouts: config.WebsiteLayouts,
			Logger:         logger,
		}),
		filter: filterStrategy,
		store:  &storage.Storage{},
		parser: &parser.Parser{},
		words:  &analytics.Analytics{},
	}

	allResults, finalWordCounts, runErr := run(c.Context, r)

	outputs, stats := summarize(allResults, c.Bool("print"))
	stats.TotalTimeSeconds = time.Since(startTime).Seconds()
	stats.TopKeywords = mapreduce.TopKeywords(finalWordCounts, topKeywordCount)

	finalOutput := &FinalOutput{Status: StatusSuccess, Stats: stats}
	if runErr != nil {
		finalOutput.Status = StatusPartialFailure
	}
	finalOutput.Results = projectResults(outputs, c.String("fields"), c.Bool("terse"))

	outputData, err := storage.Encode(finalOutput, config.Format)
	if err != nil {
		logger.Error("failed to marshal final output", "error", err)
		os.Exit(2)
	}
	fmt.Println(strings.TrimRight(string(outputData), "\n"))

	if code := exitCode(stats); code != 0 {
		os.Exit(code)
	}
	return nil
}

// loadConfig reads the optional config file and lets flags override it.
func loadConfig(c *cli.Context) (*models.BuildConfig, error) {
	config := &models.BuildConfig{}
	if path := c.String("config"); path != "" {
		loaded, err := profile.LoadConfig(path)
		if err != nil {
			return nil, err
		}
		config = loaded
	}

	if path := c.String("profile"); path != "" {
		p, err := profile.LoadProfile(path)
		if err != nil {
			return nil, err
		}
		config.StyleProfile = profile.Merge(config.StyleProfile, p)
	}

	inputs := append([]string{}, c.StringSlice("inputs")...)
	inputs = append(inputs, c.Args().Slice()...)
	if len(inputs) > 0 {
		config.Inputs = inputs
	}
	if c.IsSet("workers") || config.WorkerCount == 0 {
		config.WorkerCount = c.Int("workers")
	}
	if c.IsSet("format") || config.Format == "" {
		config.Format = c.String("format")
	}
	if c.IsSet("output-dir") {
		config.OutputDir = c.String("output-dir")
	}
	if c.IsSet("filter") {
		config.Filter = c.String("filter")
	}
	if c.IsSet("html") {
		config.HTMLInput = c.Bool("html")
	}
	if c.IsSet("website-type") {
		config.WebsiteType = c.String("website-type")
	}
	if c.IsSet("main-intent") {
		config.Options.MainIntent = c.String("main-intent")
	}
	if c.IsSet("topic-title") {
		config.Options.TopicTitle = c.String("topic-title")
	}
	if c.IsSet("core-topic") {
		config.Options.IsCoreTopic = c.Bool("core-topic")
	}

	if err := profile.Validate(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return config, nil
}

// summarize converts results to their output form and counts them.
func summarize(results []Result, includeBlueprint bool) ([]ResultOutput, Stats) {
	stats := Stats{TotalInputs: len(results)}
	outputs := make([]ResultOutput, 0, len(results))
	typeCounts := make([]map[string]int, 0, len(results))

	for _, r := range results {
		out := ResultOutput{Input: r.Input, OutputPath: r.OutputPath, FileSizeBytes: r.FileSizeBytes}
		if r.Error != nil {
			stats.Failed++
			out.Status = StatusFailed
			out.Error = r.Error.Error()
			out.ErrorType = r.ErrorType
			outputs = append(outputs, out)
			continue
		}

		stats.Successful++
		out.Status = StatusSuccess
		if bp := r.Blueprint; bp != nil {
			out.BlueprintID = bp.ID
			out.Sections = len(bp.Sections)
			out.HeroSection = bp.Metadata.HeroSectionID
			out.Language = bp.Metadata.Language
			out.AverageWeight = bp.Metadata.AverageSemanticWeight
			stats.TotalSections += len(bp.Sections)
			if includeBlueprint {
				out.Blueprint = bp
			}
		}
		typeCounts = append(typeCounts, r.ContentTypes)
		outputs = append(outputs, out)
	}

	if contentTypes := mapreduce.Reduce(typeCounts); len(contentTypes) > 0 {
		stats.ContentTypes = contentTypes
	}
	return outputs, stats
}

// projectResults applies the terse format and the --fields projection.
func projectResults(outputs []ResultOutput, fields string, terse bool) interface{} {
	var results []interface{}
	for _, o := range outputs {
		if terse {
			results = append(results, ToTerseResult(o))
		} else {
			results = append(results, o)
		}
	}
	if results == nil {
		results = []interface{}{}
	}
	if fields == "" {
		return results
	}

	filtered := make([]map[string]interface{}, len(results))
	for i, r := range results {
		filtered[i] = common.FilterResultFields(r, fields, terse)
	}
	return filtered
}

// exitCode is 2 when every input failed, 1 when some did, 0 otherwise.
func exitCode(stats Stats) int {
	switch {
	case stats.TotalInputs > 0 && stats.Failed == stats.TotalInputs:
		return 2
	case stats.Failed > 0:
		return 1
	default:
		return 0
	}
}
