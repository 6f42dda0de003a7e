package build

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"path/filepath"
	"strings"

	"github.com/dtnitsch/layout-blueprint/internal/common"
	"github.com/dtnitsch/layout-blueprint/models"
	"github.com/dtnitsch/layout-blueprint/pkg/analytics"
	"github.com/dtnitsch/layout-blueprint/pkg/blueprint"
	"github.com/dtnitsch/layout-blueprint/pkg/extractor"
	"github.com/dtnitsch/layout-blueprint/pkg/mapreduce"
	"github.com/dtnitsch/layout-blueprint/pkg/parser"
	"github.com/dtnitsch/layout-blueprint/pkg/storage"
	"golang.org/x/sync/errgroup"
)

const defaultWorkers = 4

// runner holds what every job needs. Jobs share it read-only.
type runner struct {
	logger  *slog.Logger
	config  *models.BuildConfig
	builder *blueprint.Builder
	filter  *extractor.Strategy
	store   *storage.Storage
	parser  *parser.Parser
	words   *analytics.Analytics
}

// run builds a blueprint for every input with at most config.WorkerCount jobs
// in flight. Results keep input order. A failed input never stops the others.
func run(ctx context.Context, r *runner) ([]Result, map[string]int, error) {
	workers := r.config.WorkerCount
	if workers <= 0 {
		workers = defaultWorkers
	}

	r.logger.Info("Starting build phase", "input_count", len(r.config.Inputs), "workers", workers)
	results := make([]Result, len(r.config.Inputs))
	suffixes := nameSuffixes(r.config.Inputs)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, input := range r.config.Inputs {
		job := Job{Index: i, Input: input, NameSuffix: suffixes[i]}
		g.Go(func() error {
			results[job.Index] = r.process(gctx, job)
			return nil
		})
	}
	_ = g.Wait()
	r.logger.Info("All build workers finished")

	var runErr error
	intermediate := make([]map[string]int, 0, len(results))
	for _, result := range results {
		if result.Error != nil {
			runErr = fmt.Errorf("one or more inputs failed")
		}
		if result.WordCounts != nil {
			intermediate = append(intermediate, result.WordCounts)
		}
	}
	return results, mapreduce.Reduce(intermediate), runErr
}

func (r *runner) process(ctx context.Context, job Job) Result {
	result := Result{Input: job.Input}
	if err := ctx.Err(); err != nil {
		result.Error = err
		result.ErrorType = ErrorTypeCanceled
		return result
	}

	r.logger.Debug("Processing input", "index", job.Index, "input", job.Input)
	raw, err := r.store.ReadFile(job.Input)
	if err != nil {
		r.logger.Error("Error reading input", "input", job.Input, "error", err)
		result.Error = err
		result.ErrorType = ErrorTypeRead
		return result
	}
	result.FileSizeBytes = int64(len(raw))

	content := string(raw)
	opts := r.config.Options
	if r.config.HTMLInput || common.IsHTMLFile(job.Input) {
		article, err := r.parser.ParseArticle(fileURL(job.Input), content)
		if err != nil {
			r.logger.Error("Error parsing HTML", "input", job.Input, "error", err)
			result.Error = err
			result.ErrorType = ErrorTypeParse
			return result
		}
		content = article.Content
		if opts.TopicTitle == "" {
			opts.TopicTitle = article.Title
		}
	}

	bp := r.builder.Build(content, r.config.BriefSections, opts)
	result.WordCounts = mapreduce.Map(content, r.words)
	result.ContentTypes = mapreduce.MapContentTypes(bp)
	bp = extractor.FilterBlueprint(bp, r.filter)
	result.Blueprint = bp

	if r.config.OutputDir != "" {
		path := storage.OutputPath(r.config.OutputDir, job.Input, r.config.Format, job.NameSuffix)
		if err := r.store.Save(path, bp, r.config.Format); err != nil {
			r.logger.Error("Error saving blueprint", "input", job.Input, "path", path, "error", err)
			result.Error = err
			result.ErrorType = ErrorTypeSave
			return result
		}
		result.OutputPath = path
	}

	r.logger.Info("Blueprint built", "input", job.Input, "sections", len(bp.Sections), "blueprint_id", bp.ID)
	return result
}

// nameSuffixes numbers inputs whose base names were already seen, so their
// blueprint files do not overwrite each other.
func nameSuffixes(inputs []string) []int {
	seen := make(map[string]int, len(inputs))
	out := make([]int, len(inputs))
	for i, in := range inputs {
		base := strings.TrimSuffix(filepath.Base(in), filepath.Ext(in))
		out[i] = seen[base]
		seen[base]++
	}
	return out
}

// fileURL is the base URL readability resolves relative links against.
func fileURL(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
}
