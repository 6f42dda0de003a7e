package build

import "github.com/urfave/cli/v2"

// Flags are the build command's flags.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringSliceFlag{
			Name:    "inputs",
			Aliases: []string{"i"},
			Usage:   "Markdown or HTML files, globs or directories (comma-separated or repeated)",
		},
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "YAML config with style profile, brief sections and website layouts",
		},
		&cli.StringFlag{
			Name:  "profile",
			Usage: "YAML style profile merged over the config's profile",
		},
		&cli.IntFlag{
			Name:    "workers",
			Aliases: []string{"w"},
			Value:   defaultWorkers,
			Usage:   "Number of inputs processed concurrently",
		},
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Value:   "json",
			Usage:   "Output format: json or yaml",
		},
		&cli.StringFlag{
			Name:    "output-dir",
			Aliases: []string{"o"},
			Usage:   "Write one blueprint file per input into this directory",
		},
		&cli.StringFlag{
			Name:  "filter",
			Usage: `Keep only matching sections, e.g. "weight:>=4,type:faq|steps,zone:main"`,
		},
		&cli.BoolFlag{
			Name:  "html",
			Usage: "Treat every input as HTML regardless of extension",
		},
		&cli.StringFlag{
			Name:  "website-type",
			Usage: "Website type for component selection (saas, blog, ecommerce, agency, documentation, local-business)",
		},
		&cli.StringFlag{
			Name:  "main-intent",
			Usage: "Search intent the article answers; matching headings gain weight",
		},
		&cli.StringFlag{
			Name:  "topic-title",
			Usage: "Blueprint title (defaults to the first top-level heading)",
		},
		&cli.BoolFlag{
			Name:  "core-topic",
			Usage: "Mark the article as a core topic",
		},
		&cli.BoolFlag{
			Name:  "no-language",
			Usage: "Skip section language detection",
		},
		&cli.BoolFlag{
			Name:  "print",
			Usage: "Include full blueprints in the stdout summary",
		},
		&cli.BoolFlag{
			Name:  "terse",
			Usage: "Abbreviated result field names",
		},
		&cli.StringFlag{
			Name:  "fields",
			Usage: "Comma-separated result fields to keep",
		},
		&cli.BoolFlag{
			Name:    "quiet",
			Aliases: []string{"q"},
			Usage:   "Only log errors",
		},
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "Log every section decision",
		},
	}
}
