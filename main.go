package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/dtnitsch/layout-blueprint/internal/build"
	"github.com/dtnitsch/layout-blueprint/pkg/help"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "layout-blueprint",
		Usage: "Turn long-form articles into deterministic layout blueprints",
		Commands: []*cli.Command{
			{
				Name:      "build",
				Usage:     "Build layout blueprints for markdown or HTML articles",
				ArgsUsage: "[files...]",
				Flags:     build.Flags(),
				Action:    build.BuildAction,
			},
			{
				Name:  "quickstart",
				Usage: "Print a quick-start reference as YAML",
				Action: func(c *cli.Context) error {
					fmt.Print(help.ColdstartYAML)
					return nil
				},
			},
		},
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.RunContext(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(2)
	}
}
