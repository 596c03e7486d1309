package main

import (
	"context"
	"fmt"
	"os"

	"github.com/rxtech-lab/argo-graph/internal/config"
	"github.com/rxtech-lab/argo-graph/internal/types"
	"github.com/urfave/cli/v3"
)

// newApp builds the command tree. Flags declared on the root command are visible
// to every subcommand.
func newApp() *cli.Command {
	return &cli.Command{
		Name:  "graph",
		Usage: "Request points and draw them as a table and a chart",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to a YAML config `FILE`",
			},
			&cli.StringFlag{
				Name:  "source",
				Usage: fmt.Sprintf("Point source to use (%s, %s)", config.SourceMock, config.SourceRemote),
			},
			&cli.StringFlag{
				Name:  "base-url",
				Usage: "Base URL of the points API",
			},
			&cli.IntFlag{
				Name:    "count",
				Aliases: []string{"n"},
				Usage:   "Number of points to request",
			},
			&cli.StringFlag{
				Name:  "style",
				Usage: fmt.Sprintf("Render style (%s, %s)", types.GraphTypeSharp, types.GraphTypeSmooth),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Log level (debug, info, warn, error)",
			},
			&cli.StringFlag{
				Name:  "log-file",
				Usage: "Log file of the terminal UI",
			},
		},
		Action: tuiAction,
		Commands: []*cli.Command{
			{
				Name:   "tui",
				Usage:  "Open the interactive graph (default)",
				Action: tuiAction,
			},
			{
				Name:   "fetch",
				Usage:  "Request points once and print them",
				Action: fetchAction,
			},
			{
				Name:  "export",
				Usage: "Request points once and write the chart as PNG",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "out",
						Aliases: []string{"o"},
						Usage:   "Output `FILE`",
						Value:   "graph.png",
					},
					&cli.StringFlag{
						Name:  "title",
						Usage: "Chart title",
					},
				},
				Action: exportAction,
			},
			{
				Name:  "serve",
				Usage: "Run a local points API backed by the mock generator",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "addr",
						Usage: "Listen address",
						Value: ":8080",
					},
					&cli.StringFlag{
						Name:  "prefix",
						Usage: "Path prefix of the API",
						Value: "/api",
					},
					&cli.DurationFlag{
						Name:  "delay",
						Usage: "Simulated latency per request",
					},
				},
				Action: serveAction,
			},
			{
				Name:  "schema",
				Usage: "Print the JSON schema of the config file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "out",
						Usage: "Write the schema and a sample config into `DIR` instead of printing",
					},
				},
				Action: schemaAction,
			},
			{
				Name:   "version",
				Usage:  "Print the version",
				Action: versionAction,
			},
		},
	}
}

func main() {
	if err := newApp().Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
