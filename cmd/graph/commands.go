package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rxtech-lab/argo-graph/internal/config"
	"github.com/rxtech-lab/argo-graph/internal/graph"
	"github.com/rxtech-lab/argo-graph/internal/logger"
	"github.com/rxtech-lab/argo-graph/internal/pointserver"
	"github.com/rxtech-lab/argo-graph/internal/render"
	"github.com/rxtech-lab/argo-graph/internal/types"
	"github.com/rxtech-lab/argo-graph/internal/version"
	"github.com/rxtech-lab/argo-graph/pkg/errors"
	"github.com/rxtech-lab/argo-graph/pkg/pointsource"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

const (
	schemaFileName       = "graph-config.json"
	sampleConfigFileName = "graph-config.yaml"
	shutdownTimeout      = 5 * time.Second
)

// loadConfig reads the config file named by --config and applies flag overrides on top.
func loadConfig(cmd *cli.Command) (config.Config, error) {
	cfg, err := config.Load(cmd.String("config"))
	if err != nil {
		return config.Config{}, err
	}

	if cmd.IsSet("source") {
		cfg.Source = config.SourceType(cmd.String("source"))
	}

	if cmd.IsSet("base-url") {
		cfg.BaseURL = cmd.String("base-url")
	}

	if cmd.IsSet("count") {
		cfg.InitialCount = cfg.ClampCount(int(cmd.Int("count")))
	}

	if cmd.IsSet("style") {
		graphType, ok := types.ParseGraphType(cmd.String("style"))
		if !ok {
			return config.Config{}, errors.Newf(errors.ErrCodeInvalidGraphType, "unknown render style %q", cmd.String("style"))
		}

		cfg.GraphType = graphType
	}

	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}

	if cmd.IsSet("log-file") {
		cfg.Log.File = cmd.String("log-file")
	}

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}

	return cfg, nil
}

// newCommandLogger creates the logger of a one-shot command. Log lines go to
// stderr so stdout only carries the command output.
func newCommandLogger(cfg config.Config) (*logger.Logger, error) {
	log, err := logger.NewLoggerWithConfig(cfg.Log.Level, []string{"stderr"})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to create logger", err)
	}

	return log, nil
}

func graphConfig(cfg config.Config) graph.Config {
	return graph.Config{
		InitialCount:  cfg.InitialCount,
		MaxCount:      cfg.SliderMax,
		OutdatedAfter: cfg.OutdatedAfter,
		GraphType:     cfg.GraphType,
	}
}

// fetchPoints runs a single request and returns the points sorted by x.
func fetchPoints(ctx context.Context, cfg config.Config, log *logger.Logger) (types.PointSet, error) {
	source, err := pointsource.NewPointSource(cfg, log)
	if err != nil {
		return nil, err
	}

	log.Info("Requesting points", zap.String("source", string(cfg.Source)), zap.Int("count", cfg.InitialCount))

	points, err := source.GetPoints(ctx, cfg.InitialCount)
	if err != nil {
		return nil, err
	}

	return points.SortedByX(), nil
}

func tuiAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	// The screen belongs to the UI; log lines only ever go to the log file.
	log := logger.NewNopLogger()
	if cfg.Log.File != "" {
		log, err = logger.NewLoggerWithConfig(cfg.Log.Level, []string{cfg.Log.File})
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to create logger", err)
		}
	}
	defer log.Sync() //nolint:errcheck

	source, err := pointsource.NewPointSource(cfg, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	controller := graph.NewController(source, graphConfig(cfg), log)
	model := NewModel(controller, ModelOptions{
		SourceName: string(cfg.Source),
		SliderMax:  cfg.SliderMax,
		SliderStep: cfg.SliderStep,
	})

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := controller.Run(ctx); err != nil {
			log.Error("Graph controller stopped", zap.Error(err))
		}
	}()

	_, err = tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()

	cancel()
	<-done

	if err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	return nil
}

func fetchAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := newCommandLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	points, err := fetchPoints(ctx, cfg, log)
	if err != nil {
		return err
	}

	return printPoints(cmd.Root().Writer, points, cfg.GraphType)
}

// printPoints writes the point table followed by a terminal chart.
func printPoints(w io.Writer, points types.PointSet, style types.GraphType) error {
	fmt.Fprintf(w, "%d points\n\n", len(points))

	if len(points) == 0 {
		fmt.Fprintln(w, "No data")
		return nil
	}

	fmt.Fprintf(w, "%4s %10s %10s\n", "#", "X", "Y")
	for i, p := range points {
		fmt.Fprintf(w, "%4d %10s %10s\n", i+1, FormatCoordinate(p.X), FormatCoordinate(p.Y))
	}

	plot, err := render.Plot(points, style, render.PlotOptions{Width: 60, Height: 12})
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "\n%s\n", plot)

	return nil
}

func exportAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := newCommandLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	points, err := fetchPoints(ctx, cfg, log)
	if err != nil {
		return err
	}

	title := cmd.String("title")
	if title == "" {
		title = fmt.Sprintf("%d points (%s)", len(points), cfg.GraphType.Label())
	}

	out := cmd.String("out")

	file, err := os.Create(out)
	if err != nil {
		return errors.Wrapf(errors.ErrCodeExportFailed, err, "failed to create %s", out)
	}
	defer file.Close()

	if err := render.ExportPNG(file, points, cfg.GraphType, title); err != nil {
		return err
	}

	log.Info("Chart exported", zap.String("path", out), zap.Int("points", len(points)))
	fmt.Fprintf(cmd.Root().Writer, "Chart written to %s\n", out)

	return nil
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	log, err := newCommandLogger(cfg)
	if err != nil {
		return err
	}
	defer log.Sync() //nolint:errcheck

	generator := pointsource.MockConfig{
		Seed:         cfg.Mock.Seed,
		XStep:        cfg.Mock.XStep,
		YMax:         cfg.Mock.YMax,
		FailureRate:  cfg.Mock.FailureRate,
		Reproducible: cfg.Mock.Reproducible,
	}
	if cmd.IsSet("delay") {
		generator.Delay = cmd.Duration("delay")
	}

	server := pointserver.New(pointserver.ServerConfig{
		Prefix:     cmd.String("prefix"),
		PointsPath: cfg.PointsPath,
		MinCount:   cfg.MinCount,
		MaxCount:   cfg.MaxCount,
		Shuffle:    true,
		Generator:  generator,
	}, log)

	if err := server.Start(cmd.String("addr")); err != nil {
		return errors.Wrap(errors.ErrCodeSourceUnavailable, "failed to start points server", err)
	}

	fmt.Fprintf(cmd.Root().Writer, "Serving points at %s/%s\n", server.BaseURL(), cfg.PointsPath)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	log.Info("Shutting down points server")

	return server.Shutdown(shutdownCtx)
}

func schemaAction(_ context.Context, cmd *cli.Command) error {
	schema, err := config.Schema()
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to generate schema", err)
	}

	dir := cmd.String("out")
	if dir == "" {
		fmt.Fprintln(cmd.Root().Writer, schema)
		return nil
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to create %s", dir)
	}

	schemaPath := filepath.Join(dir, schemaFileName)
	if err := os.WriteFile(schemaPath, []byte(schema), 0644); err != nil {
		return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to write %s", schemaPath)
	}

	// An existing sample config may carry user edits.
	samplePath := filepath.Join(dir, sampleConfigFileName)
	if _, err := os.Stat(samplePath); os.IsNotExist(err) {
		sample, err := yaml.Marshal(config.Default())
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to marshal sample config", err)
		}

		sample = append([]byte("# yaml-language-server: $schema="+schemaFileName+"\n"), sample...)
		if err := os.WriteFile(samplePath, sample, 0644); err != nil {
			return errors.Wrapf(errors.ErrCodeInvalidConfiguration, err, "failed to write %s", samplePath)
		}
	}

	fmt.Fprintf(cmd.Root().Writer, "Schema written to %s\n", schemaPath)

	return nil
}

func versionAction(_ context.Context, cmd *cli.Command) error {
	fmt.Fprintf(cmd.Root().Writer, "argo-graph %s (points API %s)\n", version.GetVersion(), version.APIVersion)
	return nil
}
