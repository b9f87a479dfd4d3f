// main.go - Entry point and dependency wiring
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/sstent/fitstats/internal/batch"
	"github.com/sstent/fitstats/internal/config"
	"github.com/sstent/fitstats/internal/logging"
	"github.com/sstent/fitstats/internal/models"
	"github.com/sstent/fitstats/internal/parser"
	"github.com/sstent/fitstats/internal/report"
)

// samplePackages are processed when no input file is given.
var samplePackages = []models.Package{
	{Code: "SWM", Readings: []float64{720, 1, 80, 25, 40}, Source: "sample 1"},
	{Code: "RUN", Readings: []float64{15000, 1, 75}, Source: "sample 2"},
	{Code: "WLK", Readings: []float64{9000, 1, 75, 180}, Source: "sample 3"},
}

// stdinPath selects standard input as the packages source.
const stdinPath = "-"

type App struct {
	cfg    config.Config
	logger *zap.SugaredLogger
	batch  *batch.Service
	in     io.Reader
	out    io.Writer
}

func main() {
	// Load environment variables from .env file
	envErr := godotenv.Load()

	cfg := config.Load()
	flag.StringVar(&cfg.InputPath, "input", cfg.InputPath, "packages file (.txt, .json, .fit, .tcx), - for stdin; samples when empty")
	flag.StringVar(&cfg.Format, "format", cfg.Format, "output format: text or json")
	flag.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level")
	flag.Float64Var(&cfg.Athlete.WeightKg, "weight", cfg.Athlete.WeightKg, "athlete weight in kg for device files")
	flag.Float64Var(&cfg.Athlete.HeightCm, "height", cfg.Athlete.HeightCm, "athlete height in cm for device files")
	flag.Parse()
	cfg.Normalize()

	logger := logging.New(cfg.LogLevel)
	defer logger.Sync() //nolint:errcheck
	if envErr != nil {
		logger.Debug("No .env file found, using system environment variables")
	}

	app, err := newApp(cfg, logger, os.Stdin, os.Stdout)
	if err != nil {
		logger.Fatalw("Failed to initialize app", "error", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	failed, err := app.run(ctx)
	if err != nil {
		logger.Errorw("Run aborted", "error", err)
		os.Exit(1)
	}
	if failed > 0 {
		os.Exit(1)
	}
}

func newApp(cfg config.Config, logger *zap.SugaredLogger, in io.Reader, out io.Writer) (*App, error) {
	reporter, err := report.New(cfg.Format)
	if err != nil {
		return nil, err
	}
	return &App{
		cfg:    cfg,
		logger: logger,
		batch:  batch.NewService(reporter, logger),
		in:     in,
		out:    out,
	}, nil
}

// run processes the configured packages and prints one line per package.
// It returns the number of packages that failed.
func (app *App) run(ctx context.Context) (int, error) {
	packages, err := app.loadPackages()
	if err != nil {
		return 0, err
	}

	results, err := app.batch.Run(ctx, packages)
	for _, r := range results {
		if r.Err != nil {
			fmt.Fprintf(app.out, "error: %s: %v\n", r.Package.Source, r.Err)
			continue
		}
		fmt.Fprintln(app.out, r.Output)
	}
	if err != nil {
		return 0, err
	}
	return batch.Summarize(results).Failed, nil
}

func (app *App) loadPackages() ([]models.Package, error) {
	if app.cfg.InputPath == "" {
		app.logger.Info("No input file given, using sample packages")
		return samplePackages, nil
	}
	if app.cfg.InputPath == stdinPath {
		return app.readStdin()
	}

	p, err := parser.NewParser(app.cfg.InputPath, app.cfg.Athlete)
	if err != nil {
		return nil, err
	}
	packages, err := parser.ParseFile(p, app.cfg.InputPath)
	if err != nil {
		return nil, err
	}
	app.logger.Infow("Loaded packages", "path", app.cfg.InputPath, "count", len(packages))
	return packages, nil
}

// readStdin detects the format from the content, since there is no file
// name to go by.
func (app *App) readStdin() ([]models.Package, error) {
	data, err := io.ReadAll(app.in)
	if err != nil {
		return nil, fmt.Errorf("failed to read stdin: %w", err)
	}

	p, err := parser.NewParserFromData(data, app.cfg.Athlete)
	if err != nil {
		return nil, err
	}
	packages, err := p.ParseData(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse stdin: %w", err)
	}
	for i := range packages {
		packages[i].Source = "stdin:" + packages[i].Source
	}
	app.logger.Infow("Loaded packages", "path", stdinPath, "count", len(packages))
	return packages, nil
}
