// Package batch runs a list of sensor packages through the calculators one
// at a time, recording failures per package instead of stopping.
package batch

import (
	"context"
	"fmt"
	"math"
	"time"

	"go.uber.org/zap"

	"github.com/sstent/fitstats/internal/models"
	"github.com/sstent/fitstats/internal/report"
	"github.com/sstent/fitstats/internal/training"
)

// Result is the outcome for one package: either a rendered summary or an
// error.
type Result struct {
	Package models.Package
	Summary training.Summary
	Output  string
	Err     error
}

type Stats struct {
	Total     int
	Succeeded int
	Failed    int
}

type Service struct {
	reporter report.Reporter
	logger   *zap.SugaredLogger
}

func NewService(reporter report.Reporter, logger *zap.SugaredLogger) *Service {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Service{
		reporter: reporter,
		logger:   logger,
	}
}

// Run processes packages in order. It returns early with ctx.Err() and the
// results gathered so far when ctx is cancelled.
func (s *Service) Run(ctx context.Context, packages []models.Package) ([]Result, error) {
	startTime := time.Now()
	s.logger.Debugw("starting batch", "packages", len(packages))

	results := make([]Result, 0, len(packages))
	for i, pkg := range packages {
		select {
		case <-ctx.Done():
			return results, ctx.Err()
		default:
		}

		s.logger.Debugw("processing package", "index", i+1, "total", len(packages), "package", pkg.String())
		result := s.process(pkg)
		if result.Err != nil {
			// Continue with next package on error
			s.logger.Errorw("package rejected", "source", pkg.Source, "code", pkg.Code, "error", result.Err)
		}
		results = append(results, result)
	}

	stats := Summarize(results)
	s.logger.Infow("batch completed",
		"total", stats.Total,
		"succeeded", stats.Succeeded,
		"failed", stats.Failed,
		"elapsed", time.Since(startTime),
	)
	return results, nil
}

func (s *Service) process(pkg models.Package) Result {
	result := Result{Package: pkg}

	calc, err := training.Resolve(pkg.Code, pkg.Readings)
	if err != nil {
		result.Err = err
		return result
	}

	result.Summary = training.Summarize(calc)
	if !isFinite(result.Summary) {
		s.logger.Warnw("non-finite workout figures, check the duration reading",
			"source", pkg.Source, "code", pkg.Code, "duration", result.Summary.Duration)
	}

	result.Output, err = s.reporter.Render(result.Summary)
	if err != nil {
		result.Err = fmt.Errorf("failed to render summary: %w", err)
	}
	return result
}

// Summarize counts successes and failures.
func Summarize(results []Result) Stats {
	stats := Stats{Total: len(results)}
	for _, r := range results {
		if r.Err != nil {
			stats.Failed++
		} else {
			stats.Succeeded++
		}
	}
	return stats
}

func isFinite(s training.Summary) bool {
	for _, v := range []float64{s.Duration, s.Distance, s.Speed, s.Calories} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}
