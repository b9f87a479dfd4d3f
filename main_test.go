package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/sstent/fitstats/internal/config"
	"github.com/sstent/fitstats/internal/models"
	"github.com/sstent/fitstats/internal/parser"
	"github.com/sstent/fitstats/internal/report"
)

func testConfig() config.Config {
	return config.Config{
		Format:   report.FormatText,
		LogLevel: "info",
		Athlete:  models.Athlete{WeightKg: 75, HeightCm: 175},
	}
}

func TestRunSamples(t *testing.T) {
	var out bytes.Buffer
	app, err := newApp(testConfig(), zap.NewNop().Sugar(), strings.NewReader(""), &out)
	require.NoError(t, err)

	failed, err := app.run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, failed)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Training type: Swimming; Duration: 1.000 h.; Distance: 0.994 km; "+
		"Avg speed: 1.000 km/h; Calories burned: 336.000.", lines[0])
	assert.Equal(t, "Training type: Running; Duration: 1.000 h.; Distance: 9.750 km; "+
		"Avg speed: 9.750 km/h; Calories burned: 699.750.", lines[1])
	assert.Equal(t, "Training type: SportsWalking; Duration: 1.000 h.; Distance: 5.850 km; "+
		"Avg speed: 5.850 km/h; Calories burned: 157.500.", lines[2])
}

func TestRunInputFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "packages.txt")
	require.NoError(t, os.WriteFile(path, []byte("RUN 15000 1 75\nBIK 1 2 3\n"), 0o644))

	cfg := testConfig()
	cfg.InputPath = path
	cfg.Format = report.FormatJSON

	var out bytes.Buffer
	app, err := newApp(cfg, zap.NewNop().Sugar(), strings.NewReader(""), &out)
	require.NoError(t, err)

	failed, err := app.run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"training_type":"Running"`)
	assert.True(t, strings.HasPrefix(lines[1], "error: "+path+":line 2: "))
	assert.Contains(t, lines[1], `unknown activity "BIK"`)
}

func TestRunMissingInput(t *testing.T) {
	cfg := testConfig()
	cfg.InputPath = filepath.Join(t.TempDir(), "missing.txt")

	app, err := newApp(cfg, zap.NewNop().Sugar(), strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)

	_, err = app.run(context.Background())
	assert.Error(t, err)
}

func TestNewAppRejectsUnknownFormat(t *testing.T) {
	cfg := testConfig()
	cfg.Format = "xml"

	_, err := newApp(cfg, zap.NewNop().Sugar(), strings.NewReader(""), &bytes.Buffer{})
	assert.ErrorIs(t, err, report.ErrUnknownFormat)
}

func TestRunStdin(t *testing.T) {
	cfg := testConfig()
	cfg.InputPath = "-"

	in := strings.NewReader(`[{"type": "RUN", "data": [15000, 1, 75]}, {"type": "SWM", "data": [720, 1]}]`)
	var out bytes.Buffer
	app, err := newApp(cfg, zap.NewNop().Sugar(), in, &out)
	require.NoError(t, err)

	failed, err := app.run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, failed)

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Training type: Running;")
	assert.True(t, strings.HasPrefix(lines[1], "error: stdin:item 2: "))
	assert.Contains(t, lines[1], "expects 5 readings")
}

func TestRunStdinText(t *testing.T) {
	cfg := testConfig()
	cfg.InputPath = "-"

	var out bytes.Buffer
	app, err := newApp(cfg, zap.NewNop().Sugar(), strings.NewReader("WLK 9000 1 75 180\n"), &out)
	require.NoError(t, err)

	failed, err := app.run(context.Background())
	require.NoError(t, err)
	assert.Zero(t, failed)
	assert.Contains(t, out.String(), "Calories burned: 157.500.")
}

func TestRunStdinEmpty(t *testing.T) {
	cfg := testConfig()
	cfg.InputPath = "-"

	app, err := newApp(cfg, zap.NewNop().Sugar(), strings.NewReader(""), &bytes.Buffer{})
	require.NoError(t, err)

	_, err = app.run(context.Background())
	assert.ErrorIs(t, err, parser.ErrNoActivityData)
}
