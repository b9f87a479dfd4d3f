// Package report renders workout summaries for people and for machines.
package report

import (
	"errors"
	"fmt"
	"math"

	json "github.com/goccy/go-json"

	"github.com/sstent/fitstats/internal/training"
)

// ErrUnknownFormat is returned by New for an unsupported output format.
var ErrUnknownFormat = errors.New("unknown report format")

const (
	FormatText = "text"
	FormatJSON = "json"
)

const phraseInfo = "Training type: %s; " +
	"Duration: %.3f h.; " +
	"Distance: %.3f km; " +
	"Avg speed: %.3f km/h; " +
	"Calories burned: %.3f."

// Reporter turns a summary into a single line of output.
type Reporter interface {
	Render(s training.Summary) (string, error)
}

// ReporterFunc adapts a function to the Reporter interface.
type ReporterFunc func(s training.Summary) (string, error)

func (f ReporterFunc) Render(s training.Summary) (string, error) {
	return f(s)
}

// New returns the reporter for format.
func New(format string) (Reporter, error) {
	switch format {
	case FormatText, "":
		return ReporterFunc(func(s training.Summary) (string, error) {
			return Text(s), nil
		}), nil
	case FormatJSON:
		return ReporterFunc(JSON), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// Text renders the summary as a one-line human readable message.
func Text(s training.Summary) string {
	return fmt.Sprintf(phraseInfo, s.Name, s.Duration, s.Distance, s.Speed, s.Calories)
}

type summaryJSON struct {
	Type     string   `json:"training_type"`
	Code     string   `json:"code"`
	Duration *float64 `json:"duration_h"`
	Distance *float64 `json:"distance_km"`
	Speed    *float64 `json:"speed_kmh"`
	Calories *float64 `json:"calories_kcal"`
}

// JSON renders the summary as a JSON object. Values that are not finite
// (a zero duration yields them) are encoded as null.
func JSON(s training.Summary) (string, error) {
	out, err := json.Marshal(summaryJSON{
		Type:     s.Name,
		Code:     string(s.Kind),
		Duration: finite(s.Duration),
		Distance: finite(s.Distance),
		Speed:    finite(s.Speed),
		Calories: finite(s.Calories),
	})
	if err != nil {
		return "", fmt.Errorf("failed to encode summary: %w", err)
	}
	return string(out), nil
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
