package parser

import (
	"bytes"
	"fmt"
	"time"

	"github.com/tormoder/fit"

	"github.com/sstent/fitstats/internal/models"
	"github.com/sstent/fitstats/internal/training"
)

// Invalid markers for unset FIT fields.
const (
	invalidUint16 = 0xFFFF
	invalidUint32 = 0xFFFFFFFF
)

// FITParser reads device activity files. Body measurements are not part of
// a session, so they come from the athlete profile.
type FITParser struct {
	athlete models.Athlete
}

func NewFITParser(athlete models.Athlete) *FITParser {
	return &FITParser{athlete: athlete}
}

func (p *FITParser) ParseData(data []byte) ([]models.Package, error) {
	fitFile, err := fit.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode FIT file: %w", err)
	}

	activity, err := fitFile.Activity()
	if err != nil {
		return nil, fmt.Errorf("failed to get activity from FIT: %w", err)
	}

	var packages []models.Package
	for i, session := range activity.Sessions {
		metrics, ok := metricsFromSession(session)
		if !ok {
			continue
		}
		pkg, ok := packageFromMetrics(metrics, p.athlete)
		if !ok {
			continue
		}
		pkg.Source = fmt.Sprintf("session %d", i+1)
		packages = append(packages, pkg)
	}

	if len(packages) == 0 {
		return nil, fmt.Errorf("%w: no running, walking or swimming session", ErrNoActivityData)
	}
	return packages, nil
}

func metricsFromSession(session *fit.SessionMsg) (models.ActivityMetrics, bool) {
	metrics := models.ActivityMetrics{StartTime: session.StartTime}

	switch session.Sport {
	case fit.SportRunning:
		metrics.ActivityType = "running"
	case fit.SportWalking:
		metrics.ActivityType = "walking"
	case fit.SportSwimming:
		metrics.ActivityType = "swimming"
	default:
		return metrics, false
	}

	if session.TotalTimerTime == invalidUint32 {
		return metrics, false
	}
	// total_timer_time is stored in milliseconds
	metrics.Duration = time.Duration(session.TotalTimerTime) * time.Millisecond

	if session.TotalCycles != invalidUint32 {
		metrics.Cycles = int(session.TotalCycles)
	}
	// pool_length is stored in centimeters
	if session.PoolLength != invalidUint16 {
		metrics.PoolLength = float64(session.PoolLength) / 100
	}
	if session.NumActiveLengths != invalidUint16 {
		metrics.PoolLengths = int(session.NumActiveLengths)
	}

	return metrics, true
}

// packageFromMetrics lays the session figures out in the reading order the
// calculators declare. Foot cycles are strides, so they count as two steps.
func packageFromMetrics(m models.ActivityMetrics, athlete models.Athlete) (models.Package, bool) {
	hours := m.Duration.Hours()

	switch m.ActivityType {
	case "running":
		return models.Package{
			Code:     string(training.KindRunning),
			Readings: []float64{float64(2 * m.Cycles), hours, athlete.WeightKg},
		}, true
	case "walking":
		return models.Package{
			Code:     string(training.KindWalking),
			Readings: []float64{float64(2 * m.Cycles), hours, athlete.WeightKg, athlete.HeightCm},
		}, true
	case "swimming":
		return models.Package{
			Code: string(training.KindSwimming),
			Readings: []float64{
				float64(m.Cycles), hours, athlete.WeightKg,
				m.PoolLength, float64(m.PoolLengths),
			},
		}, true
	default:
		return models.Package{}, false
	}
}
