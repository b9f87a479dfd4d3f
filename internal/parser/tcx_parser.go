package parser

import (
	"encoding/xml"
	"fmt"

	"github.com/sstent/fitstats/internal/models"
	"github.com/sstent/fitstats/internal/training"
)

// TCXParser reads Garmin Training Center files. TCX only tells running apart
// from biking and "Other", so only running activities produce packages.
type TCXParser struct {
	athlete models.Athlete
}

func NewTCXParser(athlete models.Athlete) *TCXParser {
	return &TCXParser{athlete: athlete}
}

type TCXTrainingCenterDatabase struct {
	Activities TCXActivities `xml:"Activities"`
}

type TCXActivities struct {
	Activity []TCXActivity `xml:"Activity"`
}

type TCXActivity struct {
	Sport string   `xml:"Sport,attr"`
	Laps  []TCXLap `xml:"Lap"`
}

type TCXLap struct {
	StartTime        string  `xml:"StartTime,attr"`
	TotalTimeSeconds float64 `xml:"TotalTimeSeconds"`
	DistanceMeters   float64 `xml:"DistanceMeters"`
	Steps            int     `xml:"Extensions>LX>Steps"`
}

func (p *TCXParser) ParseData(data []byte) ([]models.Package, error) {
	var tcx TCXTrainingCenterDatabase
	if err := xml.Unmarshal(data, &tcx); err != nil {
		return nil, fmt.Errorf("failed to decode TCX file: %w", err)
	}

	var packages []models.Package
	for i, activity := range tcx.Activities.Activity {
		if activity.Sport != "Running" || len(activity.Laps) == 0 {
			continue
		}

		// Aggregate data from all laps
		var totalSeconds float64
		var totalSteps int
		for _, lap := range activity.Laps {
			totalSeconds += lap.TotalTimeSeconds
			totalSteps += lap.Steps
		}

		hours := totalSeconds / 3600
		packages = append(packages, models.Package{
			Code:     string(training.KindRunning),
			Readings: []float64{float64(totalSteps), hours, p.athlete.WeightKg},
			Source:   fmt.Sprintf("activity %d", i+1),
		})
	}

	if len(packages) == 0 {
		return nil, fmt.Errorf("%w: no running activity with laps", ErrNoActivityData)
	}
	return packages, nil
}
