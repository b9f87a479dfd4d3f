package models

import (
	"fmt"
	"strings"
)

// Package is one raw sensor package: an activity code plus its readings in
// declared order.
type Package struct {
	Code     string    `json:"type"`
	Readings []float64 `json:"data"`
	Source   string    `json:"-"`
}

func (p Package) String() string {
	values := make([]string, len(p.Readings))
	for i, v := range p.Readings {
		values[i] = fmt.Sprintf("%g", v)
	}
	return fmt.Sprintf("%s [%s]", p.Code, strings.Join(values, ", "))
}

// Athlete carries the body measurements device files do not record per
// session.
type Athlete struct {
	WeightKg float64
	HeightCm float64
}
