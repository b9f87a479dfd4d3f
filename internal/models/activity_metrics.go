package models

import "time"

// ActivityMetrics contains the session figures needed to rebuild a sensor
// package from a device file.
type ActivityMetrics struct {
	ActivityType string // running, walking or swimming
	StartTime    time.Time
	Duration     time.Duration
	Cycles       int     // strides on foot, strokes in the pool
	PoolLength   float64 // in meters
	PoolLengths  int
}
