package training

import "math"

const (
	mInKm     = 1000
	minInHour = 60
	lenStep   = 0.65
	lenStroke = 1.38
)

// Calculator is the capability shared by all workout variants. The set of
// implementations is closed: Running, Walking and Swimming.
type Calculator interface {
	Kind() Kind
	Duration() float64
	Distance() float64
	MeanSpeed() float64
	SpentCalories() float64

	sealed()
}

// Duration returns the workout duration in hours.
func (r Record) Duration() float64 {
	return r.Hours
}

// Distance returns the covered distance in kilometres.
func (r Record) Distance() float64 {
	return r.Action * lenStep / mInKm
}

// MeanSpeed returns the average speed in km/h.
func (r Record) MeanSpeed() float64 {
	return r.Distance() / r.Hours
}

func (r Record) sealed() {}

const (
	runSpeedMultiplier = 18
	runSpeedShift      = 20
)

func (Running) Kind() Kind { return KindRunning }

// SpentCalories returns the kilocalories burned on the run.
func (r Running) SpentCalories() float64 {
	return (runSpeedMultiplier*r.MeanSpeed() - runSpeedShift) *
		r.WeightKg / mInKm * r.Hours * minInHour
}

const (
	walkWeightMultiplier = 0.035
	walkSpeedMultiplier  = 0.029
)

func (Walking) Kind() Kind { return KindWalking }

// SpentCalories returns the kilocalories burned on the walk. Only the
// speed²/height term is floored.
func (w Walking) SpentCalories() float64 {
	speed := w.MeanSpeed()
	return (walkWeightMultiplier*w.WeightKg +
		floorDiv(speed*speed, w.HeightCm)*walkSpeedMultiplier*w.WeightKg) *
		w.Hours * minInHour
}

const (
	swimSpeedShift       = 1.1
	swimWeightMultiplier = 2
)

func (Swimming) Kind() Kind { return KindSwimming }

// Distance counts strokes rather than steps.
func (s Swimming) Distance() float64 {
	return s.Action * lenStroke / mInKm
}

// MeanSpeed is derived from the pool geometry, not from Distance.
func (s Swimming) MeanSpeed() float64 {
	return s.PoolLengthM * s.PoolCount / mInKm / s.Hours
}

func (s Swimming) SpentCalories() float64 {
	return (s.MeanSpeed() + swimSpeedShift) * swimWeightMultiplier * s.WeightKg
}

// floorDiv divides rounding toward negative infinity the way a float floor
// division does: the quotient is built from the remainder, so 1 / 0.1
// floors to 9, not 10. Non-finite operands and a zero divisor fall back to
// IEEE division.
func floorDiv(a, b float64) float64 {
	if b == 0 || math.IsInf(a, 0) || math.IsInf(b, 0) || math.IsNaN(a) || math.IsNaN(b) {
		return math.Floor(a / b)
	}

	mod := math.Mod(a, b)
	div := (a - mod) / b
	if mod != 0 && (b < 0) != (mod < 0) {
		div--
	}
	if div == 0 {
		return math.Copysign(0, a/b)
	}

	floor := math.Floor(div)
	if div-floor > 0.5 {
		floor++
	}
	return floor
}
