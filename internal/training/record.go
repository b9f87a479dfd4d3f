// Package training computes distance, mean speed and spent calories for
// running, walking and swimming workouts from raw sensor readings.
package training

// Kind identifies a workout variant by its sensor package code.
type Kind string

const (
	KindRunning  Kind = "RUN"
	KindWalking  Kind = "WLK"
	KindSwimming Kind = "SWM"
)

// Name returns the variant tag shown in reports.
func (k Kind) Name() string {
	switch k {
	case KindRunning:
		return "Running"
	case KindWalking:
		return "SportsWalking"
	case KindSwimming:
		return "Swimming"
	default:
		return string(k)
	}
}

// Record holds the readings every workout carries.
type Record struct {
	Action   float64 // steps, or strokes for swimming
	Hours    float64 // duration in hours
	WeightKg float64
}

// Running is a run: no readings beyond the common three.
type Running struct {
	Record
}

// Walking is a sports walk; calories depend on the walker's height.
type Walking struct {
	Record
	HeightCm float64
}

// Swimming is a pool swim; speed comes from pool geometry.
type Swimming struct {
	Record
	PoolLengthM float64
	PoolCount   float64
}

// NewRunning builds a Running from readings in declared order:
// action, duration, weight.
func NewRunning(readings []float64) (Running, error) {
	if err := checkArity(KindRunning, readings); err != nil {
		return Running{}, err
	}
	return Running{Record: newRecord(readings)}, nil
}

// NewWalking builds a Walking from readings in declared order:
// action, duration, weight, height.
func NewWalking(readings []float64) (Walking, error) {
	if err := checkArity(KindWalking, readings); err != nil {
		return Walking{}, err
	}
	return Walking{
		Record:   newRecord(readings),
		HeightCm: readings[3],
	}, nil
}

// NewSwimming builds a Swimming from readings in declared order:
// action, duration, weight, pool length, pool count.
func NewSwimming(readings []float64) (Swimming, error) {
	if err := checkArity(KindSwimming, readings); err != nil {
		return Swimming{}, err
	}
	return Swimming{
		Record:      newRecord(readings),
		PoolLengthM: readings[3],
		PoolCount:   readings[4],
	}, nil
}

func newRecord(readings []float64) Record {
	return Record{
		Action:   readings[0],
		Hours:    readings[1],
		WeightKg: readings[2],
	}
}

func checkArity(kind Kind, readings []float64) error {
	if want := Arity(kind); len(readings) != want {
		return &ArityMismatchError{Code: string(kind), Expected: want, Actual: len(readings)}
	}
	return nil
}
