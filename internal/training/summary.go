package training

// Summary is a snapshot of a calculator's results, ready for a reporter.
type Summary struct {
	Kind     Kind
	Name     string
	Duration float64 // hours
	Distance float64 // km
	Speed    float64 // km/h
	Calories float64 // kcal
}

// Summarize evaluates every metric of c once.
func Summarize(c Calculator) Summary {
	return Summary{
		Kind:     c.Kind(),
		Name:     c.Kind().Name(),
		Duration: c.Duration(),
		Distance: c.Distance(),
		Speed:    c.MeanSpeed(),
		Calories: c.SpentCalories(),
	}
}
