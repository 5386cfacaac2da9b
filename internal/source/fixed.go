package source

import (
	"time"

	"CCIPulse/internal/model"
)

// FixedSource returns a predefined series. Used in tests and offline runs.
type FixedSource struct {
	Series model.Series
}

func (f *FixedSource) Name() string { return "fixed" }

func (f *FixedSource) Generate() (model.Series, error) {
	return f.Series, nil
}

// FixedMonthly builds a FixedSource from raw values on a monthly cadence
// ending at end.
func FixedMonthly(end time.Time, values []float64) *FixedSource {
	ts := monthlyTimestamps(end, len(values))
	series := make(model.Series, len(values))
	for i, v := range values {
		series[i] = model.TimePoint{Time: ts[i], Value: v}
	}
	return &FixedSource{Series: series}
}
