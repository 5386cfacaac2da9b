package source

import (
	"fmt"
	"math/rand"
	"time"

	"CCIPulse/internal/model"
)

// UniformSource draws each value i.i.d. from [Min, Max) with no temporal
// structure. Useful as a null-hypothesis data source.
type UniformSource struct {
	End     time.Time
	Periods int
	Min     float64
	Max     float64
	rng     *rand.Rand
}

// NewUniformSource creates a uniform-random generator over [min, max).
func NewUniformSource(end time.Time, periods int, min, max float64, rng *rand.Rand) *UniformSource {
	return &UniformSource{
		End:     end,
		Periods: periods,
		Min:     min,
		Max:     max,
		rng:     defaultRand(rng),
	}
}

func (g *UniformSource) Name() string { return "uniform" }

// Generate produces the monthly series.
func (g *UniformSource) Generate() (model.Series, error) {
	if g.Periods <= 0 {
		return nil, ErrNoPeriods
	}
	if g.Max < g.Min {
		return nil, fmt.Errorf("source: invalid range [%v, %v]", g.Min, g.Max)
	}
	ts := monthlyTimestamps(g.End, g.Periods)
	series := make(model.Series, g.Periods)
	for i := 0; i < g.Periods; i++ {
		series[i] = model.TimePoint{
			Time:  ts[i],
			Value: g.Min + g.rng.Float64()*(g.Max-g.Min),
		}
	}
	return series, nil
}
