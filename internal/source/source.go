package source

import (
	"errors"
	"math/rand"
	"time"

	"CCIPulse/internal/model"
)

// Source produces the canonical index series. The sample generators here are
// stand-ins for a real feed; downstream only relies on getting an ordered
// series of numeric values over time.
type Source interface {
	Generate() (model.Series, error)
	Name() string
}

// ErrNoPeriods is returned when a generator is configured for zero points.
var ErrNoPeriods = errors.New("source: periods must be positive")

// monthlyTimestamps returns n monthly timestamps ending at end, oldest first.
func monthlyTimestamps(end time.Time, n int) []time.Time {
	ts := make([]time.Time, n)
	for i := 0; i < n; i++ {
		ts[i] = end.AddDate(0, -(n-1-i), 0)
	}
	return ts
}

func defaultRand(rng *rand.Rand) *rand.Rand {
	if rng != nil {
		return rng
	}
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
