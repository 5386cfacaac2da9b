package model

import "time"

// TimePoint is a single observation of the index.
type TimePoint struct {
	Time  time.Time `json:"time"`
	Value float64   `json:"value"`
}

// Series is an ordered sequence of observations with strictly increasing
// timestamps. Monthly cadence is assumed but gaps are tolerated.
type Series []TimePoint

// Len returns the number of points in the series.
func (s Series) Len() int { return len(s) }

// Last returns the final point of the series. The second return value is
// false for an empty series.
func (s Series) Last() (TimePoint, bool) {
	if len(s) == 0 {
		return TimePoint{}, false
	}
	return s[len(s)-1], true
}

// Tail returns the trailing n points. If n exceeds the series length the
// full series is returned.
func (s Series) Tail(n int) Series {
	if n >= len(s) {
		return s
	}
	return s[len(s)-n:]
}

// Values extracts the raw values in order.
func (s Series) Values() []float64 {
	values := make([]float64, len(s))
	for i, p := range s {
		values[i] = p.Value
	}
	return values
}

// MASeries is a moving-average overlay: the rolling statistic of a source
// series for one window length. Points start at the first index where a full
// window exists, so a series shorter than the window yields no points.
type MASeries struct {
	Window int    `json:"window"`
	Points Series `json:"points"`
}

// ProjectionPoint is one future point of the illustrative projection, with
// its uncertainty band. Lower <= Projected <= Upper always holds.
type ProjectionPoint struct {
	Time      time.Time `json:"time"`
	Projected float64   `json:"projected"`
	Lower     float64   `json:"lower"`
	Upper     float64   `json:"upper"`
}
