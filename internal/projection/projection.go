// Package projection generates the illustrative forward curve shown beyond
// the end of the actual series.
//
// This is a placeholder projection, not a forecast: the curve and its band
// are a deterministic function of the elapsed horizon fraction, anchored at
// the last actual point. No model is fitted and no accuracy is implied. The
// shape to preserve is the widening uncertainty cone: zero band width at the
// anchor growing linearly to the configured maximum at the end of the
// horizon.
package projection

import (
	"errors"
	"math"

	"CCIPulse/internal/model"
)

// ErrEmptySeries is returned when projecting off a series with no history to
// extend: fewer than two actual points.
var ErrEmptySeries = errors.New("projection: empty series")

// Generator holds the curve parameters. For horizon fraction t in [0,1]:
//
//	projected = last + Amplitude*sin(2πt) + Drift*t
//	band      = Spread*t
type Generator struct {
	Amplitude float64
	Drift     float64
	Spread    float64
}

// NewGenerator creates a Generator with the given curve parameters.
func NewGenerator(amplitude, drift, spread float64) *Generator {
	return &Generator{Amplitude: amplitude, Drift: drift, Spread: spread}
}

// Project produces horizonMonths future monthly points anchored at the
// series' final actual point. The first point sits at t=0, so it coincides
// with the anchor value and carries zero band width; the band then widens
// linearly to Spread at t=1.
func (g *Generator) Project(series model.Series, horizonMonths int) ([]model.ProjectionPoint, error) {
	if series.Len() < 2 {
		return nil, ErrEmptySeries
	}
	last, _ := series.Last()
	if horizonMonths <= 0 {
		return nil, errors.New("projection: horizon must be positive")
	}

	points := make([]model.ProjectionPoint, horizonMonths)
	for i := 0; i < horizonMonths; i++ {
		var t float64
		if horizonMonths > 1 {
			t = float64(i) / float64(horizonMonths-1)
		}
		projected := last.Value + g.Amplitude*math.Sin(2*math.Pi*t) + g.Drift*t
		band := g.Spread * t
		points[i] = model.ProjectionPoint{
			Time:      last.Time.AddDate(0, i+1, 0),
			Projected: projected,
			Lower:     projected - band,
			Upper:     projected + band,
		}
	}
	return points, nil
}

// AnchoredLine returns the projected curve with the last actual point
// prepended, so the chart can draw the projection continuous with history.
func AnchoredLine(series model.Series, points []model.ProjectionPoint) model.Series {
	last, ok := series.Last()
	if !ok {
		return nil
	}
	line := make(model.Series, 0, len(points)+1)
	line = append(line, last)
	for _, p := range points {
		line = append(line, model.TimePoint{Time: p.Time, Value: p.Projected})
	}
	return line
}
