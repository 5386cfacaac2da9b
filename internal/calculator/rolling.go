package calculator

import (
	"errors"
	"math"

	"CCIPulse/internal/model"
)

// RollingMean computes the trailing simple moving average of the series over
// the given window. The result is defined from index window-1 on; a window
// longer than the series yields an empty overlay. The exact window size is
// used at every point, with no centering or interpolation.
func RollingMean(series model.Series, window int) (model.MASeries, error) {
	if window <= 0 {
		return model.MASeries{}, errors.New("window must be positive")
	}
	ma := model.MASeries{Window: window}
	if window > len(series) {
		return ma, nil
	}

	ma.Points = make(model.Series, 0, len(series)-window+1)
	sum := 0.0
	for i, p := range series {
		sum += p.Value
		if i >= window {
			sum -= series[i-window].Value
		}
		if i >= window-1 {
			ma.Points = append(ma.Points, model.TimePoint{
				Time:  p.Time,
				Value: sum / float64(window),
			})
		}
	}
	return ma, nil
}

// RollingStdDev computes the trailing sample standard deviation with the same
// windowing rule as RollingMean. Used for the volatility metric.
func RollingStdDev(series model.Series, window int) (model.MASeries, error) {
	if window <= 0 {
		return model.MASeries{}, errors.New("window must be positive")
	}
	sd := model.MASeries{Window: window}
	if window > len(series) {
		return sd, nil
	}

	sd.Points = make(model.Series, 0, len(series)-window+1)
	for i := window - 1; i < len(series); i++ {
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += series[j].Value
		}
		mean := sum / float64(window)

		sumSq := 0.0
		for j := i - window + 1; j <= i; j++ {
			diff := series[j].Value - mean
			sumSq += diff * diff
		}
		var std float64
		if window > 1 {
			std = math.Sqrt(sumSq / float64(window-1))
		}
		sd.Points = append(sd.Points, model.TimePoint{
			Time:  series[i].Time,
			Value: std,
		})
	}
	return sd, nil
}
