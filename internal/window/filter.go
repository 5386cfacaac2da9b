// Package window maps the dashboard's named time periods to trailing slices
// of the canonical series.
package window

import (
	"errors"

	"CCIPulse/internal/model"
)

// PeriodMax selects the entire series.
const PeriodMax = "Max"

// ErrInvalidPeriod is returned for an unrecognized period label.
var ErrInvalidPeriod = errors.New("window: invalid period label")

// periodMonths maps each supported label to its trailing month count.
var periodMonths = map[string]int{
	"6 Months": 6,
	"1 Year":   12,
	"3 Years":  36,
	"10 Years": 120,
}

// supported lists the labels in display order.
var supported = []string{"6 Months", "1 Year", "3 Years", "10 Years", PeriodMax}

// Supported returns the recognized period labels in display order.
func Supported() []string {
	out := make([]string, len(supported))
	copy(out, supported)
	return out
}

// Valid reports whether label is a recognized period.
func Valid(label string) bool {
	if label == PeriodMax {
		return true
	}
	_, ok := periodMonths[label]
	return ok
}

// Filter returns the trailing slice of series covering the named period,
// ending at the series' last timestamp. "Max" returns the full series. A
// window longer than the available history also returns the full series
// rather than padding or failing.
func Filter(series model.Series, label string) (model.Series, error) {
	if label == PeriodMax {
		return series, nil
	}
	months, ok := periodMonths[label]
	if !ok {
		return nil, ErrInvalidPeriod
	}
	return series.Tail(months), nil
}
