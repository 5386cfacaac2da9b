package view

import (
	"errors"
	"fmt"
	"log"
	"time"

	"CCIPulse/internal/calculator"
	"CCIPulse/internal/model"
	"CCIPulse/internal/projection"
	"CCIPulse/internal/window"
)

// ErrUndefinedMetric marks a metric that cannot be computed from the data at
// hand, such as a percent change against a zero base.
var ErrUndefinedMetric = errors.New("view: metric undefined")

// Composer assembles the dashboard view model from the canonical series and
// the user's selections. All output is freshly computed per call; the input
// series is never mutated.
type Composer struct {
	VolatilityWindow int
	HorizonMonths    int
	Projector        *projection.Generator
}

// NewComposer creates a Composer.
func NewComposer(volatilityWindow, horizonMonths int, projector *projection.Generator) *Composer {
	return &Composer{
		VolatilityWindow: volatilityWindow,
		HorizonMonths:    horizonMonths,
		Projector:        projector,
	}
}

// Compose filters the series to the named period, computes the requested
// moving averages and optional projection, and derives the scalar metrics.
//
// Malformed input (empty series, unknown period) fails the call. A single
// metric or overlay that cannot be computed does not: it is logged, left
// undefined, and the rest of the view is still produced.
func (c *Composer) Compose(series model.Series, period string, maWindows []int, includeProjection bool) (*model.ViewModel, error) {
	if len(series) == 0 {
		return nil, fmt.Errorf("compose: %w", projection.ErrEmptySeries)
	}
	filtered, err := window.Filter(series, period)
	if err != nil {
		return nil, fmt.Errorf("compose: %w", err)
	}

	vm := &model.ViewModel{
		Period:      period,
		Series:      filtered,
		GeneratedAt: time.Now(),
	}

	for _, w := range maWindows {
		ma, err := calculator.RollingMean(filtered, w)
		if err != nil {
			log.Printf("[WARN] rolling mean (window %d) failed: %v", w, err)
			continue
		}
		vm.MovingAverages = append(vm.MovingAverages, ma)
	}

	c.computeMetrics(vm, filtered)

	if includeProjection {
		points, err := c.Projector.Project(filtered, c.HorizonMonths)
		if err != nil {
			log.Printf("[WARN] projection failed: %v", err)
		} else {
			vm.Projection = points
			vm.ProjectionLine = projection.AnchoredLine(filtered, points)
			final := points[len(points)-1].Projected
			vm.Metrics.ProjectedValue = model.DefinedMetric(final)
			vm.Metrics.ProjectedChange = model.DefinedMetric(final - vm.Metrics.Current.Value)
		}
	}

	vm.Rows = buildRows(filtered, vm.MovingAverages)
	return vm, nil
}

func (c *Composer) computeMetrics(vm *model.ViewModel, filtered model.Series) {
	last, _ := filtered.Last()
	vm.Metrics.Current = model.DefinedMetric(last.Value)

	if len(filtered) >= 2 {
		prev := filtered[len(filtered)-2].Value
		change := last.Value - prev
		vm.Metrics.Change = model.DefinedMetric(change)

		pct, err := percentChange(change, prev)
		if err != nil {
			log.Printf("[WARN] percent change: %v", err)
		} else {
			vm.Metrics.PercentChange = model.DefinedMetric(pct)
		}
	}

	sd, err := calculator.RollingStdDev(filtered, c.VolatilityWindow)
	if err != nil {
		log.Printf("[WARN] rolling stddev (window %d) failed: %v", c.VolatilityWindow, err)
		return
	}
	if p, ok := sd.Points.Last(); ok {
		vm.Metrics.Volatility = model.DefinedMetric(p.Value)
	}
}

// percentChange returns change relative to base in percent. A zero base makes
// the metric undefined rather than infinite.
func percentChange(change, base float64) (float64, error) {
	if base == 0 {
		return 0, ErrUndefinedMetric
	}
	return change / base * 100, nil
}

// buildRows assembles the data-table rows: each observation plus the MA
// values defined at its date.
func buildRows(filtered model.Series, mas []model.MASeries) []model.TableRow {
	byTime := make([]map[time.Time]float64, len(mas))
	for i, ma := range mas {
		byTime[i] = make(map[time.Time]float64, len(ma.Points))
		for _, p := range ma.Points {
			byTime[i][p.Time] = p.Value
		}
	}

	rows := make([]model.TableRow, len(filtered))
	for i, p := range filtered {
		row := model.TableRow{Time: p.Time, Value: p.Value}
		for j, ma := range mas {
			if v, ok := byTime[j][p.Time]; ok {
				if row.MA == nil {
					row.MA = make(map[int]float64, len(mas))
				}
				row.MA[ma.Window] = v
			}
		}
		rows[i] = row
	}
	return rows
}
