package model

import "time"

// Metric is a scalar dashboard metric. Defined is false when the value could
// not be computed (e.g. percent change against a zero base); consumers show a
// placeholder instead.
type Metric struct {
	Value   float64 `json:"value"`
	Defined bool    `json:"defined"`
}

// DefinedMetric wraps a computed value.
func DefinedMetric(v float64) Metric { return Metric{Value: v, Defined: true} }

// Metrics holds the scalar summary cards of the dashboard.
type Metrics struct {
	Current         Metric `json:"current"`
	Change          Metric `json:"change"`
	PercentChange   Metric `json:"percent_change"`
	Volatility      Metric `json:"volatility"`
	ProjectedValue  Metric `json:"projected_value"`
	ProjectedChange Metric `json:"projected_change"`
}

// TableRow is one row of the dashboard data table: the observation plus any
// moving-average values defined at that date, keyed by window length.
type TableRow struct {
	Time  time.Time       `json:"time"`
	Value float64         `json:"value"`
	MA    map[int]float64 `json:"ma,omitempty"`
}

// ViewModel is the full bundle handed to the presentation layer for one
// user selection. All slices are freshly computed and owned by the caller.
type ViewModel struct {
	Period         string            `json:"period"`
	Series         Series            `json:"series"`
	MovingAverages []MASeries        `json:"moving_averages"`
	Projection     []ProjectionPoint `json:"projection,omitempty"`
	// ProjectionLine is the projection curve with the last actual point
	// prepended, so the chart draws it continuous with history.
	ProjectionLine Series     `json:"projection_line,omitempty"`
	Metrics        Metrics    `json:"metrics"`
	Rows           []TableRow `json:"rows"`
	GeneratedAt    time.Time  `json:"generated_at"`
}
