package calculator

import (
	"math"
	"testing"
	"time"

	"CCIPulse/internal/model"
)

func monthlySeries(values ...float64) model.Series {
	end := time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)
	series := make(model.Series, len(values))
	for i, v := range values {
		series[i] = model.TimePoint{
			Time:  end.AddDate(0, -(len(values) - 1 - i), 0),
			Value: v,
		}
	}
	return series
}

func TestRollingMean_KnownValues(t *testing.T) {
	series := monthlySeries(100, 102, 101, 103, 105, 104, 106, 108, 107, 109, 110, 112)

	ma, err := RollingMean(series, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := len(ma.Points), len(series)-4+1; got != want {
		t.Fatalf("expected %d points, got %d", want, got)
	}
	// First defined point covers indices 0..3 of the source.
	if got, want := ma.Points[0].Value, (100.0+102+101+103)/4; math.Abs(got-want) > 1e-10 {
		t.Errorf("expected first MA %.4f, got %.4f", want, got)
	}
	if !ma.Points[0].Time.Equal(series[3].Time) {
		t.Errorf("first MA point should carry the timestamp of the 4th observation")
	}
	last := ma.Points[len(ma.Points)-1]
	if want := (107.0 + 109 + 110 + 112) / 4; math.Abs(last.Value-want) > 1e-10 {
		t.Errorf("expected last MA %.4f, got %.4f", want, last.Value)
	}
}

func TestRollingMean_PointCounts(t *testing.T) {
	series := monthlySeries(1, 2, 3, 4, 5, 6, 7, 8)

	tests := []struct {
		window int
		count  int
	}{
		{1, 8},
		{2, 7},
		{4, 5},
		{8, 1},
		{9, 0},
		{100, 0},
	}
	for _, tt := range tests {
		ma, err := RollingMean(series, tt.window)
		if err != nil {
			t.Fatalf("window %d: unexpected error: %v", tt.window, err)
		}
		if len(ma.Points) != tt.count {
			t.Errorf("window %d: expected %d points, got %d", tt.window, tt.count, len(ma.Points))
		}
		if ma.Window != tt.window {
			t.Errorf("window %d: result carries window %d", tt.window, ma.Window)
		}
	}
}

func TestRollingMean_InvalidWindow(t *testing.T) {
	series := monthlySeries(1, 2, 3)
	for _, w := range []int{0, -1} {
		if _, err := RollingMean(series, w); err == nil {
			t.Errorf("expected error for window %d", w)
		}
	}
}

func TestRollingStdDev_KnownValues(t *testing.T) {
	series := monthlySeries(2, 4, 4, 4, 5, 5, 7, 9)

	sd, err := RollingStdDev(series, 8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sd.Points) != 1 {
		t.Fatalf("expected 1 point, got %d", len(sd.Points))
	}
	// Sample stddev of the full window.
	want := math.Sqrt(4.571428571428571)
	if got := sd.Points[0].Value; math.Abs(got-want) > 1e-10 {
		t.Errorf("expected stddev %.6f, got %.6f", want, got)
	}
}

func TestRollingStdDev_WindowOfOne(t *testing.T) {
	series := monthlySeries(3, 7, 11)
	sd, err := RollingStdDev(series, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for i, p := range sd.Points {
		if p.Value != 0 {
			t.Errorf("point %d: single-observation window should have zero dispersion, got %f", i, p.Value)
		}
	}
}

func TestRollingStdDev_WindowLargerThanSeries(t *testing.T) {
	series := monthlySeries(1, 2)
	sd, err := RollingStdDev(series, 4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(sd.Points) != 0 {
		t.Errorf("expected no points, got %d", len(sd.Points))
	}
}
