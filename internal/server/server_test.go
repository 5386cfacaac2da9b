package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CCIPulse/internal/model"
	"CCIPulse/internal/projection"
	"CCIPulse/internal/source"
	"CCIPulse/internal/view"
)

func newTestServer(t *testing.T, series model.Series) *httptest.Server {
	t.Helper()
	store := source.NewStore(series)
	composer := view.NewComposer(4, 12, projection.NewGenerator(10, 5, 10))
	h := NewHandler(store, composer, []int{4, 12}, "6 Months", "fixed")

	srv := httptest.NewServer(h.Routes())
	t.Cleanup(srv.Close)
	return srv
}

func testSeries(n int) model.Series {
	end := time.Date(2025, 1, 14, 0, 0, 0, 0, time.UTC)
	series := make(model.Series, n)
	for i := 0; i < n; i++ {
		series[i] = model.TimePoint{
			Time:  end.AddDate(0, -(n - 1 - i), 0),
			Value: float64(100 + i),
		}
	}
	return series
}

func getJSON(t *testing.T, url string, wantStatus int, into interface{}) {
	t.Helper()
	resp, err := http.Get(url)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, wantStatus, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(into))
}

func TestGetDashboard_Defaults(t *testing.T) {
	srv := newTestServer(t, testSeries(120))

	var vm model.ViewModel
	getJSON(t, srv.URL+"/dashboard", http.StatusOK, &vm)

	assert.Equal(t, "6 Months", vm.Period)
	assert.Len(t, vm.Series, 6)
	assert.Len(t, vm.MovingAverages, 2)
	assert.Len(t, vm.Projection, 12)
	assert.True(t, vm.Metrics.Current.Defined)
	assert.Equal(t, 219.0, vm.Metrics.Current.Value)
}

func TestGetDashboard_Selections(t *testing.T) {
	srv := newTestServer(t, testSeries(120))

	var vm model.ViewModel
	getJSON(t, srv.URL+"/dashboard?period=1+Year&ma=4&projection=false", http.StatusOK, &vm)

	assert.Equal(t, "1 Year", vm.Period)
	assert.Len(t, vm.Series, 12)
	require.Len(t, vm.MovingAverages, 1)
	assert.Equal(t, 4, vm.MovingAverages[0].Window)
	assert.Empty(t, vm.Projection)
	assert.False(t, vm.Metrics.ProjectedChange.Defined)
}

func TestGetDashboard_UnknownPeriod(t *testing.T) {
	srv := newTestServer(t, testSeries(12))

	var body map[string]string
	getJSON(t, srv.URL+"/dashboard?period=Fortnight", http.StatusBadRequest, &body)
	assert.Contains(t, body["error"], "unknown period")
}

func TestGetDashboard_BadParams(t *testing.T) {
	srv := newTestServer(t, testSeries(12))

	var body map[string]string
	getJSON(t, srv.URL+"/dashboard?ma=abc", http.StatusBadRequest, &body)
	assert.Contains(t, body["error"], "ma must be a positive integer")

	getJSON(t, srv.URL+"/dashboard?projection=maybe", http.StatusBadRequest, &body)
	assert.Contains(t, body["error"], "projection must be a boolean")
}

func TestGetDashboard_EmptySeries(t *testing.T) {
	srv := newTestServer(t, model.Series{})

	var body map[string]string
	getJSON(t, srv.URL+"/dashboard", http.StatusUnprocessableEntity, &body)
	assert.Contains(t, body["error"], "no data")
}

func TestGetPeriods(t *testing.T) {
	srv := newTestServer(t, testSeries(12))

	var body struct {
		Periods       []string `json:"periods"`
		MAWindows     []int    `json:"ma_windows"`
		DefaultPeriod string   `json:"default_period"`
	}
	getJSON(t, srv.URL+"/periods", http.StatusOK, &body)

	assert.Equal(t, []string{"6 Months", "1 Year", "3 Years", "10 Years", "Max"}, body.Periods)
	assert.Equal(t, []int{4, 12}, body.MAWindows)
	assert.Equal(t, "6 Months", body.DefaultPeriod)
}

func TestGetHealth(t *testing.T) {
	srv := newTestServer(t, testSeries(12))

	var body struct {
		Status       string `json:"status"`
		Source       string `json:"source"`
		SeriesLength int    `json:"series_length"`
	}
	getJSON(t, srv.URL+"/health", http.StatusOK, &body)

	assert.Equal(t, "ok", body.Status)
	assert.Equal(t, "fixed", body.Source)
	assert.Equal(t, 12, body.SeriesLength)
}
