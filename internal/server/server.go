// Package server exposes the composed dashboard view model over HTTP. The
// actual chart and widget rendering happens in the frontend; this layer only
// translates UI selections into Compose calls.
package server

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"

	"CCIPulse/internal/projection"
	"CCIPulse/internal/source"
	"CCIPulse/internal/view"
	"CCIPulse/internal/window"
)

// Handler handles dashboard HTTP requests.
type Handler struct {
	store         *source.Store
	composer      *view.Composer
	maWindows     []int
	defaultPeriod string
	sourceName    string
	started       time.Time
}

// NewHandler creates a Handler. maWindows is the configured set of selectable
// moving-average windows, used when the request does not pick its own.
func NewHandler(store *source.Store, composer *view.Composer, maWindows []int, defaultPeriod, sourceName string) *Handler {
	return &Handler{
		store:         store,
		composer:      composer,
		maWindows:     maWindows,
		defaultPeriod: defaultPeriod,
		sourceName:    sourceName,
		started:       time.Now(),
	}
}

// Routes returns the API routes.
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(render.SetContentType(render.ContentTypeJSON))

	r.Get("/dashboard", h.GetDashboard)
	r.Get("/periods", h.GetPeriods)
	r.Get("/health", h.GetHealth)
	return r
}

// GetDashboard handles GET /api/dashboard?period=<label>&ma=4&ma=12&projection=true.
// It recomputes the full view model from the canonical series on every call.
func (h *Handler) GetDashboard(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	period := q.Get("period")
	if period == "" {
		period = h.defaultPeriod
	}

	maWindows := h.maWindows
	if raw, ok := q["ma"]; ok {
		maWindows = make([]int, 0, len(raw))
		for _, s := range raw {
			n, err := strconv.Atoi(s)
			if err != nil || n < 1 {
				h.renderError(w, r, http.StatusBadRequest, "ma must be a positive integer: "+s)
				return
			}
			maWindows = append(maWindows, n)
		}
	}

	includeProjection := true
	if v := q.Get("projection"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			h.renderError(w, r, http.StatusBadRequest, "projection must be a boolean: "+v)
			return
		}
		includeProjection = b
	}

	vm, err := h.composer.Compose(h.store.Current(), period, maWindows, includeProjection)
	if err != nil {
		switch {
		case errors.Is(err, window.ErrInvalidPeriod):
			h.renderError(w, r, http.StatusBadRequest, "unknown period: "+period)
		case errors.Is(err, projection.ErrEmptySeries):
			h.renderError(w, r, http.StatusUnprocessableEntity, "series has no data")
		default:
			h.renderError(w, r, http.StatusInternalServerError, err.Error())
		}
		return
	}
	render.JSON(w, r, vm)
}

// GetPeriods handles GET /api/periods, feeding the frontend's selectors.
func (h *Handler) GetPeriods(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"periods":        window.Supported(),
		"ma_windows":     h.maWindows,
		"default_period": h.defaultPeriod,
	})
}

// GetHealth handles GET /api/health.
func (h *Handler) GetHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]interface{}{
		"status":        "ok",
		"source":        h.sourceName,
		"series_length": h.store.Current().Len(),
		"last_refresh":  h.store.LastRefresh().UTC().Format(time.RFC3339),
		"uptime":        time.Since(h.started).Truncate(time.Second).String(),
	})
}

func (h *Handler) renderError(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"error": msg})
}
