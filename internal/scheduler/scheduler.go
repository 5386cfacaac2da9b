package scheduler

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"CCIPulse/internal/recorder"
	"CCIPulse/internal/source"
	"CCIPulse/internal/view"
	"CCIPulse/internal/window"
)

// Scheduler periodically regenerates the canonical series from the configured
// source, swaps it into the store, and records a snapshot of the default view.
type Scheduler struct {
	Cron      *cron.Cron
	Source    source.Source
	Store     *source.Store
	Composer  *view.Composer
	Recorder  recorder.Recorder
	MAWindows []int
}

// NewScheduler creates a Scheduler.
func NewScheduler(src source.Source, store *source.Store, composer *view.Composer, rec recorder.Recorder, maWindows []int) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Source:    src,
		Store:     store,
		Composer:  composer,
		Recorder:  rec,
		MAWindows: maWindows,
	}
}

// Register registers the refresh task on the given cron spec.
func (s *Scheduler) Register(refreshCron string) error {
	if _, err := s.Cron.AddFunc(refreshCron, s.refreshTask); err != nil {
		return fmt.Errorf("register refresh task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Println("[INFO] scheduler started")
}

// Stop stops the cron scheduler gracefully.
func (s *Scheduler) Stop() {
	s.Cron.Stop()
	log.Println("[INFO] scheduler stopped")
}

// RefreshNow executes the refresh task immediately (manual trigger / RUN_ON_START).
func (s *Scheduler) RefreshNow() {
	s.refreshTask()
}

func (s *Scheduler) refreshTask() {
	log.Printf("[INFO] refreshing series from source %s", s.Source.Name())
	series, err := s.Source.Generate()
	if err != nil {
		log.Printf("[ERROR] refresh generate: %v", err)
		return
	}
	s.Store.Replace(series)

	// Snapshot the full-history view so recorded metrics are comparable
	// across refreshes regardless of the configured default period.
	vm, err := s.Composer.Compose(series, window.PeriodMax, s.MAWindows, true)
	if err != nil {
		log.Printf("[ERROR] refresh compose: %v", err)
		return
	}
	summary := view.FormatSummary(vm)
	log.Printf("[INFO] refresh complete\n%s", summary)

	if err := s.Recorder.RecordSnapshot(&recorder.Snapshot{
		Period:  window.PeriodMax,
		Source:  s.Source.Name(),
		Metrics: vm.Metrics,
		Summary: summary,
		Series:  series,
		TakenAt: time.Now(),
	}); err != nil {
		log.Printf("[ERROR] record snapshot: %v", err)
	}
}
