package main

import (
	"context"
	"log"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"

	"CCIPulse/internal/config"
	"CCIPulse/internal/projection"
	"CCIPulse/internal/recorder"
	"CCIPulse/internal/scheduler"
	"CCIPulse/internal/server"
	"CCIPulse/internal/source"
	"CCIPulse/internal/view"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.Println("[INFO] CCIPulse starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("[FATAL] load config: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("[FATAL] config validation: %v", err)
	}

	// Init data source
	end, err := cfg.EndDate()
	if err != nil {
		log.Fatalf("[FATAL] config end date: %v", err)
	}
	var rng *rand.Rand
	if cfg.Source.Seed != 0 {
		rng = rand.New(rand.NewSource(cfg.Source.Seed))
	}
	var src source.Source
	switch cfg.Source.Variant {
	case "uniform":
		src = source.NewUniformSource(end, cfg.Source.Periods, cfg.Source.UniformMin, cfg.Source.UniformMax, rng)
	default:
		src = source.NewTrendNoiseSource(end, cfg.Source.Periods, cfg.Source.NoiseSigma, rng)
	}
	log.Printf("[INFO] data source: %s", src.Name())

	// Initial series
	series, err := src.Generate()
	if err != nil {
		log.Fatalf("[FATAL] initial series generation: %v", err)
	}
	store := source.NewStore(series)
	log.Printf("[INFO] canonical series ready: %d points", series.Len())

	// Init composer
	proj := projection.NewGenerator(
		cfg.Analysis.ProjectionAmplitude,
		cfg.Analysis.ProjectionDrift,
		cfg.Analysis.ProjectionSpread,
	)
	composer := view.NewComposer(cfg.Analysis.VolatilityWindow, cfg.Analysis.ProjectionHorizonMonths, proj)

	// Init recorder
	var rec recorder.Recorder
	if cfg.Database.SQLitePath != "" {
		sr, err := recorder.NewSQLiteRecorder(cfg.Database.SQLitePath)
		if err != nil {
			log.Printf("[WARN] init sqlite recorder failed, using noop: %v", err)
			rec = recorder.NewNoopRecorder()
		} else {
			rec = sr
			defer sr.Close()
		}
	} else {
		rec = recorder.NewNoopRecorder()
	}

	// Init scheduler
	sched := scheduler.NewScheduler(src, store, composer, rec, cfg.Analysis.MAWindows)
	if err := sched.Register(cfg.Schedule.RefreshCron); err != nil {
		log.Fatalf("[FATAL] register refresh task: %v", err)
	}
	sched.Start()
	defer sched.Stop()

	// Init HTTP server
	handler := server.NewHandler(store, composer, cfg.Analysis.MAWindows, cfg.Analysis.DefaultPeriod, src.Name())
	router := chi.NewRouter()
	router.Mount("/api", handler.Routes())
	srv := &http.Server{Addr: cfg.HTTP.Addr, Handler: router}
	go func() {
		log.Printf("[INFO] http server listening on %s", cfg.HTTP.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("[FATAL] http server: %v", err)
		}
	}()

	// Optional: record a snapshot immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Println("[INFO] RUN_ON_START enabled, refreshing now")
		go sched.RefreshNow()
	}

	log.Println("[INFO] CCIPulse is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Println("[INFO] shutdown signal received, stopping...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("[ERROR] http shutdown: %v", err)
	}
	log.Println("[INFO] CCIPulse stopped")
}
