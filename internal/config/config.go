package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"CCIPulse/internal/window"
)

// Config holds all application configuration.
type Config struct {
	HTTP struct {
		Addr string `yaml:"addr"`
	} `yaml:"http"`
	Schedule struct {
		RefreshCron string `yaml:"refresh_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Source struct {
		Variant    string  `yaml:"variant"` // "trend_noise" or "uniform"
		Seed       int64   `yaml:"seed"`    // 0 means time-seeded
		Periods    int     `yaml:"periods"`
		EndDate    string  `yaml:"end_date"` // YYYY-MM-DD, empty means today
		NoiseSigma float64 `yaml:"noise_sigma"`
		UniformMin float64 `yaml:"uniform_min"`
		UniformMax float64 `yaml:"uniform_max"`
	} `yaml:"source"`
	Analysis struct {
		MAWindows               []int   `yaml:"ma_windows"`
		VolatilityWindow        int     `yaml:"volatility_window"`
		DefaultPeriod           string  `yaml:"default_period"`
		ProjectionHorizonMonths int     `yaml:"projection_horizon_months"`
		ProjectionAmplitude     float64 `yaml:"projection_amplitude"`
		ProjectionDrift         float64 `yaml:"projection_drift"`
		ProjectionSpread        float64 `yaml:"projection_spread"`
	} `yaml:"analysis"`
}

// Load reads config from a YAML file, then applies environment variable
// overrides, then fills in defaults.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("HTTP_ADDR"); v != "" {
		cfg.HTTP.Addr = v
	}
	if v := os.Getenv("REFRESH_CRON"); v != "" {
		cfg.Schedule.RefreshCron = v
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("SOURCE_VARIANT"); v != "" {
		cfg.Source.Variant = v
	}
	if v := os.Getenv("SOURCE_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Source.Seed = seed
		}
	}
	if v := os.Getenv("SOURCE_PERIODS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Source.Periods = n
		}
	}

	// Defaults
	if cfg.HTTP.Addr == "" {
		cfg.HTTP.Addr = ":8080"
	}
	if cfg.Schedule.RefreshCron == "" {
		cfg.Schedule.RefreshCron = "0 0 * * * *"
	}
	if cfg.Source.Variant == "" {
		cfg.Source.Variant = "trend_noise"
	}
	if cfg.Source.Periods == 0 {
		cfg.Source.Periods = 120
	}
	if cfg.Source.NoiseSigma == 0 {
		cfg.Source.NoiseSigma = 5
	}
	if cfg.Source.UniformMin == 0 && cfg.Source.UniformMax == 0 {
		cfg.Source.UniformMin = 80
		cfg.Source.UniformMax = 120
	}
	if len(cfg.Analysis.MAWindows) == 0 {
		cfg.Analysis.MAWindows = []int{4, 12}
	}
	if cfg.Analysis.VolatilityWindow == 0 {
		cfg.Analysis.VolatilityWindow = 4
	}
	if cfg.Analysis.DefaultPeriod == "" {
		cfg.Analysis.DefaultPeriod = "6 Months"
	}
	if cfg.Analysis.ProjectionHorizonMonths == 0 {
		cfg.Analysis.ProjectionHorizonMonths = 12
	}
	if cfg.Analysis.ProjectionAmplitude == 0 {
		cfg.Analysis.ProjectionAmplitude = 10
	}
	if cfg.Analysis.ProjectionDrift == 0 {
		cfg.Analysis.ProjectionDrift = 5
	}
	if cfg.Analysis.ProjectionSpread == 0 {
		cfg.Analysis.ProjectionSpread = 10
	}

	return cfg, nil
}

// EndDate parses the configured series end date. Empty means today.
func (c *Config) EndDate() (time.Time, error) {
	if c.Source.EndDate == "" {
		return time.Now().Truncate(24 * time.Hour), nil
	}
	t, err := time.Parse("2006-01-02", c.Source.EndDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse source.end_date: %w", err)
	}
	return t, nil
}

// Validate checks that all fields are consistent.
func (c *Config) Validate() error {
	if c.Source.Variant != "trend_noise" && c.Source.Variant != "uniform" {
		return fmt.Errorf("source.variant must be trend_noise or uniform, got %q", c.Source.Variant)
	}
	if c.Source.Periods <= 0 {
		return fmt.Errorf("source.periods must be positive")
	}
	if c.Source.UniformMax < c.Source.UniformMin {
		return fmt.Errorf("source.uniform_max must be >= source.uniform_min")
	}
	for _, w := range c.Analysis.MAWindows {
		if w < 1 {
			return fmt.Errorf("analysis.ma_windows entries must be >= 1, got %d", w)
		}
	}
	if c.Analysis.VolatilityWindow < 1 {
		return fmt.Errorf("analysis.volatility_window must be >= 1")
	}
	if c.Analysis.ProjectionHorizonMonths < 1 {
		return fmt.Errorf("analysis.projection_horizon_months must be >= 1")
	}
	if !window.Valid(c.Analysis.DefaultPeriod) {
		return fmt.Errorf("analysis.default_period %q is not a supported period", c.Analysis.DefaultPeriod)
	}
	if _, err := c.EndDate(); err != nil {
		return err
	}
	return nil
}
