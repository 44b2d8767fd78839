package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spachava753/stakesim/internal/models"
	"github.com/spachava753/stakesim/internal/util"
	"gopkg.in/yaml.v3"
)

// DefaultScenario returns a Scenario with default values.
func DefaultScenario() models.Scenario {
	speed := 1.0
	return models.Scenario{
		LogLevel: "warn",
		Speed:    &speed,
		Color:    models.ColorAuto,
		Pacing:   defaultPacing(),
	}
}

func defaultPacing() models.PacingConfig {
	return models.PacingConfig{
		Startup:     "1s",
		Auth:        "800ms-1.5s",
		AuthAbort:   "1.5s",
		Rejection:   "2s",
		LimitedMode: "1s",
		Stage:       "400ms-1s",
		Recovery:    "600ms-1.3s",
	}
}

// LoadScenario loads and parses a scenario.yaml file.
func LoadScenario(path string) (models.Scenario, error) {
	cfg := DefaultScenario()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("reading scenario: %w", err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing scenario: %w", err)
	}

	// Apply defaults for missing values
	def := DefaultScenario()
	if cfg.LogLevel == "" {
		cfg.LogLevel = def.LogLevel
	}
	if cfg.Speed == nil {
		cfg.Speed = def.Speed
	}
	if cfg.Color == "" {
		cfg.Color = def.Color
	}
	fillPacing(&cfg.Pacing, def.Pacing)

	if *cfg.Speed < 0 {
		return cfg, fmt.Errorf("speed must be >= 0, got %v", *cfg.Speed)
	}
	switch cfg.Color {
	case models.ColorAuto, models.ColorAlways, models.ColorNever:
	default:
		return cfg, fmt.Errorf("color must be one of auto, always, never; got %q", cfg.Color)
	}
	if _, err := ParseLogLevel(cfg.LogLevel); err != nil {
		return cfg, err
	}
	if _, err := ResolvePacing(cfg); err != nil {
		return cfg, err
	}

	return cfg, nil
}

func fillPacing(p *models.PacingConfig, def models.PacingConfig) {
	fields := []struct {
		dst *string
		src string
	}{
		{&p.Startup, def.Startup},
		{&p.Auth, def.Auth},
		{&p.AuthAbort, def.AuthAbort},
		{&p.Rejection, def.Rejection},
		{&p.LimitedMode, def.LimitedMode},
		{&p.Stage, def.Stage},
		{&p.Recovery, def.Recovery},
	}
	for _, f := range fields {
		if *f.dst == "" {
			*f.dst = f.src
		}
	}
}

// ResolvePacing parses the scenario's delay strings and scales them by its speed.
func ResolvePacing(cfg models.Scenario) (models.Pacing, error) {
	speed := 1.0
	if cfg.Speed != nil {
		speed = *cfg.Speed
	}

	var p models.Pacing
	fields := []struct {
		name string
		raw  string
		dst  *util.DelayRange
	}{
		{"startup", cfg.Pacing.Startup, &p.Startup},
		{"auth", cfg.Pacing.Auth, &p.Auth},
		{"auth_abort", cfg.Pacing.AuthAbort, &p.AuthAbort},
		{"rejection", cfg.Pacing.Rejection, &p.Rejection},
		{"limited_mode", cfg.Pacing.LimitedMode, &p.LimitedMode},
		{"stage", cfg.Pacing.Stage, &p.Stage},
		{"recovery", cfg.Pacing.Recovery, &p.Recovery},
	}
	for _, f := range fields {
		r, err := util.ParseDelayRange(f.raw)
		if err != nil {
			return p, fmt.Errorf("pacing.%s: %w", f.name, err)
		}
		*f.dst = r.Scale(speed)
	}
	return p, nil
}

// ParseLogLevel converts a level name (debug, info, warn, error) to a slog.Level.
func ParseLogLevel(s string) (slog.Level, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return lvl, fmt.Errorf("parsing log_level %q: %w", s, err)
	}
	return lvl, nil
}
