package models

import "github.com/spachava753/stakesim/internal/util"

// ColorMode controls ANSI styling of the transcript.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// Scenario represents the parsed scenario.yaml configuration.
type Scenario struct {
	Seed        *uint64      `yaml:"seed,omitempty" json:"seed,omitempty"`
	LogLevel    string       `yaml:"log_level" json:"log_level"`
	Speed       *float64     `yaml:"speed,omitempty" json:"speed,omitempty"`
	Color       ColorMode    `yaml:"color" json:"color"`
	CatalogPath string       `yaml:"catalog_path,omitempty" json:"catalog_path,omitempty"`
	Pacing      PacingConfig `yaml:"pacing" json:"pacing"`
}

// PacingConfig holds delay ranges as strings, e.g. "400ms-1s".
type PacingConfig struct {
	Startup     string `yaml:"startup" json:"startup"`
	Auth        string `yaml:"auth" json:"auth"`
	AuthAbort   string `yaml:"auth_abort" json:"auth_abort"`
	Rejection   string `yaml:"rejection" json:"rejection"`
	LimitedMode string `yaml:"limited_mode" json:"limited_mode"`
	Stage       string `yaml:"stage" json:"stage"`
	Recovery    string `yaml:"recovery" json:"recovery"`
}

// Pacing holds the resolved simulated delays.
type Pacing struct {
	Startup     util.DelayRange
	Auth        util.DelayRange
	AuthAbort   util.DelayRange
	Rejection   util.DelayRange
	LimitedMode util.DelayRange
	Stage       util.DelayRange
	Recovery    util.DelayRange
}
