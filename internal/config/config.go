// Package config loads backtest configuration from a YAML file with
// optional .env overrides.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the full configuration surface consumed by the core.
type Config struct {
	Backtest BacktestConfig `yaml:"backtest"`
	Report   ReportConfig   `yaml:"report"`
}

// BacktestConfig controls the feed, the portfolio and the executor.
type BacktestConfig struct {
	Tokens []string `yaml:"tokens"`
	CSVDir string   `yaml:"csv_dir"`

	Start string `yaml:"start"` // optional, "2006-01-02 15:04:05" or RFC3339
	End   string `yaml:"end"`   // optional, closed interval

	InterpolationFrequency string `yaml:"interpolation_frequency"` // Go duration, default 1h
	BacktestFrequency      string `yaml:"backtest_frequency"`      // Go duration, default 24h

	LiquidStaking []string `yaml:"liquid_staking"` // tokens with piecewise-constant raw indices

	InitialCapital float64 `yaml:"initial_capital"`
	Allocation     float64 `yaml:"allocation"`   // notional per signal
	FeePerFill     float64 `yaml:"fee_per_fill"` // simulated executor flat fee
}

// ReportConfig controls where report artifacts are written.
type ReportConfig struct {
	OutputDir string `yaml:"output_dir"`
	Title     string `yaml:"title"`
}

// Accepted layouts for start/end bounds.
var timeLayouts = []string{
	"2006-01-02 15:04:05",
	time.RFC3339,
	"2006-01-02",
}

// Load reads configuration from the YAML file and the .env file if present.
// Env values override YAML for the keys that apply. Validation failures are
// fatal: no partially usable configuration is returned.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config.Load: read %q: %w", path, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("config.Load: parse YAML: %w", err)
	}

	applyEnvOverrides(&cfg)
	setDefaults(&cfg)

	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("config.Load: %w", err)
	}
	return &cfg, nil
}

// InterpolationFreq returns the interpolation frequency as a duration.
func (c *Config) InterpolationFreq() time.Duration {
	d, _ := time.ParseDuration(c.Backtest.InterpolationFrequency)
	return d
}

// BacktestFreq returns the backtest frequency as a duration.
func (c *Config) BacktestFreq() time.Duration {
	d, _ := time.ParseDuration(c.Backtest.BacktestFrequency)
	return d
}

// StartTime returns the parsed start bound, zero if unset.
func (c *Config) StartTime() time.Time {
	t, _ := parseTime(c.Backtest.Start)
	return t
}

// EndTime returns the parsed end bound, zero if unset.
func (c *Config) EndTime() time.Time {
	t, _ := parseTime(c.Backtest.End)
	return t
}

// LiquidStakingSet returns the liquid-staking flags keyed by token.
func (c *Config) LiquidStakingSet() map[string]bool {
	set := make(map[string]bool, len(c.Backtest.LiquidStaking))
	for _, token := range c.Backtest.LiquidStaking {
		set[token] = true
	}
	return set
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("CSV_DIR"); v != "" {
		cfg.Backtest.CSVDir = v
	}
	if v := os.Getenv("REPORT_DIR"); v != "" {
		cfg.Report.OutputDir = v
	}
}

func setDefaults(cfg *Config) {
	if cfg.Backtest.InterpolationFrequency == "" {
		cfg.Backtest.InterpolationFrequency = "1h"
	}
	if cfg.Backtest.BacktestFrequency == "" {
		cfg.Backtest.BacktestFrequency = "24h"
	}
	if cfg.Backtest.InitialCapital == 0 {
		cfg.Backtest.InitialCapital = 1000
	}
	if cfg.Backtest.Allocation == 0 {
		cfg.Backtest.Allocation = 10000
	}
	if cfg.Report.OutputDir == "" {
		cfg.Report.OutputDir = "reports"
	}
	if cfg.Report.Title == "" {
		cfg.Report.Title = "backtest_report"
	}
}

func (c *Config) validate() error {
	if len(c.Backtest.Tokens) == 0 {
		return fmt.Errorf("backtest.tokens must not be empty")
	}
	if c.Backtest.CSVDir == "" {
		return fmt.Errorf("backtest.csv_dir is required")
	}
	if _, err := time.ParseDuration(c.Backtest.InterpolationFrequency); err != nil {
		return fmt.Errorf("backtest.interpolation_frequency: %w", err)
	}
	if _, err := time.ParseDuration(c.Backtest.BacktestFrequency); err != nil {
		return fmt.Errorf("backtest.backtest_frequency: %w", err)
	}
	if _, err := parseTime(c.Backtest.Start); err != nil {
		return fmt.Errorf("backtest.start: %w", err)
	}
	if _, err := parseTime(c.Backtest.End); err != nil {
		return fmt.Errorf("backtest.end: %w", err)
	}
	return nil
}

func parseTime(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}
