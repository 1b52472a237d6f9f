package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
backtest:
  tokens: [aave_usdc, aave_dai]
  csv_dir: datasets
  start: "2021-03-11 00:00:00"
  end: "2021-03-17 00:00:00"
  interpolation_frequency: 1h
  backtest_frequency: 24h
  liquid_staking: [steth]
  initial_capital: 1000
  allocation: 10000
  fee_per_fill: 10
report:
  output_dir: out
  title: my_report
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"aave_usdc", "aave_dai"}, cfg.Backtest.Tokens)
	assert.Equal(t, "datasets", cfg.Backtest.CSVDir)
	assert.Equal(t, time.Hour, cfg.InterpolationFreq())
	assert.Equal(t, 24*time.Hour, cfg.BacktestFreq())
	assert.Equal(t, time.Date(2021, 3, 11, 0, 0, 0, 0, time.UTC), cfg.StartTime())
	assert.Equal(t, time.Date(2021, 3, 17, 0, 0, 0, 0, time.UTC), cfg.EndTime())
	assert.True(t, cfg.LiquidStakingSet()["steth"])
	assert.False(t, cfg.LiquidStakingSet()["aave_usdc"])
	assert.Equal(t, 1000.0, cfg.Backtest.InitialCapital)
	assert.Equal(t, 10.0, cfg.Backtest.FeePerFill)
	assert.Equal(t, "out", cfg.Report.OutputDir)
	assert.Equal(t, "my_report", cfg.Report.Title)
}

func TestLoad_Defaults(t *testing.T) {
	path := writeConfig(t, `
backtest:
  tokens: [aave_usdc]
  csv_dir: datasets
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, time.Hour, cfg.InterpolationFreq())
	assert.Equal(t, 24*time.Hour, cfg.BacktestFreq())
	assert.True(t, cfg.StartTime().IsZero())
	assert.True(t, cfg.EndTime().IsZero())
	assert.Equal(t, 1000.0, cfg.Backtest.InitialCapital)
	assert.Equal(t, 10000.0, cfg.Backtest.Allocation)
	assert.Equal(t, "reports", cfg.Report.OutputDir)
	assert.Equal(t, "backtest_report", cfg.Report.Title)
}

func TestLoad_MissingTokens(t *testing.T) {
	path := writeConfig(t, `
backtest:
  csv_dir: datasets
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_BadFrequency(t *testing.T) {
	path := writeConfig(t, `
backtest:
  tokens: [aave_usdc]
  csv_dir: datasets
  backtest_frequency: daily
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_BadTimestamp(t *testing.T) {
	path := writeConfig(t, `
backtest:
  tokens: [aave_usdc]
  csv_dir: datasets
  start: "11/03/2021"
`)

	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
