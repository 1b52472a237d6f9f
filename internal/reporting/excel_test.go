package reporting

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"lending-rate-lab/internal/domain"
)

func TestWriteXLSX(t *testing.T) {
	curve := []domain.EquityPoint{
		{
			Datetime:    time.Date(2021, 3, 11, 0, 0, 0, 0, time.UTC),
			Cash:        1000,
			Values:      map[string]float64{"aave_usdc": 0},
			Total:       1000,
			EquityCurve: 1,
		},
		{
			Datetime:    time.Date(2021, 3, 12, 0, 0, 0, 0, time.UTC),
			Cash:        990,
			Fee:         10,
			Values:      map[string]float64{"aave_usdc": 1000},
			Total:       1990,
			Returns:     0.99,
			EquityCurve: 1.99,
		},
	}
	stats := Summarize(curve, 365)

	path := filepath.Join(t.TempDir(), "test_report.xlsx")
	require.NoError(t, WriteXLSX(path, curve, []string{"aave_usdc"}, stats))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Contains(t, f.GetSheetList(), "backtest_results")
	assert.Contains(t, f.GetSheetList(), "summary")

	// Header and a data cell on the results sheet.
	header, err := f.GetCellValue("backtest_results", "A1")
	require.NoError(t, err)
	assert.Equal(t, "date", header)

	cash, err := f.GetCellValue("backtest_results", "B3")
	require.NoError(t, err)
	assert.Equal(t, "990", cash)

	// The equity_curve column is the last one: date, cash, fee, one
	// token, total, returns, equity_curve -> column G.
	equity, err := f.GetCellValue("backtest_results", "G3")
	require.NoError(t, err)
	assert.Equal(t, "1.99", equity)

	bars, err := f.GetCellValue("summary", "B1")
	require.NoError(t, err)
	assert.Equal(t, "2", bars)
}

func TestWriteXLSX_EmptyCurve(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.xlsx")
	require.NoError(t, WriteXLSX(path, nil, []string{"aave_usdc"}, SummaryStats{}))
}
