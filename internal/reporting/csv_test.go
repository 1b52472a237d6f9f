package reporting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lending-rate-lab/internal/domain"
)

func TestRenderCSV(t *testing.T) {
	curve := []domain.EquityPoint{
		{
			Datetime:    time.Date(2021, 3, 11, 0, 0, 0, 0, time.UTC),
			Cash:        1000,
			Fee:         0,
			Values:      map[string]float64{"aave_usdc": 0},
			Total:       1000,
			Returns:     0,
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

	out := RenderCSV(curve, []string{"aave_usdc"})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 3)

	assert.Equal(t, "date,cash,fee,aave_usdc,total,returns,equity_curve", lines[0])
	assert.Equal(t, "2021-03-11 00:00:00,1000.000000,0.000000,0.000000,1000.000000,0.00000000,1.00000000", lines[1])
	assert.Equal(t, "2021-03-12 00:00:00,990.000000,10.000000,1000.000000,1990.000000,0.99000000,1.99000000", lines[2])
}

func TestRenderCSV_Empty(t *testing.T) {
	out := RenderCSV(nil, []string{"aave_usdc"})
	lines := strings.Split(strings.TrimSpace(out), "\n")
	assert.Len(t, lines, 1) // header only
}
