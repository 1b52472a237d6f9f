package reporting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"lending-rate-lab/internal/domain"
)

func pointAt(day int, returns, equity float64) domain.EquityPoint {
	return domain.EquityPoint{
		Datetime:    time.Date(2021, 3, 11+day, 0, 0, 0, 0, time.UTC),
		Values:      map[string]float64{},
		Returns:     returns,
		EquityCurve: equity,
	}
}

func TestSummarize(t *testing.T) {
	curve := []domain.EquityPoint{
		pointAt(0, 0, 1.00),
		pointAt(1, 0.10, 1.10),
		pointAt(2, -0.10, 0.99),
	}

	stats := Summarize(curve, 365)

	assert.Equal(t, 3, stats.Bars)
	assert.InDelta(t, -0.01, stats.TotalReturn, 1e-12)
	// Mean of (0.10, -0.10) is zero.
	assert.InDelta(t, 0.0, stats.AnnualizedReturn, 1e-12)
	assert.Greater(t, stats.AnnualizedVolatility, 0.0)
	// Peak 1.10 down to 0.99.
	assert.InDelta(t, 0.10, stats.MaxDrawdown, 1e-12)
}

func TestSummarize_Empty(t *testing.T) {
	stats := Summarize(nil, 365)
	assert.Equal(t, 0, stats.Bars)
	assert.Equal(t, 0.0, stats.TotalReturn)
	assert.Equal(t, 0.0, stats.SharpeRatio)
}

func TestSummarize_MonotonicCurveHasNoDrawdown(t *testing.T) {
	curve := []domain.EquityPoint{
		pointAt(0, 0, 1.00),
		pointAt(1, 0.01, 1.01),
		pointAt(2, 0.02, 1.0302),
	}

	stats := Summarize(curve, 365)
	assert.Equal(t, 0.0, stats.MaxDrawdown)
	assert.Greater(t, stats.SharpeRatio, 0.0)
}
