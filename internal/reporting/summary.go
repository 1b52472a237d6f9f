// Package reporting renders a finished backtest: summary statistics over the
// equity curve, a CSV table, and an XLSX workbook with a line chart. It only
// consumes already-finalized equity points; it never reaches back into the
// portfolio.
package reporting

import (
	"math"

	"lending-rate-lab/internal/domain"
)

// SummaryStats aggregates a finalized equity curve.
type SummaryStats struct {
	Bars                 int
	TotalReturn          float64 // equity_curve[last] - 1
	AnnualizedReturn     float64
	AnnualizedVolatility float64
	SharpeRatio          float64 // zero risk-free rate
	MaxDrawdown          float64 // worst peak-to-trough drop of the curve
}

// Summarize computes summary statistics. barsPerYear converts per-bar
// figures to annual ones (365 for a daily backtest frequency).
func Summarize(curve []domain.EquityPoint, barsPerYear float64) SummaryStats {
	stats := SummaryStats{Bars: len(curve)}
	if len(curve) == 0 {
		return stats
	}

	last := curve[len(curve)-1]
	stats.TotalReturn = last.EquityCurve - 1

	returns := make([]float64, 0, len(curve)-1)
	for _, p := range curve[1:] {
		returns = append(returns, p.Returns)
	}

	mean := computeMean(returns)
	stddev := computeStddev(returns, mean)

	stats.AnnualizedReturn = mean * barsPerYear
	stats.AnnualizedVolatility = stddev * math.Sqrt(barsPerYear)
	if stddev > 0 {
		stats.SharpeRatio = stats.AnnualizedReturn / stats.AnnualizedVolatility
	}
	stats.MaxDrawdown = computeMaxDrawdown(curve)

	return stats
}

// computeMean calculates the arithmetic mean. Returns 0 for empty input.
func computeMean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// computeStddev calculates the population standard deviation.
func computeStddev(values []float64, mean float64) float64 {
	if len(values) == 0 {
		return 0
	}
	var sum float64
	for _, v := range values {
		d := v - mean
		sum += d * d
	}
	return math.Sqrt(sum / float64(len(values)))
}

// computeMaxDrawdown finds the deepest drop of the equity curve from a
// running peak, as a positive fraction of that peak.
func computeMaxDrawdown(curve []domain.EquityPoint) float64 {
	var maxDD float64
	peak := math.Inf(-1)
	for _, p := range curve {
		if p.EquityCurve > peak {
			peak = p.EquityCurve
		}
		if peak > 0 {
			dd := (peak - p.EquityCurve) / peak
			if dd > maxDD {
				maxDD = dd
			}
		}
	}
	return maxDD
}
