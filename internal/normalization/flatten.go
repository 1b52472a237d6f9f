// Package normalization repairs raw liquidity-index series into uniform,
// gap-free grids suitable for deterministic replay. All functions are pure:
// sorted observations in, sorted observations out. Missing values inside a
// grid are carried as NaN until explicitly interpolated, filled or dropped.
package normalization

import (
	"lending-rate-lab/internal/domain"
)

// RemoveFlatRegions drops every observation whose liquidity index equals the
// immediately preceding observation's value, keeping only genuine changes.
// Used for liquid-staking-style tokens where the raw index is
// piecewise-constant with occasional jumps: downstream interpolation must
// operate on true knot points, not duplicated holds.
func RemoveFlatRegions(obs []domain.RateObservation) []domain.RateObservation {
	if len(obs) == 0 {
		return nil
	}

	result := make([]domain.RateObservation, 0, len(obs))
	result = append(result, obs[0])

	for i := 1; i < len(obs); i++ {
		if obs[i].LiquidityIndex == obs[i-1].LiquidityIndex {
			continue
		}
		result = append(result, obs[i])
	}

	return result
}
