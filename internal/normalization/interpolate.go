package normalization

import (
	"math"

	"lending-rate-lab/internal/domain"
)

// InterpolateLinear fills NaN gaps between adjacent known values by linear
// interpolation on the observation index. Leading and trailing NaN runs have
// no bracketing values and are left untouched.
func InterpolateLinear(obs []domain.RateObservation) []domain.RateObservation {
	if len(obs) == 0 {
		return nil
	}

	result := make([]domain.RateObservation, len(obs))
	copy(result, obs)

	prev := -1 // index of the last known value
	for i := range result {
		if math.IsNaN(result[i].LiquidityIndex) {
			continue
		}
		if prev >= 0 && i-prev > 1 {
			lo := result[prev].LiquidityIndex
			hi := result[i].LiquidityIndex
			span := float64(i - prev)
			for j := prev + 1; j < i; j++ {
				result[j].LiquidityIndex = lo + (hi-lo)*float64(j-prev)/span
			}
		}
		prev = i
	}

	return result
}
