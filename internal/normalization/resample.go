package normalization

import (
	"math"
	"time"

	"lending-rate-lab/internal/domain"
)

// ResampleMean buckets observations onto a uniform grid at the given
// frequency and averages the values inside each bucket. The grid runs from
// the first occupied bucket to the last, inclusive; buckets with no source
// observations carry NaN. Bucket labels are truncated UTC timestamps.
func ResampleMean(obs []domain.RateObservation, freq time.Duration) []domain.RateObservation {
	if len(obs) == 0 {
		return nil
	}

	token := obs[0].Token
	first := obs[0].Timestamp.UTC().Truncate(freq)
	last := obs[len(obs)-1].Timestamp.UTC().Truncate(freq)

	sums := make(map[time.Time]float64)
	counts := make(map[time.Time]int)
	for _, o := range obs {
		bucket := o.Timestamp.UTC().Truncate(freq)
		sums[bucket] += o.LiquidityIndex
		counts[bucket]++
	}

	var result []domain.RateObservation
	for ts := first; !ts.After(last); ts = ts.Add(freq) {
		value := math.NaN()
		if n := counts[ts]; n > 0 {
			value = sums[ts] / float64(n)
		}
		result = append(result, domain.RateObservation{
			Token:          token,
			Timestamp:      ts,
			LiquidityIndex: value,
		})
	}

	return result
}

// ResampleFFill projects observations onto a uniform grid at the given
// frequency, carrying the last known value forward into each grid point.
// Grid points before the first known value carry NaN.
func ResampleFFill(obs []domain.RateObservation, freq time.Duration) []domain.RateObservation {
	if len(obs) == 0 {
		return nil
	}

	token := obs[0].Token
	first := obs[0].Timestamp.UTC().Truncate(freq)
	last := obs[len(obs)-1].Timestamp.UTC().Truncate(freq)

	var result []domain.RateObservation
	i := 0
	lastKnown := math.NaN()
	for ts := first; !ts.After(last); ts = ts.Add(freq) {
		// Consume every source observation at or before this grid point.
		for i < len(obs) && !obs[i].Timestamp.UTC().After(ts) {
			if !math.IsNaN(obs[i].LiquidityIndex) {
				lastKnown = obs[i].LiquidityIndex
			}
			i++
		}
		result = append(result, domain.RateObservation{
			Token:          token,
			Timestamp:      ts,
			LiquidityIndex: lastKnown,
		})
	}

	return result
}

// DropMissing removes observations whose value is NaN. Applied after
// forward-fill resampling to strip still-missing leading rows.
func DropMissing(obs []domain.RateObservation) []domain.RateObservation {
	var result []domain.RateObservation
	for _, o := range obs {
		if math.IsNaN(o.LiquidityIndex) {
			continue
		}
		result = append(result, o)
	}
	return result
}

// ClampRange filters observations to the closed interval [start, end].
// Zero bounds are ignored.
func ClampRange(obs []domain.RateObservation, start, end time.Time) []domain.RateObservation {
	var result []domain.RateObservation
	for _, o := range obs {
		if !start.IsZero() && o.Timestamp.Before(start) {
			continue
		}
		if !end.IsZero() && o.Timestamp.After(end) {
			continue
		}
		result = append(result, o)
	}
	return result
}
