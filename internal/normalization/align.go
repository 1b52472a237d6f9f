package normalization

import (
	"sort"
	"time"

	"lending-rate-lab/internal/domain"
)

// UnionIndex returns the sorted union of all timestamps across the given
// series.
func UnionIndex(series []*domain.TokenSeries) []time.Time {
	seen := make(map[time.Time]struct{})
	for _, s := range series {
		for _, o := range s.Observations {
			seen[o.Timestamp] = struct{}{}
		}
	}

	index := make([]time.Time, 0, len(seen))
	for ts := range seen {
		index = append(index, ts)
	}
	sort.Slice(index, func(i, j int) bool { return index[i].Before(index[j]) })
	return index
}

// AlignUnion reindexes every series onto the union of all series' timestamp
// grids, padding forward from the last known value. Union timestamps before a
// series' first observation are omitted for that series: there is nothing to
// pad from. The result lets all tokens be iterated in lockstep.
func AlignUnion(series []*domain.TokenSeries) []*domain.TokenSeries {
	index := UnionIndex(series)

	aligned := make([]*domain.TokenSeries, 0, len(series))
	for _, s := range series {
		out := &domain.TokenSeries{Token: s.Token}
		i := 0
		var last *domain.RateObservation
		for _, ts := range index {
			for i < len(s.Observations) && !s.Observations[i].Timestamp.After(ts) {
				last = &s.Observations[i]
				i++
			}
			if last == nil {
				continue
			}
			out.Observations = append(out.Observations, domain.RateObservation{
				Token:          s.Token,
				Timestamp:      ts,
				LiquidityIndex: last.LiquidityIndex,
			})
		}
		aligned = append(aligned, out)
	}

	return aligned
}
