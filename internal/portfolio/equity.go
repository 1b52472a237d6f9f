package portfolio

import "lending-rate-lab/internal/domain"

// BuildEquityCurve derives equity points from a holdings history in a single
// pass. Returns is the period-over-period change in Total; EquityCurve is
// the cumulative product of 1+Returns, a growth index starting at 1. The
// input is not modified, so the pass is idempotent.
func BuildEquityCurve(snapshots []domain.HoldingsSnapshot) []domain.EquityPoint {
	if len(snapshots) == 0 {
		return nil
	}

	curve := make([]domain.EquityPoint, len(snapshots))
	equity := 1.0
	for i, s := range snapshots {
		returns := 0.0
		if i > 0 && snapshots[i-1].Total != 0 {
			returns = s.Total/snapshots[i-1].Total - 1
		}
		equity *= 1 + returns

		values := make(map[string]float64, len(s.Values))
		for token, v := range s.Values {
			values[token] = v
		}

		curve[i] = domain.EquityPoint{
			Datetime:    s.Datetime,
			Cash:        s.Cash,
			Fee:         s.Fee,
			Values:      values,
			Total:       s.Total,
			Returns:     returns,
			EquityCurve: equity,
		}
	}

	return curve
}
