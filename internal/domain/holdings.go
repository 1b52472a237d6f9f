package domain

import "time"

// HoldingsSnapshot is the portfolio's per-bar book. Cash is carried net of
// fees already paid, so Total = Cash + sum of per-token values.
type HoldingsSnapshot struct {
	Datetime time.Time
	Cash     float64
	Fee      float64 // cumulative fees paid
	Values   map[string]float64
	Total    float64
}

// SumValues returns the sum of per-token mark-to-market values.
func (h *HoldingsSnapshot) SumValues() float64 {
	var sum float64
	for _, v := range h.Values {
		sum += v
	}
	return sum
}

// EquityPoint is one finalized row of the equity curve, derived from a
// HoldingsSnapshot in a single finalization pass.
type EquityPoint struct {
	Datetime    time.Time
	Cash        float64
	Fee         float64
	Values      map[string]float64
	Total       float64
	Returns     float64 // period-over-period change in Total
	EquityCurve float64 // cumulative product of 1+Returns, starts at 1
}
