package portfolio

import (
	"math"

	"lending-rate-lab/internal/domain"
)

// Valuer derives the two scalars the portfolio cannot compute from events
// alone: the fixed rate locked at fill time and a token's mark-to-market
// value. Both must be deterministic functions of the revealed history, and
// FixedRate is computed once at fill time, never recomputed.
//
// The exact production formulas are still under calibration; NaiveValuer is
// the placeholder validated against the regression suite.
type Valuer interface {
	// FixedRate derives the rate locked at fill time from the revealed
	// observations for the token, oldest first.
	FixedRate(history []domain.RateObservation) float64

	// MarkToMarket values a token's current exposure given its position
	// entries (newest first) and revealed observations (oldest first).
	MarkToMarket(entries []domain.PositionEntry, history []domain.RateObservation) float64
}

// NaiveValuer annualizes the compounded growth between the last two revealed
// index values, and values exposure at position notional.
type NaiveValuer struct {
	// Notional is the allocation-policy order size. With no position on
	// the book a token is valued at this anticipated exposure.
	Notional float64
}

// FixedRate returns (idx_t/idx_prev)^(secondsPerYear/dt) - 1 over the last
// two observations, or 0 when fewer than two observations are revealed.
func (v NaiveValuer) FixedRate(history []domain.RateObservation) float64 {
	if len(history) < 2 {
		return 0
	}
	curr := history[len(history)-1]
	prev := history[len(history)-2]

	dt := curr.Timestamp.Sub(prev.Timestamp).Seconds()
	if dt <= 0 || prev.LiquidityIndex <= 0 {
		return 0
	}

	growth := curr.LiquidityIndex / prev.LiquidityIndex
	return math.Pow(growth, float64(domain.SecondsPerYear)/dt) - 1
}

// MarkToMarket values the newest position entry's notional: 0 after an EXIT,
// and the allocation notional when no entry exists yet.
func (v NaiveValuer) MarkToMarket(entries []domain.PositionEntry, _ []domain.RateObservation) float64 {
	if len(entries) == 0 {
		return v.Notional
	}
	if entries[0].Direction == domain.DirectionExit {
		return 0
	}
	return entries[0].Notional
}

var _ Valuer = NaiveValuer{}
