package domain

import "time"

// PositionEntry records one fill against a token. Entries are append-only:
// an EXIT is modeled as a new entry, never as a deletion of an older one.
type PositionEntry struct {
	Token             string
	Timestamp         time.Time
	Direction         Direction
	Notional          float64
	Fee               float64
	FixedRate         float64 // rate locked at fill time, set once
	StartingRateValue float64 // liquidity index in effect at fill time
}
