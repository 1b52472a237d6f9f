package domain

import "time"

// SecondsPerYear is the annualization basis for rate math (365-day year).
const SecondsPerYear = 365 * 24 * 60 * 60

// Ray is the fixed-point scaling constant used by Aave-style liquidity
// indices. Raw index values are growth factors multiplied by Ray.
const Ray = 1e27

// RateObservation is one revealed point of a token's liquidity index.
// Immutable once emitted by a rate feed.
type RateObservation struct {
	Token          string    // token identifier, e.g. "aave_usdc"
	Timestamp      time.Time // naive UTC bar timestamp
	LiquidityIndex float64   // ray-scale cumulative growth factor (~1e27)
}

// TokenSeries is a cleaned, uniformly spaced liquidity-index series for one
// token. Timestamps are strictly increasing with no gaps after the cleaning
// pipeline runs.
type TokenSeries struct {
	Token        string
	Observations []RateObservation
}

// Len returns the number of observations in the series.
func (s *TokenSeries) Len() int {
	return len(s.Observations)
}
