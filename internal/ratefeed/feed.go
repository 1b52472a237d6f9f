// Package ratefeed loads, cleans and streams per-token lending-rate series.
// A feed reveals one observation per token per advance and emits a market
// event each time it advances, so a strategy sees historic data exactly the
// way a live system would.
package ratefeed

import (
	"errors"

	"lending-rate-lab/internal/domain"
)

// ErrUnknownToken is returned when querying rates for a token that was never
// registered with the feed. Distinct from exhaustion, which is not an error.
var ErrUnknownToken = errors.New("token is not available in the data set")

// RateFeed streams rate observations for a set of tokens. Implementations
// are historic-file-backed (this package) or live-feed-backed; the rest of
// the system treats both identically.
type RateFeed interface {
	// UpdateRates advances every tracked token by one step and emits one
	// market event to the queue, except when nothing was revealed after
	// the feed's terminal condition was already set.
	UpdateRates()

	// Latest returns the last n revealed observations for a token, fewer
	// if the revealed history is shorter. Returns ErrUnknownToken for
	// unregistered tokens.
	Latest(token string, n int) ([]domain.RateObservation, error)

	// Continue reports whether the backtest should keep running. Once a
	// token's series is exhausted this becomes false and never reverts.
	Continue() bool

	// Tokens returns the registered token list in configuration order.
	Tokens() []string
}
