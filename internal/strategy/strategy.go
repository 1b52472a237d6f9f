// Package strategy defines the hook through which trading logic observes
// revealed rates and requests exposure. Strategies never touch the feed's or
// portfolio's internals; they read via the feed's query interface and write
// by returning signals.
package strategy

import (
	"lending-rate-lab/internal/event"
	"lending-rate-lab/internal/ratefeed"
)

// Strategy reacts to market events.
type Strategy interface {
	// OnMarket is called once per market event with the feed positioned
	// at the newly revealed data. Returns zero or more signals.
	OnMarket(feed ratefeed.RateFeed) []event.Signal

	// Name returns the strategy identifier.
	Name() string
}
