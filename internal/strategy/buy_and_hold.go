package strategy

import (
	"lending-rate-lab/internal/domain"
	"lending-rate-lab/internal/event"
	"lending-rate-lab/internal/ratefeed"
)

// BuyAndHold goes LONG each token on its first revealed observation and
// holds for the remainder of the backtest. Mostly a wiring check: any
// strategy that beats it has to earn the difference.
type BuyAndHold struct {
	entered map[string]bool
}

// NewBuyAndHold creates a new buy-and-hold strategy.
func NewBuyAndHold() *BuyAndHold {
	return &BuyAndHold{entered: make(map[string]bool)}
}

// OnMarket emits one LONG signal per token, timestamped at the token's
// latest revealed observation.
func (s *BuyAndHold) OnMarket(feed ratefeed.RateFeed) []event.Signal {
	var signals []event.Signal
	for _, token := range feed.Tokens() {
		if s.entered[token] {
			continue
		}
		latest, err := feed.Latest(token, 1)
		if err != nil || len(latest) == 0 {
			continue
		}
		s.entered[token] = true
		signals = append(signals, event.Signal{
			Token:     token,
			Direction: domain.DirectionLong,
			Timestamp: latest[0].Timestamp,
		})
	}
	return signals
}

// Name returns the strategy identifier.
func (s *BuyAndHold) Name() string {
	return "buy_and_hold"
}

var _ Strategy = (*BuyAndHold)(nil)
