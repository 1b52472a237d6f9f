package backtest

import (
	"lending-rate-lab/internal/event"
	"lending-rate-lab/internal/ratefeed"
	"lending-rate-lab/internal/strategy"
)

// StubStrategy is a no-op strategy for testing. It counts market events and
// replays a scripted signal sequence, one batch per market event.
type StubStrategy struct {
	scripted [][]event.Signal
	calls    int
}

// NewStubStrategy creates a stub that emits the given signal batches in
// order, then nothing.
func NewStubStrategy(scripted ...[]event.Signal) *StubStrategy {
	return &StubStrategy{scripted: scripted}
}

// OnMarket returns the next scripted batch, or nil once the script is
// exhausted.
func (s *StubStrategy) OnMarket(_ ratefeed.RateFeed) []event.Signal {
	s.calls++
	if s.calls <= len(s.scripted) {
		return s.scripted[s.calls-1]
	}
	return nil
}

// Name returns the strategy identifier.
func (s *StubStrategy) Name() string {
	return "stub"
}

// Calls returns the number of market events observed.
func (s *StubStrategy) Calls() int {
	return s.calls
}

var _ strategy.Strategy = (*StubStrategy)(nil)
