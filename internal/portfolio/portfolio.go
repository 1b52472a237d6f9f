// Package portfolio is the bookkeeping state machine of a backtest. It
// consumes signal and fill events, maintains per-token positions and per-bar
// holdings, emits order events, and finalizes the holdings history into an
// equity curve.
package portfolio

import (
	"time"

	"lending-rate-lab/internal/domain"
	"lending-rate-lab/internal/event"
	"lending-rate-lab/internal/ratefeed"
)

// DefaultAllocation is the notional ordered per signal under the naive
// allocation policy.
const DefaultAllocation = 10000

// Options configures a Portfolio.
type Options struct {
	Feed           ratefeed.RateFeed
	Queue          *event.Queue
	StartDate      time.Time
	InitialCapital float64
	Allocation     float64 // notional per signal; DefaultAllocation if zero
	Valuer         Valuer  // NaiveValuer if nil
}

// Portfolio tracks positions per token and holdings per bar. Positions are
// stored newest-first; the entry at index 0 is the one consulted for current
// exposure. Holdings snapshots are append-only.
type Portfolio struct {
	feed       ratefeed.RateFeed
	queue      *event.Queue
	startDate  time.Time
	allocation float64
	valuer     Valuer

	positions map[string][]domain.PositionEntry

	cash   float64
	fee    float64 // cumulative fees paid
	values map[string]float64

	allHoldings []domain.HoldingsSnapshot
}

// New creates a portfolio with an initial holdings snapshot at the start
// date: full cash, zero fees, zero exposure.
func New(opts Options) *Portfolio {
	if opts.Allocation == 0 {
		opts.Allocation = DefaultAllocation
	}
	if opts.Valuer == nil {
		opts.Valuer = NaiveValuer{Notional: opts.Allocation}
	}

	p := &Portfolio{
		feed:       opts.Feed,
		queue:      opts.Queue,
		startDate:  opts.StartDate,
		allocation: opts.Allocation,
		valuer:     opts.Valuer,
		positions:  make(map[string][]domain.PositionEntry),
		cash:       opts.InitialCapital,
		values:     make(map[string]float64),
	}

	initial := domain.HoldingsSnapshot{
		Datetime: opts.StartDate,
		Cash:     p.cash,
		Fee:      0,
		Values:   make(map[string]float64),
		Total:    p.cash,
	}
	for _, token := range p.feed.Tokens() {
		initial.Values[token] = 0
		p.values[token] = 0
	}
	p.allHoldings = append(p.allHoldings, initial)

	return p
}

// NaiveOrder sizes an order for a signal under the fixed allocation policy.
// Pure translation, no state mutation.
func (p *Portfolio) NaiveOrder(s event.Signal) event.Order {
	return event.Order{
		Token:     s.Token,
		Timestamp: s.Timestamp,
		Notional:  p.allocation,
		Direction: s.Direction,
	}
}

// OnSignal translates a signal into an order event on the queue.
func (p *Portfolio) OnSignal(s event.Signal) {
	p.queue.Put(event.NewOrder(p.NaiveOrder(s)))
}

// OnFill applies a fill to both positions and holdings.
func (p *Portfolio) OnFill(f event.Fill) {
	p.UpdatePositionsFromFill(f)
	p.UpdateHoldingsFromFill(f)
}

// UpdatePositionsFromFill prepends a new position entry for the fill,
// locking the fixed rate and the reference index value in effect at fill
// time. Entries are never mutated afterwards.
func (p *Portfolio) UpdatePositionsFromFill(f event.Fill) {
	history, err := p.feed.Latest(f.Token, 2)
	if err != nil {
		history = nil
	}

	var startingRateValue float64
	if len(history) > 0 {
		startingRateValue = history[len(history)-1].LiquidityIndex
	}

	entry := domain.PositionEntry{
		Token:             f.Token,
		Timestamp:         f.Timestamp,
		Direction:         f.Direction,
		Notional:          f.Notional,
		Fee:               f.Fee,
		FixedRate:         p.valuer.FixedRate(history),
		StartingRateValue: startingRateValue,
	}

	p.positions[f.Token] = append([]domain.PositionEntry{entry}, p.positions[f.Token]...)
}

// UpdateHoldingsFromFill charges the fill's fee against cash. Notional is
// exposure, not principal: opening a rate position exchanges no cash beyond
// the fee.
func (p *Portfolio) UpdateHoldingsFromFill(f event.Fill) {
	p.cash -= f.Fee
	p.fee += f.Fee
}

// UpdateTimeindex appends a holdings snapshot for the current bar, marking
// every token to market from its positions and the latest revealed rate.
// Driven once per bar by the loop on each market event.
func (p *Portfolio) UpdateTimeindex() {
	tokens := p.feed.Tokens()

	datetime := p.startDate
	if latest, err := p.feed.Latest(tokens[0], 1); err == nil && len(latest) > 0 {
		datetime = latest[0].Timestamp
	}

	snapshot := domain.HoldingsSnapshot{
		Datetime: datetime,
		Cash:     p.cash,
		Fee:      p.fee,
		Values:   make(map[string]float64, len(tokens)),
	}

	total := p.cash
	for _, token := range tokens {
		history, err := p.feed.Latest(token, 0)
		if err != nil {
			history = nil
		}
		value := p.valuer.MarkToMarket(p.positions[token], history)
		snapshot.Values[token] = value
		p.values[token] = value
		total += value
	}
	snapshot.Total = total

	p.allHoldings = append(p.allHoldings, snapshot)
}

// Positions returns the entries for a token, newest first.
func (p *Portfolio) Positions(token string) []domain.PositionEntry {
	return p.positions[token]
}

// CurrentHoldings returns the live (not yet snapshotted) book.
func (p *Portfolio) CurrentHoldings() domain.HoldingsSnapshot {
	values := make(map[string]float64, len(p.values))
	total := p.cash
	for token, v := range p.values {
		values[token] = v
		total += v
	}
	return domain.HoldingsSnapshot{
		Cash:   p.cash,
		Fee:    p.fee,
		Values: values,
		Total:  total,
	}
}

// AllHoldings returns the append-only snapshot history.
func (p *Portfolio) AllHoldings() []domain.HoldingsSnapshot {
	return p.allHoldings
}

// EquityCurve finalizes the snapshot history into equity points. Pure
// function of recorded snapshots: calling it twice yields the same result.
func (p *Portfolio) EquityCurve() []domain.EquityPoint {
	return BuildEquityCurve(p.allHoldings)
}
