// Package backtest drives the event loop: advance the rate feed one step,
// then drain and dispatch every queued event, until the feed is exhausted.
// Execution is single-threaded and turn-based, so event dispatch order
// always equals enqueue order.
package backtest

import (
	"context"

	"lending-rate-lab/internal/domain"
	"lending-rate-lab/internal/event"
	"lending-rate-lab/internal/execution"
	"lending-rate-lab/internal/portfolio"
	"lending-rate-lab/internal/ratefeed"
	"lending-rate-lab/internal/strategy"
)

// Results holds backtest output.
type Results struct {
	StrategyName string
	Bars         int // market events dispatched
	Signals      int
	Orders       int
	Fills        int
	Holdings     []domain.HoldingsSnapshot
	EquityCurve  []domain.EquityPoint
}

// Runner wires the feed, strategy, portfolio and executor around the shared
// queue and runs the backtest to completion.
type Runner struct {
	feed      ratefeed.RateFeed
	queue     *event.Queue
	portfolio *portfolio.Portfolio
	strategy  strategy.Strategy
	executor  execution.Executor
}

// NewRunner creates a runner over an already-wired component set. All
// components must share the same queue.
func NewRunner(
	feed ratefeed.RateFeed,
	queue *event.Queue,
	p *portfolio.Portfolio,
	s strategy.Strategy,
	e execution.Executor,
) *Runner {
	return &Runner{
		feed:      feed,
		queue:     queue,
		portfolio: p,
		strategy:  s,
		executor:  e,
	}
}

// Run executes the backtest until the feed's terminal condition and
// finalizes the equity curve. Cancellation is checked between steps; no
// operation suspends mid-step.
func (r *Runner) Run(ctx context.Context) (*Results, error) {
	results := &Results{StrategyName: r.strategy.Name()}

	for r.feed.Continue() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		r.feed.UpdateRates()

		for {
			e, ok := r.queue.Get()
			if !ok {
				break
			}
			r.dispatch(e, results)
		}
	}

	results.Holdings = r.portfolio.AllHoldings()
	results.EquityCurve = r.portfolio.EquityCurve()
	return results, nil
}

// dispatch routes one event by kind. Market events fan out to the strategy
// before the portfolio snapshots the bar, so signals raised on a bar are on
// the queue before the next advance.
func (r *Runner) dispatch(e *event.Event, results *Results) {
	switch e.Type {
	case event.TypeMarket:
		results.Bars++
		for _, s := range r.strategy.OnMarket(r.feed) {
			r.queue.Put(event.NewSignal(s))
		}
		r.portfolio.UpdateTimeindex()
	case event.TypeSignal:
		results.Signals++
		r.portfolio.OnSignal(*e.Signal)
	case event.TypeOrder:
		results.Orders++
		r.executor.OnOrder(*e.Order)
	case event.TypeFill:
		results.Fills++
		r.portfolio.OnFill(*e.Fill)
	}
}
