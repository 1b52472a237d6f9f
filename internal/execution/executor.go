// Package execution turns order events into fill events. The simulated
// executor fills instantly at order terms; a production implementation would
// route to a venue and report real fills through the same interface.
package execution

import (
	"github.com/google/uuid"

	"lending-rate-lab/internal/event"
)

// Executor consumes order events and produces fill events.
type Executor interface {
	OnOrder(o event.Order)
}

// SimulatedExecutor fills every order instantly at its own terms, charging a
// flat fee per fill.
type SimulatedExecutor struct {
	queue *event.Queue
	fee   float64
}

// NewSimulated creates a simulated executor with a flat per-fill fee.
func NewSimulated(queue *event.Queue, fee float64) *SimulatedExecutor {
	return &SimulatedExecutor{queue: queue, fee: fee}
}

// OnOrder enqueues a fill mirroring the order. Orders without an ID are
// assigned one so the fill can be traced back.
func (e *SimulatedExecutor) OnOrder(o event.Order) {
	id := o.ID
	if id == "" {
		id = uuid.NewString()
	}
	e.queue.Put(event.NewFill(event.Fill{
		OrderID:   id,
		Token:     o.Token,
		Fee:       e.fee,
		Timestamp: o.Timestamp,
		Notional:  o.Notional,
		Direction: o.Direction,
	}))
}

var _ Executor = (*SimulatedExecutor)(nil)
