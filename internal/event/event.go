// Package event defines the closed set of messages exchanged between the
// rate feed, strategy, portfolio and executor, plus the FIFO queue that
// carries them. The queue is the sole coordination mechanism of a backtest.
package event

import (
	"time"

	"lending-rate-lab/internal/domain"
)

// Type represents the kind of event.
type Type string

// Event type constants.
const (
	TypeMarket Type = "market"
	TypeSignal Type = "signal"
	TypeOrder  Type = "order"
	TypeFill   Type = "fill"
)

// Market signals that the rate feed advanced by one step and new data is
// available through the feed's query interface. It carries no payload.
type Market struct{}

// Signal is a strategy's request for exposure on a token.
type Signal struct {
	Token     string
	Direction domain.Direction
	Timestamp time.Time
}

// Order is a sized instruction handed to the executor.
type Order struct {
	ID        string // generated identifier for traceability
	Token     string
	Timestamp time.Time
	Notional  float64
	Direction domain.Direction
}

// Fill reports an executed order back to the portfolio.
type Fill struct {
	OrderID   string
	Token     string
	Fee       float64
	Timestamp time.Time
	Notional  float64
	Direction domain.Direction
}

// Event is the unified message passed through the queue.
// Exactly one payload field is set based on Type.
type Event struct {
	Type   Type
	Market *Market
	Signal *Signal
	Order  *Order
	Fill   *Fill
}

// NewMarket wraps a market event.
func NewMarket() *Event {
	return &Event{Type: TypeMarket, Market: &Market{}}
}

// NewSignal wraps a signal event.
func NewSignal(s Signal) *Event {
	return &Event{Type: TypeSignal, Signal: &s}
}

// NewOrder wraps an order event.
func NewOrder(o Order) *Event {
	return &Event{Type: TypeOrder, Order: &o}
}

// NewFill wraps a fill event.
func NewFill(f Fill) *Event {
	return &Event{Type: TypeFill, Fill: &f}
}
