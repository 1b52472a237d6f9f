package execution

import (
	"testing"
	"time"

	"lending-rate-lab/internal/domain"
	"lending-rate-lab/internal/event"
)

func TestSimulatedExecutor_FillsInstantly(t *testing.T) {
	queue := event.NewQueue()
	executor := NewSimulated(queue, 10)

	ts := time.Date(2021, 3, 11, 0, 0, 0, 0, time.UTC)
	executor.OnOrder(event.Order{
		ID:        "order-1",
		Token:     "aave_usdc",
		Timestamp: ts,
		Notional:  10000,
		Direction: domain.DirectionLong,
	})

	e, ok := queue.Get()
	if !ok {
		t.Fatal("Expected a fill event on the queue")
	}
	if e.Type != event.TypeFill {
		t.Fatalf("Expected fill event, got %s", e.Type)
	}

	fill := e.Fill
	if fill.OrderID != "order-1" {
		t.Errorf("Expected OrderID order-1, got %s", fill.OrderID)
	}
	if fill.Token != "aave_usdc" || fill.Notional != 10000 || fill.Direction != domain.DirectionLong {
		t.Errorf("Fill does not mirror order: %+v", fill)
	}
	if !fill.Timestamp.Equal(ts) {
		t.Errorf("Expected fill at order timestamp, got %v", fill.Timestamp)
	}
	if fill.Fee != 10 {
		t.Errorf("Expected flat fee 10, got %f", fill.Fee)
	}
}

func TestSimulatedExecutor_AssignsOrderID(t *testing.T) {
	queue := event.NewQueue()
	executor := NewSimulated(queue, 0)

	executor.OnOrder(event.Order{Token: "aave_usdc", Notional: 10000, Direction: domain.DirectionShort})

	e, ok := queue.Get()
	if !ok {
		t.Fatal("Expected a fill event on the queue")
	}
	if e.Fill.OrderID == "" {
		t.Error("Expected a generated order ID")
	}
}
