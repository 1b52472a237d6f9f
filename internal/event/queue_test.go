package event

import (
	"testing"

	"lending-rate-lab/internal/domain"
)

func TestQueue_FIFOOrder(t *testing.T) {
	q := NewQueue()

	q.Put(NewMarket())
	q.Put(NewSignal(Signal{Token: "aave_usdc", Direction: domain.DirectionLong}))
	q.Put(NewOrder(Order{Token: "aave_usdc", Notional: 10000}))

	if q.Len() != 3 {
		t.Fatalf("Expected 3 queued events, got %d", q.Len())
	}

	kinds := []Type{}
	for {
		e, ok := q.Get()
		if !ok {
			break
		}
		kinds = append(kinds, e.Type)
	}

	want := []Type{TypeMarket, TypeSignal, TypeOrder}
	if len(kinds) != len(want) {
		t.Fatalf("Expected %d events, got %d", len(want), len(kinds))
	}
	for i := range want {
		if kinds[i] != want[i] {
			t.Errorf("Event %d: expected %s, got %s", i, want[i], kinds[i])
		}
	}
}

func TestQueue_GetEmpty(t *testing.T) {
	q := NewQueue()

	if e, ok := q.Get(); ok || e != nil {
		t.Errorf("Expected empty queue to return (nil, false), got (%v, %v)", e, ok)
	}
}

func TestQueue_InterleavedPutGet(t *testing.T) {
	q := NewQueue()

	q.Put(NewMarket())
	e, ok := q.Get()
	if !ok || e.Type != TypeMarket {
		t.Fatalf("Expected market event, got %+v", e)
	}

	q.Put(NewFill(Fill{Token: "aave_usdc", Fee: 10}))
	e, ok = q.Get()
	if !ok || e.Type != TypeFill {
		t.Fatalf("Expected fill event, got %+v", e)
	}
	if e.Fill.Fee != 10 {
		t.Errorf("Expected fee 10, got %f", e.Fill.Fee)
	}
}
