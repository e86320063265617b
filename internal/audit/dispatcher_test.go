package audit

import (
	"errors"
	"sync"
	"testing"
)

type recordingSink struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (s *recordingSink) Log(ev Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, ev)
	return s.err
}

func TestDispatcherDeliversInOrder(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)

	orderID := int64(7)
	d.Dispatch(Event{ViewID: "v", Action: "order_saved", Entity: "order", EntityID: &orderID})
	d.Dispatch(Event{ViewID: "v", Action: "order_deleted", Entity: "order", EntityID: &orderID})
	d.Close()

	if len(sink.events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(sink.events))
	}
	if sink.events[0].Action != "order_saved" || sink.events[1].Action != "order_deleted" {
		t.Fatalf("unexpected order %+v", sink.events)
	}
}

func TestDispatcherSurvivesSinkErrors(t *testing.T) {
	sink := &recordingSink{err: errors.New("db down")}
	d := NewDispatcher(sink)

	d.Dispatch(Event{Action: "a"})
	d.Dispatch(Event{Action: "b"})
	d.Close()

	if len(sink.events) != 2 {
		t.Fatalf("expected 2 attempts, got %d", len(sink.events))
	}
}

func TestDispatchAfterCloseIsDropped(t *testing.T) {
	sink := &recordingSink{}
	d := NewDispatcher(sink)
	d.Close()

	// a request still in flight during shutdown
	d.Dispatch(Event{Action: "order_saved"})
	d.Close()

	if len(sink.events) != 0 {
		t.Fatalf("expected no events, got %d", len(sink.events))
	}
}

func TestDispatchRacingClose(t *testing.T) {
	d := NewDispatcher(&recordingSink{})

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			d.Dispatch(Event{Action: "order_saved"})
		}()
	}
	d.Close()
	wg.Wait()
}

func TestDiscard(t *testing.T) {
	if err := (Discard{}).Log(Event{Action: "x"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
