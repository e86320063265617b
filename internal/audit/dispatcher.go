package audit

import (
	"log"
	"sync"
)

type Event struct {
	ViewID   string
	Action   string
	Entity   string
	EntityID *int64
	Metadata any
}

// Sink records one event. *Logger writes to the database; tests swap in fakes.
type Sink interface {
	Log(ev Event) error
}

type Dispatcher struct {
	sink  Sink
	queue chan Event
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)
	for ev := range d.queue {
		if err := d.sink.Log(ev); err != nil {
			log.Println("audit error:", err)
		}
	}
}

// Dispatch never blocks the caller; a full queue or a closed dispatcher
// drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		log.Println("audit closed, dropping event:", ev.Action)
		return
	}

	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event:", ev.Action)
	}
}

// Close drains queued events and stops the worker. Later Dispatch calls are
// dropped; Close may be called more than once.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		<-d.done
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	<-d.done
}

// Discard is a Sink for deployments without an audit database.
type Discard struct{}

func (Discard) Log(Event) error { return nil }
