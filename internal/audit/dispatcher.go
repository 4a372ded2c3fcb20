package audit

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

// Actions recorded by the booking service.
const (
	ActionTurnoCreated   = "turno_created"
	ActionTurnoCancelled = "turno_cancelled"
	ActionTurnoConflict  = "turno_conflict"
	ActionUserRegistered = "user_registered"
	ActionUserDeleted    = "user_deleted"
)

// Notice is an optional email that accompanies an event.
type Notice struct {
	To      string
	Subject string
	Body    string
}

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Actor    string
	Metadata any
	Notice   *Notice
}

// Sink consumes dispatched events. Errors are logged and never reach the
// request that produced the event.
type Sink interface {
	Handle(ctx context.Context, ev Event) error
}

type SinkFunc func(ctx context.Context, ev Event) error

func (f SinkFunc) Handle(ctx context.Context, ev Event) error { return f(ctx, ev) }

type Dispatcher struct {
	sinks []Sink
	queue chan Event

	mu     sync.RWMutex
	closed bool
	done   chan struct{}
}

const (
	queueSize   = 100
	sinkTimeout = 10 * time.Second
)

func NewDispatcher(sinks ...Sink) *Dispatcher {
	d := &Dispatcher{
		sinks: sinks,
		queue: make(chan Event, queueSize),
		done:  make(chan struct{}),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	defer close(d.done)

	for ev := range d.queue {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), sinkTimeout)
			if err := s.Handle(ctx, ev); err != nil {
				log.Warn().Err(err).Str("action", ev.Action).Msg("audit sink failed")
			}
			cancel()
		}
	}
}

// Dispatch enqueues ev without blocking. A full queue drops the event.
func (d *Dispatcher) Dispatch(ev Event) {
	if d == nil {
		return
	}

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	select {
	case d.queue <- ev:
	default:
		log.Warn().Str("action", ev.Action).Msg("audit queue full, dropping event")
	}
}

// Close stops accepting events and waits for the queue to drain or ctx to
// end.
func (d *Dispatcher) Close(ctx context.Context) error {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.queue)
	}
	d.mu.Unlock()

	select {
	case <-d.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
