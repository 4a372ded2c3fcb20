package audit

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *recorder) Handle(_ context.Context, ev Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
	return nil
}

func (r *recorder) actions() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		out = append(out, ev.Action)
	}
	return out
}

func TestDispatcher_DeliversToEverySinkInOrder(t *testing.T) {
	a, b := &recorder{}, &recorder{}
	d := NewDispatcher(a, b)

	d.Dispatch(Event{Action: ActionTurnoCreated})
	d.Dispatch(Event{Action: ActionTurnoCancelled})

	require.NoError(t, d.Close(context.Background()))

	want := []string{ActionTurnoCreated, ActionTurnoCancelled}
	assert.Equal(t, want, a.actions())
	assert.Equal(t, want, b.actions())
}

func TestDispatcher_FailingSinkDoesNotStopOthers(t *testing.T) {
	rec := &recorder{}
	failing := SinkFunc(func(context.Context, Event) error { return errors.New("boom") })
	d := NewDispatcher(failing, rec)

	d.Dispatch(Event{Action: ActionUserRegistered})
	require.NoError(t, d.Close(context.Background()))

	assert.Equal(t, []string{ActionUserRegistered}, rec.actions())
}

func TestDispatcher_DispatchAfterCloseIsIgnored(t *testing.T) {
	rec := &recorder{}
	d := NewDispatcher(rec)
	require.NoError(t, d.Close(context.Background()))

	assert.NotPanics(t, func() { d.Dispatch(Event{Action: ActionTurnoCreated}) })
	assert.Empty(t, rec.actions())
}

func TestDispatcher_NilIsNoop(t *testing.T) {
	var d *Dispatcher
	assert.NotPanics(t, func() { d.Dispatch(Event{Action: ActionTurnoCreated}) })
}

func TestDispatcher_CloseHonoursContext(t *testing.T) {
	block := make(chan struct{})
	slow := SinkFunc(func(context.Context, Event) error {
		<-block
		return nil
	})
	d := NewDispatcher(slow)
	d.Dispatch(Event{Action: ActionTurnoCreated})

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	assert.ErrorIs(t, d.Close(ctx), context.DeadlineExceeded)
	close(block)
}

type fakeSender struct {
	to, subject string
	calls       int
}

func (f *fakeSender) Send(_ context.Context, to, subject, _ string) error {
	f.calls++
	f.to, f.subject = to, subject
	return nil
}

func TestMailSink_SendsOnlyWithNotice(t *testing.T) {
	s := &fakeSender{}
	sink := NewMailSink(s)

	require.NoError(t, sink.Handle(context.Background(), Event{Action: ActionTurnoCancelled}))
	assert.Equal(t, 0, s.calls)

	require.NoError(t, sink.Handle(context.Background(), Event{
		Action: ActionTurnoCreated,
		Notice: &Notice{To: "barbero@test.com", Subject: "Nuevo turno"},
	}))
	assert.Equal(t, 1, s.calls)
	assert.Equal(t, "barbero@test.com", s.to)
	assert.Equal(t, "Nuevo turno", s.subject)
}
