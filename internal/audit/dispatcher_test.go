package audit

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type blockingSink struct {
	started chan struct{}
	release chan struct{}

	mu  sync.Mutex
	got []Event
}

func newBlockingSink() *blockingSink {
	return &blockingSink{
		started: make(chan struct{}, 10),
		release: make(chan struct{}),
	}
}

func (s *blockingSink) Log(ev Event) error {
	s.started <- struct{}{}
	<-s.release

	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, ev)
	return nil
}

func TestDispatcher_DropsWhenFull(t *testing.T) {
	sink := newBlockingSink()
	d := NewDispatcherSize(sink, 1)

	require.True(t, d.Dispatch(Event{Action: "first"}))
	<-sink.started // worker está preso no primeiro evento

	assert.True(t, d.Dispatch(Event{Action: "second"}))
	assert.False(t, d.Dispatch(Event{Action: "third"}))

	close(sink.release)
	d.Close()

	require.Len(t, sink.got, 2)
	assert.Equal(t, "first", sink.got[0].Action)
	assert.Equal(t, "second", sink.got[1].Action)
}

func TestDispatcher_CloseDrains(t *testing.T) {
	sink := newBlockingSink()
	close(sink.release)

	d := NewDispatcher(sink)
	for i := 0; i < 10; i++ {
		d.Dispatch(Event{Action: "x"})
	}
	d.Close()
	d.Close()

	assert.Len(t, sink.got, 10)
}

func TestEvent_Record(t *testing.T) {
	id := uint(7)
	rec := Event{
		RequestID: "abc",
		Action:    "agendamentos_created",
		Entity:    "scheduling_request",
		EntityID:  &id,
		Metadata:  map[string]string{"horario": "09:30"},
	}.Record()

	assert.Equal(t, "abc", rec.RequestID)
	assert.Equal(t, uint(7), *rec.EntityID)
	assert.JSONEq(t, `{"horario":"09:30"}`, rec.Metadata)

	assert.Empty(t, Event{Action: "x"}.Record().Metadata)
}

func TestRequestIDContext(t *testing.T) {
	assert.Empty(t, RequestIDFrom(context.Background()))
	assert.Equal(t, "id-1", RequestIDFrom(WithRequestID(context.Background(), "id-1")))
}

func TestLogSink(t *testing.T) {
	assert.NoError(t, LogSink{}.Log(Event{Action: "x"}))
}
