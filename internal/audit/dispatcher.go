package audit

import (
	"log"
	"sync"
)

type Event struct {
	RequestID string
	Action    string
	Entity    string
	EntityID  *uint
	Metadata  any
}

// Sink persiste um evento.
type Sink interface {
	Log(ev Event) error
}

// LogSink só escreve no log; usado quando não há banco (STORAGE=memory).
type LogSink struct{}

func (LogSink) Log(ev Event) error {
	log.Printf("audit: action=%s entity=%s request_id=%s", ev.Action, ev.Entity, ev.RequestID)
	return nil
}

type Dispatcher struct {
	sink  Sink
	queue chan Event

	closeOnce sync.Once
	done      chan struct{}
}

func NewDispatcher(sink Sink) *Dispatcher {
	return NewDispatcherSize(sink, 100)
}

func NewDispatcherSize(sink Sink, size int) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, size),
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

// Dispatch nunca bloqueia: com a fila cheia o evento é descartado.
func (d *Dispatcher) Dispatch(ev Event) bool {
	select {
	case d.queue <- ev:
		return true
	default:
		log.Println("audit queue full, dropping event")
		return false
	}
}

// Close drena a fila e espera o worker terminar. Dispatch após Close é
// proibido.
func (d *Dispatcher) Close() {
	d.closeOnce.Do(func() {
		close(d.queue)
	})
	<-d.done
}
