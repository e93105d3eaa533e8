package audit

import "log"

type Event struct {
	Action   string
	Entity   string
	EntityID string
	Metadata any
}

// Dispatcher decouples request handling from audit persistence: events are
// queued and written by a background worker. A full queue drops the event
// rather than failing the request.
type Dispatcher struct {
	sink  Sink
	queue chan Event
}

func NewDispatcher(sink Sink) *Dispatcher {
	d := &Dispatcher{
		sink:  sink,
		queue: make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.sink.Log(ev.Action, ev.Entity, ev.EntityID, ev.Metadata); err != nil {
			log.Println("audit error:", err)
		}
	}
}

func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		log.Println("audit queue full, dropping event")
	}
}
