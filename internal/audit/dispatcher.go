package audit

import (
	"go.uber.org/zap"

	"github.com/BruksfildServices01/appointment-booking/internal/logger"
)

type Event struct {
	Action   string
	Entity   string
	EntityID *uint
	Metadata any
}

// Dispatcher writes audit events from a background worker so the request
// path never waits on the audit table.
type Dispatcher struct {
	logger *Logger
	queue  chan Event
}

func NewDispatcher(auditLogger *Logger) *Dispatcher {
	d := &Dispatcher{
		logger: auditLogger,
		queue:  make(chan Event, 100),
	}

	go d.worker()
	return d
}

func (d *Dispatcher) worker() {
	for ev := range d.queue {
		if err := d.logger.Log(
			ev.Action,
			ev.Entity,
			ev.EntityID,
			ev.Metadata,
		); err != nil {
			logger.Get().Warn("audit write failed",
				zap.String("action", ev.Action),
				zap.Error(err),
			)
		}
	}
}

// Dispatch never blocks; when the queue is full the event is dropped
// rather than slowing the API down.
func (d *Dispatcher) Dispatch(ev Event) {
	select {
	case d.queue <- ev:
	default:
		logger.Get().Warn("audit queue full, dropping event",
			zap.String("action", ev.Action),
		)
	}
}
