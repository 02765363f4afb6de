package audit

import (
	"log/slog"
	"time"
)

// Emitter hands events to the background worker without blocking the caller.
// A full inbox drops the event and logs a warning: the simulator's audit
// trail is advisory, and a slow sink must never stall a verification.
type Emitter struct {
	inbox  chan<- Event
	logger *slog.Logger
}

func NewEmitter(inbox chan<- Event, logger *slog.Logger) *Emitter {
	return &Emitter{inbox: inbox, logger: logger}
}

// Emit enqueues the event, stamping the time if the caller did not.
func (e *Emitter) Emit(event Event) {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	select {
	case e.inbox <- event:
	default:
		e.logger.Warn("audit inbox full, dropping event",
			"action", event.Action,
			"flow_id", event.FlowID,
		)
	}
}
