package worker

import (
	"context"
	"log/slog"

	audit "kycsim/pkg/platform/audit"
)

// Worker consumes audit events from a channel, persists them and forwards
// them to an optional sink. Sink failures are logged, never propagated: the
// in-memory trail is the source of truth for the demo.
type Worker struct {
	store  audit.Store
	sink   audit.Sink
	inbox  <-chan audit.Event
	logger *slog.Logger
}

func New(store audit.Store, sink audit.Sink, inbox <-chan audit.Event, logger *slog.Logger) *Worker {
	return &Worker{store: store, sink: sink, inbox: inbox, logger: logger}
}

func (w *Worker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case event := <-w.inbox:
			if err := w.store.Append(ctx, event); err != nil {
				return err
			}
			if w.sink != nil {
				if err := w.sink.Publish(ctx, event); err != nil {
					w.logger.Warn("audit sink publish failed",
						"action", event.Action,
						"flow_id", event.FlowID,
						"error", err,
					)
				}
			}
		}
	}
}
