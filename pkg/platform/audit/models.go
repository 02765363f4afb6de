// Package audit captures what the simulator did and when, so demo operators
// can replay a session. Events are emitted from domain logic onto a channel,
// drained by a background worker, kept in memory and optionally published to
// Kafka. Nothing here is durable; the trail lives as long as the process.
package audit

import (
	"context"
	"time"
)

// Action classifies audit events.
type Action string

const (
	ActionFlowStarted           Action = "flow_started"
	ActionStepCompleted         Action = "step_completed"
	ActionFlowCompleted         Action = "flow_completed"
	ActionFlowFailed            Action = "flow_failed"
	ActionVerificationPerformed Action = "verification_performed"
)

// Event is emitted from domain logic to capture key actions. Keep it
// transport-agnostic so stores and sinks can fan out.
type Event struct {
	Timestamp time.Time `json:"timestamp"`
	Action    Action    `json:"action"`
	FlowID    string    `json:"flow_id,omitempty"`
	RequestID string    `json:"request_id,omitempty"`
	// Method is the verification method involved, when the event concerns
	// a single step.
	Method  string `json:"method,omitempty"`
	Outcome string `json:"outcome,omitempty"`
	Detail  string `json:"detail,omitempty"`
}

// Store persists events for later listing.
type Store interface {
	Append(ctx context.Context, event Event) error
	ListRecent(ctx context.Context, limit int) ([]Event, error)
}

// Sink receives events for out-of-process delivery (e.g. Kafka). Sinks are
// best-effort; delivery failures never fail the originating operation.
type Sink interface {
	Publish(ctx context.Context, event Event) error
}
