// Package sink adapts the platform Kafka producer to the audit Sink
// interface. Events are serialized as JSON, keyed by flow ID so one flow's
// trail lands in a single partition.
package sink

import (
	"context"
	"encoding/json"
	"fmt"

	"kycsim/internal/platform/kafka/producer"
	audit "kycsim/pkg/platform/audit"
)

// Kafka publishes audit events through a franz-go producer.
type Kafka struct {
	producer *producer.Producer
}

func NewKafka(p *producer.Producer) *Kafka {
	return &Kafka{producer: p}
}

func (k *Kafka) Publish(ctx context.Context, event audit.Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal audit event: %w", err)
	}
	return k.producer.Publish(ctx, event.FlowID, payload)
}
