package events

import (
	"context"

	"github.com/smart-commute/service-commute/internal/platform/kafka"
)

// ServiceSource is the CloudEvents source of every event this service emits.
const ServiceSource = "service-commute"

// EventWriter writes one envelope to a topic.
type EventWriter interface {
	PublishEvent(ctx context.Context, topic string, event kafka.CloudEvent) error
}

// KafkaPublisher adapts a Kafka producer to application.EventPublisher.
type KafkaPublisher struct {
	writer EventWriter
}

// NewKafkaPublisher creates a new KafkaPublisher.
func NewKafkaPublisher(writer EventWriter) *KafkaPublisher {
	return &KafkaPublisher{writer: writer}
}

// Publish wraps data in a CloudEvent keyed by subject.
func (p *KafkaPublisher) Publish(ctx context.Context, topic, eventType, subject string, data any) error {
	ce, err := kafka.NewCloudEvent(ServiceSource, eventType, data)
	if err != nil {
		return err
	}
	ce.Subject = subject
	return p.writer.PublishEvent(ctx, topic, ce)
}
