//go:generate mockgen -source=events.go -destination=events_mock.go -package=services

package services

import (
	"context"
	"encoding/json"

	"github.com/sbilibin2017/fiton/internal/logger"
	"github.com/sbilibin2017/fiton/internal/models"
	"github.com/segmentio/kafka-go"
)

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// GenerationPublisher publishes generation events.
type GenerationPublisher interface {
	PublishGeneration(ctx context.Context, event models.GenerationEvent)
}

// EventPublisher publishes generation events to Kafka.
type EventPublisher struct {
	kafkaWriter KafkaWriter
}

// NewEventPublisher creates a publisher. A nil writer disables publishing.
func NewEventPublisher(kafkaWriter KafkaWriter) *EventPublisher {
	return &EventPublisher{kafkaWriter: kafkaWriter}
}

// PublishGeneration publishes an event keyed by user id. Failures are logged, never returned.
func (p *EventPublisher) PublishGeneration(ctx context.Context, event models.GenerationEvent) {
	log := logger.FromContext(ctx)

	if p == nil || p.kafkaWriter == nil {
		log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Errorw("Failed to marshal generation event for Kafka", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	if err := p.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		log.Errorw("Failed to publish generation event to Kafka", "event_id", event.EventID, "error", err)
	} else {
		log.Infow("Generation event published to Kafka", "event_id", event.EventID, "kind", event.Kind, "success", event.Success)
	}
}
