package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/bellavista/restaurant-backend/utils"
	"github.com/segmentio/kafka-go"
)

// Event kinds published to the order topic.
const (
	EventOrderCreated       = "order.created"
	EventReservationCreated = "reservation.created"
)

// Event is the JSON payload published when an order or reservation is
// created. Downstream consumers (kitchen displays, analytics) read it.
type Event struct {
	Kind      string    `json:"kind"`
	Number    string    `json:"number"`
	Total     float64   `json:"total,omitempty"`
	Guests    int       `json:"guests,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// EventPublisher writes domain events to Kafka. A nil publisher or nil
// writer is a no-op, so event publishing stays optional.
type EventPublisher struct {
	Writer *kafka.Writer
}

func NewEventPublisher(broker, topic string) *EventPublisher {
	if broker == "" {
		return &EventPublisher{}
	}
	return &EventPublisher{
		Writer: &kafka.Writer{
			Addr:     kafka.TCP(broker),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

// Publish is best-effort: errors are logged, never returned to the
// request path.
func (p *EventPublisher) Publish(ctx context.Context, event Event) {
	if p == nil || p.Writer == nil {
		return
	}

	payload, err := json.Marshal(event)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to encode %s event: %v", event.Kind, err)
		return
	}

	if err := p.Writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.Number),
		Value: payload,
	}); err != nil {
		utils.ErrorLogger.Printf("Failed to publish %s event: %v", event.Kind, err)
	}
}

// Close flushes and closes the underlying writer.
func (p *EventPublisher) Close() error {
	if p == nil || p.Writer == nil {
		return nil
	}
	return p.Writer.Close()
}
