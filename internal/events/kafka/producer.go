// Package kafka adapts the customer lifecycle event contract to Kafka using
// segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	portssvc "github.com/andinabank/ledger-service/internal/core/ports/services"
	"github.com/andinabank/ledger-service/internal/events"
	kafkago "github.com/segmentio/kafka-go"
)

// CustomerEventProducer publishes customer lifecycle events. Messages are
// keyed by customer ID so all events for one customer stay on one partition
// and arrive in order.
type CustomerEventProducer struct {
	writer *kafkago.Writer
}

// Ensure CustomerEventProducer implements portssvc.CustomerEventPublisher
var _ portssvc.CustomerEventPublisher = (*CustomerEventProducer)(nil)

// NewCustomerEventProducer creates a producer over the given brokers. The
// topic is set per message.
func NewCustomerEventProducer(brokers []string) *CustomerEventProducer {
	return &CustomerEventProducer{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Balancer:     &kafkago.LeastBytes{},
			RequiredAcks: kafkago.RequireOne,
			MaxAttempts:  3,
			BatchTimeout: 10 * time.Millisecond,
			WriteTimeout: 10 * time.Second,
		},
	}
}

// PublishCustomerCreated emits a creation event.
func (p *CustomerEventProducer) PublishCustomerCreated(ctx context.Context, event events.CustomerCreatedEvent) error {
	return p.publish(ctx, events.TopicCustomerCreated, event.CustomerID, event)
}

// PublishCustomerUpdated emits an update event.
func (p *CustomerEventProducer) PublishCustomerUpdated(ctx context.Context, event events.CustomerUpdatedEvent) error {
	return p.publish(ctx, events.TopicCustomerUpdated, event.CustomerID, event)
}

// PublishCustomerDeleted emits a deletion event.
func (p *CustomerEventProducer) PublishCustomerDeleted(ctx context.Context, event events.CustomerDeletedEvent) error {
	return p.publish(ctx, events.TopicCustomerDeleted, event.CustomerID, event)
}

func (p *CustomerEventProducer) publish(ctx context.Context, topic string, customerID int64, payload any) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal %s event: %w", topic, err)
	}

	err = p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: topic,
		Key:   []byte(strconv.FormatInt(customerID, 10)),
		Value: data,
	})
	if err != nil {
		return fmt.Errorf("failed to publish %s event for customer %d: %w", topic, customerID, err)
	}
	return nil
}

// Close flushes and closes the underlying writer.
func (p *CustomerEventProducer) Close() error {
	return p.writer.Close()
}
