package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	portssvc "github.com/andinabank/ledger-service/internal/core/ports/services"
	"github.com/andinabank/ledger-service/internal/events"
	"github.com/go-playground/validator/v10"
	kafkago "github.com/segmentio/kafka-go"
)

// CustomerEventConsumer reads customer lifecycle events and feeds them to the
// ledger's projection service. One reader runs per topic, all in the same
// consumer group.
type CustomerEventConsumer struct {
	brokers  []string
	groupID  string
	svc      portssvc.CustomerReferenceSvc
	validate *validator.Validate
	logger   *slog.Logger
}

// NewCustomerEventConsumer creates a consumer for the customer lifecycle topics.
func NewCustomerEventConsumer(brokers []string, groupID string, svc portssvc.CustomerReferenceSvc, logger *slog.Logger) *CustomerEventConsumer {
	return &CustomerEventConsumer{
		brokers:  brokers,
		groupID:  groupID,
		svc:      svc,
		validate: validator.New(),
		logger:   logger,
	}
}

// Start consumes all three topics until the context is cancelled.
func (c *CustomerEventConsumer) Start(ctx context.Context) {
	topics := []string{
		events.TopicCustomerCreated,
		events.TopicCustomerUpdated,
		events.TopicCustomerDeleted,
	}

	var wg sync.WaitGroup
	for _, topic := range topics {
		wg.Add(1)
		go func(topic string) {
			defer wg.Done()
			c.consumeTopic(ctx, topic)
		}(topic)
	}
	wg.Wait()
}

func (c *CustomerEventConsumer) consumeTopic(ctx context.Context, topic string) {
	reader := kafkago.NewReader(kafkago.ReaderConfig{
		Brokers: c.brokers,
		Topic:   topic,
		GroupID: c.groupID,
	})
	defer reader.Close()

	c.logger.Info("customer event consumer started", slog.String("topic", topic), slog.String("group_id", c.groupID))

	for {
		m, err := reader.ReadMessage(ctx)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				c.logger.Info("customer event consumer stopped", slog.String("topic", topic))
				return
			}
			c.logger.Error("kafka read failed", slog.String("topic", topic), slog.String("error", err.Error()))
			continue
		}

		if err := c.Dispatch(ctx, topic, m.Value); err != nil {
			// Offsets are already committed by ReadMessage; a failed event is
			// logged and skipped rather than wedging the partition.
			c.logger.Error("customer event handling failed",
				slog.String("topic", topic),
				slog.String("key", string(m.Key)),
				slog.String("error", err.Error()),
			)
		}
	}
}

// Dispatch decodes, validates and routes a single event payload.
func (c *CustomerEventConsumer) Dispatch(ctx context.Context, topic string, payload []byte) error {
	switch topic {
	case events.TopicCustomerCreated:
		var event events.CustomerCreatedEvent
		if err := c.decode(payload, &event); err != nil {
			return err
		}
		return c.svc.HandleCustomerCreated(ctx, event)
	case events.TopicCustomerUpdated:
		var event events.CustomerUpdatedEvent
		if err := c.decode(payload, &event); err != nil {
			return err
		}
		return c.svc.HandleCustomerUpdated(ctx, event)
	case events.TopicCustomerDeleted:
		var event events.CustomerDeletedEvent
		if err := c.decode(payload, &event); err != nil {
			return err
		}
		return c.svc.HandleCustomerDeleted(ctx, event)
	default:
		return fmt.Errorf("unknown customer event topic %q", topic)
	}
}

func (c *CustomerEventConsumer) decode(payload []byte, event any) error {
	if err := json.Unmarshal(payload, event); err != nil {
		return fmt.Errorf("failed to unmarshal event payload: %w", err)
	}
	if err := c.validate.Struct(event); err != nil {
		return fmt.Errorf("invalid event payload: %w", err)
	}
	return nil
}
