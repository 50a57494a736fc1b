// Package kafka publishes order-changed events to a Kafka topic with segmentio/kafka-go.
package kafka

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"dronedelivery/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

// MessageWriter is the part of *kafka.Writer the publisher needs.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// WriterBatchTimeout bounds how long a synchronous publish waits for its batch to fill.
const WriterBatchTimeout = 10 * time.Millisecond

// NewWriter creates a writer for topic on the comma separated broker list.
// Each publish is flushed after at most WriterBatchTimeout.
//
// Example:
//
//	writer := kafka.NewWriter("localhost:9092,localhost:9093", "order.changed")
//	publisher := kafka.NewOrderChangedPublisher(writer)
//	defer publisher.Close()
func NewWriter(brokers string, topic string) *kafka.Writer {
	addrs := make([]string, 0)
	for _, broker := range strings.Split(brokers, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			addrs = append(addrs, broker)
		}
	}

	return &kafka.Writer{
		Addr:                   kafka.TCP(addrs...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: true,
		BatchTimeout:           WriterBatchTimeout,
		WriteTimeout:           5 * time.Second,
		RequiredAcks:           kafka.RequireOne,
	}
}

// OrderChangedPublisher implements ports.EventPublisher.
// Messages are keyed by order id, so the events of one order stay ordered
// within a partition.
type OrderChangedPublisher struct {
	writer MessageWriter
}

var _ ports.EventPublisher = (*OrderChangedPublisher)(nil)

// NewOrderChangedPublisher creates a publisher on top of writer.
func NewOrderChangedPublisher(writer MessageWriter) *OrderChangedPublisher {
	return &OrderChangedPublisher{writer: writer}
}

// PublishOrderChanged writes event as a JSON message.
func (p *OrderChangedPublisher) PublishOrderChanged(ctx context.Context, event ports.OrderChangedEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode order changed event: %w", err)
	}

	msg := kafka.Message{
		Key:   []byte(event.OrderID),
		Value: payload,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte("order.changed")},
		},
	}
	if err = p.writer.WriteMessages(ctx, msg); err != nil {
		return fmt.Errorf("failed to publish order changed event: %w", err)
	}
	return nil
}

// Close flushes pending messages and closes the writer.
func (p *OrderChangedPublisher) Close() error {
	return p.writer.Close()
}
