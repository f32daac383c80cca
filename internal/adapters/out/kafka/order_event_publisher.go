// Package kafka publishes order change events to a Kafka topic.
package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"dinner/internal/adapters/out/events"
	"dinner/internal/core/domain/model/order"
	"dinner/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
)

// messageWriter is the part of *kafka.Writer the publisher needs.
type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// OrderEventPublisher writes one message per order change, keyed by order id so that all
// changes of an order land on the same partition in commit order.
type OrderEventPublisher struct {
	writer messageWriter
	now    func() time.Time
}

// NewOrderEventPublisher creates a publisher for topic on the comma separated broker list.
func NewOrderEventPublisher(brokersCSV, topic string) (*OrderEventPublisher, error) {
	brokers := splitBrokers(brokersCSV)
	if len(brokers) == 0 {
		return nil, errs.NewValueIsRequiredError("brokers")
	}
	if strings.TrimSpace(topic) == "" {
		return nil, errs.NewValueIsRequiredError("topic")
	}

	writer := &kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireOne,
	}
	return newOrderEventPublisher(writer), nil
}

func newOrderEventPublisher(writer messageWriter) *OrderEventPublisher {
	return &OrderEventPublisher{writer: writer, now: time.Now}
}

func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, event order.ChangedEvent) error {
	body, err := json.Marshal(events.NewOrderChangedMessage(event))
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.OrderID.String()),
		Value: body,
		Time:  p.now().UTC(),
		Headers: []kafka.Header{
			{Key: "status", Value: []byte(event.Status.String())},
		},
	})
}

func (p *OrderEventPublisher) Close() error {
	if p.writer == nil {
		return errors.New("kafka writer is not initialized")
	}
	return p.writer.Close()
}

func splitBrokers(csv string) []string {
	brokers := []string{}
	for _, b := range strings.Split(csv, ",") {
		b = strings.TrimSpace(b)
		if b != "" {
			brokers = append(brokers, b)
		}
	}
	return brokers
}
