// Package rabbitmq publishes order change events to a RabbitMQ topic exchange.
package rabbitmq

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"dinner/internal/adapters/out/events"
	"dinner/internal/core/domain/model/order"
	"dinner/internal/pkg/errs"

	amqp "github.com/rabbitmq/amqp091-go"
)

const publishTimeout = 5 * time.Second

// channel is the part of *amqp.Channel the publisher needs.
type channel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
	Close() error
}

// OrderEventPublisher sends order changes to a durable topic exchange with the
// routing key "order.<status>".
type OrderEventPublisher struct {
	conn     *amqp.Connection
	channel  channel
	exchange string
	now      func() time.Time
}

// NewOrderEventPublisher dials url and declares exchange as a durable topic exchange.
func NewOrderEventPublisher(url, exchange string) (*OrderEventPublisher, error) {
	if strings.TrimSpace(url) == "" {
		return nil, errs.NewValueIsRequiredError("url")
	}
	if strings.TrimSpace(exchange) == "" {
		return nil, errs.NewValueIsRequiredError("exchange")
	}

	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, err
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, err
	}

	err = ch.ExchangeDeclare(
		exchange, // name
		"topic",  // type
		true,     // durable
		false,    // auto-deleted
		false,    // internal
		false,    // no-wait
		nil,      // arguments
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, err
	}

	p := newOrderEventPublisher(ch, exchange)
	p.conn = conn
	return p, nil
}

func newOrderEventPublisher(ch channel, exchange string) *OrderEventPublisher {
	return &OrderEventPublisher{channel: ch, exchange: exchange, now: time.Now}
}

func (p *OrderEventPublisher) PublishOrderChanged(ctx context.Context, event order.ChangedEvent) error {
	body, err := json.Marshal(events.NewOrderChangedMessage(event))
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	return p.channel.PublishWithContext(ctx,
		p.exchange,                      // exchange
		events.RoutingKey(event.Status), // routing key
		false,                           // mandatory
		false,                           // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    event.OrderID.String(),
			Body:         body,
			Timestamp:    p.now().UTC(),
		})
}

// Close closes the channel and then the connection.
func (p *OrderEventPublisher) Close() error {
	var err error
	if p.channel != nil {
		err = p.channel.Close()
	}
	if p.conn != nil {
		err = errors.Join(err, p.conn.Close())
	}
	return err
}
