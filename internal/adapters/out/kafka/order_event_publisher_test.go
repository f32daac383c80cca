package kafka

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"dinner/internal/adapters/out/events"
	"dinner/internal/core/domain/model/customer"
	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/order"
	"dinner/internal/pkg/errs"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	err      error
	closed   bool
}

func (w *fakeWriter) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	if w.err != nil {
		return w.err
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func newEvent(t *testing.T) order.ChangedEvent {
	t.Helper()
	addr, err := kernel.NewAddress("1 Quay Street", "Dublin", "", "D02", "IE")
	require.NoError(t, err)
	c, err := customer.NewCustomer(kernel.NewUUID(), "Nora", "nora@example.com", "35315550000", addr)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), c, addr, kernel.EUR, time.Now())
	require.NoError(t, err)
	return order.NewChangedEvent(o, true, time.Now())
}

func TestNewOrderEventPublisher_Validation(t *testing.T) {
	_, err := NewOrderEventPublisher(" , ", "orders")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	_, err = NewOrderEventPublisher("localhost:9092", " ")
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	p, err := NewOrderEventPublisher("localhost:9092, localhost:9093", "order-changed")
	require.NoError(t, err)
	require.NoError(t, p.Close())
}

func TestPublishOrderChanged_WritesKeyedJSON(t *testing.T) {
	writer := &fakeWriter{}
	p := newOrderEventPublisher(writer)
	fixed := time.Date(2026, 5, 1, 8, 0, 0, 0, time.UTC)
	p.now = func() time.Time { return fixed }
	event := newEvent(t)

	require.NoError(t, p.PublishOrderChanged(context.Background(), event))

	require.Len(t, writer.messages, 1)
	msg := writer.messages[0]
	assert.Equal(t, event.OrderID.String(), string(msg.Key))
	assert.Equal(t, fixed, msg.Time)
	require.Len(t, msg.Headers, 1)
	assert.Equal(t, "Pending", string(msg.Headers[0].Value))

	var body events.OrderChangedMessage
	require.NoError(t, json.Unmarshal(msg.Value, &body))
	assert.Equal(t, event.OrderID.String(), body.OrderID)
	assert.Equal(t, "0.00", body.TotalAmount)
	assert.Equal(t, "EUR", body.Currency)
}

func TestPublishOrderChanged_WriterError(t *testing.T) {
	writer := &fakeWriter{err: errors.New("leader not available")}
	p := newOrderEventPublisher(writer)

	err := p.PublishOrderChanged(context.Background(), newEvent(t))

	require.EqualError(t, err, "leader not available")
}

func TestSplitBrokers(t *testing.T) {
	assert.Equal(t, []string{"a:9092", "b:9092"}, splitBrokers(" a:9092,, b:9092 "))
	assert.Empty(t, splitBrokers(""))
}
