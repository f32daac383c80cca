package events

import (
	"context"
	"log/slog"

	"dinner/internal/core/domain/model/order"
	"dinner/internal/core/ports"
	"dinner/internal/pkg/metrics"
)

// InstrumentedPublisher counts every order change before handing it to the wrapped publisher.
// Counting does not depend on delivery, so order metrics stay accurate while a broker is down.
type InstrumentedPublisher struct {
	next    ports.OrderEventPublisher
	metrics *metrics.Metrics
	logger  *slog.Logger
}

func NewInstrumentedPublisher(next ports.OrderEventPublisher, m *metrics.Metrics, logger *slog.Logger) *InstrumentedPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &InstrumentedPublisher{next: next, metrics: m, logger: logger}
}

func (p *InstrumentedPublisher) PublishOrderChanged(ctx context.Context, event order.ChangedEvent) error {
	if event.Created {
		p.metrics.OrdersCreated.Inc()
	}
	p.metrics.OrderChanges.WithLabelValues(event.Status.String()).Inc()

	if err := p.next.PublishOrderChanged(ctx, event); err != nil {
		p.metrics.PublishFailures.Inc()
		return err
	}

	p.logger.DebugContext(ctx, "order change published",
		slog.String("order_id", event.OrderID.String()),
		slog.String("status", event.Status.String()),
		slog.Bool("created", event.Created))
	return nil
}

func (p *InstrumentedPublisher) Close() error {
	return p.next.Close()
}
