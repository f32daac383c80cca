package cmd

import (
	"fmt"
	"log/slog"

	httpin "dinner/internal/adapters/in/http"
	"dinner/internal/adapters/out/events"
	"dinner/internal/adapters/out/kafka"
	"dinner/internal/adapters/out/postgres"
	"dinner/internal/adapters/out/rabbitmq"
	"dinner/internal/core/application/usecases/commands"
	"dinner/internal/core/application/usecases/queries"
	"dinner/internal/core/ports"
	"dinner/internal/jobs"
	"dinner/internal/pkg/metrics"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	configs    Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	metrics    *metrics.Metrics
	logger     *slog.Logger
}

// NewCompositionRoot connects the configured event broker and wires the unit of work to it.
// Call Close to release the broker connection.
func NewCompositionRoot(
	configs Config,
	gormDB *gorm.DB,
	m *metrics.Metrics,
	logger *slog.Logger,
) (*CompositionRoot, error) {
	broker, err := newEventPublisher(configs)
	if err != nil {
		return nil, err
	}
	publisher := events.NewInstrumentedPublisher(broker, m, logger)

	return &CompositionRoot{
		configs:    configs,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		publisher:  publisher,
		metrics:    m,
		logger:     logger,
	}, nil
}

func newEventPublisher(configs Config) (ports.OrderEventPublisher, error) {
	switch configs.EventBroker {
	case BrokerKafka:
		return kafka.NewOrderEventPublisher(configs.KafkaHost, configs.KafkaOrderChangedTopic)
	case BrokerRabbitMQ:
		return rabbitmq.NewOrderEventPublisher(configs.RabbitMQURL, configs.RabbitMQExchange)
	case BrokerNone, "":
		return events.NoopPublisher{}, nil
	default:
		return nil, fmt.Errorf("unsupported event broker %q", configs.EventBroker)
	}
}

func (c *CompositionRoot) Close() error {
	return c.publisher.Close()
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() commands.CreateCustomerCommandHandler {
	var f commands.CustomerUoWFactory = FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCustomerCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateAddDinnerToOrderCommandHandler() commands.AddDinnerToOrderCommandHandler {
	return commands.NewAddDinnerToOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAddMenuItemToOrderCommandHandler() commands.AddMenuItemToOrderCommandHandler {
	return commands.NewAddMenuItemToOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateRemoveOrderItemCommandHandler() commands.RemoveOrderItemCommandHandler {
	return commands.NewRemoveOrderItemCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateSetOrderChargesCommandHandler() commands.SetOrderChargesCommandHandler {
	return commands.NewSetOrderChargesCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateConfirmOrderCommandHandler() commands.ConfirmOrderCommandHandler {
	return commands.NewConfirmOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	return commands.NewCancelOrderCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceOrderStatusCommandHandler() commands.AdvanceOrderStatusCommandHandler {
	return commands.NewAdvanceOrderStatusCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateCancelStalePendingOrdersCommandHandler() commands.CancelStalePendingOrdersCommandHandler {
	return commands.NewCancelStalePendingOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateAdvanceKitchenOrdersCommandHandler() commands.AdvanceKitchenOrdersCommandHandler {
	return commands.NewAdvanceKitchenOrdersCommandHandler(c.orderUoWFactory())
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDinnerCatalogQueryHandler() queries.GetDinnerCatalogQueryHandler {
	return queries.NewGetDinnerCatalogQueryHandler()
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateCustomer:     c.CreateCreateCustomerCommandHandler(),
		CreateOrder:        c.CreateCreateOrderCommandHandler(),
		AddDinnerToOrder:   c.CreateAddDinnerToOrderCommandHandler(),
		AddMenuItemToOrder: c.CreateAddMenuItemToOrderCommandHandler(),
		RemoveOrderItem:    c.CreateRemoveOrderItemCommandHandler(),
		SetOrderCharges:    c.CreateSetOrderChargesCommandHandler(),
		ConfirmOrder:       c.CreateConfirmOrderCommandHandler(),
		CancelOrder:        c.CreateCancelOrderCommandHandler(),
		AdvanceOrderStatus: c.CreateAdvanceOrderStatusCommandHandler(),
		GetOrder:           c.CreateGetOrderQueryHandler(),
		GetActiveOrders:    c.CreateGetActiveOrdersQueryHandler(),
		GetDinnerCatalog:   c.CreateGetDinnerCatalogQueryHandler(),
	}, c.configs.DefaultCurrency, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCancelStalePendingOrdersCommandHandler(),
		c.CreateAdvanceKitchenOrdersCommandHandler(),
		c.configs.StaleOrderAfter,
		c.logger,
	)
}

func (c *CompositionRoot) Metrics() *metrics.Metrics {
	return c.metrics
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
