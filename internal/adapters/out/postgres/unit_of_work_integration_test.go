package postgres_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	postgresadapter "dinner/internal/adapters/out/postgres"
	"dinner/internal/adapters/out/postgres/customerrepo"
	"dinner/internal/adapters/out/postgres/orderrepo"
	"dinner/internal/core/domain/model/customer"
	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/menu"
	"dinner/internal/core/domain/model/order"
	"dinner/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// recordingPublisher keeps every published event in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []order.ChangedEvent
	err    error
}

func (p *recordingPublisher) PublishOrderChanged(_ context.Context, event order.ChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) published() []order.ChangedEvent {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]order.ChangedEvent(nil), p.events...)
}

// UnitOfWorkIntegrationTestSuite exercises the GORM unit of work against a real PostgreSQL.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	publisher *recordingPublisher
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&customerrepo.CustomerDTO{}, &orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{})
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE customers, orders, order_items").Error
	suite.Require().NoError(err)

	suite.publisher = &recordingPublisher{}
	suite.factory = postgresadapter.NewGormUnitOfWorkFactory(suite.db, suite.publisher, nil)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.CustomerRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_CustomerAndOrder_PersistsAndPublishesOrderOnly() {
	ctx := context.Background()
	c := createTestCustomer(suite)
	o := createTestOrder(suite, c)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CustomerRepository().Add(ctx, c))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	suite.Empty(suite.publisher.published(), "nothing is announced before commit")
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(o))

	events := suite.publisher.published()
	suite.Require().Len(events, 1)
	suite.True(events[0].OrderID.IsEqual(o.ID()))
	suite.True(events[0].CustomerID.IsEqual(c.ID()))
	suite.True(events[0].Created)
	suite.Equal(order.Pending, events[0].Status)
	suite.Equal(1, events[0].ItemCount)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_OrderWrittenTwice_PublishesOnceWithFinalState() {
	ctx := context.Background()
	c := createTestCustomer(suite)
	o := createTestOrder(suite, c)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(o.Confirm())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	events := suite.publisher.published()
	suite.Require().Len(events, 1)
	suite.Equal(order.Confirmed, events[0].Status)
	suite.True(events[0].Created)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChangesAndEvents() {
	ctx := context.Background()
	o := createTestOrder(suite, createTestCustomer(suite))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().Error(err)
	suite.Empty(suite.publisher.published())

	// a later commit on the same instance must not resurrect the discarded order
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Empty(suite.publisher.published())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PublishFailure_KeepsCommittedData() {
	ctx := context.Background()
	suite.publisher.err = errors.New("broker unavailable")
	o := createTestOrder(suite, createTestCustomer(suite))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(stored.IsEqual(o))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_IsolationBetweenInstances() {
	ctx := context.Background()
	o := createTestOrder(suite, createTestCustomer(suite))

	uow1 := suite.factory.Create()
	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow1.OrderRepository().Add(ctx, o))

	uow2 := suite.factory.Create()
	_, err := uow2.OrderRepository().Get(ctx, o.ID())
	suite.Require().Error(err, "uncommitted order must not be visible")

	suite.Require().NoError(uow1.Commit(ctx))

	_, err = uow2.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
}

func createTestCustomer(suite *UnitOfWorkIntegrationTestSuite) *customer.Customer {
	addr, err := kernel.NewAddress("1 Main Street", "Springfield", "IL", "62701", "US")
	suite.Require().NoError(err)
	c, err := customer.NewCustomer(kernel.NewUUID(), "Homer", "homer-"+kernel.NewUUID().String()+"@example.com",
		"2175550100", addr)
	suite.Require().NoError(err)
	return c
}

func createTestOrder(suite *UnitOfWorkIntegrationTestSuite, c *customer.Customer) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), c, c.DeliveryAddress(), kernel.USD, time.Now().UTC())
	suite.Require().NoError(err)

	d, err := menu.NewDinner(menu.English, "Sunday roast", "", kernel.MustMoney("25", kernel.USD))
	suite.Require().NoError(err)
	line, err := order.NewOrderItem(kernel.NewUUID(), d, 1)
	suite.Require().NoError(err)
	suite.Require().NoError(o.AddOrderItem(line))
	return o
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration tests in short mode")
	}
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
