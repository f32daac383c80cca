package queries_test

import (
	"context"
	"testing"
	"time"

	"dinner/internal/adapters/out/postgres/orderrepo"
	"dinner/internal/core/application/usecases/queries"
	"dinner/internal/core/domain/model/customer"
	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/menu"
	"dinner/internal/core/domain/model/order"
	"dinner/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(kernel.UUID, any, bool) {}

type OrderQueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
	customer  *customer.Customer
}

func (suite *OrderQueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}))
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})

	addr, err := kernel.NewAddress("221B Baker Street", "London", "", "NW1 6XE", "UK")
	suite.Require().NoError(err)
	suite.customer, err = customer.NewCustomer(kernel.NewUUID(), "Martha", "martha@example.com", "5550001111", addr)
	suite.Require().NoError(err)
}

func (suite *OrderQueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders, order_items").Error)
}

func (suite *OrderQueriesIntegrationTestSuite) storeOrder(placed time.Time, policies ...menu.Policy) *order.Order {
	o, err := order.NewOrder(kernel.NewUUID(), suite.customer, suite.customer.DeliveryAddress(), kernel.GBP, placed)
	suite.Require().NoError(err)
	for _, policy := range policies {
		d, err := menu.NewDinner(policy, policy.Name()+" dinner", "", kernel.MustMoney("30", kernel.GBP))
		suite.Require().NoError(err)
		line, err := order.NewOrderItem(kernel.NewUUID(), d, 2)
		suite.Require().NoError(err)
		suite.Require().NoError(o.AddOrderItem(line))
	}
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrder_ReturnsFullView() {
	ctx := context.Background()
	placed := time.Date(2026, 3, 1, 18, 30, 0, 0, time.UTC)
	o := suite.storeOrder(placed, menu.French)
	suite.Require().NoError(o.SetTax(kernel.MustMoney("10.70", kernel.GBP)))
	suite.Require().NoError(o.SetDeliveryFee(kernel.MustMoney("4", kernel.GBP)))
	o.SetNotes("leave at the door")
	suite.Require().NoError(suite.orderRepo.Update(ctx, o))

	query, err := queries.NewGetOrderQuery(o.ID())
	suite.Require().NoError(err)

	view, err := queries.NewGetOrderQueryHandler(suite.db).Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(o.ID(), view.ID)
	suite.Equal(suite.customer.ID(), view.CustomerID)
	suite.Equal("Pending", view.Status)
	suite.Equal("GBP", view.Currency)
	suite.True(placed.Equal(view.OrderTime))
	suite.Equal("107.00", view.Subtotal)
	suite.Equal("10.70", view.Tax)
	suite.Equal("4.00", view.DeliveryFee)
	suite.Equal("121.70", view.TotalAmount)
	suite.Equal("221B Baker Street, London, NW1 6XE, UK", view.DeliveryAddress)
	suite.Nil(view.EstimatedDeliveryTime)
	suite.Equal("leave at the door", view.Notes)
	suite.Equal(10, view.TotalPreparationTimeMinutes)

	suite.Require().Len(view.Items, 1)
	suite.Equal("FrenchDinner", view.Items[0].ProductKind)
	suite.Equal("53.50", view.Items[0].UnitPrice)
	suite.Equal(2, view.Items[0].Quantity)
	suite.Equal("107.00", view.Items[0].TotalPrice)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrder_NotFound() {
	query, err := queries.NewGetOrderQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	_, err = queries.NewGetOrderQueryHandler(suite.db).Handle(context.Background(), query)

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetActiveOrders_EmptyDatabase() {
	result, err := queries.NewGetActiveOrdersQueryHandler(suite.db).
		Handle(context.Background(), queries.NewGetActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetActiveOrders_SkipsFinalOrdersOldestFirst() {
	ctx := context.Background()
	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	later := suite.storeOrder(base.Add(time.Hour), menu.English)
	earlier := suite.storeOrder(base, menu.French, menu.English)
	suite.Require().NoError(earlier.Confirm())
	suite.Require().NoError(suite.orderRepo.Update(ctx, earlier))

	cancelled := suite.storeOrder(base.Add(-time.Hour), menu.Valentine)
	suite.Require().NoError(cancelled.Cancel())
	suite.Require().NoError(suite.orderRepo.Update(ctx, cancelled))

	result, err := queries.NewGetActiveOrdersQueryHandler(suite.db).Handle(ctx, queries.NewGetActiveOrdersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal(earlier.ID(), result[0].ID)
	suite.Equal("Confirmed", result[0].Status)
	suite.Equal(2, result[0].ItemCount)
	suite.Equal("GBP", result[0].Currency)
	suite.Equal(later.ID(), result[1].ID)
	suite.Equal("Pending", result[1].Status)
	suite.Equal(1, result[1].ItemCount)
}

func TestOrderQueriesIntegrationTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(OrderQueriesIntegrationTestSuite))
}
