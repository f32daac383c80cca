package commands_test

import (
	"context"
	"testing"
	"time"

	"dinner/internal/core/application/usecases/commands"
	"dinner/internal/core/domain/model/customer"
	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/menu"
	"dinner/internal/core/domain/model/order"
	"dinner/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(ctx context.Context, statuses ...order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, statuses)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetPendingOlderThan(ctx context.Context, cutoff time.Time) ([]*order.Order, error) {
	args := m.Called(ctx, cutoff)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	return m.Called(ctx, c).Error(0)
}

func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.UUID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*customer.Customer); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	return m.Called().Get(0).(ports.CustomerRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockCustomerUoWFactory struct{ mock.Mock }

func (m *MockCustomerUoWFactory) Create() commands.CustomerUoW {
	return m.Called().Get(0).(commands.CustomerUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	return m.Called().Get(0).(commands.UoW)
}

// orderFixture wires a factory, a unit of work and an order repository that
// are expected to load and store exactly one order.
type orderFixture struct {
	factory *MockOrderUoWFactory
	uow     *MockUoW
	repo    *MockOrderRepository
}

func newOrderFixture() orderFixture {
	f := orderFixture{
		factory: new(MockOrderUoWFactory),
		uow:     new(MockUoW),
		repo:    new(MockOrderRepository),
	}
	f.factory.On("Create").Return(f.uow).Once()
	f.uow.On("OrderRepository").Return(f.repo).Maybe()
	f.uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	return f
}

func (f orderFixture) expectModify(o *order.Order) {
	f.uow.On("Begin", mock.Anything).Return(nil).Once()
	f.repo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	f.repo.On("Update", mock.Anything, o).Return(nil).Once()
	f.uow.On("Commit", mock.Anything).Return(nil).Once()
}

func (f orderFixture) assert(t *testing.T) {
	t.Helper()
	f.factory.AssertExpectations(t)
	f.uow.AssertExpectations(t)
	f.repo.AssertExpectations(t)
}

var orderTime = time.Date(2026, 2, 14, 18, 0, 0, 0, time.UTC)

func newCustomer(t *testing.T) *customer.Customer {
	t.Helper()
	addr, err := kernel.NewAddress("12 Rue Cler", "Paris", "", "75007", "FR")
	require.NoError(t, err)
	c, err := customer.NewCustomer(kernel.NewUUID(), "Camille", "camille@example.com", "33155550000", addr)
	require.NoError(t, err)
	return c
}

func newOrder(t *testing.T) *order.Order {
	t.Helper()
	c := newCustomer(t)
	o, err := order.NewOrder(kernel.NewUUID(), c, c.DeliveryAddress(), kernel.USD, orderTime)
	require.NoError(t, err)
	return o
}

// newOrderWithDinner returns a Pending order holding one English dinner (11 minutes of prep).
func newOrderWithDinner(t *testing.T) *order.Order {
	t.Helper()
	o := newOrder(t)
	d, err := menu.NewDinner(menu.English, "Sunday roast", "", kernel.MustMoney("25", kernel.USD))
	require.NoError(t, err)
	item, err := order.NewOrderItem(kernel.NewUUID(), d, 1)
	require.NoError(t, err)
	require.NoError(t, o.AddOrderItem(item))
	return o
}
