package order_test

import (
	"testing"
	"time"

	"dinner/internal/core/domain/model/customer"
	"dinner/internal/core/domain/model/kernel"
	"dinner/internal/core/domain/model/menu"
	"dinner/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

var orderTime = time.Date(2026, 2, 14, 19, 0, 0, 0, time.UTC)

func newAddress(t testing.TB) kernel.Address {
	t.Helper()
	addr, err := kernel.NewAddress("10 Rue de Rivoli", "Paris", "", "75001", "FR")
	require.NoError(t, err)
	return addr
}

func newCustomer(t testing.TB) *customer.Customer {
	t.Helper()
	c, err := customer.NewCustomer(kernel.NewUUID(), "Ada Lovelace", "ada@example.com", "5551234567", newAddress(t))
	require.NoError(t, err)
	return c
}

func newOrder(t testing.TB) *order.Order {
	t.Helper()
	c := newCustomer(t)
	o, err := order.NewOrder(kernel.NewUUID(), c, c.DeliveryAddress(), kernel.USD, orderTime)
	require.NoError(t, err)
	return o
}

func newMenuItemLine(t testing.TB, price string, quantity, prep int) *order.OrderItem {
	t.Helper()
	item, err := menu.NewMenuItem("Dish", "", kernel.MustMoney(price, kernel.USD), menu.Main)
	require.NoError(t, err)
	require.NoError(t, item.SetPreparationTimeMinutes(prep))
	line, err := order.NewOrderItem(kernel.NewUUID(), item, quantity)
	require.NoError(t, err)
	return line
}

func usd(amount string) kernel.Money {
	return kernel.MustMoney(amount, kernel.USD)
}
