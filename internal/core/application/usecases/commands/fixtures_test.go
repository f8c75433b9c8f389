package commands_test

import (
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func buildCustomer(t *testing.T, name string) order.Customer {
	t.Helper()
	customer, err := order.NewCustomer(name, nil, nil, "")
	require.NoError(t, err)
	return customer
}

func buildPizza(t *testing.T, name, price string) *pizza.Pizza {
	t.Helper()
	p, err := pizza.NewPizza(kernel.NewUUID(), name, "", nil, decimal.RequireFromString(price))
	require.NoError(t, err)
	return p
}

func buildLine(t *testing.T, pizzaID kernel.UUID, note string) commands.RequestedLine {
	t.Helper()
	line, err := commands.NewRequestedLine(pizzaID, note)
	require.NoError(t, err)
	return line
}

func buildQueuedOrder(t *testing.T, code string) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), "Margherita", decimal.RequireFromString("7.50"), "")
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), code, buildCustomer(t, "Mario"), []order.LineItem{item})
	require.NoError(t, err)
	return o
}

func buildOrderInStatus(t *testing.T, code string, status order.Status) *order.Order {
	t.Helper()
	o := buildQueuedOrder(t, code)
	require.NoError(t, o.ChangeStatus(status))
	return o
}
