package commands_test

import (
	"context"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetByCode(ctx context.Context, code string) (*order.Order, error) {
	args := m.Called(ctx, code)
	if o, ok := args.Get(0).(*order.Order); ok {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllInStatus(
	ctx context.Context, status order.Status) ([]*order.Order, error) {
	args := m.Called(ctx, status)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAll(
	ctx context.Context, filter ports.OrderListFilter) ([]*order.Order, error) {
	args := m.Called(ctx, filter)
	if orders, ok := args.Get(0).([]*order.Order); ok {
		return orders, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

type MockPizzaRepository struct{ mock.Mock }

func (m *MockPizzaRepository) Add(ctx context.Context, p *pizza.Pizza) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPizzaRepository) Update(ctx context.Context, p *pizza.Pizza) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *MockPizzaRepository) Get(ctx context.Context, id kernel.UUID) (*pizza.Pizza, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*pizza.Pizza); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPizzaRepository) GetAllByIDs(
	ctx context.Context, ids []kernel.UUID) ([]*pizza.Pizza, error) {
	args := m.Called(ctx, ids)
	if pizzas, ok := args.Get(0).([]*pizza.Pizza); ok {
		return pizzas, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPizzaRepository) GetAll(ctx context.Context) ([]*pizza.Pizza, error) {
	args := m.Called(ctx)
	if pizzas, ok := args.Get(0).([]*pizza.Pizza); ok {
		return pizzas, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockPizzaRepository) Delete(ctx context.Context, p *pizza.Pizza) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

// MockUoW satisfies commands.UoW, commands.OrderUoW and commands.PizzaUoW.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) PizzaRepository() ports.PizzaRepository {
	args := m.Called()
	return args.Get(0).(ports.PizzaRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockPizzaUoWFactory struct{ mock.Mock }

func (m *MockPizzaUoWFactory) Create() commands.PizzaUoW {
	args := m.Called()
	return args.Get(0).(commands.PizzaUoW)
}
