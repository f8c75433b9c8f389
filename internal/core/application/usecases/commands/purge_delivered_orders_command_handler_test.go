package commands_test

import (
	"testing"
	"time"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func buildDeliveredOrderCreatedAt(t *testing.T, code string, createdAt time.Time) *order.Order {
	t.Helper()
	item, err := order.NewLineItem(kernel.NewUUID(), "Margherita", decimal.RequireFromString("7.50"), "")
	require.NoError(t, err)
	customer, err := order.RestoreCustomer("Mario", nil, nil, "")
	require.NoError(t, err)

	o, err := order.RestoreOrder(kernel.NewUUID(), code, order.Delivered, customer,
		[]order.LineItem{item}, createdAt, decimal.RequireFromString("7.50"))
	require.NoError(t, err)
	return o
}

func TestPurgeDeliveredOrdersCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	old := buildDeliveredOrderCreatedAt(t, "ORD-OLD", time.Now().UTC().Add(-48*time.Hour))
	recent := buildDeliveredOrderCreatedAt(t, "ORD-RECENT", time.Now().UTC().Add(-time.Hour))

	cmd, err := commands.NewPurgeDeliveredOrdersCommand(24 * time.Hour)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetAll", mock.Anything, mock.Anything).
		Return([]*order.Order{old, recent}, nil).Once()
	repo.On("Delete", mock.Anything, old).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewPurgeDeliveredOrdersCommandHandler(factory)
	purged, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, 1, purged, "only delivered orders older than the retention are purged")
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewPurgeDeliveredOrdersCommand_RejectsNonPositiveRetention(t *testing.T) {
	_, err := commands.NewPurgeDeliveredOrdersCommand(0)
	require.Error(t, err)

	_, err = commands.NewPurgeDeliveredOrdersCommand(-time.Hour)
	require.Error(t, err)
}
