package commands_test

import (
	"context"
	"sync"
	"testing"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderStatusCommandHandler_Handle_MovesToInProgress(t *testing.T) {
	ctx := t.Context()

	existing := buildQueuedOrder(t, "ORD-1-MARIO")
	cmd, err := commands.NewUpdateOrderStatusCommand(existing.Code(), order.InProgress)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetByCode", mock.Anything, existing.Code()).Return(existing, nil).Once()
	repo.On("GetAllInStatus", mock.Anything, order.InProgress).
		Return([]*order.Order{}, nil).Once()
	repo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InProgress, updated.Status())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderStatusCommandHandler_Handle_RejectsSecondInProgress(t *testing.T) {
	ctx := t.Context()

	existing := buildQueuedOrder(t, "ORD-2-LUIGI")
	busy := buildOrderInStatus(t, "ORD-1-MARIO", order.InProgress)
	cmd, err := commands.NewUpdateOrderStatusCommand(existing.Code(), order.InProgress)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetByCode", mock.Anything, existing.Code()).Return(existing, nil).Once()
	repo.On("GetAllInStatus", mock.Anything, order.InProgress).
		Return([]*order.Order{busy}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrAnotherOrderInProgress)
	assert.Equal(t, order.Queued, existing.Status())
}

func TestUpdateOrderStatusCommandHandler_Handle_InProgressIsIdempotent(t *testing.T) {
	ctx := t.Context()

	existing := buildOrderInStatus(t, "ORD-1-MARIO", order.InProgress)
	cmd, err := commands.NewUpdateOrderStatusCommand(existing.Code(), order.InProgress)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetByCode", mock.Anything, existing.Code()).Return(existing, nil).Once()
	repo.On("GetAllInStatus", mock.Anything, order.InProgress).
		Return([]*order.Order{existing}, nil).Once()
	repo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.InProgress, updated.Status())
}

func TestUpdateOrderStatusCommandHandler_Handle_AllowsBackwardTransitions(t *testing.T) {
	ctx := t.Context()

	existing := buildOrderInStatus(t, "ORD-1-MARIO", order.Ready)
	cmd, err := commands.NewUpdateOrderStatusCommand(existing.Code(), order.Queued)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetByCode", mock.Anything, existing.Code()).Return(existing, nil).Once()
	repo.On("Update", mock.Anything, existing).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, order.Queued, updated.Status())
}

func TestUpdateOrderStatusCommandHandler_Handle_OrderNotFound(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewUpdateOrderStatusCommand("ORD-MISSING", order.Ready)
	require.NoError(t, err)

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(repo).Once()
	repo.On("GetByCode", mock.Anything, "ORD-MISSING").
		Return(nil, errs.NewObjectNotFoundError("code", "ORD-MISSING")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
}

// inMemoryOrderUoW is a store-backed unit of work used to exercise
// concurrent IN_PROGRESS requests for real instead of with canned mocks.
type inMemoryOrderUoW struct {
	store *inMemoryOrderStore
}

func (u *inMemoryOrderUoW) Begin(context.Context) error            { return nil }
func (u *inMemoryOrderUoW) Commit(context.Context) error           { return nil }
func (u *inMemoryOrderUoW) Rollback(context.Context) error         { return nil }
func (u *inMemoryOrderUoW) OrderRepository() ports.OrderRepository { return u.store }

type inMemoryOrderUoWFactory struct {
	store *inMemoryOrderStore
}

func (f *inMemoryOrderUoWFactory) Create() commands.OrderUoW {
	return &inMemoryOrderUoW{store: f.store}
}

type inMemoryOrderStore struct {
	mu     sync.Mutex
	orders map[string]*order.Order
}

func newInMemoryOrderStore(orders ...*order.Order) *inMemoryOrderStore {
	s := &inMemoryOrderStore{orders: make(map[string]*order.Order)}
	for _, o := range orders {
		s.orders[o.Code()] = o
	}
	return s
}

func (s *inMemoryOrderStore) Add(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.Code()] = o
	return nil
}

func (s *inMemoryOrderStore) Update(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.Code()] = o
	return nil
}

func (s *inMemoryOrderStore) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, o := range s.orders {
		if o.ID().IsEqual(id) {
			return o, nil
		}
	}
	return nil, errs.NewObjectNotFoundError("id", id)
}

func (s *inMemoryOrderStore) GetByCode(_ context.Context, code string) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[code]
	if !ok {
		return nil, errs.NewObjectNotFoundError("code", code)
	}
	return o, nil
}

func (s *inMemoryOrderStore) GetAllInStatus(
	_ context.Context, status order.Status) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*order.Order
	for _, o := range s.orders {
		if o.Status() == status {
			result = append(result, o)
		}
	}
	return result, nil
}

func (s *inMemoryOrderStore) GetAll(
	_ context.Context, _ ports.OrderListFilter) ([]*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*order.Order
	for _, o := range s.orders {
		result = append(result, o)
	}
	return result, nil
}

func (s *inMemoryOrderStore) Delete(_ context.Context, o *order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, o.Code())
	return nil
}

func TestUpdateOrderStatusCommandHandler_Handle_ConcurrentInProgressHasOneWinner(t *testing.T) {
	ctx := t.Context()

	first := buildQueuedOrder(t, "ORD-1-MARIO")
	second := buildQueuedOrder(t, "ORD-2-LUIGI")
	store := newInMemoryOrderStore(first, second)

	h := commands.NewUpdateOrderStatusCommandHandler(&inMemoryOrderUoWFactory{store: store})

	var wg sync.WaitGroup
	results := make([]error, 2)
	for i, code := range []string{first.Code(), second.Code()} {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cmd, err := commands.NewUpdateOrderStatusCommand(code, order.InProgress)
			require.NoError(t, err)
			_, results[i] = h.Handle(ctx, cmd)
		}()
	}
	wg.Wait()

	succeeded, conflicted := 0, 0
	for _, err := range results {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, commands.ErrAnotherOrderInProgress):
			conflicted++
		}
	}
	assert.Equal(t, 1, succeeded, "exactly one request may win the IN_PROGRESS slot")
	assert.Equal(t, 1, conflicted)

	inProgress, err := store.GetAllInStatus(ctx, order.InProgress)
	require.NoError(t, err)
	assert.Len(t, inProgress, 1)
}
