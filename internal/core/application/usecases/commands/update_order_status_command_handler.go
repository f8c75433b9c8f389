package commands

import (
	"context"
	"errors"
	"sync"

	"pizzeria/internal/core/domain/model/order"
)

// ErrAnotherOrderInProgress is returned when an order is moved to
// IN_PROGRESS while a different order already holds that status. The shop
// has a single pizzaiolo: at most one order is worked on at a time.
var ErrAnotherOrderInProgress = errors.New(
	"there is already an order IN_PROGRESS; only one order can be in progress at a time")

// UpdateOrderStatusCommandHandler moves orders through the lifecycle and
// enforces the shop-wide single-IN_PROGRESS rule.
//
// The rule spans rows, so the check-then-set must not interleave between
// concurrent requests: IN_PROGRESS transitions are serialized through the
// handler's mutex and the scan runs inside the same transaction as the
// write. The composition root must therefore construct this handler once
// and share it.
type UpdateOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory

	// mu serializes transitions into IN_PROGRESS.
	mu sync.Mutex
}

// NewUpdateOrderStatusCommandHandler creates a handler for status changes.
// The returned pointer must be shared, not copied: the embedded mutex is
// what makes concurrent IN_PROGRESS requests safe.
func NewUpdateOrderStatusCommandHandler(uowFactory OrderUoWFactory) *UpdateOrderStatusCommandHandler {
	return &UpdateOrderStatusCommandHandler{uowFactory: uowFactory}
}

// Handle applies the status change and returns the updated aggregate.
// Fails with errs.ErrObjectNotFound when no order matches the code and with
// ErrAnotherOrderInProgress when the IN_PROGRESS slot is taken by another
// order. Setting IN_PROGRESS on the order that already holds it is a no-op
// and succeeds.
func (h *UpdateOrderStatusCommandHandler) Handle(
	ctx context.Context, command UpdateOrderStatusCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	if command.Status() == order.InProgress {
		h.mu.Lock()
		defer h.mu.Unlock()
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.OrderRepository()

	aggregate, err := repo.GetByCode(ctx, command.Code())
	if err != nil {
		return nil, err
	}

	if command.Status() == order.InProgress {
		inProgress, err := repo.GetAllInStatus(ctx, order.InProgress)
		if err != nil {
			return nil, err
		}

		for _, other := range inProgress {
			if !other.IsEqual(aggregate) {
				return nil, ErrAnotherOrderInProgress
			}
		}
	}

	if err := aggregate.ChangeStatus(command.Status()); err != nil {
		return nil, err
	}

	if err := repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
