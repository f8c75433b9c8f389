package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/order"
)

// UpdateOrderCommandHandler replaces the contents of a queued order. Line
// items from the previous revision do not survive: the collection is
// replaced wholesale and the total price recomputed from fresh catalog
// snapshots.
type UpdateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewUpdateOrderCommandHandler creates a handler for order content updates.
// Requires a UoWFactory spanning the order and catalog repositories.
func NewUpdateOrderCommandHandler(uowFactory UoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle applies the content update and returns the updated aggregate.
// Fails with errs.ErrObjectNotFound when no order matches the code and with
// order.ErrOnlyQueuedCanBeUpdated when the order already left the queue.
func (h UpdateOrderCommandHandler) Handle(
	ctx context.Context, command UpdateOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	aggregate, err := uow.OrderRepository().GetByCode(ctx, command.Code())
	if err != nil {
		return nil, err
	}

	items, err := resolveLineItems(ctx, uow.PizzaRepository(), command.Lines())
	if err != nil {
		return nil, err
	}

	if err := aggregate.ReplaceContents(command.Customer(), items); err != nil {
		return nil, err
	}

	if err := uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
