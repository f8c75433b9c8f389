package commands

import (
	"context"
	"errors"

	"pizzeria/internal/pkg/errs"
)

// DeleteOrderCommandHandler removes orders. Deletion cascades to the
// order's line items and customer info and is final.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewDeleteOrderCommandHandler creates a handler for order deletion.
func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the order and reports whether anything was removed.
// Deleting a code that matches nothing is not an error: it returns
// (false, nil) so the operation stays idempotent. A non-forced delete of an
// order that left the queue fails with order.ErrOnlyQueuedCanBeDeleted.
func (h DeleteOrderCommandHandler) Handle(
	ctx context.Context, command DeleteOrderCommand) (bool, error) {
	if err := command.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.OrderRepository()

	aggregate, err := repo.GetByCode(ctx, command.Code())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}

	if err := aggregate.CanBeDeleted(command.Force()); err != nil {
		return false, err
	}

	if err := repo.Delete(ctx, aggregate); err != nil {
		return false, err
	}

	if err := uow.Commit(ctx); err != nil {
		return false, err
	}

	return true, nil
}
