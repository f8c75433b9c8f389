package commands

import (
	"context"
	"errors"

	"pizzeria/internal/pkg/errs"
)

// DeletePizzaCommandHandler removes catalog entries.
type DeletePizzaCommandHandler struct {
	uowFactory PizzaUoWFactory
}

// NewDeletePizzaCommandHandler creates a handler for catalog deletion.
func NewDeletePizzaCommandHandler(uowFactory PizzaUoWFactory) DeletePizzaCommandHandler {
	return DeletePizzaCommandHandler{uowFactory: uowFactory}
}

// Handle deletes the catalog entry and reports whether anything was
// removed. Deleting an id that matches nothing returns (false, nil).
func (h DeletePizzaCommandHandler) Handle(
	ctx context.Context, command DeletePizzaCommand) (bool, error) {
	if err := command.Validate(); err != nil {
		return false, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return false, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.PizzaRepository()

	aggregate, err := repo.Get(ctx, command.ID())
	if errors.Is(err, errs.ErrObjectNotFound) {
		return false, nil
	}
	if err != nil {
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
