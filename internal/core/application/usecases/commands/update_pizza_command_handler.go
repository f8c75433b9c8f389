package commands

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/pizza"
)

// UpdatePizzaCommandHandler updates catalog entries in place.
type UpdatePizzaCommandHandler struct {
	uowFactory PizzaUoWFactory
}

// NewUpdatePizzaCommandHandler creates a handler for catalog updates.
func NewUpdatePizzaCommandHandler(uowFactory PizzaUoWFactory) UpdatePizzaCommandHandler {
	return UpdatePizzaCommandHandler{uowFactory: uowFactory}
}

// Handle applies the update and returns the updated catalog entry. Fails
// with errs.ErrObjectNotFound when the id matches nothing and with
// pizza.ErrDuplicateName when the rename collides.
func (h UpdatePizzaCommandHandler) Handle(
	ctx context.Context, command UpdatePizzaCommand) (*pizza.Pizza, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.PizzaRepository()

	aggregate, err := repo.Get(ctx, command.ID())
	if err != nil {
		return nil, err
	}

	if err := errors.Join(
		aggregate.Rename(command.Name()),
		aggregate.ChangeIngredients(command.Ingredients()),
		aggregate.ChangePrice(command.Price()),
	); err != nil {
		return nil, err
	}
	aggregate.ChangeDescription(command.Description())

	if err := repo.Update(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
