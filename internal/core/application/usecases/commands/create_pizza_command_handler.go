package commands

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/pizza"
)

// CreatePizzaCommandHandler adds new entries to the catalog.
type CreatePizzaCommandHandler struct {
	uowFactory PizzaUoWFactory
}

// NewCreatePizzaCommandHandler creates a handler for catalog creation.
func NewCreatePizzaCommandHandler(uowFactory PizzaUoWFactory) CreatePizzaCommandHandler {
	return CreatePizzaCommandHandler{uowFactory: uowFactory}
}

// Handle creates the catalog entry and returns it. Fails with
// pizza.ErrDuplicateName when the name is already taken.
func (h CreatePizzaCommandHandler) Handle(
	ctx context.Context, command CreatePizzaCommand) (*pizza.Pizza, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	aggregate, err := pizza.NewPizza(
		kernel.NewUUID(),
		command.Name(),
		command.Description(),
		command.Ingredients(),
		command.Price(),
	)
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	if err := uow.PizzaRepository().Add(ctx, aggregate); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return aggregate, nil
}
