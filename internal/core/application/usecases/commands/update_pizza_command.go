package commands

import (
	"errors"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrUpdatePizzaCommandIsNotConstructed is returned when an
// UpdatePizzaCommand was not created through the constructor.
var ErrUpdatePizzaCommandIsNotConstructed = errors.New(
	"UpdatePizzaCommand must be created via NewUpdatePizzaCommand constructor")

// UpdatePizzaCommand replaces all mutable fields of a catalog entry.
// Existing orders keep their line-item snapshots.
type UpdatePizzaCommand struct {
	id          kernel.UUID
	name        string
	description string
	ingredients []string
	price       decimal.Decimal

	guard guard.ConstructorGuard
}

// NewUpdatePizzaCommand creates a validated catalog update command.
func NewUpdatePizzaCommand(
	id kernel.UUID,
	name, description string,
	ingredients []string,
	price decimal.Decimal,
) (UpdatePizzaCommand, error) {
	if err := id.Validate(); err != nil {
		return UpdatePizzaCommand{}, err
	}

	if strings.TrimSpace(name) == "" {
		return UpdatePizzaCommand{}, errs.NewValueIsRequiredError("pizza name")
	}

	if !price.IsPositive() {
		return UpdatePizzaCommand{}, errs.NewValueIsInvalidError("price")
	}

	return UpdatePizzaCommand{
		id:          id,
		name:        name,
		description: description,
		ingredients: ingredients,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// ID returns the identifier of the catalog entry to update.
func (c UpdatePizzaCommand) ID() kernel.UUID {
	return c.id
}

// Name returns the new catalog name.
func (c UpdatePizzaCommand) Name() string {
	return c.name
}

// Description returns the new description.
func (c UpdatePizzaCommand) Description() string {
	return c.description
}

// Ingredients returns the new ingredient list.
func (c UpdatePizzaCommand) Ingredients() []string {
	return c.ingredients
}

// Price returns the new list price.
func (c UpdatePizzaCommand) Price() decimal.Decimal {
	return c.price
}

// Validate ensures the command was created through the constructor.
func (c UpdatePizzaCommand) Validate() error {
	return c.guard.Validate(ErrUpdatePizzaCommandIsNotConstructed)
}
