package commands

import (
	"errors"
	"strings"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrCreatePizzaCommandIsNotConstructed is returned when a
// CreatePizzaCommand was not created through the constructor.
var ErrCreatePizzaCommandIsNotConstructed = errors.New(
	"CreatePizzaCommand must be created via NewCreatePizzaCommand constructor")

// CreatePizzaCommand adds a new entry to the catalog.
type CreatePizzaCommand struct {
	name        string
	description string
	ingredients []string
	price       decimal.Decimal

	guard guard.ConstructorGuard
}

// NewCreatePizzaCommand creates a validated catalog creation command.
func NewCreatePizzaCommand(
	name, description string, ingredients []string, price decimal.Decimal) (CreatePizzaCommand, error) {
	if strings.TrimSpace(name) == "" {
		return CreatePizzaCommand{}, errs.NewValueIsRequiredError("pizza name")
	}

	if !price.IsPositive() {
		return CreatePizzaCommand{}, errs.NewValueIsInvalidError("price")
	}

	return CreatePizzaCommand{
		name:        name,
		description: description,
		ingredients: ingredients,
		price:       price,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Name returns the catalog name.
func (c CreatePizzaCommand) Name() string {
	return c.name
}

// Description returns the catalog description.
func (c CreatePizzaCommand) Description() string {
	return c.description
}

// Ingredients returns the ingredient list.
func (c CreatePizzaCommand) Ingredients() []string {
	return c.ingredients
}

// Price returns the catalog price.
func (c CreatePizzaCommand) Price() decimal.Decimal {
	return c.price
}

// Validate ensures the command was created through the constructor.
func (c CreatePizzaCommand) Validate() error {
	return c.guard.Validate(ErrCreatePizzaCommandIsNotConstructed)
}
