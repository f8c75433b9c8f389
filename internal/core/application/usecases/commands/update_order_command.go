package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrUpdateOrderCommandIsNotConstructed is returned when an
// UpdateOrderCommand was not created through the constructor.
var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor")

// UpdateOrderCommand replaces the contents of a queued order: new customer
// info and a new set of requested lines. The order is addressed by its
// tracking code.
type UpdateOrderCommand struct {
	code     string
	customer order.Customer
	lines    []RequestedLine

	guard guard.ConstructorGuard
}

// NewUpdateOrderCommand creates a validated command for updating an order's
// contents.
func NewUpdateOrderCommand(
	code string, customer order.Customer, lines []RequestedLine) (UpdateOrderCommand, error) {
	if code == "" {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("order code")
	}

	if err := customer.Validate(); err != nil {
		return UpdateOrderCommand{}, err
	}

	if len(lines) == 0 {
		return UpdateOrderCommand{}, order.ErrNoItems
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return UpdateOrderCommand{}, err
		}
	}

	return UpdateOrderCommand{
		code:     code,
		customer: customer,
		lines:    lines,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Code returns the tracking code of the order to update.
func (c UpdateOrderCommand) Code() string {
	return c.code
}

// Customer returns the replacement customer info.
func (c UpdateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Lines returns the replacement order lines.
func (c UpdateOrderCommand) Lines() []RequestedLine {
	return c.lines
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}
