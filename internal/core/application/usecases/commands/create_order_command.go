package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

// ErrCreateOrderCommandIsNotConstructed is returned when a
// CreateOrderCommand was not created through the constructor.
var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor")

// CreateOrderCommand places a new order: validated customer info plus the
// requested catalog lines.
type CreateOrderCommand struct {
	customer order.Customer
	lines    []RequestedLine

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a validated command for placing an order.
// The request must carry at least one line; unknown catalog ids are dealt
// with by the handler, not here.
func NewCreateOrderCommand(customer order.Customer, lines []RequestedLine) (CreateOrderCommand, error) {
	if err := customer.Validate(); err != nil {
		return CreateOrderCommand{}, err
	}

	if len(lines) == 0 {
		return CreateOrderCommand{}, order.ErrNoItems
	}

	for _, line := range lines {
		if err := line.Validate(); err != nil {
			return CreateOrderCommand{}, err
		}
	}

	return CreateOrderCommand{
		customer: customer,
		lines:    lines,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Customer returns the customer info for the new order.
func (c CreateOrderCommand) Customer() order.Customer {
	return c.customer
}

// Lines returns the requested order lines.
func (c CreateOrderCommand) Lines() []RequestedLine {
	return c.lines
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}
