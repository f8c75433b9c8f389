package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrUpdateOrderStatusCommandIsNotConstructed is returned when an
// UpdateOrderStatusCommand was not created through the constructor.
var ErrUpdateOrderStatusCommandIsNotConstructed = errors.New(
	"UpdateOrderStatusCommand must be created via NewUpdateOrderStatusCommand constructor")

// UpdateOrderStatusCommand moves an order, addressed by its tracking code,
// to a new lifecycle status.
type UpdateOrderStatusCommand struct {
	code   string
	status order.Status

	guard guard.ConstructorGuard
}

// NewUpdateOrderStatusCommand creates a validated status change command.
func NewUpdateOrderStatusCommand(code string, status order.Status) (UpdateOrderStatusCommand, error) {
	if code == "" {
		return UpdateOrderStatusCommand{}, errs.NewValueIsRequiredError("order code")
	}

	if err := status.Validate(); err != nil {
		return UpdateOrderStatusCommand{}, err
	}

	return UpdateOrderStatusCommand{
		code:   code,
		status: status,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Code returns the tracking code of the order to move.
func (c UpdateOrderStatusCommand) Code() string {
	return c.code
}

// Status returns the target status.
func (c UpdateOrderStatusCommand) Status() order.Status {
	return c.status
}

// Validate ensures the command was created through the constructor.
func (c UpdateOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderStatusCommandIsNotConstructed)
}
