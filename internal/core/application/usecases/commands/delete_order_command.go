package commands

import (
	"errors"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrDeleteOrderCommandIsNotConstructed is returned when a
// DeleteOrderCommand was not created through the constructor.
var ErrDeleteOrderCommandIsNotConstructed = errors.New(
	"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor")

// DeleteOrderCommand removes an order, addressed by its tracking code.
// Customers may cancel queued orders; staff may force-delete any order.
type DeleteOrderCommand struct {
	code  string
	force bool

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a validated delete command.
func NewDeleteOrderCommand(code string, force bool) (DeleteOrderCommand, error) {
	if code == "" {
		return DeleteOrderCommand{}, errs.NewValueIsRequiredError("order code")
	}

	return DeleteOrderCommand{
		code:  code,
		force: force,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Code returns the tracking code of the order to delete.
func (c DeleteOrderCommand) Code() string {
	return c.code
}

// Force reports whether the staff override applies.
func (c DeleteOrderCommand) Force() bool {
	return c.force
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}
