package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

// ErrDeletePizzaCommandIsNotConstructed is returned when a
// DeletePizzaCommand was not created through the constructor.
var ErrDeletePizzaCommandIsNotConstructed = errors.New(
	"DeletePizzaCommand must be created via NewDeletePizzaCommand constructor")

// DeletePizzaCommand removes a catalog entry. Existing orders keep their
// line-item snapshots and are unaffected.
type DeletePizzaCommand struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

// NewDeletePizzaCommand creates a validated catalog delete command.
func NewDeletePizzaCommand(id kernel.UUID) (DeletePizzaCommand, error) {
	if err := id.Validate(); err != nil {
		return DeletePizzaCommand{}, err
	}

	return DeletePizzaCommand{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ID returns the identifier of the catalog entry to delete.
func (c DeletePizzaCommand) ID() kernel.UUID {
	return c.id
}

// Validate ensures the command was created through the constructor.
func (c DeletePizzaCommand) Validate() error {
	return c.guard.Validate(ErrDeletePizzaCommandIsNotConstructed)
}
