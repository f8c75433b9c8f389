package commands

import (
	"errors"
	"time"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrPurgeDeliveredOrdersCommandIsNotConstructed is returned when a
// PurgeDeliveredOrdersCommand was not created through the constructor.
var ErrPurgeDeliveredOrdersCommandIsNotConstructed = errors.New(
	"PurgeDeliveredOrdersCommand must be created via NewPurgeDeliveredOrdersCommand constructor")

// PurgeDeliveredOrdersCommand removes delivered orders older than the
// retention period. Run periodically by the housekeeping job.
type PurgeDeliveredOrdersCommand struct {
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewPurgeDeliveredOrdersCommand creates a validated purge command.
func NewPurgeDeliveredOrdersCommand(retention time.Duration) (PurgeDeliveredOrdersCommand, error) {
	if retention <= 0 {
		return PurgeDeliveredOrdersCommand{}, errs.NewValueIsInvalidError("retention")
	}

	return PurgeDeliveredOrdersCommand{
		retention: retention,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Retention returns how long delivered orders are kept before purging.
func (c PurgeDeliveredOrdersCommand) Retention() time.Duration {
	return c.retention
}

// Validate ensures the command was created through the constructor.
func (c PurgeDeliveredOrdersCommand) Validate() error {
	return c.guard.Validate(ErrPurgeDeliveredOrdersCommandIsNotConstructed)
}
