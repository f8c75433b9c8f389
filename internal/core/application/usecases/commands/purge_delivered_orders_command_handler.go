package commands

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
)

// PurgeDeliveredOrdersCommandHandler removes delivered orders that aged out
// of the retention period. Keeps the orders table from growing without
// bound.
type PurgeDeliveredOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewPurgeDeliveredOrdersCommandHandler creates a handler for the retention
// purge.
func NewPurgeDeliveredOrdersCommandHandler(uowFactory OrderUoWFactory) PurgeDeliveredOrdersCommandHandler {
	return PurgeDeliveredOrdersCommandHandler{uowFactory: uowFactory}
}

// Handle deletes delivered orders created before the retention cutoff and
// returns how many were removed.
func (h PurgeDeliveredOrdersCommandHandler) Handle(
	ctx context.Context, command PurgeDeliveredOrdersCommand) (int, error) {
	if err := command.Validate(); err != nil {
		return 0, err
	}

	cutoff := time.Now().UTC().Add(-command.Retention())

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	repo := uow.OrderRepository()

	delivered, err := repo.GetAll(ctx, ports.OrderListFilter{
		Statuses: []order.Status{order.Delivered},
	})
	if err != nil {
		return 0, err
	}

	purged := 0
	for _, aggregate := range delivered {
		if !aggregate.CreatedAt().Before(cutoff) {
			continue
		}

		if err := repo.Delete(ctx, aggregate); err != nil {
			return 0, err
		}
		purged++
	}

	if err := uow.Commit(ctx); err != nil {
		return 0, err
	}

	return purged, nil
}
