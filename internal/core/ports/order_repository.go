// Package ports defines repository and transaction interfaces for the
// pizzeria domain. These interfaces establish contracts between the domain
// layer and infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
)

// OrderListFilter narrows the result of OrderRepository.GetAll.
// Zero values mean "no restriction".
type OrderListFilter struct {
	// Statuses restricts to orders in any of the given statuses.
	Statuses []order.Status

	// PickupDate restricts to orders whose pickup window falls entirely on
	// that calendar date. A window spanning midnight never matches.
	PickupDate *time.Time
}

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their line items and customer info; the
// aggregate is always loaded and saved as a whole.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate. The line-item
	// collection is replaced wholesale: rows from the previous revision are
	// deleted together with the update.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByCode retrieves an order aggregate by its tracking code.
	GetByCode(ctx context.Context, code string) (*order.Order, error)

	// GetAllInStatus retrieves all orders currently in the given status.
	// Used by the status-update flow to enforce that at most one order is
	// IN_PROGRESS across the shop.
	GetAllInStatus(ctx context.Context, status order.Status) ([]*order.Order, error)

	// GetAll retrieves orders matching the filter, unsorted.
	GetAll(ctx context.Context, filter OrderListFilter) ([]*order.Order, error)

	// Delete removes the order and cascades to its line items and customer
	// info. Deletion is final; there is no soft delete.
	Delete(ctx context.Context, aggregate *order.Order) error
}
