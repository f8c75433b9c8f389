package ports

import (
	"context"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/pizza"
)

// PizzaRepository defines the persistence contract for the catalog.
type PizzaRepository interface {
	// Add persists a new catalog entry. Names are unique across the catalog.
	Add(ctx context.Context, aggregate *pizza.Pizza) error

	// Update persists changes to an existing catalog entry.
	Update(ctx context.Context, aggregate *pizza.Pizza) error

	// Get retrieves a catalog entry by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*pizza.Pizza, error)

	// GetAllByIDs retrieves the catalog entries matching the given ids in a
	// single batched lookup. Ids with no match are simply absent from the
	// result; no error is returned for them.
	GetAllByIDs(ctx context.Context, ids []kernel.UUID) ([]*pizza.Pizza, error)

	// GetAll retrieves the whole catalog.
	GetAll(ctx context.Context) ([]*pizza.Pizza, error)

	// Delete removes a catalog entry. Existing orders keep their line-item
	// snapshots and are unaffected.
	Delete(ctx context.Context, aggregate *pizza.Pizza) error
}
