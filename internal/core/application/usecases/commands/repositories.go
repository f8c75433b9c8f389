// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS
// architecture. All commands follow a consistent pattern: validation,
// transaction management, and persistence.
package commands

import (
	"context"

	"pizzeria/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// PizzaRepoFactory provides access to the catalog repository within a transaction.
	PizzaRepoFactory interface {
		PizzaRepository() ports.PizzaRepository
	}

	// OrderUoW manages transactions for order-only operations.
	// Used by commands that only touch order aggregates (status updates,
	// deletions, purge).
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	// OrderUoWFactory creates new order unit of work instances.
	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// PizzaUoW manages transactions for catalog-only operations.
	PizzaUoW interface {
		TxManager
		PizzaRepoFactory
	}

	// PizzaUoWFactory creates new catalog unit of work instances.
	PizzaUoWFactory interface {
		Create() PizzaUoW
	}

	// UoW manages transactions spanning order and catalog aggregates.
	// Order creation and content updates resolve catalog entries and write
	// the order inside the same transaction.
	UoW interface {
		TxManager
		OrderRepoFactory
		PizzaRepoFactory
	}

	// UoWFactory creates new unit of work instances for cross-aggregate operations.
	UoWFactory interface {
		Create() UoW
	}
)
