package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

// ErrGetOrderByIDQueryIsNotConstructed is returned when a GetOrderByIDQuery
// was not created through the constructor.
var ErrGetOrderByIDQueryIsNotConstructed = errors.New(
	"GetOrderByIDQuery must be created via NewGetOrderByIDQuery constructor")

// GetOrderByIDQuery looks an order up by its internal identifier. Used by
// staff tooling; customers use the tracking code instead.
type GetOrderByIDQuery struct {
	id kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderByIDQuery creates a validated lookup query.
func NewGetOrderByIDQuery(id kernel.UUID) (GetOrderByIDQuery, error) {
	if err := id.Validate(); err != nil {
		return GetOrderByIDQuery{}, err
	}

	return GetOrderByIDQuery{
		id:    id,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ID returns the order identifier to look up.
func (q GetOrderByIDQuery) ID() kernel.UUID {
	return q.id
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByIDQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByIDQueryIsNotConstructed)
}
