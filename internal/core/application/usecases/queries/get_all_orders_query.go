package queries

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/pkg/guard"
)

// ErrGetAllOrdersQueryIsNotConstructed is returned when a GetAllOrdersQuery
// was not created through the constructor.
var ErrGetAllOrdersQueryIsNotConstructed = errors.New(
	"GetAllOrdersQuery must be created via NewGetAllOrdersQuery constructor")

// GetAllOrdersQuery retrieves the order board: all orders, optionally
// narrowed to a set of statuses and to orders whose pickup window falls on
// a given calendar date.
//
// Results come back in pickup order: soonest pickup window first, orders
// without a window last, ties broken by creation time.
type GetAllOrdersQuery struct {
	statuses   []order.Status
	pickupDate *time.Time

	guard guard.ConstructorGuard
}

// NewGetAllOrdersQuery creates a validated board query. Both filters are
// optional; nil means no restriction.
func NewGetAllOrdersQuery(statuses []order.Status, pickupDate *time.Time) (GetAllOrdersQuery, error) {
	for _, status := range statuses {
		if err := status.Validate(); err != nil {
			return GetAllOrdersQuery{}, err
		}
	}

	return GetAllOrdersQuery{
		statuses:   statuses,
		pickupDate: pickupDate,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Statuses returns the status filter, or nil for no restriction.
func (q GetAllOrdersQuery) Statuses() []order.Status {
	return q.statuses
}

// PickupDate returns the pickup date filter, or nil for no restriction.
func (q GetAllOrdersQuery) PickupDate() *time.Time {
	return q.pickupDate
}

// Validate ensures the query was created through the constructor.
func (q GetAllOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllOrdersQueryIsNotConstructed)
}
