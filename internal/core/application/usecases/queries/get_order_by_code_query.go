package queries

import (
	"errors"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

// ErrGetOrderByCodeQueryIsNotConstructed is returned when a
// GetOrderByCodeQuery was not created through the constructor.
var ErrGetOrderByCodeQueryIsNotConstructed = errors.New(
	"GetOrderByCodeQuery must be created via NewGetOrderByCodeQuery constructor")

// GetOrderByCodeQuery looks an order up by the tracking code handed to the
// customer. This is the customer-facing lookup: codes are the only handle
// customers ever see.
type GetOrderByCodeQuery struct {
	code string

	guard guard.ConstructorGuard
}

// NewGetOrderByCodeQuery creates a validated lookup query.
func NewGetOrderByCodeQuery(code string) (GetOrderByCodeQuery, error) {
	if code == "" {
		return GetOrderByCodeQuery{}, errs.NewValueIsRequiredError("order code")
	}

	return GetOrderByCodeQuery{
		code:  code,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Code returns the tracking code to look up.
func (q GetOrderByCodeQuery) Code() string {
	return q.code
}

// Validate ensures the query was created through the constructor.
func (q GetOrderByCodeQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderByCodeQueryIsNotConstructed)
}
