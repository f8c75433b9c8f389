package queries

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrGetAllPizzasQueryIsNotConstructed is returned when a GetAllPizzasQuery
// was not created through the constructor.
var ErrGetAllPizzasQueryIsNotConstructed = errors.New(
	"GetAllPizzasQuery must be created via NewGetAllPizzasQuery constructor")

// GetAllPizzasQuery retrieves the whole menu.
type GetAllPizzasQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllPizzasQuery creates a menu query. This is a parameterless query
// that fetches the complete catalog.
func NewGetAllPizzasQuery() GetAllPizzasQuery {
	return GetAllPizzasQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllPizzasQuery) Validate() error {
	return q.guard.Validate(ErrGetAllPizzasQueryIsNotConstructed)
}

// PizzaResponse is the catalog read model served to clients.
type PizzaResponse struct {
	ID          kernel.UUID
	Name        string
	Description string
	Ingredients []string
	Price       decimal.Decimal
}
