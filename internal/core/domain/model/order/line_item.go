package order

import (
	"errors"
	"fmt"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem constructor.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// LineItem is one catalog pizza as ordered. Name and unit price are copied
// from the catalog at the moment the line is built: later catalog price
// changes never retroactively alter existing orders.
type LineItem struct {
	pizzaID   kernel.UUID
	name      string
	unitPrice decimal.Decimal
	note      string

	guard guard.ConstructorGuard
}

// NewLineItem builds a line-item snapshot from catalog data plus the
// customer's optional per-line note.
func NewLineItem(pizzaID kernel.UUID, name string, unitPrice decimal.Decimal, note string) (LineItem, error) {
	if err := pizzaID.Validate(); err != nil {
		return LineItem{}, err
	}

	if name == "" {
		return LineItem{}, errs.NewValueIsRequiredError("item name")
	}

	if !unitPrice.IsPositive() {
		return LineItem{}, errs.NewValueIsInvalidErrorWithCause(
			"unit price",
			fmt.Errorf("%s is not greater than 0", unitPrice),
		)
	}

	return LineItem{
		pizzaID:   pizzaID,
		name:      name,
		unitPrice: unitPrice,
		note:      note,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the LineItem was created through the constructor.
func (li LineItem) Validate() error {
	return li.guard.Validate(ErrLineItemIsNotConstructed)
}

// PizzaID returns the catalog identifier the line references.
func (li LineItem) PizzaID() kernel.UUID {
	return li.pizzaID
}

// Name returns the item name as it was at order time.
func (li LineItem) Name() string {
	return li.name
}

// UnitPrice returns the price snapshot taken at order time.
func (li LineItem) UnitPrice() decimal.Decimal {
	return li.unitPrice
}

// Note returns the customer's note for this line, if any.
func (li LineItem) Note() string {
	return li.note
}
