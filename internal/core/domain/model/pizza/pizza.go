package pizza

import (
	"errors"
	"fmt"
	"strings"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrPizzaIsNotConstructed is returned when a Pizza instance was not
	// created through NewPizza or RestorePizza.
	ErrPizzaIsNotConstructed = errors.New("Pizza must be created via NewPizza constructor")

	// ErrDuplicateName is returned by the catalog store when a create or
	// rename collides with an existing pizza name.
	ErrDuplicateName = errors.New("a pizza with this name already exists")
)

// Pizza is a catalog entry customers order from. Its price is the current
// list price: orders copy name and price into their own line items at order
// time, so changing a pizza here never alters existing orders.
type Pizza struct {
	// id is the unique identifier for the catalog entry
	id kernel.UUID

	// name is unique across the catalog
	name string

	// description is free text shown in the menu
	description string

	// ingredients lists the ingredient names
	ingredients []string

	// price is the current list price (must be positive)
	price decimal.Decimal

	// isConstructed ensures the pizza was created via a constructor
	isConstructed bool
}

// NewPizza creates a catalog entry with validation.
func NewPizza(
	id kernel.UUID,
	name, description string,
	ingredients []string,
	price decimal.Decimal,
) (*Pizza, error) {
	p := &Pizza{
		description:   description,
		isConstructed: true,
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setIngredients(ingredients),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePizza rehydrates a catalog entry from persistence.
func RestorePizza(
	id kernel.UUID,
	name, description string,
	ingredients []string,
	price decimal.Decimal,
) (*Pizza, error) {
	return NewPizza(id, name, description, ingredients, price)
}

// Validate ensures the Pizza instance was properly constructed.
func (p *Pizza) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrPizzaIsNotConstructed
	}

	return nil
}

// IsEqual compares two pizzas by their unique identifiers.
func (p *Pizza) IsEqual(other *Pizza) bool {
	return other != nil && p.id.IsEqual(other.id)
}

// ID returns the catalog entry's unique identifier.
func (p *Pizza) ID() kernel.UUID {
	return p.id
}

// Name returns the pizza's unique name.
func (p *Pizza) Name() string {
	return p.name
}

// Description returns the menu description.
func (p *Pizza) Description() string {
	return p.description
}

// Ingredients returns a copy of the ingredient names.
func (p *Pizza) Ingredients() []string {
	ingredients := make([]string, len(p.ingredients))
	copy(ingredients, p.ingredients)
	return ingredients
}

// Price returns the current list price.
func (p *Pizza) Price() decimal.Decimal {
	return p.price
}

// Rename changes the pizza's unique name.
func (p *Pizza) Rename(name string) error {
	return p.setName(name)
}

// ChangeDescription replaces the menu description.
func (p *Pizza) ChangeDescription(description string) {
	p.description = description
}

// ChangeIngredients replaces the ingredient list.
func (p *Pizza) ChangeIngredients(ingredients []string) error {
	return p.setIngredients(ingredients)
}

// ChangePrice sets a new list price. Existing orders keep their snapshots.
func (p *Pizza) ChangePrice(price decimal.Decimal) error {
	return p.setPrice(price)
}

func (p *Pizza) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	p.id = id
	return nil
}

func (p *Pizza) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("pizza name")
	}
	p.name = name
	return nil
}

func (p *Pizza) setIngredients(ingredients []string) error {
	cleaned := make([]string, 0, len(ingredients))
	for _, ingredient := range ingredients {
		trimmed := strings.TrimSpace(ingredient)
		if trimmed == "" {
			return errs.NewValueIsInvalidError("ingredient name")
		}
		cleaned = append(cleaned, trimmed)
	}
	p.ingredients = cleaned
	return nil
}

func (p *Pizza) setPrice(price decimal.Decimal) error {
	if !price.IsPositive() {
		return errs.NewValueIsInvalidErrorWithCause(
			"price",
			fmt.Errorf("%s is not greater than 0", price),
		)
	}
	p.price = price
	return nil
}
