package commands

import (
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/guard"
)

// ErrRequestedLineIsNotConstructed is returned when a RequestedLine was not
// created through the NewRequestedLine constructor.
var ErrRequestedLineIsNotConstructed = errors.New(
	"RequestedLine must be created via NewRequestedLine constructor")

// RequestedLine is one line of an incoming order request: a catalog
// reference plus the customer's optional note. Name and price are not part
// of the request; they are resolved from the catalog when the command is
// handled.
type RequestedLine struct {
	pizzaID kernel.UUID
	note    string

	guard guard.ConstructorGuard
}

// NewRequestedLine creates a validated order request line.
func NewRequestedLine(pizzaID kernel.UUID, note string) (RequestedLine, error) {
	if err := pizzaID.Validate(); err != nil {
		return RequestedLine{}, err
	}

	return RequestedLine{
		pizzaID: pizzaID,
		note:    note,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// PizzaID returns the catalog identifier the line refers to.
func (l RequestedLine) PizzaID() kernel.UUID {
	return l.pizzaID
}

// Note returns the customer's note for this line, if any.
func (l RequestedLine) Note() string {
	return l.note
}

// Validate ensures the line was created through the constructor.
func (l RequestedLine) Validate() error {
	return l.guard.Validate(ErrRequestedLineIsNotConstructed)
}
