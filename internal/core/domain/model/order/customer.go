package order

import (
	"errors"
	"time"

	"pizzeria/internal/pkg/errs"
	"pizzeria/internal/pkg/guard"
)

var (
	// ErrCustomerIsNotConstructed is returned when a Customer instance was
	// not created through NewCustomer or RestoreCustomer.
	ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer constructor")

	// ErrInvalidPickupWindow is returned when the desired pickup window is
	// inverted or lies in the past.
	ErrInvalidPickupWindow = errors.New(
		"invalid pickup date range: 'pickupFrom' is after 'pickupTo' or in the past",
	)
)

// Customer holds the customer info embedded in an order: the name used for
// the tracking code, the desired pickup window and an optional free-text
// comment. It is owned exclusively by its Order; no customer identity is
// shared across orders.
//
// The pickup window is optional. When both ends are supplied, pickupFrom
// must not be after pickupTo and neither date may lie before today.
type Customer struct {
	name       string
	pickupFrom *time.Time
	pickupTo   *time.Time
	comment    string

	guard guard.ConstructorGuard
}

// NewCustomer creates customer info with validation. The pickup window rule
// is checked against the current date, so this constructor is meant for
// incoming create/update requests, not for rehydration from storage.
func NewCustomer(name string, pickupFrom, pickupTo *time.Time, comment string) (Customer, error) {
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}

	if err := validatePickupWindow(pickupFrom, pickupTo); err != nil {
		return Customer{}, err
	}

	return Customer{
		name:       name,
		pickupFrom: pickupFrom,
		pickupTo:   pickupTo,
		comment:    comment,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// RestoreCustomer rehydrates customer info from persistence. The pickup
// window is taken as stored: an old order whose window has since passed
// must still load.
func RestoreCustomer(name string, pickupFrom, pickupTo *time.Time, comment string) (Customer, error) {
	if name == "" {
		return Customer{}, errs.NewValueIsRequiredError("customer name")
	}

	return Customer{
		name:       name,
		pickupFrom: pickupFrom,
		pickupTo:   pickupTo,
		comment:    comment,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// validatePickupWindow enforces the pickup window rule. The rule only
// applies when both ends of the window are supplied: the window must not be
// inverted and neither date may be strictly before today.
func validatePickupWindow(from, to *time.Time) error {
	if from == nil || to == nil {
		return nil
	}

	today := truncateToDate(time.Now())
	if from.After(*to) || truncateToDate(*from).Before(today) || truncateToDate(*to).Before(today) {
		return ErrInvalidPickupWindow
	}
	return nil
}

// truncateToDate drops the time-of-day component.
func truncateToDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Validate ensures the Customer was created through a constructor.
func (c Customer) Validate() error {
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

// Name returns the customer's name.
func (c Customer) Name() string {
	return c.name
}

// PickupFrom returns the start of the desired pickup window, or nil.
func (c Customer) PickupFrom() *time.Time {
	return c.pickupFrom
}

// PickupTo returns the end of the desired pickup window, or nil.
func (c Customer) PickupTo() *time.Time {
	return c.pickupTo
}

// Comment returns the customer's free-text comment.
func (c Customer) Comment() string {
	return c.comment
}
