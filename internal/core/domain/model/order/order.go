package order

import (
	"errors"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder. This ensures all orders are
	// properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrNoItems is returned when an order would end up without any line
	// items. A persisted order always contains at least one item.
	ErrNoItems = errors.New("order must contain at least one item")

	// ErrOnlyQueuedCanBeUpdated is returned when a content update is
	// attempted on an order that already left the queue.
	ErrOnlyQueuedCanBeUpdated = errors.New("only QUEUED orders can be updated")

	// ErrOnlyQueuedCanBeDeleted is returned when a non-forced delete is
	// attempted on an order that already left the queue.
	ErrOnlyQueuedCanBeDeleted = errors.New("only QUEUED orders can be deleted")

	// ErrPriceNotComputable is returned when the total price cannot be
	// derived from the line items. Given the constructors' validation this
	// is a defensive, should-not-occur condition.
	ErrPriceNotComputable = errors.New("error calculating total price")
)

// Order is the aggregate root of the order lifecycle. It owns its line
// items and customer info and carries the price snapshot taken at
// creation/update time.
//
// Invariants:
//   - at least one line item at all times
//   - totalPrice equals the sum of the line items' unit prices as of the
//     last create/update; it is recomputed wholesale, never patched
//   - code and createdAt are set at creation and never change
//   - content (items, customer) may only change while status is QUEUED
//
// The single-IN_PROGRESS rule spans multiple orders and is therefore
// enforced by the status-update use case, not by the aggregate itself.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// code is the human-readable tracking token customers use to look
	// their order up
	code string

	// status represents the current state in the order lifecycle
	status Status

	// lineItems are the ordered pizzas, in insertion order
	lineItems []LineItem

	// customer is the customer info owned by this order
	customer Customer

	// createdAt is the creation timestamp, immutable
	createdAt time.Time

	// totalPrice is the sum of the line items' unit prices as of the last
	// create/update
	totalPrice decimal.Decimal

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a new Order in QUEUED status. This is the only way to
// create a valid new order; it validates all parts and computes the total
// price from the line-item snapshots.
func NewOrder(id kernel.UUID, code string, customer Customer, items []LineItem) (*Order, error) {
	o := &Order{
		status:        Queued,
		createdAt:     time.Now().UTC(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setCustomer(customer),
		o.setLineItems(items),
	); err != nil {
		return nil, err
	}

	total, err := computeTotalPrice(o.lineItems)
	if err != nil {
		return nil, err
	}
	o.totalPrice = total

	return o, nil
}

// RestoreOrder rehydrates an Order from persistence. The stored total price
// is taken verbatim: it is a snapshot from the last create/update and must
// not be silently recomputed against current data.
func RestoreOrder(
	id kernel.UUID,
	code string,
	status Status,
	customer Customer,
	items []LineItem,
	createdAt time.Time,
	totalPrice decimal.Decimal,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		totalPrice:    totalPrice,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setCode(code),
		o.setStatus(status),
		o.setCustomer(customer),
		o.setLineItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed otherwise.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// Code returns the order's tracking code.
func (o *Order) Code() string {
	return o.code
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Customer returns the customer info embedded in the order.
func (o *Order) Customer() Customer {
	return o.customer
}

// LineItems returns a copy of the ordered line items in insertion order.
func (o *Order) LineItems() []LineItem {
	items := make([]LineItem, len(o.lineItems))
	copy(items, o.lineItems)
	return items
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// TotalPrice returns the price snapshot from the last create/update.
func (o *Order) TotalPrice() decimal.Decimal {
	return o.totalPrice
}

// ChangeStatus moves the order to the given status. Any valid status is
// accepted: the lifecycle does not enforce a forward-only transition graph.
// The caller is responsible for the shop-wide single-IN_PROGRESS rule.
func (o *Order) ChangeStatus(newStatus Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// ReplaceContents replaces the customer info and the whole line-item
// collection, then recomputes the total price. The old line items do not
// survive the replacement: they belong exclusively to the previous order
// revision.
//
// Only queued orders may be updated.
func (o *Order) ReplaceContents(customer Customer, items []LineItem) error {
	if !o.status.AllowsContentUpdate() {
		return ErrOnlyQueuedCanBeUpdated
	}

	previousCustomer, previousItems := o.customer, o.lineItems
	if err := errors.Join(
		o.setCustomer(customer),
		o.setLineItems(items),
	); err != nil {
		o.customer, o.lineItems = previousCustomer, previousItems
		return err
	}

	total, err := computeTotalPrice(o.lineItems)
	if err != nil {
		o.customer, o.lineItems = previousCustomer, previousItems
		return err
	}
	o.totalPrice = total

	return nil
}

// CanBeDeleted checks the deletion rule: queued orders may always be
// deleted, anything else requires the staff force flag.
func (o *Order) CanBeDeleted(force bool) error {
	if !o.status.AllowsContentUpdate() && !force {
		return ErrOnlyQueuedCanBeDeleted
	}
	return nil
}

// computeTotalPrice sums the unit prices of the line items. The empty and
// non-positive branches are defensive: the constructors upstream already
// reject both.
func computeTotalPrice(items []LineItem) (decimal.Decimal, error) {
	if len(items) == 0 {
		return decimal.Zero, ErrPriceNotComputable
	}

	total := decimal.Zero
	for _, item := range items {
		if !item.UnitPrice().IsPositive() {
			return decimal.Zero, ErrPriceNotComputable
		}
		total = total.Add(item.UnitPrice())
	}

	return total, nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCode validates and sets the order's tracking code.
func (o *Order) setCode(code string) error {
	if code == "" {
		return errs.NewValueIsRequiredError("order code")
	}
	o.code = code
	return nil
}

// setStatus validates and sets the order's status.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setCustomer validates and sets the customer info.
func (o *Order) setCustomer(customer Customer) error {
	if err := customer.Validate(); err != nil {
		return err
	}
	o.customer = customer
	return nil
}

// setLineItems validates and sets the line-item collection.
func (o *Order) setLineItems(items []LineItem) error {
	if len(items) == 0 {
		return ErrNoItems
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	o.lineItems = make([]LineItem, len(items))
	copy(o.lineItems, items)
	return nil
}
