package commands

import (
	"context"
	"errors"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"
	"pizzeria/internal/pkg/errs"
)

var (
	// ErrNoValidItems is returned when none of the requested lines could be
	// resolved against the catalog. Unknown ids are dropped silently, but an
	// order cannot be created from nothing.
	ErrNoValidItems = errors.New("no valid pizzas found for the order")

	// ErrCodeGenerationFailed is returned when a unique tracking code could
	// not be reserved after several attempts.
	ErrCodeGenerationFailed = errors.New("could not generate a unique order code")
)

// codeGenerationAttempts bounds the collision-retry loop when reserving a
// tracking code.
const codeGenerationAttempts = 3

// CreateOrderCommandHandler places new orders. Catalog lines are resolved
// and snapshotted inside the same transaction that persists the order.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
// Requires a UoWFactory spanning the order and catalog repositories.
func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{uowFactory: uowFactory}
}

// Handle places the order described by the command and returns the created
// aggregate, including its generated tracking code.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context, command CreateOrderCommand) (*order.Order, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}
	defer func() { _ = uow.Rollback(ctx) }()

	items, err := resolveLineItems(ctx, uow.PizzaRepository(), command.Lines())
	if err != nil {
		return nil, err
	}

	code, err := reserveCode(ctx, uow.OrderRepository(), command.Customer().Name())
	if err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(kernel.NewUUID(), code, command.Customer(), items)
	if err != nil {
		return nil, err
	}

	if err := uow.OrderRepository().Add(ctx, newOrder); err != nil {
		return nil, err
	}

	if err := uow.Commit(ctx); err != nil {
		return nil, err
	}

	return newOrder, nil
}

// resolveLineItems turns requested lines into line-item snapshots using a
// single batched catalog lookup. Lines referencing unknown catalog ids are
// dropped silently; if nothing survives, ErrNoValidItems is returned.
func resolveLineItems(
	ctx context.Context,
	catalog ports.PizzaRepository,
	lines []RequestedLine,
) ([]order.LineItem, error) {
	ids := make([]kernel.UUID, 0, len(lines))
	for _, line := range lines {
		ids = append(ids, line.PizzaID())
	}

	pizzas, err := catalog.GetAllByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]int, len(pizzas))
	for i, p := range pizzas {
		byID[p.ID().String()] = i
	}

	items := make([]order.LineItem, 0, len(lines))
	for _, line := range lines {
		i, ok := byID[line.PizzaID().String()]
		if !ok {
			continue
		}

		item, err := order.NewLineItem(pizzas[i].ID(), pizzas[i].Name(), pizzas[i].Price(), line.Note())
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if len(items) == 0 {
		return nil, ErrNoValidItems
	}

	return items, nil
}

// reserveCode generates a tracking code and verifies it is not already
// taken. The timestamp component makes collisions rare; when one happens the
// next attempts add random entropy.
func reserveCode(ctx context.Context, repo ports.OrderRepository, customerName string) (string, error) {
	code := order.GenerateCode(customerName)
	for attempt := 0; attempt < codeGenerationAttempts; attempt++ {
		_, err := repo.GetByCode(ctx, code)
		if errors.Is(err, errs.ErrObjectNotFound) {
			return code, nil
		}
		if err != nil {
			return "", err
		}

		code = order.GenerateCodeWithEntropy(customerName)
	}

	return "", ErrCodeGenerationFailed
}
