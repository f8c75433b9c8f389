package queries

import (
	"context"

	"pizzeria/internal/pkg/errs"

	"gorm.io/gorm"
)

// GetOrderByCodeQueryHandler retrieves a single order read model by its
// tracking code.
type GetOrderByCodeQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderByCodeQueryHandler creates a handler for code lookups.
// Requires a GORM database connection for query execution.
func NewGetOrderByCodeQueryHandler(db *gorm.DB) GetOrderByCodeQueryHandler {
	return GetOrderByCodeQueryHandler{db: db}
}

// Handle executes the lookup. Returns errs.ErrObjectNotFound when no order
// carries the code.
func (h GetOrderByCodeQueryHandler) Handle(
	ctx context.Context, query GetOrderByCodeQuery) (OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return OrderResponse{}, err
	}

	orders, err := loadOrders(ctx, h.db, "code = ?", query.Code())
	if err != nil {
		return OrderResponse{}, err
	}
	if len(orders) == 0 {
		return OrderResponse{}, errs.NewObjectNotFoundError("code", query.Code())
	}

	return orders[0], nil
}
