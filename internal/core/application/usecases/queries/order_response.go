// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries read the database directly and return read models; they never go
// through the aggregate repositories.
package queries

import (
	"context"
	"database/sql"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// OrderResponse is the order read model served to clients: the tracking
// code, lifecycle status, customer info and the priced line items.
type OrderResponse struct {
	ID           kernel.UUID
	Code         string
	Status       order.Status
	CustomerName string
	PickupFrom   *time.Time
	PickupTo     *time.Time
	Comment      string
	CreatedAt    time.Time
	TotalPrice   decimal.Decimal
	Items        []OrderItemResponse
}

// OrderItemResponse is one priced line of an order, carrying the name and
// unit price snapshotted at order time.
type OrderItemResponse struct {
	PizzaID   kernel.UUID
	Name      string
	UnitPrice decimal.Decimal
	Note      string
}

// orderColumns is the select list shared by all order read queries. Order
// matters: scanOrderRow scans positionally.
const orderColumns = `
	id,
	code,
	status,
	customer_name,
	customer_pickup_from,
	customer_pickup_to,
	customer_comment,
	created_at,
	total_price
`

// loadOrders runs an order select with the given WHERE clause, scans the
// rows into read models and attaches the line items with one batched
// follow-up query.
func loadOrders(
	ctx context.Context, db *gorm.DB, where string, args ...any) ([]OrderResponse, error) {
	query := "SELECT " + orderColumns + " FROM orders"
	if where != "" {
		query += " WHERE " + where
	}

	rows, err := db.WithContext(ctx).Raw(query, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]OrderResponse, 0)
	for rows.Next() {
		resp, scanErr := scanOrderRow(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, resp)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return attachItems(ctx, db, orders)
}

func scanOrderRow(rows *sql.Rows) (OrderResponse, error) {
	var resp OrderResponse
	var id uuid.UUID
	var status int
	var pickupFrom, pickupTo sql.NullTime

	if err := rows.Scan(
		&id,
		&resp.Code,
		&status,
		&resp.CustomerName,
		&pickupFrom,
		&pickupTo,
		&resp.Comment,
		&resp.CreatedAt,
		&resp.TotalPrice,
	); err != nil {
		return OrderResponse{}, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderResponse{}, err
	}
	resp.ID = orderID
	resp.Status = order.Status(status)
	if pickupFrom.Valid {
		t := pickupFrom.Time
		resp.PickupFrom = &t
	}
	if pickupTo.Valid {
		t := pickupTo.Time
		resp.PickupTo = &t
	}
	resp.Items = make([]OrderItemResponse, 0)

	return resp, nil
}

// attachItems loads the line items for all given orders in a single query
// and distributes them, preserving the per-order insertion order.
func attachItems(
	ctx context.Context, db *gorm.DB, orders []OrderResponse) ([]OrderResponse, error) {
	if len(orders) == 0 {
		return orders, nil
	}

	ids := make([]uuid.UUID, 0, len(orders))
	index := make(map[uuid.UUID]int, len(orders))
	for i, o := range orders {
		raw := o.ID.Bytes()
		ids = append(ids, raw)
		index[raw] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			order_id,
			pizza_id,
			name,
			unit_price,
			note
		FROM order_items
		WHERE order_id IN ?
		ORDER BY order_id, position
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var orderID, pizzaID uuid.UUID
		var item OrderItemResponse

		if err = rows.Scan(&orderID, &pizzaID, &item.Name, &item.UnitPrice, &item.Note); err != nil {
			return nil, err
		}

		id, idErr := kernel.UUIDFromBytes(pizzaID[:])
		if idErr != nil {
			return nil, idErr
		}
		item.PizzaID = id

		i, ok := index[orderID]
		if !ok {
			continue
		}
		orders[i].Items = append(orders[i].Items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
