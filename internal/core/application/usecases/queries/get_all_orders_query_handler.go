package queries

import (
	"context"
	"sort"
	"strings"
	"time"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves the order board from the database.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for board queries.
// Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the board query. Filtering happens in SQL; the pickup
// ordering is applied in memory because SQL NULL sorting differs across
// engines and the nulls-last rule must hold exactly.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context, query GetAllOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var conditions []string
	var args []any

	if statuses := query.Statuses(); len(statuses) > 0 {
		values := make([]int, 0, len(statuses))
		for _, s := range statuses {
			values = append(values, int(s))
		}
		conditions = append(conditions, "status IN ?")
		args = append(args, values)
	}

	if date := query.PickupDate(); date != nil {
		// Both ends of the window must fall on the requested date, so a
		// window spanning midnight never matches.
		conditions = append(conditions,
			"customer_pickup_from::date = ?", "customer_pickup_to::date = ?")
		day := date.Format("2006-01-02")
		args = append(args, day, day)
	}

	orders, err := loadOrders(ctx, h.db, strings.Join(conditions, " AND "), args...)
	if err != nil {
		return nil, err
	}

	sortByPickup(orders)
	return orders, nil
}

// sortByPickup orders the board for the pizzaiolo: earliest pickupFrom
// first, ties broken by pickupTo, then by creation time. Orders without a
// pickup window sort after those with one. The sort is stable.
func sortByPickup(orders []OrderResponse) {
	sort.SliceStable(orders, func(i, j int) bool {
		if c := compareTimePtr(orders[i].PickupFrom, orders[j].PickupFrom); c != 0 {
			return c < 0
		}
		if c := compareTimePtr(orders[i].PickupTo, orders[j].PickupTo); c != 0 {
			return c < 0
		}
		return orders[i].CreatedAt.Before(orders[j].CreatedAt)
	})
}

// compareTimePtr compares optional timestamps with nil sorting last.
func compareTimePtr(a, b *time.Time) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	case a.Before(*b):
		return -1
	case a.After(*b):
		return 1
	default:
		return 0
	}
}
