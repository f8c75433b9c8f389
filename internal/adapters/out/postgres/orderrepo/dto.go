// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. It implements the repository pattern for the order
// aggregate, converting between domain entities and database rows.
package orderrepo

import (
	"sort"
	"time"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order
// aggregates. The customer info is embedded in the orders table; line items
// live in their own table and are owned by the order row.
type OrderDTO struct {
	ID         uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Code       string         `gorm:"uniqueIndex;not null"`
	Status     int            `gorm:"index"`
	Customer   CustomerDTO    `gorm:"embedded;embeddedPrefix:customer_"`
	Items      []OrderItemDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt  time.Time
	TotalPrice decimal.Decimal `gorm:"type:numeric(10,2)"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// CustomerDTO represents the embedded customer columns within the order
// table.
type CustomerDTO struct {
	Name       string `gorm:"not null"`
	PickupFrom *time.Time
	PickupTo   *time.Time
	Comment    string
}

// OrderItemDTO represents one priced line of an order. Rows belong to
// exactly one order revision: updates replace them wholesale.
type OrderItemDTO struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID `gorm:"type:uuid;index;not null"`
	PizzaID   uuid.UUID `gorm:"type:uuid"`
	Name      string    `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(10,2)"`
	Note      string
	Position  int
}

// TableName overrides GORM's default naming to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order aggregate to its database representation.
// Line-item rows get fresh ids: items carry no identity in the domain and
// never survive a content update.
func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.LineItems()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for i, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			ID:        uuid.New(),
			OrderID:   aggregate.ID().Bytes(),
			PizzaID:   item.PizzaID().Bytes(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice(),
			Note:      item.Note(),
			Position:  i,
		})
	}

	customer := aggregate.Customer()
	return OrderDTO{
		ID:     aggregate.ID().Bytes(),
		Code:   aggregate.Code(),
		Status: int(aggregate.Status()),
		Customer: CustomerDTO{
			Name:       customer.Name(),
			PickupFrom: customer.PickupFrom(),
			PickupTo:   customer.PickupTo(),
			Comment:    customer.Comment(),
		},
		Items:      itemDTOs,
		CreatedAt:  aggregate.CreatedAt(),
		TotalPrice: aggregate.TotalPrice(),
	}
}

// toDomain converts a database DTO to an order aggregate, restoring the
// stored price snapshot verbatim.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.RestoreCustomer(
		dto.Customer.Name,
		dto.Customer.PickupFrom,
		dto.Customer.PickupTo,
		dto.Customer.Comment,
	)
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Items, func(i, j int) bool {
		return dto.Items[i].Position < dto.Items[j].Position
	})

	items := make([]order.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		pizzaID, idErr := kernel.UUIDFromBytes(itemDTO.PizzaID[:])
		if idErr != nil {
			return nil, idErr
		}

		item, itemErr := order.NewLineItem(pizzaID, itemDTO.Name, itemDTO.UnitPrice, itemDTO.Note)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return order.RestoreOrder(
		id,
		dto.Code,
		order.Status(dto.Status),
		customer,
		items,
		dto.CreatedAt,
		dto.TotalPrice,
	)
}
