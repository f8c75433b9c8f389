// Package pizzarepo provides data transfer objects and mapping functions
// for catalog persistence. It implements the repository pattern for the
// pizza aggregate.
package pizzarepo

import (
	"sort"

	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/pizza"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PizzaDTO represents the database structure for persisting catalog
// entries. Names carry a unique index: the menu never lists the same pizza
// twice.
type PizzaDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name        string    `gorm:"uniqueIndex;not null"`
	Description string
	Ingredients []PizzaIngredientDTO `gorm:"foreignKey:PizzaID;constraint:OnDelete:CASCADE"`
	Price       decimal.Decimal      `gorm:"type:numeric(10,2)"`
}

// TableName overrides GORM's default naming to use "pizzas".
func (PizzaDTO) TableName() string {
	return "pizzas"
}

// PizzaIngredientDTO represents one ingredient row owned by a catalog
// entry.
type PizzaIngredientDTO struct {
	ID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	PizzaID  uuid.UUID `gorm:"type:uuid;index;not null"`
	Name     string    `gorm:"not null"`
	Position int
}

// TableName overrides GORM's default naming to use "pizza_ingredients".
func (PizzaIngredientDTO) TableName() string {
	return "pizza_ingredients"
}

// fromDomain converts a catalog aggregate to its database representation.
func fromDomain(aggregate *pizza.Pizza) PizzaDTO {
	ingredients := aggregate.Ingredients()
	ingredientDTOs := make([]PizzaIngredientDTO, 0, len(ingredients))
	for i, name := range ingredients {
		ingredientDTOs = append(ingredientDTOs, PizzaIngredientDTO{
			ID:       uuid.New(),
			PizzaID:  aggregate.ID().Bytes(),
			Name:     name,
			Position: i,
		})
	}

	return PizzaDTO{
		ID:          aggregate.ID().Bytes(),
		Name:        aggregate.Name(),
		Description: aggregate.Description(),
		Ingredients: ingredientDTOs,
		Price:       aggregate.Price(),
	}
}

// toDomain converts a database DTO to a catalog aggregate.
func toDomain(dto PizzaDTO) (*pizza.Pizza, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	sort.Slice(dto.Ingredients, func(i, j int) bool {
		return dto.Ingredients[i].Position < dto.Ingredients[j].Position
	})

	ingredients := make([]string, 0, len(dto.Ingredients))
	for _, ingredient := range dto.Ingredients {
		ingredients = append(ingredients, ingredient.Name)
	}

	return pizza.RestorePizza(id, dto.Name, dto.Description, ingredients, dto.Price)
}
