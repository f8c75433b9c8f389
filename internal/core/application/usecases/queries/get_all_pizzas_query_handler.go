package queries

import (
	"context"
	"database/sql"

	"pizzeria/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllPizzasQueryHandler retrieves the menu from the database.
type GetAllPizzasQueryHandler struct {
	db *gorm.DB
}

// NewGetAllPizzasQueryHandler creates a handler for menu queries.
// Requires a GORM database connection for query execution.
func NewGetAllPizzasQueryHandler(db *gorm.DB) GetAllPizzasQueryHandler {
	return GetAllPizzasQueryHandler{db: db}
}

// Handle executes the menu query. Returns the catalog sorted by name with
// ingredients attached.
func (h GetAllPizzasQueryHandler) Handle(
	ctx context.Context, query GetAllPizzasQuery) ([]PizzaResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price
		FROM pizzas
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}

	pizzas, err := scanPizzaRows(rows)
	if err != nil {
		return nil, err
	}

	return attachIngredients(ctx, h.db, pizzas)
}

func scanPizzaRows(rows *sql.Rows) ([]PizzaResponse, error) {
	defer rows.Close()

	pizzas := make([]PizzaResponse, 0)
	for rows.Next() {
		var resp PizzaResponse
		var id uuid.UUID

		if err := rows.Scan(&id, &resp.Name, &resp.Description, &resp.Price); err != nil {
			return nil, err
		}

		pizzaID, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		resp.ID = pizzaID
		resp.Ingredients = make([]string, 0)
		pizzas = append(pizzas, resp)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return pizzas, nil
}

// attachIngredients loads the ingredient names for all given pizzas in a
// single query, preserving each pizza's ingredient order.
func attachIngredients(
	ctx context.Context, db *gorm.DB, pizzas []PizzaResponse) ([]PizzaResponse, error) {
	if len(pizzas) == 0 {
		return pizzas, nil
	}

	ids := make([]uuid.UUID, 0, len(pizzas))
	index := make(map[uuid.UUID]int, len(pizzas))
	for i, p := range pizzas {
		raw := p.ID.Bytes()
		ids = append(ids, raw)
		index[raw] = i
	}

	rows, err := db.WithContext(ctx).Raw(`
		SELECT
			pizza_id,
			name
		FROM pizza_ingredients
		WHERE pizza_id IN ?
		ORDER BY pizza_id, position
	`, ids).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var pizzaID uuid.UUID
		var name string

		if err = rows.Scan(&pizzaID, &name); err != nil {
			return nil, err
		}

		i, ok := index[pizzaID]
		if !ok {
			continue
		}
		pizzas[i].Ingredients = append(pizzas[i].Ingredients, name)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pizzas, nil
}
