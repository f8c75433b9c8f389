// Package bootstrap seeds the catalog with the shop's default menu on
// startup, so a fresh database immediately serves a working pizzeria.
package bootstrap

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/pizza"

	"github.com/shopspring/decimal"
)

// menuReader reads the current catalog.
type menuReader interface {
	Handle(ctx context.Context, query queries.GetAllPizzasQuery) ([]queries.PizzaResponse, error)
}

// pizzaCreator adds entries to the catalog.
type pizzaCreator interface {
	Handle(ctx context.Context, command commands.CreatePizzaCommand) (*pizza.Pizza, error)
}

type pizzaSeed struct {
	name        string
	description string
	ingredients []string
	price       string
}

// defaultMenu is the classic ten-pizza menu seeded into an empty catalog.
var defaultMenu = []pizzaSeed{
	{
		"Margherita",
		"La classica pizza italiana con pomodoro, mozzarella e basilico fresco.",
		[]string{"Pomodoro", "Mozzarella", "Basilico"},
		"7.50",
	},
	{
		"Diavola",
		"Pizza piccante con salame, pomodoro e mozzarella.",
		[]string{"Pomodoro", "Mozzarella", "Salame piccante"},
		"8.00",
	},
	{
		"Prosciutto e Funghi",
		"Pizza con prosciutto cotto, funghi, pomodoro e mozzarella.",
		[]string{"Pomodoro", "Mozzarella", "Prosciutto", "Funghi"},
		"8.50",
	},
	{
		"Quattro Stagioni",
		"Pizza ricca con carciofi, funghi, prosciutto e olive.",
		[]string{"Pomodoro", "Mozzarella", "Carciofi", "Funghi", "Prosciutto", "Olive"},
		"9.00",
	},
	{
		"Capricciosa",
		"Pizza con carciofi, funghi, prosciutto e uovo.",
		[]string{"Pomodoro", "Mozzarella", "Carciofi", "Funghi", "Prosciutto", "Uovo"},
		"9.00",
	},
	{
		"Quattro Formaggi",
		"Pizza con mozzarella, gorgonzola, fontina e parmigiano.",
		[]string{"Mozzarella", "Gorgonzola", "Fontina", "Parmigiano"},
		"9.50",
	},
	{
		"Vegetariana",
		"Pizza con verdure grigliate, pomodoro e mozzarella.",
		[]string{"Pomodoro", "Mozzarella", "Verdure grigliate"},
		"8.50",
	},
	{
		"Tonno e Cipolla",
		"Pizza con tonno, cipolla, pomodoro e mozzarella.",
		[]string{"Pomodoro", "Mozzarella", "Tonno", "Cipolla"},
		"8.50",
	},
	{
		"Bufalina",
		"Pizza con mozzarella di bufala, pomodoro e basilico.",
		[]string{"Pomodoro", "Mozzarella di bufala", "Basilico"},
		"9.00",
	},
	{
		"Salsiccia e Friarielli",
		"Pizza tipica napoletana con salsiccia e friarielli.",
		[]string{"Mozzarella", "Salsiccia", "Friarielli"},
		"9.50",
	},
}

// CatalogSeeder populates an empty catalog with the default menu.
type CatalogSeeder struct {
	reader  menuReader
	creator pizzaCreator
	logger  *slog.Logger
}

// NewCatalogSeeder creates a seeder over the catalog read and write
// use cases.
func NewCatalogSeeder(reader menuReader, creator pizzaCreator, logger *slog.Logger) *CatalogSeeder {
	return &CatalogSeeder{
		reader:  reader,
		creator: creator,
		logger:  logger.With("component", "catalog_seeder"),
	}
}

// Seed inserts the default menu when the catalog is empty. A non-empty
// catalog is left untouched, so restarts never resurrect deleted entries.
// Name collisions with concurrently seeded entries are skipped.
func (s *CatalogSeeder) Seed(ctx context.Context) error {
	existing, err := s.reader.Handle(ctx, queries.NewGetAllPizzasQuery())
	if err != nil {
		return fmt.Errorf("failed to read catalog: %w", err)
	}
	if len(existing) > 0 {
		s.logger.InfoContext(ctx, "Catalog already populated, skipping seed",
			"pizzas", len(existing))
		return nil
	}

	seeded := 0
	for _, seed := range defaultMenu {
		cmd, cmdErr := commands.NewCreatePizzaCommand(
			seed.name, seed.description, seed.ingredients,
			decimal.RequireFromString(seed.price))
		if cmdErr != nil {
			return fmt.Errorf("invalid seed entry %q: %w", seed.name, cmdErr)
		}

		if _, createErr := s.creator.Handle(ctx, cmd); createErr != nil {
			if errors.Is(createErr, pizza.ErrDuplicateName) {
				continue
			}
			return fmt.Errorf("failed to seed pizza %q: %w", seed.name, createErr)
		}
		seeded++
	}

	s.logger.InfoContext(ctx, "Catalog seeded with default menu", "pizzas", seeded)
	return nil
}
