package cmd

import (
	"log/slog"
	"os"

	"pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/bootstrap"
	"pizzeria/internal/core/application/usecases/commands"
	"pizzeria/internal/core/application/usecases/queries"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	// The status handler serializes IN_PROGRESS transitions process-wide,
	// so exactly one instance must exist.
	updateOrderStatusHandler *commands.UpdateOrderStatusCommandHandler
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	root := CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	}

	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return root.uowFactory.Create()
	})
	root.updateOrderStatusHandler = commands.NewUpdateOrderStatusCommandHandler(f)

	return root
}

func (c *CompositionRoot) Logger() *slog.Logger {
	return c.logger
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateOrderStatusCommandHandler() *commands.UpdateOrderStatusCommandHandler {
	return c.updateOrderStatusHandler
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() commands.DeleteOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreatePurgeDeliveredOrdersCommandHandler() commands.PurgeDeliveredOrdersCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPurgeDeliveredOrdersCommandHandler(f)
}

func (c *CompositionRoot) CreateCreatePizzaCommandHandler() commands.CreatePizzaCommandHandler {
	var f commands.PizzaUoWFactory = FuncPizzaUoWFactory(func() commands.PizzaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreatePizzaCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdatePizzaCommandHandler() commands.UpdatePizzaCommandHandler {
	var f commands.PizzaUoWFactory = FuncPizzaUoWFactory(func() commands.PizzaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePizzaCommandHandler(f)
}

func (c *CompositionRoot) CreateDeletePizzaCommandHandler() commands.DeletePizzaCommandHandler {
	var f commands.PizzaUoWFactory = FuncPizzaUoWFactory(func() commands.PizzaUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDeletePizzaCommandHandler(f)
}

func (c *CompositionRoot) CreateGetAllOrdersQueryHandler() queries.GetAllOrdersQueryHandler {
	return queries.NewGetAllOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByCodeQueryHandler() queries.GetOrderByCodeQueryHandler {
	return queries.NewGetOrderByCodeQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderByIDQueryHandler() queries.GetOrderByIDQueryHandler {
	return queries.NewGetOrderByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllPizzasQueryHandler() queries.GetAllPizzasQueryHandler {
	return queries.NewGetAllPizzasQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateCatalogSeeder() *bootstrap.CatalogSeeder {
	return bootstrap.NewCatalogSeeder(
		c.CreateGetAllPizzasQueryHandler(),
		c.CreateCreatePizzaCommandHandler(),
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPizzaUoWFactory func() commands.PizzaUoW

func (f FuncPizzaUoWFactory) Create() commands.PizzaUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
