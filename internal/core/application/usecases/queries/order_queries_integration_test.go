package queries_test

import (
	"context"
	"testing"
	"time"

	"pizzeria/internal/adapters/out/postgres/orderrepo"
	"pizzeria/internal/adapters/out/postgres/pizzarepo"
	"pizzeria/internal/core/application/usecases/queries"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(kernel.UUID, any) {}

// OrderQueriesIntegrationTestSuite verifies the order read models against a
// real PostgreSQL database, writing through the repositories and reading
// through the query handlers.
type OrderQueriesIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	orderRepo *orderrepo.GormOrderRepository
	pizzaRepo *pizzarepo.GormPizzaRepository
}

func (suite *OrderQueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{},
		&pizzarepo.PizzaDTO{}, &pizzarepo.PizzaIngredientDTO{},
	)
	suite.Require().NoError(err)

	suite.orderRepo = orderrepo.NewGormOrderRepository(db, &mockAggregateTracker{})
	suite.pizzaRepo = pizzarepo.NewGormPizzaRepository(db, &mockAggregateTracker{})
}

func (suite *OrderQueriesIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, pizzas, pizza_ingredients").Error
	suite.Require().NoError(err)
}

func (suite *OrderQueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderQueriesIntegrationTestSuite) addOrder(
	code string, status order.Status, pickupFrom, pickupTo *time.Time) *order.Order {
	customer, err := order.RestoreCustomer("Mario", pickupFrom, pickupTo, "")
	suite.Require().NoError(err)

	items := []order.LineItem{}
	for _, name := range []string{"Margherita", "Diavola"} {
		item, itemErr := order.NewLineItem(kernel.NewUUID(), name,
			decimal.RequireFromString("7.50"), "")
		suite.Require().NoError(itemErr)
		items = append(items, item)
	}

	o, err := order.NewOrder(kernel.NewUUID(), code, customer, items)
	suite.Require().NoError(err)
	suite.Require().NoError(o.ChangeStatus(status))
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrderByCode() {
	o := suite.addOrder("ORD-1-MARIO", order.Queued, nil, nil)

	handler := queries.NewGetOrderByCodeQueryHandler(suite.db)
	query, err := queries.NewGetOrderByCodeQuery("ORD-1-MARIO")
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.True(result.ID.IsEqual(o.ID()))
	suite.Equal(order.Queued, result.Status)
	suite.Equal("Mario", result.CustomerName)
	suite.Require().Len(result.Items, 2)
	suite.Equal("Margherita", result.Items[0].Name)
	suite.Equal("Diavola", result.Items[1].Name)
	suite.True(result.TotalPrice.Equal(decimal.RequireFromString("15.00")))
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrderByCode_NotFound() {
	handler := queries.NewGetOrderByCodeQueryHandler(suite.db)
	query, err := queries.NewGetOrderByCodeQuery("ORD-MISSING")
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetOrderByID() {
	o := suite.addOrder("ORD-2-MARIO", order.Ready, nil, nil)

	handler := queries.NewGetOrderByIDQueryHandler(suite.db)
	query, err := queries.NewGetOrderByIDQuery(o.ID())
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal("ORD-2-MARIO", result.Code)
	suite.Equal(order.Ready, result.Status)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetAllOrders_StatusFilterAndPickupSort() {
	day := time.Now().Add(24 * time.Hour)
	noon := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.UTC)
	evening := noon.Add(6 * time.Hour)
	noonEnd := noon.Add(time.Hour)
	eveningEnd := evening.Add(time.Hour)

	suite.addOrder("ORD-EVENING", order.Queued, &evening, &eveningEnd)
	suite.addOrder("ORD-NOON", order.Queued, &noon, &noonEnd)
	suite.addOrder("ORD-NO-WINDOW", order.Queued, nil, nil)
	suite.addOrder("ORD-DELIVERED", order.Delivered, nil, nil)

	handler := queries.NewGetAllOrdersQueryHandler(suite.db)
	query, err := queries.NewGetAllOrdersQuery([]order.Status{order.Queued}, nil)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("ORD-NOON", result[0].Code)
	suite.Equal("ORD-EVENING", result[1].Code)
	suite.Equal("ORD-NO-WINDOW", result[2].Code, "windowless orders sort last")
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetAllOrders_PickupDateFilter() {
	day := time.Now().Add(24 * time.Hour)
	noon := time.Date(day.Year(), day.Month(), day.Day(), 12, 0, 0, 0, time.UTC)
	noonEnd := noon.Add(time.Hour)
	otherFrom := noon.Add(48 * time.Hour)
	otherTo := otherFrom.Add(time.Hour)

	suite.addOrder("ORD-ON-DATE", order.Queued, &noon, &noonEnd)
	suite.addOrder("ORD-OTHER-DATE", order.Queued, &otherFrom, &otherTo)
	suite.addOrder("ORD-NO-WINDOW", order.Queued, nil, nil)

	handler := queries.NewGetAllOrdersQueryHandler(suite.db)
	query, err := queries.NewGetAllOrdersQuery(nil, &noon)
	suite.Require().NoError(err)

	result, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal("ORD-ON-DATE", result[0].Code)
}

func (suite *OrderQueriesIntegrationTestSuite) TestGetAllPizzas() {
	ctx := context.Background()
	for _, spec := range []struct{ name, price string }{
		{"Diavola", "8.00"},
		{"Margherita", "7.50"},
	} {
		p, err := pizza.NewPizza(kernel.NewUUID(), spec.name, "",
			[]string{"Pomodoro", "Mozzarella"}, decimal.RequireFromString(spec.price))
		suite.Require().NoError(err)
		suite.Require().NoError(suite.pizzaRepo.Add(ctx, p))
	}

	handler := queries.NewGetAllPizzasQueryHandler(suite.db)
	result, err := handler.Handle(ctx, queries.NewGetAllPizzasQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Diavola", result[0].Name)
	suite.Equal("Margherita", result[1].Name)
	suite.Equal([]string{"Pomodoro", "Mozzarella"}, result[0].Ingredients)
}

func TestOrderQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderQueriesIntegrationTestSuite))
}
