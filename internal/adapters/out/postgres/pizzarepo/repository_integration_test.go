package pizzarepo_test

import (
	"context"
	"testing"
	"time"

	"pizzeria/internal/adapters/out/postgres/pizzarepo"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/pizza"
	"pizzeria/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of the aggregateTracker
// interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// PizzaRepositoryIntegrationTestSuite verifies catalog persistence against
// a real PostgreSQL instance.
type PizzaRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *pizzarepo.GormPizzaRepository
	tracker    *MockAggregateTracker
}

func (suite *PizzaRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&pizzarepo.PizzaDTO{}, &pizzarepo.PizzaIngredientDTO{}))
}

func (suite *PizzaRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE pizzas CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE pizza_ingredients").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = pizzarepo.NewGormPizzaRepository(suite.db, suite.tracker)
}

func (suite *PizzaRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *PizzaRepositoryIntegrationTestSuite) newPizza(name, price string, ingredients ...string) *pizza.Pizza {
	p, err := pizza.NewPizza(kernel.NewUUID(), name, "una pizza buonissima",
		ingredients, decimal.RequireFromString(price))
	suite.Require().NoError(err)
	return p
}

func (suite *PizzaRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	p := suite.newPizza("Margherita", "7.50", "Pomodoro", "Mozzarella", "Basilico")

	suite.Require().NoError(suite.repository.Add(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal("Margherita", loaded.Name())
	suite.Equal("una pizza buonissima", loaded.Description())
	suite.Equal([]string{"Pomodoro", "Mozzarella", "Basilico"}, loaded.Ingredients())
	suite.True(loaded.Price().Equal(decimal.RequireFromString("7.50")))
}

func (suite *PizzaRepositoryIntegrationTestSuite) TestAdd_DuplicateName() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newPizza("Margherita", "7.50")))

	err := suite.repository.Add(ctx, suite.newPizza("Margherita", "8.00"))
	suite.Require().ErrorIs(err, pizza.ErrDuplicateName)
}

func (suite *PizzaRepositoryIntegrationTestSuite) TestUpdate_ReplacesIngredients() {
	ctx := context.Background()
	p := suite.newPizza("Margherita", "7.50", "Pomodoro", "Mozzarella")
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(p.Rename("Bufalina"))
	suite.Require().NoError(p.ChangeIngredients([]string{"Pomodoro", "Mozzarella di bufala", "Basilico"}))
	suite.Require().NoError(p.ChangePrice(decimal.RequireFromString("9.50")))
	suite.Require().NoError(suite.repository.Update(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Equal("Bufalina", loaded.Name())
	suite.Equal([]string{"Pomodoro", "Mozzarella di bufala", "Basilico"}, loaded.Ingredients())
	suite.True(loaded.Price().Equal(decimal.RequireFromString("9.50")))

	var count int64
	suite.Require().NoError(
		suite.db.Model(&pizzarepo.PizzaIngredientDTO{}).Count(&count).Error)
	suite.EqualValues(3, count, "old ingredient rows must not survive the update")
}

func (suite *PizzaRepositoryIntegrationTestSuite) TestUpdate_RenameCollision() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newPizza("Margherita", "7.50")))
	p := suite.newPizza("Diavola", "8.00")
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(p.Rename("Margherita"))
	err := suite.repository.Update(ctx, p)
	suite.Require().ErrorIs(err, pizza.ErrDuplicateName)
}

func (suite *PizzaRepositoryIntegrationTestSuite) TestGetAllByIDs_UnknownIdsAreAbsent() {
	ctx := context.Background()
	margherita := suite.newPizza("Margherita", "7.50")
	diavola := suite.newPizza("Diavola", "8.00")
	suite.Require().NoError(suite.repository.Add(ctx, margherita))
	suite.Require().NoError(suite.repository.Add(ctx, diavola))

	result, err := suite.repository.GetAllByIDs(ctx,
		[]kernel.UUID{margherita.ID(), kernel.NewUUID()})
	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.True(result[0].IsEqual(margherita))
}

func (suite *PizzaRepositoryIntegrationTestSuite) TestGetAll_SortedByName() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.newPizza("Diavola", "8.00")))
	suite.Require().NoError(suite.repository.Add(ctx, suite.newPizza("Capricciosa", "9.50")))

	result, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(result, 2)
	suite.Equal("Capricciosa", result[0].Name())
	suite.Equal("Diavola", result[1].Name())
}

func (suite *PizzaRepositoryIntegrationTestSuite) TestDelete() {
	ctx := context.Background()
	p := suite.newPizza("Margherita", "7.50", "Pomodoro")
	suite.Require().NoError(suite.repository.Add(ctx, p))

	suite.Require().NoError(suite.repository.Delete(ctx, p))

	_, err := suite.repository.Get(ctx, p.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	var count int64
	suite.Require().NoError(
		suite.db.Model(&pizzarepo.PizzaIngredientDTO{}).Count(&count).Error)
	suite.Zero(count)
}

func TestPizzaRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(PizzaRepositoryIntegrationTestSuite))
}
