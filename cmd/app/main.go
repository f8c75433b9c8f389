package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"pizzeria/cmd"
	_ "pizzeria/docs"
	httpadapter "pizzeria/internal/adapters/in/http"
	"pizzeria/internal/adapters/out/postgres/orderrepo"
	"pizzeria/internal/adapters/out/postgres/pizzarepo"
	"pizzeria/internal/generated/servers"
	"pizzeria/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	echoSwagger "github.com/swaggo/echo-swagger"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	db := mustOpenDB(configs)

	app := cmd.NewCompositionRoot(configs, db)
	logger := app.Logger()

	if err := app.CreateCatalogSeeder().Seed(context.Background()); err != nil {
		log.Fatalf("Failed to seed catalog: %v", err)
	}

	retention, err := time.ParseDuration(configs.PurgeRetention)
	if err != nil {
		log.Fatalf("Invalid PURGE_RETENTION %q: %v", configs.PurgeRetention, err)
	}

	jobManager := jobs.NewJobManager(
		app.CreatePurgeDeliveredOrdersCommandHandler(),
		configs.PurgeSchedule,
		retention,
		logger,
	)
	if err = jobManager.StartAll(); err != nil {
		log.Fatalf("Failed to start jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	// A missing .env file is fine in containerized deployments where the
	// environment is injected directly.
	_ = godotenv.Load(".env")

	config := cmd.Config{
		HTTPPort:       envOrDefault("HTTP_PORT", "8080"),
		DBHost:         envOrDefault("DB_HOST", "localhost"),
		DBPort:         envOrDefault("DB_PORT", "5432"),
		DBUser:         envOrDefault("DB_USER", "postgres"),
		DBPassword:     envOrDefault("DB_PASSWORD", "postgres"),
		DBName:         envOrDefault("DB_NAME", "pizzeria"),
		DBSslMode:      envOrDefault("DB_SSLMODE", "disable"),
		PurgeSchedule:  envOrDefault("PURGE_SCHEDULE", "0 0 * * * *"),
		PurgeRetention: envOrDefault("PURGE_RETENTION", "24h"),
	}
	return config
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// mustOpenDB connects to PostgreSQL and migrates the schema. TranslateError
// is required so unique violations surface as gorm.ErrDuplicatedKey.
func mustOpenDB(configs cmd.Config) *gorm.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		configs.DBHost, configs.DBPort, configs.DBUser,
		configs.DBPassword, configs.DBName, configs.DBSslMode)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{},
		&pizzarepo.PizzaDTO{}, &pizzarepo.PizzaIngredientDTO{},
	)
	if err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	return db
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	server := httpadapter.NewServer(
		app.CreateCreateOrderCommandHandler(),
		app.CreateUpdateOrderCommandHandler(),
		app.CreateUpdateOrderStatusCommandHandler(),
		app.CreateDeleteOrderCommandHandler(),
		app.CreateCreatePizzaCommandHandler(),
		app.CreateUpdatePizzaCommandHandler(),
		app.CreateDeletePizzaCommandHandler(),
		app.CreateGetAllOrdersQueryHandler(),
		app.CreateGetOrderByCodeQueryHandler(),
		app.CreateGetOrderByIDQueryHandler(),
		app.CreateGetAllPizzasQueryHandler(),
	)
	servers.RegisterHandlersWithBaseURL(e, server, "/api/v1")

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
