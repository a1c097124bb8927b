package main

import (
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"

	"deliverymarket/cmd"
	"deliverymarket/internal/adapters/in/http"
	"deliverymarket/internal/adapters/out/postgres/catalogrepo"
	"deliverymarket/internal/adapters/out/postgres/orderrepo"
	"deliverymarket/internal/adapters/out/postgres/parcelrepo"
	"deliverymarket/internal/adapters/out/postgres/ratingrepo"
	"deliverymarket/internal/adapters/out/postgres/reviewrepo"
	"deliverymarket/internal/jobs"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	configs := getConfigs()

	gormDB := connectToDatabase(configs)
	migrateSchema(gormDB)

	app := cmd.NewCompositionRoot(configs, gormDB)

	jobManager := jobs.NewJobManager(
		app.CreateReconcileRatingsCommandHandler(),
		slog.New(slog.NewJSONHandler(os.Stdout, nil)),
	)
	if err := jobManager.StartAll(); err != nil {
		log.Fatalf("Error starting background jobs: %v", err)
	}
	defer jobManager.StopAll()

	startWebServer(&app, configs.HTTPPort)
}

func getConfigs() cmd.Config {
	config := cmd.Config{
		HTTPPort:   goDotEnvVariable("HTTP_PORT"),
		DBHost:     goDotEnvVariable("DB_HOST"),
		DBPort:     goDotEnvVariable("DB_PORT"),
		DBUser:     goDotEnvVariable("DB_USER"),
		DBPassword: goDotEnvVariable("DB_PASSWORD"),
		DBName:     goDotEnvVariable("DB_NAME"),
		DBSslMode:  goDotEnvVariable("DB_SSLMODE"),
	}
	return config
}

func goDotEnvVariable(key string) string {
	err := godotenv.Load(".env")
	if err != nil {
		log.Fatalf("Error loading .env file")
	}
	return os.Getenv(key)
}

func connectToDatabase(configs cmd.Config) *gorm.DB {
	// TranslateError maps the unique-index violation on reviews onto
	// gorm.ErrDuplicatedKey, which the review repository relies on.
	gormDB, err := gorm.Open(postgresdriver.Open(configs.DSN()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("Error connecting to database: %v", err)
	}
	return gormDB
}

func migrateSchema(gormDB *gorm.DB) {
	err := gormDB.AutoMigrate(
		&orderrepo.OrderDTO{},
		&orderrepo.OrderItemDTO{},
		&parcelrepo.ParcelDTO{},
		&reviewrepo.ReviewDTO{},
		&catalogrepo.RestaurantDTO{},
		&catalogrepo.MenuItemDTO{},
		&ratingrepo.DriverProfileDTO{},
	)
	if err != nil {
		log.Fatalf("Error migrating database schema: %v", err)
	}
}

func startWebServer(app *cmd.CompositionRoot, port string) {
	e := echo.New()
	e.GET("/health", func(c echo.Context) error {
		return c.String(nethttp.StatusOK, "Healthy")
	})

	server := http.NewServer(
		app.CreateCreateFoodOrderCommandHandler(),
		app.CreateCancelFoodOrderCommandHandler(),
		app.CreateClaimFoodOrderCommandHandler(),
		app.CreateUpdateFoodOrderStatusCommandHandler(),
		app.CreateReviewFoodOrderCommandHandler(),
		app.CreateCreateParcelCommandHandler(),
		app.CreateCancelParcelCommandHandler(),
		app.CreateClaimParcelCommandHandler(),
		app.CreateUpdateParcelStatusCommandHandler(),
		app.CreateReviewParcelCommandHandler(),
		app.CreateGetFoodOrderQueryHandler(),
		app.CreateGetAvailableOrdersQueryHandler(),
		app.CreateGetParcelQueryHandler(),
		app.CreateGetAvailableParcelsQueryHandler(),
	)
	server.RegisterRoutes(e)

	e.Logger.Fatal(e.Start(fmt.Sprintf("0.0.0.0:%s", port)))
}
