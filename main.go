package main

import (
	"context"
	"os"

	"shop-api/internal/auth"
	"shop-api/internal/handler"
	"shop-api/internal/infrastructure"
	"shop-api/internal/service"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

func main() {
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	if err := godotenv.Load(); err != nil {
		logger.Info().Msg("no .env file found, using environment variables")
	}

	db, err := infrastructure.ConnectDatabase(infrastructure.DefaultDatabaseConfig())
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	if err := infrastructure.MigrateAllSchemas(db); err != nil {
		logger.Fatal().Err(err).Msg("failed to migrate database schemas")
	}

	userService := service.NewUserService(db)
	productService := service.NewProductService(db)
	customerService := service.NewCustomerService(db)
	orderService := service.NewOrderService(db)
	authService := auth.NewService(userService)

	authzService, err := service.NewAuthorizationService()
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to initialize authorization service")
	}

	seedManager := infrastructure.NewSeedDataManager(db, logger, userService, productService, customerService, orderService)
	if err := seedManager.SeedAll(context.Background()); err != nil {
		logger.Fatal().Err(err).Msg("failed to setup seed data")
	}

	r := handler.NewRouter(handler.RouterConfig{
		Logger:          logger,
		DB:              db,
		AuthService:     authService,
		AuthzService:    authzService,
		ProductService:  productService,
		CustomerService: customerService,
		OrderService:    orderService,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	logger.Info().Str("port", port).Msg("server starting")
	if err := r.Run(":" + port); err != nil {
		logger.Fatal().Err(err).Msg("server stopped")
	}
}
