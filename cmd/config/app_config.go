package config

import (
	"context"
	"fmt"
	"os"
	"time"

	"Grocery-Tracker/internal/api/handlers"
	"Grocery-Tracker/internal/api/routes"
	"Grocery-Tracker/internal/middleware"
	"Grocery-Tracker/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/rs/zerolog"
	"gorm.io/gorm"
)

const maxUploadSize = 10 << 20

func NewApp(ctx context.Context, db *gorm.DB, logger zerolog.Logger) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		BodyLimit: maxUploadSize,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	if err := os.MkdirAll("./logs", os.ModePerm); err != nil {
		return nil, fmt.Errorf("error creating logs directory: %w", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		return nil, fmt.Errorf("error opening log file: %w", err)
	}
	app.Use(fiberlogger.New(fiberlogger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	services, err := NewServices(ctx, db, logger)
	if err != nil {
		return nil, err
	}

	// Handler
	groceryHandler := handlers.NewGroceryHandler(services.Grocery, validator)
	receiptHandler := handlers.NewReceiptHandler(services.Receipt, validator, logger)
	recipeHandler := handlers.NewRecipeHandler(services.Recipe, validator)
	generateHandler := handlers.NewGenerateHandler(services.Model, logger)

	// routes
	routesConfig := routes.Config{
		App:             app,
		GroceryHandler:  groceryHandler,
		ReceiptHandler:  receiptHandler,
		RecipeHandler:   recipeHandler,
		GenerateHandler: generateHandler,
		Middleware:      middlewares,
	}
	routesConfig.Setup()
	return app, nil
}
