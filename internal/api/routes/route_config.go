package routes

import (
	"Grocery-Tracker/internal/api/handlers"
	"Grocery-Tracker/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	GroceryHandler  handlers.GroceryHandler
	ReceiptHandler  handlers.ReceiptHandler
	RecipeHandler   handlers.RecipeHandler
	GenerateHandler handlers.GenerateHandler
	Middleware      middleware.Middleware
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.GuestRoute()
	c.Groceries()
	c.Receipts()
	c.Recipes()
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong"})
	})
	c.App.Post("/api/generate", c.GenerateHandler.Generate)
}

func (c *Config) Groceries() {
	groceries := c.App.Group("/api/v1/groceries")
	{
		groceries.Get("", c.GroceryHandler.GetGroceryItems)
		groceries.Post("", c.GroceryHandler.AddGroceryItem)
		groceries.Post("/clear-expired", c.GroceryHandler.ClearExpired)
		groceries.Patch("/:id/expiry", c.GroceryHandler.UpdateExpiry)
		groceries.Delete("/:id", c.GroceryHandler.DeleteGroceryItem)
	}
}

func (c *Config) Receipts() {
	receipts := c.App.Group("/api/v1/receipts")
	{
		receipts.Post("/scan", c.ReceiptHandler.ScanReceipt)
		receipts.Get("/:id", c.ReceiptHandler.GetReceiptScan)
	}
}

func (c *Config) Recipes() {
	recipes := c.App.Group("/api/v1/recipes")
	recipes.Post("/suggestions", c.RecipeHandler.GetRecipeSuggestions)
}
