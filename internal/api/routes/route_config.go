package routes

import (
	"Smart-Expiry-Tracker/internal/api/handlers"
	"Smart-Expiry-Tracker/internal/middleware"
	"Smart-Expiry-Tracker/pkg/jwt"

	"github.com/gofiber/fiber/v2"
)

type Config struct {
	App             *fiber.App
	ScanHandler     handlers.ScanHandler
	ProductHandler  handlers.ProductHandler
	ReminderHandler handlers.ReminderHandler
	Middleware      middleware.Middleware
	JWTService      jwt.JWTService
}

func (c *Config) Setup() {
	c.App.Use(c.Middleware.CORSMiddleware())
	c.Scan()
	c.Products()
	c.Reminders()
	c.GuestRoute()
}

func (c *Config) Scan() {
	scan := c.App.Group("/api/v1/scan", c.Middleware.AuthMiddleware(c.JWTService))

	scan.Post("/barcode", c.ScanHandler.ScanBarcode)
	scan.Post("/label", c.ScanHandler.ScanLabel)
}

func (c *Config) Products() {
	products := c.App.Group("/api/v1/products", c.Middleware.AuthMiddleware(c.JWTService))
	products.Get("/dashboard", c.ProductHandler.GetDashboardStats)
	products.Get("/export", c.ProductHandler.ExportProducts)

	// Basic CRUD operations
	products.Post("", c.ProductHandler.AddProduct)
	products.Get("", c.ProductHandler.GetProducts)
	products.Patch("/:barcode", c.ProductHandler.UpdateProduct)
	products.Delete("/:barcode", c.ProductHandler.DeleteProduct)
}

func (c *Config) Reminders() {
	reminders := c.App.Group("/api/v1/reminders", c.Middleware.AuthMiddleware(c.JWTService))

	reminders.Get("", c.ReminderHandler.GetReminders)
	reminders.Post("/sweep", c.ReminderHandler.RunDailySweep)
}

func (c *Config) GuestRoute() {
	c.App.Get("/api/ping", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "pong, its works"})
	})
}
