package config

import (
	"Smart-Expiry-Tracker/internal/api/handlers"
	"Smart-Expiry-Tracker/internal/api/routes"
	"Smart-Expiry-Tracker/internal/middleware"
	"Smart-Expiry-Tracker/internal/utils"
	"Smart-Expiry-Tracker/internal/utils/storage"
	"Smart-Expiry-Tracker/pkg/jwt"
	"Smart-Expiry-Tracker/pkg/notification"
	"Smart-Expiry-Tracker/pkg/product"
	"Smart-Expiry-Tracker/pkg/reminder"
	"Smart-Expiry-Tracker/pkg/scan"
	"Smart-Expiry-Tracker/pkg/user"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
)

func NewApp(db *gorm.DB) (*fiber.App, error) {
	utils.InitValidator()
	app := fiber.New(fiber.Config{
		EnablePrintRoutes: true,
	})
	middlewares := middleware.NewMiddleware()
	validator := utils.Validate

	// setting up logging and limiter
	err := os.MkdirAll("./logs", os.ModePerm)
	if err != nil {
		log.Fatalf("error creating logs directory: %v", err)
	}
	file, err := os.OpenFile(
		"./logs/app.log",
		os.O_RDWR|os.O_CREATE|os.O_APPEND,
		0666,
	)
	if err != nil {
		log.Fatalf("error opening file: %v", err)
	}
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		TimeZone:   "UTC",
		Output:     file,
	}))

	app.Use(limiter.New(limiter.Config{
		Max:        10,
		Expiration: 1 * time.Second,
	}))

	// utils
	s3 := storage.NewAwsS3()

	// Repository
	userRepository := user.NewUserRepository(db)
	productRepository := product.NewProductRepository(db)

	// Service
	jwtService := jwt.NewJWTService()
	notifier := notification.NewMailNotifier(userRepository)
	recognizer := scan.NewHTTPRecognizer()
	scanService := scan.NewScanService(productRepository, recognizer, notifier, s3)
	productService := product.NewProductService(productRepository)
	reminderService := reminder.NewReminderService(productRepository, notifier)

	// Handler
	scanHandler := handlers.NewScanHandler(scanService, validator)
	productHandler := handlers.NewProductHandler(productService, validator)
	reminderHandler := handlers.NewReminderHandler(reminderService)

	// routes
	routesConfig := routes.Config{
		App:             app,
		ScanHandler:     scanHandler,
		ProductHandler:  productHandler,
		ReminderHandler: reminderHandler,
		Middleware:      middlewares,
		JWTService:      jwtService,
	}
	routesConfig.Setup()
	return app, nil
}
