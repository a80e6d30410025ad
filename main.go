package main

import (
	"log"
	"time"

	"lms/config"
	paymentController "lms/controllers/payment"
	"lms/database"
	adminRoutes "lms/routers/adminRoutes"
	authRoutes "lms/routers/authRoutes"
	courseRoutes "lms/routers/courseRoutes"
	paymentRoutes "lms/routers/paymentRoutes"
	"lms/services"
	"lms/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Wire the configured payment gateway
	paymentController.UseGateway(buildGateway())

	authRoutes.SetupAuthRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	paymentRoutes.SetupPaymentRoutes(app)
	adminRoutes.SetupAdminRoutes(app)

	// Nightly enrollment/revenue report
	utils.InitializeReportScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}

// buildGateway picks the payment gateway implementation from configuration
func buildGateway() services.Gateway {
	cfg := config.AppConfig
	if cfg.GatewayMode == "HTTP" {
		log.Printf("Using HTTP payment gateway: %s", cfg.GatewayURL)
		return services.NewHTTPGateway(cfg.GatewayURL, cfg.GatewayApiKey)
	}
	log.Printf("Using mock payment gateway (decline prefix %q, delay %dms)", cfg.GatewayDeclinePrefix, cfg.GatewayDelayMs)
	return services.NewMockGateway(cfg.GatewayDeclinePrefix, time.Duration(cfg.GatewayDelayMs)*time.Millisecond)
}
