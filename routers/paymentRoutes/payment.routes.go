package paymentRoutes

import (
	controllers "lms/controllers/payment"
	"lms/middleware"
	"lms/services"
	validators "lms/validators/payment"

	"github.com/gofiber/fiber/v2"
)

// SetupPaymentRoutes sets up checkout and payment history routes
func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payment")

	paymentGroup.Post("/checkout", middleware.JWTMiddleware, middleware.RequireRole(services.RoleStudent), validators.Checkout(), controllers.Checkout)
	paymentGroup.Get("/history", middleware.JWTMiddleware, middleware.RequireRole(services.RoleStudent), controllers.History)
}
