package adminRoutes

import (
	controllers "lms/controllers/admin"
	"lms/middleware"
	"lms/services"
	validators "lms/validators/admin"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminRoutes sets up admin dashboard and moderation routes
func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin", middleware.JWTMiddleware, middleware.RequireRole(services.RoleAdmin))

	adminGroup.Get("/dashboard/stats", controllers.DashboardStats)
	adminGroup.Get("/users", controllers.ListUsers)
	adminGroup.Post("/user/:user_id/status", validators.UserID(), controllers.SetUserStatus)
}
