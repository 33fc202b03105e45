package adminRoutes

import (
	adminControllers "elearn/controllers/admin"
	"elearn/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	adminGroup.Get("/dashboard", middleware.JWTMiddleware, middleware.AdminOnly(), adminControllers.GetDashboard)
}
