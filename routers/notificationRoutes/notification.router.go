package notificationRoutes

import (
	notificationControllers "elearn/controllers/notification"
	"elearn/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App) {
	notificationGroup := app.Group("/notification")

	notificationGroup.Get("/list", middleware.JWTMiddleware, notificationControllers.GetNotifications)
	notificationGroup.Patch("/read", middleware.JWTMiddleware, notificationControllers.MarkNotificationsRead)
	notificationGroup.Post("/broadcast", middleware.JWTMiddleware, middleware.AdminOnly(), notificationControllers.BroadcastNotification)
}
