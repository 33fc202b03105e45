package paymentRoutes

import (
	paymentControllers "elearn/controllers/payment"
	"elearn/middleware"
	validators "elearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupPaymentRoutes(app *fiber.App) {
	paymentGroup := app.Group("/payment")

	paymentGroup.Get("/quote/:id", middleware.JWTMiddleware, validators.CourseID(), paymentControllers.GetPaymentQuote)
	paymentGroup.Post("/course/:id", middleware.JWTMiddleware, validators.CourseID(), paymentControllers.CreatePayment)
	paymentGroup.Post("/gateway/:id", middleware.JWTMiddleware, validators.CourseID(), paymentControllers.CreatePaymentGateway)
	paymentGroup.Get("/history", middleware.JWTMiddleware, paymentControllers.GetPaymentHistory)
	paymentGroup.Get("/list", middleware.JWTMiddleware, middleware.AdminOnly(), paymentControllers.GetAllPayments)
}
