package authRoutes

import (
	authControllers "elearn/controllers/auth"
	"elearn/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/register", authControllers.Register)
	authGroup.Post("/login", authControllers.Login)
	authGroup.Post("/verify/otp", authControllers.VerifyOTP)
	authGroup.Post("/resend/otp", authControllers.ResendOTP)
	authGroup.Post("/forgot/password", authControllers.ForgotPassword)
	authGroup.Post("/reset/password", authControllers.ResetPassword)
	authGroup.Put("/change/password", middleware.JWTMiddleware, authControllers.ChangePassword)
	authGroup.Get("/me", middleware.JWTMiddleware, authControllers.Me)
}
