package reviewRoutes

import (
	reviewControllers "elearn/controllers/review"
	"elearn/middleware"
	validators "elearn/validators/course"

	"github.com/gofiber/fiber/v2"
)

func SetupReviewRoutes(app *fiber.App) {
	reviewGroup := app.Group("/review")

	reviewGroup.Post("/course/:id", middleware.JWTMiddleware, validators.CourseID(), reviewControllers.CreateReview)
	reviewGroup.Get("/course/:id", middleware.JWTMiddleware, validators.CourseID(), reviewControllers.GetCourseReviews)
}
