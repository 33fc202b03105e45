package promotionRoutes

import (
	promotionControllers "elearn/controllers/promotion"
	"elearn/middleware"
	promotionValidators "elearn/validators/promotion"

	"github.com/gofiber/fiber/v2"
)

func SetupPromotionRoutes(app *fiber.App) {
	promotionGroup := app.Group("/promotion")

	promotionGroup.Get("/list", middleware.JWTMiddleware, promotionControllers.GetAllPromotions)
	promotionGroup.Get("/:id", middleware.JWTMiddleware, promotionValidators.PromotionID(), promotionControllers.GetPromotionByID)
	promotionGroup.Post("/", middleware.JWTMiddleware, middleware.AdminOnly(), promotionControllers.CreatePromotion)
	promotionGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly(), promotionValidators.PromotionID(), promotionControllers.UpdatePromotion)
	promotionGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly(), promotionValidators.PromotionID(), promotionControllers.DeletePromotion)
}
