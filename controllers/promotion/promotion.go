package promotionController

import (
	"time"

	"elearn/database"
	"elearn/middleware"
	"elearn/models"

	"github.com/gofiber/fiber/v2"
)

func CreatePromotion(c *fiber.Ctx) error {
	reqData := new(struct {
		DiscountPercent int    `json:"discount_percent"`
		ValidFrom       string `json:"valid_from"`  // RFC3339
		ValidUntil      string `json:"valid_until"` // RFC3339
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.DiscountPercent < 1 || reqData.DiscountPercent > 100 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Discount percent must be between 1 and 100!", nil)
	}

	validFrom, err := time.Parse(time.RFC3339, reqData.ValidFrom)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid valid_from, expected RFC3339 timestamp!", nil)
	}
	validUntil, err := time.Parse(time.RFC3339, reqData.ValidUntil)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid valid_until, expected RFC3339 timestamp!", nil)
	}
	if !validUntil.After(validFrom) {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "valid_until must be after valid_from!", nil)
	}

	promotion := models.Promotion{
		DiscountPercent: reqData.DiscountPercent,
		ValidFrom:       validFrom,
		ValidUntil:      validUntil,
	}
	if err := database.Database.Db.Create(&promotion).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create promotion!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Promotion created successfully!", promotion)
}

func GetAllPromotions(c *fiber.Ctx) error {
	var promotions []models.Promotion
	if err := database.Database.Db.Where("is_deleted = ?", false).Order("created_at desc").Find(&promotions).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch promotions!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Promotions fetched successfully!", promotions)
}

func GetPromotionByID(c *fiber.Ctx) error {
	promotionID := c.Locals("promotionID").(int)

	var promotion models.Promotion
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", promotionID, false).First(&promotion).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Promotion not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Promotion fetched successfully!", promotion)
}

func UpdatePromotion(c *fiber.Ctx) error {
	promotionID := c.Locals("promotionID").(int)

	var promotion models.Promotion
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", promotionID, false).First(&promotion).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Promotion not found!", nil)
	}

	reqData := new(struct {
		DiscountPercent *int   `json:"discount_percent"`
		ValidFrom       string `json:"valid_from"`
		ValidUntil      string `json:"valid_until"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.DiscountPercent != nil {
		if *reqData.DiscountPercent < 1 || *reqData.DiscountPercent > 100 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Discount percent must be between 1 and 100!", nil)
		}
		promotion.DiscountPercent = *reqData.DiscountPercent
	}
	if reqData.ValidFrom != "" {
		validFrom, err := time.Parse(time.RFC3339, reqData.ValidFrom)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid valid_from, expected RFC3339 timestamp!", nil)
		}
		promotion.ValidFrom = validFrom
	}
	if reqData.ValidUntil != "" {
		validUntil, err := time.Parse(time.RFC3339, reqData.ValidUntil)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid valid_until, expected RFC3339 timestamp!", nil)
		}
		promotion.ValidUntil = validUntil
	}

	if err := database.Database.Db.Save(&promotion).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update promotion!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Promotion updated successfully!", promotion)
}

func DeletePromotion(c *fiber.Ctx) error {
	promotionID := c.Locals("promotionID").(int)

	var promotion models.Promotion
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", promotionID, false).First(&promotion).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Promotion not found!", nil)
	}

	if err := database.Database.Db.Model(&promotion).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete promotion!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Promotion deleted successfully!", nil)
}
