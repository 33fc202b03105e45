package userController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the authenticated user's profile
func GetProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var profile models.UserProfile
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", profile)
}

// UpdateProfile updates the authenticated user's profile fields
func UpdateProfile(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData := new(struct {
		FullName     string `json:"full_name"`
		PhoneNumber  string `json:"phone_number"`
		City         string `json:"city"`
		Country      string `json:"country"`
		ProfileImage string `json:"profile_image"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var profile models.UserProfile
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).First(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Profile not found!", nil)
	}

	if reqData.FullName != "" {
		if len(reqData.FullName) > 50 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid full name length. It must be at most 50 characters.", nil)
		}
		profile.FullName = reqData.FullName
	}
	if reqData.PhoneNumber != "" {
		profile.PhoneNumber = reqData.PhoneNumber
	}
	if reqData.City != "" {
		profile.City = reqData.City
	}
	if reqData.Country != "" {
		profile.Country = reqData.Country
	}
	if reqData.ProfileImage != "" {
		profile.ProfileImage = reqData.ProfileImage
	}

	if err := database.Database.Db.Save(&profile).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully!", profile)
}
