package notificationController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications lists the authenticated user's notifications
func GetNotifications(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var notifications []models.Notification
	if err := database.Database.Db.Where("user_id = ? AND is_deleted = ?", userID, false).
		Order("created_at desc").Find(&notifications).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch notifications!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications fetched successfully!", notifications)
}

// MarkNotificationsRead marks all of the user's notifications as read
func MarkNotificationsRead(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	if err := database.Database.Db.Model(&models.Notification{}).
		Where("user_id = ? AND is_deleted = ?", userID, false).
		Update("is_read", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to mark notifications as read!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notifications marked as read!", nil)
}

// BroadcastNotification creates one notification per user (admin only)
func BroadcastNotification(c *fiber.Ctx) error {
	reqData := new(struct {
		Title   string `json:"title"`
		Message string `json:"message"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Title == "" || reqData.Message == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Title and message are required fields", nil)
	}

	db := database.Database.Db

	var users []models.User
	if err := db.Where("is_deleted = ?", false).Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	created := make([]models.Notification, 0, len(users))
	for _, user := range users {
		notification := models.Notification{
			UserID:  user.ID,
			Title:   reqData.Title,
			Message: reqData.Message,
		}
		if err := db.Create(&notification).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create notifications!", nil)
		}
		created = append(created, notification)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Notifications created for all users!", created)
}
