package controllers

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
)

// UpdateTracking marks a lesson complete for the authenticated user,
// recomputes the enrollment's cached progress, and re-arms the 24-hour
// inactivity reminder (last arm wins) while incomplete lessons remain.
func UpdateTracking(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	lessonID := c.Locals("lessonID").(int)

	var lesson models.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var tracking models.Tracking
	if err := db.Where("user_id = ? AND lesson_id = ? AND is_deleted = ?", userID, lessonID, false).First(&tracking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Tracking record not found!", nil)
	}

	if err := db.Model(&tracking).Update("status", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update tracking!", nil)
	}

	if err := utils.RecomputeEnrollmentProgress(db, userID, tracking.CourseID); err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
	}

	// Re-arm the inactivity reminder while the user still has incomplete lessons
	var incomplete int64
	if err := db.Model(&models.Tracking{}).
		Where("user_id = ? AND status = false AND is_deleted = ?", userID, false).
		Count(&incomplete).Error; err == nil && incomplete > 0 {
		scheduler := utils.NewReminderScheduler(db, nil)
		if err := scheduler.ArmTrackingReminder(userID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to schedule reminder!", nil)
		}
	}

	// Reload to return the fresh timestamps
	db.Where("id = ?", tracking.ID).First(&tracking)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Tracking updated successfully!", tracking)
}

// GetCourseTrackings lists the authenticated user's tracking rows for a course
func GetCourseTrackings(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course first!", nil)
	}

	var trackings []models.Tracking
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).Find(&trackings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch trackings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Trackings fetched successfully!", fiber.Map{
		"enrollment": enrollment,
		"trackings":  trackings,
	})
}
