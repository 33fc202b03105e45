package adminController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"

	"github.com/gofiber/fiber/v2"
)

// GetDashboard returns headline counts for the admin dashboard
func GetDashboard(c *fiber.Ctx) error {
	db := database.Database.Db

	var totalUsers, totalCourses, totalEnrollments, totalPayments int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.Course{}).Where("is_deleted = ?", false).Count(&totalCourses)
	db.Model(&models.Enrollment{}).Where("is_deleted = ?", false).Count(&totalEnrollments)
	db.Model(&models.Payment{}).Where("is_deleted = ?", false).Count(&totalPayments)

	var totalRevenue int64
	db.Model(&models.Payment{}).Where("is_deleted = ? AND status = ?", false, "Paid").
		Select("COALESCE(SUM(amount), 0)").Scan(&totalRevenue)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard fetched successfully!", fiber.Map{
		"total_users":       totalUsers,
		"total_courses":     totalCourses,
		"total_enrollments": totalEnrollments,
		"total_payments":    totalPayments,
		"total_revenue":     totalRevenue,
	})
}
