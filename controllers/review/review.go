package reviewController

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"

	"github.com/gofiber/fiber/v2"
)

// CreateReview records one review per enrollment and recomputes the
// course's average rating as the unrounded arithmetic mean over all reviews
// of all enrollments for the course.
func CreateReview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID := c.Locals("courseID").(int)

	reqData := new(struct {
		UserRating  int    `json:"user_rating"`
		UserComment string `json:"user_comment"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.UserRating < 1 || reqData.UserRating > 5 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user rating provided. It must be an integer between 1 and 5.", nil)
	}

	db := database.Database.Db

	// Reviews require a prior enrollment
	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = ?", userID, courseID, false).First(&enrollment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Please enroll in this course to review it", nil)
	}

	var existingReview models.Review
	if err := db.Where("enrollment_id = ? AND is_deleted = ?", enrollment.ID, false).First(&existingReview).Error; err == nil {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "You have already submitted a review for this course", nil)
	}

	review := models.Review{
		EnrollmentID: enrollment.ID,
		UserRating:   reqData.UserRating,
		UserComment:  reqData.UserComment,
	}
	if err := db.Create(&review).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit review!", nil)
	}

	// Recompute the course average over every review of the course
	var reviews []models.Review
	if err := db.Where("enrollment_id IN (?) AND is_deleted = ?",
		db.Model(&models.Enrollment{}).Select("id").Where("course_id = ? AND is_deleted = false", courseID),
		false).Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to recompute course rating!", nil)
	}

	total := 0
	for _, r := range reviews {
		total += r.UserRating
	}
	averageRating := float64(total) / float64(len(reviews))

	if err := db.Model(&models.Course{}).Where("id = ?", courseID).
		Update("average_rating", averageRating).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course rating!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Review created successfully!", fiber.Map{
		"review":         review,
		"average_rating": averageRating,
	})
}

// GetCourseReviews lists reviews for a course with the reviewer's name
func GetCourseReviews(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var reviews []models.Review
	if err := db.Where("enrollment_id IN (?) AND is_deleted = ?",
		db.Model(&models.Enrollment{}).Select("id").Where("course_id = ? AND is_deleted = false", courseID),
		false).Order("created_at desc").Find(&reviews).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch reviews!", nil)
	}

	type ReviewWithAuthor struct {
		models.Review
		FullName string `json:"full_name"`
	}

	result := make([]ReviewWithAuthor, 0, len(reviews))
	for _, review := range reviews {
		row := ReviewWithAuthor{Review: review}

		var enrollment models.Enrollment
		if err := db.Where("id = ?", review.EnrollmentID).First(&enrollment).Error; err == nil {
			var profile models.UserProfile
			if err := db.Where("user_id = ? AND is_deleted = ?", enrollment.UserID, false).First(&profile).Error; err == nil {
				row.FullName = profile.FullName
			}
		}
		result = append(result, row)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Reviews fetched successfully!", fiber.Map{
		"average_rating": course.AverageRating,
		"reviews":        result,
	})
}
