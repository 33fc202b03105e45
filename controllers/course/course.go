package controllers

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"

	"github.com/gofiber/fiber/v2"
)

// CreateCourse creates a catalog entry. IsPremium is always derived from
// price; derived fields supplied by the client are rejected.
func CreateCourse(c *fiber.Ctx) error {
	reqData := new(struct {
		CourseName    string   `json:"course_name"`
		Description   string   `json:"description"`
		Mentor        string   `json:"mentor"`
		Level         string   `json:"level"`
		Duration      int      `json:"duration"`
		Price         int      `json:"price"`
		CourseImg     string   `json:"course_img"`
		CategoryID    uint     `json:"category_id"`
		PromotionID   *uint    `json:"promotion_id"`
		IsPremium     *bool    `json:"is_premium"`
		AverageRating *float64 `json:"average_rating"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.IsPremium != nil || reqData.AverageRating != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "isPremium or averageRating cannot be provided during course creation", nil)
	}
	if reqData.CourseName == "" || reqData.CategoryID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Course name and category are required!", nil)
	}

	db := database.Database.Db

	var category models.Category
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CategoryID, false).First(&category).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}

	if reqData.PromotionID != nil {
		var promotion models.Promotion
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.PromotionID, false).First(&promotion).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Promotion not found!", nil)
		}
	}

	course := models.Course{
		CourseName:  reqData.CourseName,
		Description: reqData.Description,
		Mentor:      reqData.Mentor,
		Level:       reqData.Level,
		Duration:    reqData.Duration,
		Price:       reqData.Price,
		IsPremium:   reqData.Price > 0,
		CourseImg:   reqData.CourseImg,
		CategoryID:  reqData.CategoryID,
		PromotionID: reqData.PromotionID,
	}
	if course.Level == "" {
		course.Level = "Beginner"
	}

	if err := db.Create(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Course created successfully!", course)
}

func UpdateCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	reqData := new(struct {
		CourseName    string   `json:"course_name"`
		Description   string   `json:"description"`
		Mentor        string   `json:"mentor"`
		Level         string   `json:"level"`
		Duration      *int     `json:"duration"`
		Price         *int     `json:"price"`
		CourseImg     string   `json:"course_img"`
		CategoryID    *uint    `json:"category_id"`
		PromotionID   *uint    `json:"promotion_id"`
		IsPremium     *bool    `json:"is_premium"`
		AverageRating *float64 `json:"average_rating"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.IsPremium != nil || reqData.AverageRating != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "isPremium or averageRating cannot be provided during course update", nil)
	}

	if reqData.CourseName != "" {
		course.CourseName = reqData.CourseName
	}
	if reqData.Description != "" {
		course.Description = reqData.Description
	}
	if reqData.Mentor != "" {
		course.Mentor = reqData.Mentor
	}
	if reqData.Level != "" {
		course.Level = reqData.Level
	}
	if reqData.Duration != nil {
		course.Duration = *reqData.Duration
	}
	if reqData.Price != nil {
		course.Price = *reqData.Price
		course.IsPremium = *reqData.Price > 0
	}
	if reqData.CourseImg != "" {
		course.CourseImg = reqData.CourseImg
	}
	if reqData.CategoryID != nil {
		var category models.Category
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.CategoryID, false).First(&category).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
		}
		course.CategoryID = *reqData.CategoryID
	}
	if reqData.PromotionID != nil {
		var promotion models.Promotion
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.PromotionID, false).First(&promotion).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Promotion not found!", nil)
		}
		course.PromotionID = reqData.PromotionID
	}

	if err := db.Save(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course updated successfully!", course)
}

func DeleteCourse(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	var course models.Course
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	if err := database.Database.Db.Model(&course).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete course!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course deleted successfully!", nil)
}

// GetAllCourses lists the catalog with optional search and filters
func GetAllCourses(c *fiber.Ctx) error {
	search := c.Query("search")
	level := c.Query("level")
	premium := c.Query("premium") // "true" / "false"
	categoryIDStr := c.Query("category_id")

	page := c.QueryInt("page", 1)
	limit := c.QueryInt("limit", 10)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.Course{}).Where("is_deleted = ?", false)

	if search != "" {
		db = db.Where("course_name ILIKE ? OR mentor ILIKE ?", "%"+search+"%", "%"+search+"%")
	}
	if level != "" {
		db = db.Where("level = ?", level)
	}
	if premium == "true" {
		db = db.Where("is_premium = ?", true)
	} else if premium == "false" {
		db = db.Where("is_premium = ?", false)
	}
	if categoryIDStr != "" {
		db = db.Where("category_id = ?", categoryIDStr)
	}

	var total int64
	db.Count(&total)

	var courses []models.Course
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&courses).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch courses!", nil)
	}

	response := map[string]interface{}{
		"courses": courses,
		"pagination": map[string]interface{}{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", response)
}

// GetCourseDetails returns a course with its chapters and lessons
func GetCourseDetails(c *fiber.Ctx) error {
	courseID := c.Locals("courseID").(int)

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", courseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	var chapters []models.Chapter
	db.Where("course_id = ? AND is_deleted = ?", courseID, false).Order("order_index asc").Find(&chapters)

	type ChapterWithLessons struct {
		models.Chapter
		Lessons []models.Lesson `json:"lessons"`
	}

	result := make([]ChapterWithLessons, len(chapters))
	for i, chapter := range chapters {
		result[i] = ChapterWithLessons{Chapter: chapter}
		db.Where("chapter_id = ? AND is_deleted = ?", chapter.ID, false).Order("created_at asc").Find(&result[i].Lessons)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course details fetched successfully!", fiber.Map{
		"course":   course,
		"chapters": result,
	})
}

// GetMyCourses lists the authenticated user's enrolled courses with progress
func GetMyCourses(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db

	var user models.User
	if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	var enrollments []models.Enrollment
	if err := db.Where("user_id = ? AND is_deleted = ?", userID, false).Order("created_at desc").Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	type EnrolledCourse struct {
		Enrollment models.Enrollment `json:"enrollment"`
		Course     models.Course     `json:"course"`
	}

	result := make([]EnrolledCourse, 0, len(enrollments))
	for _, enrollment := range enrollments {
		var course models.Course
		if err := db.Where("id = ? AND is_deleted = ?", enrollment.CourseID, false).First(&course).Error; err != nil {
			continue
		}
		result = append(result, EnrolledCourse{Enrollment: enrollment, Course: course})
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "My courses fetched successfully!", result)
}
