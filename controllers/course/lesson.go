package controllers

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
)

// CreateLesson adds a lesson to a chapter. Every user already enrolled in
// the chapter's course gets a new incomplete tracking row, and their cached
// progress is recomputed so growing course content never leaves stale
// percentages behind.
func CreateLesson(c *fiber.Ctx) error {
	reqData := new(struct {
		LessonName string `json:"lesson_name"`
		VideoURL   string `json:"video_url"`
		ChapterID  uint   `json:"chapter_id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.LessonName == "" || reqData.VideoURL == "" || reqData.ChapterID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide lesson_name, video_url, and chapter_id!", nil)
	}

	db := database.Database.Db

	var chapter models.Chapter
	if err := db.Where("id = ? AND is_deleted = ?", reqData.ChapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	lesson := models.Lesson{
		ChapterID:  reqData.ChapterID,
		LessonName: reqData.LessonName,
		VideoURL:   reqData.VideoURL,
	}
	if err := db.Create(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create lesson!", nil)
	}

	// Fan out tracking rows for existing enrollments on the course
	var enrollments []models.Enrollment
	if err := db.Where("course_id = ? AND is_deleted = ?", chapter.CourseID, false).Find(&enrollments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch enrollments!", nil)
	}

	for _, enrollment := range enrollments {
		tracking := models.Tracking{
			UserID:   enrollment.UserID,
			CourseID: chapter.CourseID,
			LessonID: lesson.ID,
			Status:   false,
		}
		if err := db.Create(&tracking).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create tracking records!", nil)
		}
	}

	for _, enrollment := range enrollments {
		if err := utils.RecomputeEnrollmentProgress(db, enrollment.UserID, chapter.CourseID); err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update progress!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Lesson created successfully!", lesson)
}

// GetAllLessons lists lessons, optionally filtered by a search term across
// lesson, chapter, course and category names.
func GetAllLessons(c *fiber.Ctx) error {
	search := c.Query("search")

	db := database.Database.Db.Model(&models.Lesson{}).Where("lessons.is_deleted = ?", false)

	if search != "" {
		pattern := "%" + search + "%"
		db = db.Joins("JOIN chapters ON chapters.id = lessons.chapter_id").
			Joins("JOIN courses ON courses.id = chapters.course_id").
			Joins("JOIN categories ON categories.id = courses.category_id").
			Where("lessons.lesson_name ILIKE ? OR chapters.name ILIKE ? OR courses.course_name ILIKE ? OR categories.category_name ILIKE ?",
				pattern, pattern, pattern, pattern)
	}

	var lessons []models.Lesson
	if err := db.Find(&lessons).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch lessons!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lessons fetched successfully!", lessons)
}

func GetLessonByID(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	var lesson models.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	var chapter models.Chapter
	database.Database.Db.Where("id = ? AND is_deleted = ?", lesson.ChapterID, false).First(&chapter)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson fetched successfully!", fiber.Map{
		"lesson":  lesson,
		"chapter": chapter,
	})
}

func UpdateLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	db := database.Database.Db

	var lesson models.Lesson
	if err := db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	reqData := new(struct {
		LessonName string `json:"lesson_name"`
		VideoURL   string `json:"video_url"`
		ChapterID  *uint  `json:"chapter_id"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.LessonName != "" {
		lesson.LessonName = reqData.LessonName
	}
	if reqData.VideoURL != "" {
		lesson.VideoURL = reqData.VideoURL
	}
	if reqData.ChapterID != nil {
		var chapter models.Chapter
		if err := db.Where("id = ? AND is_deleted = ?", *reqData.ChapterID, false).First(&chapter).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
		}
		lesson.ChapterID = *reqData.ChapterID
	}

	if err := db.Save(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson updated successfully!", lesson)
}

func DeleteLesson(c *fiber.Ctx) error {
	lessonID := c.Locals("lessonID").(int)

	var lesson models.Lesson
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", lessonID, false).First(&lesson).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Lesson not found!", nil)
	}

	if err := database.Database.Db.Model(&lesson).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete lesson!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Lesson deleted successfully!", nil)
}
