package controllers

import (
	"elearn/database"
	"elearn/middleware"
	"elearn/models"

	"github.com/gofiber/fiber/v2"
)

func CreateChapter(c *fiber.Ctx) error {
	reqData := new(struct {
		CourseID   uint   `json:"course_id"`
		Name       string `json:"name"`
		Duration   int    `json:"duration"`
		OrderIndex int    `json:"order_index"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Name == "" || reqData.CourseID == 0 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Please provide name and course_id!", nil)
	}

	db := database.Database.Db

	var course models.Course
	if err := db.Where("id = ? AND is_deleted = ?", reqData.CourseID, false).First(&course).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Course not found!", nil)
	}

	// Append at the end when no explicit position is given
	orderIndex := reqData.OrderIndex
	if orderIndex == 0 {
		var maxOrder int
		db.Model(&models.Chapter{}).
			Where("course_id = ? AND is_deleted = ?", reqData.CourseID, false).
			Select("COALESCE(MAX(order_index), 0)").Scan(&maxOrder)
		orderIndex = maxOrder + 1
	}

	chapter := models.Chapter{
		CourseID:   reqData.CourseID,
		Name:       reqData.Name,
		Duration:   reqData.Duration,
		OrderIndex: orderIndex,
	}

	if err := db.Create(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Chapter created successfully!", chapter)
}

func GetChapters(c *fiber.Ctx) error {
	courseIDStr := c.Query("course_id")

	db := database.Database.Db.Where("is_deleted = ?", false)
	if courseIDStr != "" {
		db = db.Where("course_id = ?", courseIDStr)
	}

	var chapters []models.Chapter
	if err := db.Order("course_id asc, order_index asc").Find(&chapters).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch chapters!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapters fetched successfully!", chapters)
}

func GetChapterByID(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(int)

	var chapter models.Chapter
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	var lessons []models.Lesson
	database.Database.Db.Where("chapter_id = ? AND is_deleted = ?", chapterID, false).Order("created_at asc").Find(&lessons)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter fetched successfully!", fiber.Map{
		"chapter": chapter,
		"lessons": lessons,
	})
}

func UpdateChapter(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(int)

	var chapter models.Chapter
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	reqData := new(struct {
		Name       string `json:"name"`
		Duration   *int   `json:"duration"`
		OrderIndex *int   `json:"order_index"`
	})
	if err := c.BodyParser(reqData); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.Name != "" {
		chapter.Name = reqData.Name
	}
	if reqData.Duration != nil {
		chapter.Duration = *reqData.Duration
	}
	if reqData.OrderIndex != nil {
		chapter.OrderIndex = *reqData.OrderIndex
	}

	if err := database.Database.Db.Save(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter updated successfully!", chapter)
}

func DeleteChapter(c *fiber.Ctx) error {
	chapterID := c.Locals("chapterID").(int)

	var chapter models.Chapter
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", chapterID, false).First(&chapter).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Chapter not found!", nil)
	}

	if err := database.Database.Db.Model(&chapter).Update("is_deleted", true).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete chapter!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Chapter deleted successfully!", nil)
}
