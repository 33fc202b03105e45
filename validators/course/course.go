package courseValidator

import (
	"elearn/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// paramID validates a positive integer route parameter and stores it in Locals
func paramID(param, local, label string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		idStr := strings.TrimSpace(c.Params(param))
		if idStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, label+" is required!", nil)
		}

		id, err := strconv.Atoi(idStr)
		if err != nil || id <= 0 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid "+label+"!", nil)
		}

		c.Locals(local, id)
		return c.Next()
	}
}

func CourseID() fiber.Handler {
	return paramID("id", "courseID", "Course ID")
}

func ChapterID() fiber.Handler {
	return paramID("id", "chapterID", "Chapter ID")
}

func LessonID() fiber.Handler {
	return paramID("id", "lessonID", "Lesson ID")
}

func CategoryID() fiber.Handler {
	return paramID("id", "categoryID", "Category ID")
}
