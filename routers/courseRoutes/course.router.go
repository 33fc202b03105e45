package courseRoutes

import (
	controllers "elearn/controllers/course"
	"elearn/middleware"
	validators "elearn/validators/course"
	enrollmentValidators "elearn/validators/enrollment"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up catalog, enrollment and tracking routes
func SetupCourseRoutes(app *fiber.App) {
	categoryGroup := app.Group("/category")

	categoryGroup.Get("/list", middleware.JWTMiddleware, controllers.GetCategories)
	categoryGroup.Post("/", middleware.JWTMiddleware, middleware.AdminOnly(), controllers.CreateCategory)
	categoryGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly(), validators.CategoryID(), controllers.UpdateCategory)
	categoryGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly(), validators.CategoryID(), controllers.DeleteCategory)

	courseGroup := app.Group("/course")

	// Catalog
	courseGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllCourses)
	courseGroup.Get("/my", middleware.JWTMiddleware, controllers.GetMyCourses)
	courseGroup.Get("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Course management (admin)
	courseGroup.Post("/", middleware.JWTMiddleware, middleware.AdminOnly(), controllers.CreateCourse)
	courseGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly(), validators.CourseID(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly(), validators.CourseID(), controllers.DeleteCourse)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), controllers.EnrollInCourse)
	courseGroup.Get("/:id/tracking", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseTrackings)

	enrollmentGroup := app.Group("/enrollment")
	enrollmentGroup.Get("/list", middleware.JWTMiddleware, controllers.GetEnrollments)
	enrollmentGroup.Get("/:id", middleware.JWTMiddleware, enrollmentValidators.EnrollmentID(), controllers.GetEnrollmentDetail)

	chapterGroup := app.Group("/chapter")
	chapterGroup.Get("/list", middleware.JWTMiddleware, controllers.GetChapters)
	chapterGroup.Get("/:id", middleware.JWTMiddleware, validators.ChapterID(), controllers.GetChapterByID)
	chapterGroup.Post("/", middleware.JWTMiddleware, middleware.AdminOnly(), controllers.CreateChapter)
	chapterGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly(), validators.ChapterID(), controllers.UpdateChapter)
	chapterGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly(), validators.ChapterID(), controllers.DeleteChapter)

	lessonGroup := app.Group("/lesson")
	lessonGroup.Get("/list", middleware.JWTMiddleware, controllers.GetAllLessons)
	lessonGroup.Get("/:id", middleware.JWTMiddleware, validators.LessonID(), controllers.GetLessonByID)
	lessonGroup.Post("/", middleware.JWTMiddleware, middleware.AdminOnly(), controllers.CreateLesson)
	lessonGroup.Put("/:id", middleware.JWTMiddleware, middleware.AdminOnly(), validators.LessonID(), controllers.UpdateLesson)
	lessonGroup.Delete("/:id", middleware.JWTMiddleware, middleware.AdminOnly(), validators.LessonID(), controllers.DeleteLesson)

	// Lesson completion
	lessonGroup.Patch("/:id/complete", middleware.JWTMiddleware, validators.LessonID(), controllers.UpdateTracking)
}
