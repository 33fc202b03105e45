package controllers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"elearn/config"
	"elearn/database"
	"elearn/middleware"
	"elearn/models"
	courseRoutes "elearn/routers/courseRoutes"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	config.AppConfig = &config.Config{
		Port:                 "3000",
		JWTKey:               "test-secret",
		SaltRound:            10,
		ReminderSweepMinutes: 60,
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	courseRoutes.SetupCourseRoutes(app)
	return app, db
}

func createUser(t *testing.T, db *gorm.DB, email, role string) (models.User, string) {
	user := models.User{Email: email, Password: "hashed", Role: role, IsVerified: true}
	require.NoError(t, db.Create(&user).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
	require.NoError(t, err)
	return user, token
}

// seedCourse creates a category, a course and one chapter with the given
// lessons. Price 0 keeps the course free.
func seedCourse(t *testing.T, db *gorm.DB, price int, lessonCount int) (models.Course, models.Chapter, []models.Lesson) {
	category := models.Category{CategoryName: "Programming"}
	require.NoError(t, db.Create(&category).Error)

	course := models.Course{
		CourseName: "Learning Go",
		Price:      price,
		IsPremium:  price > 0,
		CategoryID: category.ID,
	}
	require.NoError(t, db.Create(&course).Error)

	chapter := models.Chapter{CourseID: course.ID, Name: "Basics", OrderIndex: 1}
	require.NoError(t, db.Create(&chapter).Error)

	lessons := make([]models.Lesson, lessonCount)
	for i := range lessons {
		lessons[i] = models.Lesson{
			ChapterID:  chapter.ID,
			LessonName: fmt.Sprintf("Lesson %d", i+1),
			VideoURL:   fmt.Sprintf("https://videos.example.com/%d", i+1),
		}
		require.NoError(t, db.Create(&lessons[i]).Error)
	}
	return course, chapter, lessons
}

func doRequest(t *testing.T, app *fiber.App, method, url, token string, body interface{}) (*http.Response, map[string]interface{}) {
	var reader *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(jsonData)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, url, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

func TestEnrollInFreeCourse(t *testing.T) {
	app, db := setupApp(t)
	user, token := createUser(t, db, "student@example.com", "USER")
	course, _, _ := seedCourse(t, db, 0, 3)

	resp, result := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, "Enrolled in course successfully!", result["message"])

	var enrollment models.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, "0.0", enrollment.Progres)

	// One incomplete tracking row per lesson
	var trackings []models.Tracking
	db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).Find(&trackings)
	require.Len(t, trackings, 3)
	for _, tracking := range trackings {
		assert.False(t, tracking.Status)
	}

	// Enrolling arms the 24-hour reminder
	scheduler := utils.NewReminderScheduler(db, nil)
	count, err := scheduler.PendingCount(user.ID, models.ReminderKindEnrollment)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestEnrollTwiceIsRejected(t *testing.T) {
	app, db := setupApp(t)
	user, token := createUser(t, db, "student@example.com", "USER")
	course, _, _ := seedCourse(t, db, 0, 3)

	resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, result := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "User already enrolled in this course!", result["message"])

	// No duplicate rows
	var count int64
	db.Model(&models.Enrollment{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&count)
	assert.Equal(t, int64(1), count)
}

func TestEnrollPremiumCourseRequiresPayment(t *testing.T) {
	app, db := setupApp(t)
	user, token := createUser(t, db, "student@example.com", "USER")
	course, _, _ := seedCourse(t, db, 150000, 3)

	resp, result := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "This course is premium. You must pay before enrolling.", result["message"])

	// Nothing persisted
	var enrollments, trackings int64
	db.Model(&models.Enrollment{}).Where("user_id = ?", user.ID).Count(&enrollments)
	db.Model(&models.Tracking{}).Where("user_id = ?", user.ID).Count(&trackings)
	assert.Equal(t, int64(0), enrollments)
	assert.Equal(t, int64(0), trackings)
}

func TestEnrollInMissingCourse(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "student@example.com", "USER")

	resp, result := doRequest(t, app, "POST", "/course/999/enroll", token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Course not found!", result["message"])
}

func TestEnrollRequiresAuth(t *testing.T) {
	app, db := setupApp(t)
	course, _, _ := seedCourse(t, db, 0, 1)

	resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), "", nil)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestGetCourseTrackingsRequiresEnrollment(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "student@example.com", "USER")
	course, _, _ := seedCourse(t, db, 0, 2)

	resp, result := doRequest(t, app, "GET", fmt.Sprintf("/course/%d/tracking", course.ID), token, nil)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Please enroll in this course first!", result["message"])
}
