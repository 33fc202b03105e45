package reviewController_test

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
	reviewRoutes "elearn/routers/reviewRoutes"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) (*fiber.App, *gorm.DB) {
	config.AppConfig = &config.Config{JWTKey: "test-secret", SaltRound: 10}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	reviewRoutes.SetupReviewRoutes(app)
	return app, db
}

func createEnrolledUser(t *testing.T, db *gorm.DB, email string, courseID uint) (models.User, string) {
	user := models.User{Email: email, Password: "hashed", IsVerified: true}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.Enrollment{UserID: user.ID, CourseID: courseID}).Error)

	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
	require.NoError(t, err)
	return user, token
}

func seedCourse(t *testing.T, db *gorm.DB) models.Course {
	category := models.Category{CategoryName: "Design"}
	require.NoError(t, db.Create(&category).Error)

	course := models.Course{CourseName: "Figma Fundamentals", CategoryID: category.ID}
	require.NoError(t, db.Create(&course).Error)
	return course
}

func postReview(t *testing.T, app *fiber.App, courseID uint, token string, rating int, comment string) (*http.Response, map[string]interface{}) {
	jsonData, err := json.Marshal(map[string]interface{}{
		"user_rating":  rating,
		"user_comment": comment,
	})
	require.NoError(t, err)

	req := httptest.NewRequest("POST", fmt.Sprintf("/review/course/%d", courseID), bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var result map[string]interface{}
	json.NewDecoder(resp.Body).Decode(&result)
	return resp, result
}

func courseRating(t *testing.T, db *gorm.DB, courseID uint) float64 {
	var course models.Course
	require.NoError(t, db.Where("id = ?", courseID).First(&course).Error)
	return course.AverageRating
}

func TestReviewRequiresEnrollment(t *testing.T) {
	app, db := setupApp(t)
	course := seedCourse(t, db)

	user := models.User{Email: "outsider@example.com", IsVerified: true}
	require.NoError(t, db.Create(&user).Error)
	token, err := middleware.GenerateJWT(user.ID, user.Email, user.Role)
	require.NoError(t, err)

	resp, result := postReview(t, app, course.ID, token, 5, "great")
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Please enroll in this course to review it", result["message"])
}

func TestReviewRatingBounds(t *testing.T) {
	app, db := setupApp(t)
	course := seedCourse(t, db)
	_, token := createEnrolledUser(t, db, "student@example.com", course.ID)

	for _, rating := range []int{0, 6, -1} {
		resp, _ := postReview(t, app, course.ID, token, rating, "")
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	}
}

func TestCreateReviewRecomputesAverage(t *testing.T) {
	app, db := setupApp(t)
	course := seedCourse(t, db)
	_, token1 := createEnrolledUser(t, db, "first@example.com", course.ID)
	_, token2 := createEnrolledUser(t, db, "second@example.com", course.ID)

	resp, _ := postReview(t, app, course.ID, token1, 5, "loved it")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, 5.0, courseRating(t, db, course.ID))

	resp, _ = postReview(t, app, course.ID, token2, 4, "solid")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	assert.Equal(t, 4.5, courseRating(t, db, course.ID))
}

func TestDuplicateReviewIsRejected(t *testing.T) {
	app, db := setupApp(t)
	course := seedCourse(t, db)
	_, token := createEnrolledUser(t, db, "student@example.com", course.ID)

	resp, _ := postReview(t, app, course.ID, token, 5, "first take")
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, result := postReview(t, app, course.ID, token, 1, "changed my mind")
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "You have already submitted a review for this course", result["message"])

	// The average still reflects only the accepted review
	assert.Equal(t, 5.0, courseRating(t, db, course.ID))

	var count int64
	db.Model(&models.Review{}).Count(&count)
	assert.Equal(t, int64(1), count)
}
