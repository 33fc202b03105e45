package controllers_test

import (
	"fmt"
	"testing"

	"elearn/models"
	"elearn/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProgressAcrossCompletions(t *testing.T) {
	app, db := setupApp(t)
	user, token := createUser(t, db, "student@example.com", "USER")
	course, _, lessons := seedCourse(t, db, 0, 3)

	resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	progress := func() string {
		var enrollment models.Enrollment
		require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
		return enrollment.Progres
	}

	assert.Equal(t, "0.0", progress())

	resp, _ = doRequest(t, app, "PATCH", fmt.Sprintf("/lesson/%d/complete", lessons[0].ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "33.3", progress())

	// Completing the same lesson again does not move the percentage
	resp, _ = doRequest(t, app, "PATCH", fmt.Sprintf("/lesson/%d/complete", lessons[0].ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "33.3", progress())

	resp, _ = doRequest(t, app, "PATCH", fmt.Sprintf("/lesson/%d/complete", lessons[1].ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "66.7", progress())

	resp, _ = doRequest(t, app, "PATCH", fmt.Sprintf("/lesson/%d/complete", lessons[2].ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	assert.Equal(t, "100.0", progress())
}

func TestNewLessonDilutesProgress(t *testing.T) {
	app, db := setupApp(t)
	user, token := createUser(t, db, "student@example.com", "USER")
	_, adminToken := createUser(t, db, "admin@example.com", "ADMIN")
	course, chapter, lessons := seedCourse(t, db, 0, 3)

	resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, _ = doRequest(t, app, "PATCH", fmt.Sprintf("/lesson/%d/complete", lessons[0].ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var enrollment models.Enrollment
	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, "33.3", enrollment.Progres)

	// A fourth lesson appears: 1 of 4 complete now
	resp, _ = doRequest(t, app, "POST", "/lesson/", adminToken, map[string]interface{}{
		"lesson_name": "Lesson 4",
		"video_url":   "https://videos.example.com/4",
		"chapter_id":  chapter.ID,
	})
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	require.NoError(t, db.Where("user_id = ? AND course_id = ?", user.ID, course.ID).First(&enrollment).Error)
	assert.Equal(t, "25.0", enrollment.Progres)

	// The enrolled user got a fresh incomplete tracking row for it
	var trackings int64
	db.Model(&models.Tracking{}).Where("user_id = ? AND course_id = ?", user.ID, course.ID).Count(&trackings)
	assert.Equal(t, int64(4), trackings)
}

func TestCompletionRearmsInactivityReminder(t *testing.T) {
	app, db := setupApp(t)
	user, token := createUser(t, db, "student@example.com", "USER")
	course, _, lessons := seedCourse(t, db, 0, 2)

	resp, _ := doRequest(t, app, "POST", fmt.Sprintf("/course/%d/enroll", course.ID), token, nil)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)

	scheduler := utils.NewReminderScheduler(db, nil)

	resp, _ = doRequest(t, app, "PATCH", fmt.Sprintf("/lesson/%d/complete", lessons[0].ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	count, err := scheduler.PendingCount(user.ID, models.ReminderKindTracking)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Repeated completions keep a single pending reminder
	resp, _ = doRequest(t, app, "PATCH", fmt.Sprintf("/lesson/%d/complete", lessons[0].ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	count, err = scheduler.PendingCount(user.ID, models.ReminderKindTracking)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Finishing the course stops re-arming
	resp, _ = doRequest(t, app, "PATCH", fmt.Sprintf("/lesson/%d/complete", lessons[1].ID), token, nil)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	count, err = scheduler.PendingCount(user.ID, models.ReminderKindTracking)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestCompleteLessonWithoutEnrollment(t *testing.T) {
	app, db := setupApp(t)
	_, token := createUser(t, db, "student@example.com", "USER")
	_, _, lessons := seedCourse(t, db, 0, 2)

	resp, result := doRequest(t, app, "PATCH", fmt.Sprintf("/lesson/%d/complete", lessons[0].ID), token, nil)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "Tracking record not found!", result["message"])
}
