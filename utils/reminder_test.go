package utils

import (
	"fmt"
	"testing"
	"time"

	"elearn/database"
	"elearn/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	database.RunMigrations(db)
	return db
}

func TestArmEnrollmentRemindersAreIndependent(t *testing.T) {
	db := setupTestDB(t)
	scheduler := NewReminderScheduler(db, nil)

	require.NoError(t, scheduler.ArmEnrollmentReminder(1))
	require.NoError(t, scheduler.ArmEnrollmentReminder(1))

	count, err := scheduler.PendingCount(1, models.ReminderKindEnrollment)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestArmTrackingReminderLastArmWins(t *testing.T) {
	db := setupTestDB(t)
	scheduler := NewReminderScheduler(db, nil)

	require.NoError(t, scheduler.ArmTrackingReminder(1))
	require.NoError(t, scheduler.ArmTrackingReminder(1))
	require.NoError(t, scheduler.ArmTrackingReminder(1))

	count, err := scheduler.PendingCount(1, models.ReminderKindTracking)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	// Other users are untouched
	require.NoError(t, scheduler.ArmTrackingReminder(2))
	count, err = scheduler.PendingCount(1, models.ReminderKindTracking)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSweepFiresEnrollmentReminderWhenStillInactive(t *testing.T) {
	db := setupTestDB(t)

	armedAt := time.Now()
	scheduler := NewReminderScheduler(db, func() time.Time { return armedAt })
	require.NoError(t, scheduler.ArmEnrollmentReminder(7))

	// Not due yet
	scheduler.Sweep()
	var notifications []models.Notification
	db.Where("user_id = ?", 7).Find(&notifications)
	assert.Len(t, notifications, 0)

	// Past the 24h mark with no completed lessons
	scheduler = NewReminderScheduler(db, func() time.Time { return armedAt.Add(ReminderDelay + time.Minute) })
	scheduler.Sweep()

	db.Where("user_id = ?", 7).Find(&notifications)
	require.Len(t, notifications, 1)
	assert.Equal(t, "You have incomplete lessons. Please continue your learning.", notifications[0].Message)

	// Fired reminders never fire twice
	scheduler.Sweep()
	db.Where("user_id = ?", 7).Find(&notifications)
	assert.Len(t, notifications, 1)

	count, err := scheduler.PendingCount(7, models.ReminderKindEnrollment)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestSweepSkipsEnrollmentReminderAfterCompletion(t *testing.T) {
	db := setupTestDB(t)

	armedAt := time.Now()
	scheduler := NewReminderScheduler(db, func() time.Time { return armedAt })
	require.NoError(t, scheduler.ArmEnrollmentReminder(7))

	// The user completed a lesson before the reminder came due
	require.NoError(t, db.Create(&models.Tracking{UserID: 7, CourseID: 1, LessonID: 1, Status: true}).Error)

	scheduler = NewReminderScheduler(db, func() time.Time { return armedAt.Add(ReminderDelay + time.Minute) })
	scheduler.Sweep()

	var notifications []models.Notification
	db.Where("user_id = ?", 7).Find(&notifications)
	assert.Len(t, notifications, 0)

	// The row is still consumed
	count, err := scheduler.PendingCount(7, models.ReminderKindEnrollment)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestSweepTrackingReminder(t *testing.T) {
	db := setupTestDB(t)

	tracking := models.Tracking{UserID: 9, CourseID: 1, LessonID: 1, Status: true}
	require.NoError(t, db.Create(&tracking).Error)

	armedAt := tracking.UpdatedAt
	scheduler := NewReminderScheduler(db, func() time.Time { return armedAt })
	require.NoError(t, scheduler.ArmTrackingReminder(9))

	// At fire time the user updated progress recently, so nothing is sent
	db.Model(&models.Tracking{}).Where("id = ?", tracking.ID).
		UpdateColumn("updated_at", armedAt.Add(23*time.Hour))
	scheduler = NewReminderScheduler(db, func() time.Time { return armedAt.Add(ReminderDelay + time.Minute) })
	scheduler.Sweep()

	var notifications []models.Notification
	db.Where("user_id = ?", 9).Find(&notifications)
	assert.Len(t, notifications, 0)

	// A reminder armed at the last update fires once the full day passes idle
	scheduler = NewReminderScheduler(db, func() time.Time { return armedAt.Add(23 * time.Hour) })
	require.NoError(t, scheduler.ArmTrackingReminder(9))

	scheduler = NewReminderScheduler(db, func() time.Time { return armedAt.Add(23*time.Hour + ReminderDelay) })
	scheduler.Sweep()

	db.Where("user_id = ?", 9).Find(&notifications)
	require.Len(t, notifications, 1)
	assert.Equal(t, "You haven't updated your progress in the last 24 hours. Please continue learning.", notifications[0].Message)
}
