package utils

import (
	"elearn/models"

	"gorm.io/gorm"
)

// CourseLessons returns every lesson transitively belonging to a course,
// via its chapters.
func CourseLessons(db *gorm.DB, courseID uint) ([]models.Lesson, error) {
	var lessons []models.Lesson
	err := db.Where("chapter_id IN (?) AND is_deleted = false",
		db.Model(&models.Chapter{}).Select("id").Where("course_id = ? AND is_deleted = false", courseID)).
		Find(&lessons).Error
	return lessons, err
}

// CreateEnrollmentWithTracking creates the enrollment row and fans out one
// incomplete tracking row per lesson of the course, inside one transaction
// so the pair is created consistently together. The 24-hour enrollment
// reminder is armed after the transaction commits.
func CreateEnrollmentWithTracking(db *gorm.DB, userID, courseID uint) (models.Enrollment, error) {
	lessons, err := CourseLessons(db, courseID)
	if err != nil {
		return models.Enrollment{}, err
	}

	enrollment := models.Enrollment{
		UserID:   userID,
		CourseID: courseID,
	}

	tx := db.Begin()
	if err := tx.Create(&enrollment).Error; err != nil {
		tx.Rollback()
		return models.Enrollment{}, err
	}

	for _, lesson := range lessons {
		tracking := models.Tracking{
			UserID:   userID,
			CourseID: courseID,
			LessonID: lesson.ID,
			Status:   false,
		}
		if err := tx.Create(&tracking).Error; err != nil {
			tx.Rollback()
			return models.Enrollment{}, err
		}
	}

	if err := tx.Commit().Error; err != nil {
		return models.Enrollment{}, err
	}

	scheduler := NewReminderScheduler(db, nil)
	if err := scheduler.ArmEnrollmentReminder(userID); err != nil {
		return enrollment, err
	}

	return enrollment, nil
}
