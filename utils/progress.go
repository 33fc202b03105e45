package utils

import (
	"fmt"
	"math"

	"elearn/models"

	"gorm.io/gorm"
)

// CourseProgress computes the completion percentage for a course given the
// number of completed lessons and the total lesson count, formatted with one
// decimal place (3 of 7 -> "42.9"). Total must be > 0; callers ensure at
// least one tracking row exists before invoking.
func CourseProgress(complete, total int) string {
	pct := float64(complete) / float64(total) * 100
	return fmt.Sprintf("%.1f", math.Round(pct*10)/10)
}

// ProgressFromTrackings computes the progress percentage from a user's
// tracking rows for one course. Pure function of the tracking set.
func ProgressFromTrackings(trackings []models.Tracking) string {
	complete := 0
	for _, t := range trackings {
		if t.Status {
			complete++
		}
	}
	return CourseProgress(complete, len(trackings))
}

// RecomputeEnrollmentProgress recomputes the cached progress on the
// enrollment row for (userID, courseID) from its tracking rows and persists
// it. Tracking rows are the source of truth; the stored percentage is only a
// derived cache. A user with no tracking rows is left untouched.
func RecomputeEnrollmentProgress(db *gorm.DB, userID, courseID uint) error {
	var trackings []models.Tracking
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).
		Find(&trackings).Error; err != nil {
		return err
	}

	if len(trackings) == 0 {
		return nil
	}

	var enrollment models.Enrollment
	if err := db.Where("user_id = ? AND course_id = ? AND is_deleted = false", userID, courseID).
		First(&enrollment).Error; err != nil {
		return err
	}

	enrollment.Progres = ProgressFromTrackings(trackings)
	return db.Save(&enrollment).Error
}
