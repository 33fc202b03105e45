package models

import "gorm.io/gorm"

// Enrollment links a user to a course they have access to. At most one row
// exists per (UserID, CourseID) pair; Progres caches the percentage of the
// course's lessons the user has completed, one decimal place, derived from
// Tracking rows which remain the source of truth.
type Enrollment struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	CourseID  uint   `json:"course_id" gorm:"index;not null"`
	Progres   string `json:"progres" gorm:"default:'0.0'"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}

// Tracking is the per-lesson completion record for a user. Exactly one row
// per (UserID, LessonID) once the user is enrolled in the lesson's course.
type Tracking struct {
	gorm.Model
	UserID    uint `json:"user_id" gorm:"index;not null"`
	CourseID  uint `json:"course_id" gorm:"index;not null"`
	LessonID  uint `json:"lesson_id" gorm:"index;not null"`
	Status    bool `json:"status" gorm:"default:false"`
	IsDeleted bool `json:"-" gorm:"default:false"`
}
