package models

import "gorm.io/gorm"

// Review is tied to an Enrollment, one per enrollment at most
// (enforced by lookup-before-create).
type Review struct {
	gorm.Model
	EnrollmentID uint   `json:"enrollment_id" gorm:"index;not null"`
	UserRating   int    `json:"user_rating" gorm:"not null"`
	UserComment  string `json:"user_comment"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}
