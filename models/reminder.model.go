package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ReminderKindEnrollment = "ENROLLMENT"
	ReminderKindTracking   = "TRACKING"
)

// Reminder is a durable one-shot inactivity check. Rows survive process
// restarts and are fired by the periodic sweep once DueAt passes. A user has
// at most one pending TRACKING reminder (re-arming replaces it); ENROLLMENT
// reminders are armed independently per enrollment.
type Reminder struct {
	gorm.Model
	UserID    uint      `json:"user_id" gorm:"index;not null"`
	Kind      string    `json:"kind" gorm:"not null"`
	DueAt     time.Time `json:"due_at" gorm:"index;not null"`
	Fired     bool      `json:"fired" gorm:"default:false"`
	IsDeleted bool      `json:"-" gorm:"default:false"`
}
