package models

import "gorm.io/gorm"

// Notification is a per-user message created by the system (reminders,
// password-change confirmations) or by admins (broadcast).
type Notification struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	Title     string `json:"title"`
	Message   string `json:"message"`
	IsRead    bool   `json:"is_read" gorm:"default:false"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
}
