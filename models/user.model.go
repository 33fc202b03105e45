package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email        string     `json:"email" gorm:"unique;not null"`
	Password     string     `json:"-"`
	Role         string     `json:"role" gorm:"default:'USER'"` // USER, ADMIN
	GoogleID     string     `json:"-" gorm:"default:''"`        // set for OAuth-registered accounts
	OTP          string     `json:"-" gorm:"default:''"`
	OTPCreatedAt *time.Time `json:"-"`
	IsVerified   bool       `json:"is_verified" gorm:"default:false"`
	IsDeleted    bool       `json:"-" gorm:"default:false"`
}

// UserProfile holds the mutable profile data owned by a User
type UserProfile struct {
	gorm.Model
	UserID       uint   `json:"user_id" gorm:"index;not null"`
	FullName     string `json:"full_name"`
	PhoneNumber  string `json:"phone_number"`
	City         string `json:"city"`
	Country      string `json:"country"`
	ProfileImage string `json:"profile_image" gorm:"default:''"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}
