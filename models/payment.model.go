package models

import "gorm.io/gorm"

type Payment struct {
	gorm.Model
	UserID        uint   `json:"user_id" gorm:"index;not null"`
	CourseID      uint   `json:"course_id" gorm:"index;not null"`
	Amount        int    `json:"amount"`
	MethodPayment string `json:"method_payment"`
	Status        string `json:"status" gorm:"default:'Paid'"`
	PaymentCode   string `json:"payment_code" gorm:"unique"`
	IsDeleted     bool   `json:"-" gorm:"default:false"`
}
