package models

import "gorm.io/gorm"

// Category groups courses in the catalog
type Category struct {
	gorm.Model
	CategoryName string `json:"category_name" gorm:"not null"`
	CategoryImg  string `json:"category_img"`
	IsDeleted    bool   `json:"-" gorm:"default:false"`
}

// Course represents a catalog entry. IsPremium is derived from Price and
// never accepted from clients; AverageRating is recomputed on review creation.
type Course struct {
	gorm.Model
	CourseName    string  `json:"course_name" gorm:"not null"`
	Description   string  `json:"description"`
	Mentor        string  `json:"mentor"`
	Level         string  `json:"level" gorm:"default:'Beginner'"` // Beginner, Intermediate, Advanced
	Duration      int     `json:"duration" gorm:"default:0"`       // duration in minutes
	Price         int     `json:"price" gorm:"default:0"`
	IsPremium     bool    `json:"is_premium" gorm:"default:false"`
	CourseImg     string  `json:"course_img"`
	AverageRating float64 `json:"average_rating" gorm:"default:0"`
	CategoryID    uint    `json:"category_id" gorm:"index;not null"`
	PromotionID   *uint   `json:"promotion_id" gorm:"index"`
	IsDeleted     bool    `json:"-" gorm:"default:false"`
}

// Chapter is an ordered grouping of lessons within a course
type Chapter struct {
	gorm.Model
	CourseID   uint   `json:"course_id" gorm:"index;not null"`
	Name       string `json:"name"`
	Duration   int    `json:"duration" gorm:"default:0"`
	OrderIndex int    `json:"order_index" gorm:"default:0"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}

// Lesson is the leaf content unit within a chapter
type Lesson struct {
	gorm.Model
	ChapterID  uint   `json:"chapter_id" gorm:"index;not null"`
	LessonName string `json:"lesson_name"`
	VideoURL   string `json:"video_url"`
	IsDeleted  bool   `json:"-" gorm:"default:false"`
}
