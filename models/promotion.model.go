package models

import (
	"time"

	"gorm.io/gorm"
)

// Promotion holds a percentage discount with a validity window. When a
// course references one, the discount is applied multiplicatively to the
// payment amount while the window is open.
type Promotion struct {
	gorm.Model
	DiscountPercent int       `json:"discount_percent" gorm:"not null"`
	ValidFrom       time.Time `json:"valid_from"`
	ValidUntil      time.Time `json:"valid_until"`
	IsDeleted       bool      `json:"-" gorm:"default:false"`
}

// IsActive reports whether the promotion window contains the given time
func (p *Promotion) IsActive(now time.Time) bool {
	return !now.Before(p.ValidFrom) && now.Before(p.ValidUntil)
}
