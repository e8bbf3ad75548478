package models

import (
	"time"
)

// TutorProfile holds the marketplace-facing tutor data. PricePerHour is
// nullable: a tutor cannot receive booking proposals until it is set.
type TutorProfile struct {
	UserID       uint     `gorm:"primarykey"`
	Bio          *string  `gorm:"type:text"`
	PricePerHour *float64 `gorm:"type:numeric(12,2)"`
	IsVerified   bool     `gorm:"default:false"`
	User         User     `gorm:"foreignKey:UserID"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
