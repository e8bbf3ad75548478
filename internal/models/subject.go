package models

import "time"

type Subject struct {
	ID        uint   `gorm:"primarykey"`
	Name      string `gorm:"size:255;uniqueIndex;not null"`
	Category  string `gorm:"size:50"`
	CreatedAt time.Time
	UpdatedAt time.Time
}
