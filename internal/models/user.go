package models

import (
	"time"

	"gorm.io/gorm"
)

// User roles
const (
	RoleStudent = "student"
	RoleTutor   = "tutor"
	RoleAdmin   = "admin"
)

type User struct {
	gorm.Model
	Email        string  `gorm:"uniqueIndex;not null"`
	Password     string  `gorm:"not null" json:"-"`
	FullName     string  `gorm:"size:255;not null"`
	Role         string  `gorm:"size:20;not null;default:'student'"`
	WalletID     *uint   `gorm:"unique;default:null"`
	Wallet       *Wallet `gorm:"foreignKey:WalletID"`
	Status       string  `gorm:"default:'active'"`
	LastLoginAt  time.Time
	TokenVersion int `gorm:"default:1"`
}
