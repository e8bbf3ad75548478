package models

import (
	"time"

	"gorm.io/gorm"
)

type Wallet struct {
	ID        uint    `gorm:"primarykey"`
	UserID    uint    `gorm:"uniqueIndex;not null"`
	Balance   float64 `gorm:"type:numeric(12,2);default:0"`
	Currency  string  `gorm:"size:3;default:'VND'"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (w *Wallet) BeforeCreate(tx *gorm.DB) error {
	// Wallets always open empty; funds arrive through the ledger.
	w.Balance = 0.0
	return nil
}
