package models

import (
	"time"
)

// Transaction types
const (
	TransactionTypeDeposit    = "deposit"
	TransactionTypeWithdrawal = "withdrawal"
	TransactionTypePayment    = "payment"
	TransactionTypeEarning    = "earning"
)

// Transaction is a single ledger entry. Amount is signed: negative for
// debits (payment, withdrawal), positive for credits (deposit, earning).
// Rows are append-only; nothing in the application updates or deletes them.
type Transaction struct {
	ID          uint    `gorm:"primarykey"`
	WalletID    uint    `gorm:"index;not null"`
	Amount      float64 `gorm:"type:numeric(12,2);not null"`
	Type        string  `gorm:"size:20;not null"`
	Description string
	CreatedAt   time.Time
}
