package repositories

import (
	"errors"

	"mentormatch/internal/models"

	"gorm.io/gorm"
)

var (
	ErrWalletNotFound   = errors.New("wallet not found")
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrTutorNotFound    = errors.New("tutor profile not found")
	ErrUserNotFound     = errors.New("user not found")
)

// WalletRepository defines the ledger store: one balance row per user plus
// its append-only transaction history. Callers that mutate a balance must
// append the matching transaction inside the same atomic unit; WithTx exists
// so both writes share one database transaction.
type WalletRepository interface {
	Create(wallet *models.Wallet) error
	GetByUserID(userID uint) (*models.Wallet, error)
	UpdateBalance(walletID uint, newBalance float64) error
	CreateTransaction(txn *models.Transaction) error
	GetTransactions(walletID uint) ([]models.Transaction, error)

	// WithTx returns a repository bound to an open database transaction.
	WithTx(tx *gorm.DB) WalletRepository
	// ExecuteInTransaction runs fn against a transaction-scoped repository,
	// committing on nil and rolling back on error.
	ExecuteInTransaction(fn func(WalletRepository) error) error
}
