package wallet

import (
	"context"

	"mentormatch/internal/models"
)

// Service defines the wallet service interface.
type Service interface {
	// Lookups
	GetWallet(ctx context.Context, userID uint) (*models.Wallet, error)
	GetBalance(ctx context.Context, userID uint) (float64, error)
	ValidateBalance(ctx context.Context, userID uint, amount float64) error
	GetTransactions(ctx context.Context, userID uint) ([]models.Transaction, error)

	// Wallet management
	CreateWallet(ctx context.Context, userID uint) (*models.Wallet, error)

	// Simulated funding flows
	Deposit(ctx context.Context, userID uint, amount float64, source string) (*DepositResult, error)
	Withdraw(ctx context.Context, userID uint, amount float64, destination string) (*WithdrawResult, error)
}
