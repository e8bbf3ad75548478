package wallet

import (
	"context"
	"errors"
	"fmt"

	domain "mentormatch/internal/errors"
	"mentormatch/internal/models"
	"mentormatch/internal/repositories"
)

type service struct {
	repo  repositories.WalletRepository
	cache repositories.WalletCache
}

// NewService creates a new wallet service.
func NewService(repo repositories.WalletRepository, cache repositories.WalletCache) Service {
	if repo == nil {
		panic("repo is required")
	}
	if cache == nil {
		cache = repositories.NoopWalletCache{}
	}
	return &service{repo: repo, cache: cache}
}

func (s *service) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	if cached, err := s.cache.GetWallet(ctx, userID); err == nil {
		return cached, nil
	}

	wallet, err := s.repo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, repositories.ErrWalletNotFound) {
			return nil, domain.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet: %w", err)
	}

	_ = s.cache.SetWallet(ctx, wallet)
	return wallet, nil
}

func (s *service) GetBalance(ctx context.Context, userID uint) (float64, error) {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return 0, err
	}
	return wallet.Balance, nil
}

func (s *service) ValidateBalance(ctx context.Context, userID uint, amount float64) error {
	if amount <= 0 {
		return domain.ErrInvalidAmount
	}
	balance, err := s.GetBalance(ctx, userID)
	if err != nil {
		return err
	}
	if balance < amount {
		return domain.ErrInsufficientBalance
	}
	return nil
}

func (s *service) GetTransactions(ctx context.Context, userID uint) ([]models.Transaction, error) {
	wallet, err := s.GetWallet(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.repo.GetTransactions(wallet.ID)
}

func (s *service) CreateWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	wallet := &models.Wallet{UserID: userID}
	if err := s.repo.Create(wallet); err != nil {
		return nil, fmt.Errorf("failed to create wallet: %w", err)
	}
	_ = s.cache.SetWallet(ctx, wallet)
	return wallet, nil
}

func (s *service) Deposit(ctx context.Context, userID uint, amount float64, source string) (*DepositResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var result DepositResult
	err := s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		wallet, err := tx.GetByUserID(userID)
		if err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return domain.ErrWalletNotFound
			}
			return err
		}

		newBalance := wallet.Balance + amount
		if err := tx.UpdateBalance(wallet.ID, newBalance); err != nil {
			return err
		}

		txn := &models.Transaction{
			WalletID:    wallet.ID,
			Amount:      amount,
			Type:        models.TransactionTypeDeposit,
			Description: fmt.Sprintf("Deposit from %s", source),
		}
		if err := tx.CreateTransaction(txn); err != nil {
			return err
		}

		result = DepositResult{NewBalance: newBalance, Transaction: txn}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateWallet(ctx, userID)
	return &result, nil
}

func (s *service) Withdraw(ctx context.Context, userID uint, amount float64, destination string) (*WithdrawResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidAmount
	}

	var result WithdrawResult
	err := s.repo.ExecuteInTransaction(func(tx repositories.WalletRepository) error {
		wallet, err := tx.GetByUserID(userID)
		if err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return domain.ErrWalletNotFound
			}
			return err
		}

		if wallet.Balance < amount {
			return domain.ErrInsufficientBalance
		}

		newBalance := wallet.Balance - amount
		if err := tx.UpdateBalance(wallet.ID, newBalance); err != nil {
			return err
		}

		txn := &models.Transaction{
			WalletID:    wallet.ID,
			Amount:      -amount,
			Type:        models.TransactionTypeWithdrawal,
			Description: fmt.Sprintf("Withdrawal to %s", destination),
		}
		if err := tx.CreateTransaction(txn); err != nil {
			return err
		}

		result = WithdrawResult{NewBalance: newBalance, Transaction: txn}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateWallet(ctx, userID)
	return &result, nil
}
