package wallet

import (
	"context"
	"testing"

	domain "mentormatch/internal/errors"
	"mentormatch/internal/models"
	"mentormatch/internal/repositories"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type MockWalletRepo struct {
	mock.Mock
}

func (m *MockWalletRepo) Create(wallet *models.Wallet) error {
	args := m.Called(wallet)
	return args.Error(0)
}

func (m *MockWalletRepo) GetByUserID(userID uint) (*models.Wallet, error) {
	args := m.Called(userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockWalletRepo) UpdateBalance(walletID uint, newBalance float64) error {
	args := m.Called(walletID, newBalance)
	return args.Error(0)
}

func (m *MockWalletRepo) CreateTransaction(txn *models.Transaction) error {
	args := m.Called(txn)
	return args.Error(0)
}

func (m *MockWalletRepo) GetTransactions(walletID uint) ([]models.Transaction, error) {
	args := m.Called(walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Transaction), args.Error(1)
}

func (m *MockWalletRepo) WithTx(tx *gorm.DB) repositories.WalletRepository {
	return m
}

func (m *MockWalletRepo) ExecuteInTransaction(fn func(repositories.WalletRepository) error) error {
	return fn(m)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) GetWallet(ctx context.Context, userID uint) (*models.Wallet, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Wallet), args.Error(1)
}

func (m *MockCache) SetWallet(ctx context.Context, wallet *models.Wallet) error {
	args := m.Called(ctx, wallet)
	return args.Error(0)
}

func (m *MockCache) InvalidateWallet(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func TestGetWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("cache hit skips repository", func(t *testing.T) {
		repo := new(MockWalletRepo)
		cache := new(MockCache)
		cache.On("GetWallet", ctx, uint(1)).Return(&models.Wallet{ID: 11, UserID: 1, Balance: 100}, nil)

		svc := NewService(repo, cache)
		wallet, err := svc.GetWallet(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, float64(100), wallet.Balance)
		repo.AssertNotCalled(t, "GetByUserID", mock.Anything)
	})

	t.Run("cache miss falls back to repository", func(t *testing.T) {
		repo := new(MockWalletRepo)
		cache := new(MockCache)
		cache.On("GetWallet", ctx, uint(1)).Return(nil, redis.Nil)
		repo.On("GetByUserID", uint(1)).Return(&models.Wallet{ID: 11, UserID: 1, Balance: 42}, nil)
		cache.On("SetWallet", ctx, mock.Anything).Return(nil)

		svc := NewService(repo, cache)
		wallet, err := svc.GetWallet(ctx, 1)

		assert.NoError(t, err)
		assert.Equal(t, float64(42), wallet.Balance)
		repo.AssertExpectations(t)
	})

	t.Run("missing wallet", func(t *testing.T) {
		repo := new(MockWalletRepo)
		cache := new(MockCache)
		cache.On("GetWallet", ctx, uint(9)).Return(nil, redis.Nil)
		repo.On("GetByUserID", uint(9)).Return(nil, repositories.ErrWalletNotFound)

		svc := NewService(repo, cache)
		_, err := svc.GetWallet(ctx, 9)

		assert.ErrorIs(t, err, domain.ErrWalletNotFound)
	})
}

func TestValidateBalance(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		balance float64
		amount  float64
		wantErr error
	}{
		{name: "sufficient", balance: 250000, amount: 200000},
		{name: "exact balance passes", balance: 200000, amount: 200000},
		{name: "insufficient", balance: 150000, amount: 200000, wantErr: domain.ErrInsufficientBalance},
		{name: "non-positive amount", balance: 100, amount: 0, wantErr: domain.ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockWalletRepo)
			cache := new(MockCache)
			cache.On("GetWallet", ctx, uint(1)).Return(&models.Wallet{ID: 11, UserID: 1, Balance: tt.balance}, nil)

			svc := NewService(repo, cache)
			err := svc.ValidateBalance(ctx, 1, tt.amount)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("pairs balance update with a deposit transaction", func(t *testing.T) {
		repo := new(MockWalletRepo)
		cache := new(MockCache)
		repo.On("GetByUserID", uint(1)).Return(&models.Wallet{ID: 11, UserID: 1, Balance: 150000}, nil)
		repo.On("UpdateBalance", uint(11), float64(250000)).Return(nil)
		repo.On("CreateTransaction", mock.MatchedBy(func(txn *models.Transaction) bool {
			return txn.WalletID == 11 &&
				txn.Amount == 100000 &&
				txn.Type == models.TransactionTypeDeposit
		})).Return(nil)
		cache.On("InvalidateWallet", ctx, uint(1)).Return(nil)

		svc := NewService(repo, cache)
		result, err := svc.Deposit(ctx, 1, 100000, "demo bank")

		assert.NoError(t, err)
		assert.Equal(t, float64(250000), result.NewBalance)
		repo.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("rejects non-positive amount", func(t *testing.T) {
		repo := new(MockWalletRepo)

		svc := NewService(repo, new(MockCache))
		_, err := svc.Deposit(ctx, 1, -5, "demo bank")

		assert.ErrorIs(t, err, domain.ErrInvalidAmount)
		repo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything)
	})

	t.Run("missing wallet", func(t *testing.T) {
		repo := new(MockWalletRepo)
		repo.On("GetByUserID", uint(9)).Return(nil, repositories.ErrWalletNotFound)

		svc := NewService(repo, new(MockCache))
		_, err := svc.Deposit(ctx, 9, 100, "demo bank")

		assert.ErrorIs(t, err, domain.ErrWalletNotFound)
	})
}

func TestWithdraw(t *testing.T) {
	ctx := context.Background()

	t.Run("debits balance and records a withdrawal", func(t *testing.T) {
		repo := new(MockWalletRepo)
		cache := new(MockCache)
		repo.On("GetByUserID", uint(1)).Return(&models.Wallet{ID: 11, UserID: 1, Balance: 100000}, nil)
		repo.On("UpdateBalance", uint(11), float64(40000)).Return(nil)
		repo.On("CreateTransaction", mock.MatchedBy(func(txn *models.Transaction) bool {
			return txn.Amount == -60000 && txn.Type == models.TransactionTypeWithdrawal
		})).Return(nil)
		cache.On("InvalidateWallet", ctx, uint(1)).Return(nil)

		svc := NewService(repo, cache)
		result, err := svc.Withdraw(ctx, 1, 60000, "linked account")

		assert.NoError(t, err)
		assert.Equal(t, float64(40000), result.NewBalance)
	})

	t.Run("insufficient balance leaves wallet untouched", func(t *testing.T) {
		repo := new(MockWalletRepo)
		repo.On("GetByUserID", uint(1)).Return(&models.Wallet{ID: 11, UserID: 1, Balance: 100}, nil)

		svc := NewService(repo, new(MockCache))
		_, err := svc.Withdraw(ctx, 1, 500, "linked account")

		assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
		repo.AssertNotCalled(t, "UpdateBalance", mock.Anything, mock.Anything)
		repo.AssertNotCalled(t, "CreateTransaction", mock.Anything)
	})
}

func TestGetTransactions(t *testing.T) {
	ctx := context.Background()

	repo := new(MockWalletRepo)
	cache := new(MockCache)
	cache.On("GetWallet", ctx, uint(1)).Return(&models.Wallet{ID: 11, UserID: 1}, nil)
	repo.On("GetTransactions", uint(11)).Return([]models.Transaction{
		{ID: 2, WalletID: 11, Amount: -60000, Type: models.TransactionTypePayment},
		{ID: 1, WalletID: 11, Amount: 100000, Type: models.TransactionTypeDeposit},
	}, nil)

	svc := NewService(repo, cache)
	txns, err := svc.GetTransactions(ctx, 1)

	assert.NoError(t, err)
	assert.Len(t, txns, 2)
	repo.AssertExpectations(t)
}
