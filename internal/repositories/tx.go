package repositories

import (
	"context"

	"gorm.io/gorm"
)

// TxManager runs a unit of work that spans the wallet and schedule stores
// inside one database transaction. The closure receives transaction-scoped
// repositories; a nil return commits, any error rolls the whole unit back.
type TxManager interface {
	ExecuteInTransaction(ctx context.Context, fn func(wallets WalletRepository, schedules ScheduleRepository) error) error
}

type txManager struct {
	db *gorm.DB
}

func NewTxManager(db *gorm.DB) TxManager {
	return &txManager{db: db}
}

func (m *txManager) ExecuteInTransaction(ctx context.Context, fn func(WalletRepository, ScheduleRepository) error) error {
	return m.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(NewWalletRepository(tx), NewScheduleRepository(tx))
	})
}
