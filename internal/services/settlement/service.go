// Package settlement confirms a booking group by moving funds from the
// student to the tutor. Debit, credit, both ledger entries, and the group
// status flip happen inside one database transaction; any failure rolls the
// whole unit back.
package settlement

import (
	"context"
	"errors"
	"fmt"

	domain "mentormatch/internal/errors"
	"mentormatch/internal/models"
	"mentormatch/internal/repositories"
)

// Result reports a completed settlement.
type Result struct {
	Message     string  `json:"message"`
	TotalAmount float64 `json:"total_amount"`
}

// Service settles booking proposals.
type Service interface {
	PayAndConfirm(ctx context.Context, studentID uint, groupID string) (*Result, error)
}

type service struct {
	tx    repositories.TxManager
	cache repositories.WalletCache
}

// NewService creates a new settlement service.
func NewService(tx repositories.TxManager, cache repositories.WalletCache) Service {
	if tx == nil {
		panic("tx manager is required")
	}
	if cache == nil {
		cache = repositories.NoopWalletCache{}
	}
	return &service{tx: tx, cache: cache}
}

// PayAndConfirm debits studentID's wallet by the group total, credits the
// tutor's wallet by the same amount, appends one payment and one earning
// transaction, and flips every schedule in the group to confirmed.
func (s *service) PayAndConfirm(ctx context.Context, studentID uint, groupID string) (*Result, error) {
	var (
		result  Result
		tutorID uint
	)

	err := s.tx.ExecuteInTransaction(ctx, func(wallets repositories.WalletRepository, schedules repositories.ScheduleRepository) error {
		rows, err := schedules.GetByGroupID(groupID)
		if err != nil {
			return err
		}
		if len(rows) == 0 {
			return domain.ErrProposalNotFound
		}
		if rows[0].Status == models.ScheduleStatusConfirmed {
			return domain.ErrAlreadyConfirmed
		}
		// Only pending groups are payable; cancelled and completed are
		// terminal and must never re-enter confirmed.
		if rows[0].Status != models.ScheduleStatusPendingPayment {
			return domain.ErrProposalClosed
		}
		tutorID = rows[0].TutorID

		var total float64
		for _, row := range rows {
			total += row.Price
		}

		studentWallet, err := wallets.GetByUserID(studentID)
		if err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return domain.ErrWalletNotFound
			}
			return err
		}
		if studentWallet.Balance < total {
			return domain.ErrInsufficientBalance
		}

		if err := wallets.UpdateBalance(studentWallet.ID, studentWallet.Balance-total); err != nil {
			return err
		}
		if err := wallets.CreateTransaction(&models.Transaction{
			WalletID:    studentWallet.ID,
			Amount:      -total,
			Type:        models.TransactionTypePayment,
			Description: fmt.Sprintf("Payment for booking group %s", groupID),
		}); err != nil {
			return err
		}

		tutorWallet, err := wallets.GetByUserID(tutorID)
		if err != nil {
			if errors.Is(err, repositories.ErrWalletNotFound) {
				return domain.ErrWalletNotFound
			}
			return err
		}
		if err := wallets.UpdateBalance(tutorWallet.ID, tutorWallet.Balance+total); err != nil {
			return err
		}
		if err := wallets.CreateTransaction(&models.Transaction{
			WalletID:    tutorWallet.ID,
			Amount:      total,
			Type:        models.TransactionTypeEarning,
			Description: fmt.Sprintf("Earning from booking group %s", groupID),
		}); err != nil {
			return err
		}

		if _, err := schedules.UpdateGroupStatus(groupID, models.ScheduleStatusConfirmed); err != nil {
			return err
		}

		result = Result{Message: "payment successful", TotalAmount: total}
		return nil
	})
	if err != nil {
		return nil, err
	}

	_ = s.cache.InvalidateWallet(ctx, studentID)
	_ = s.cache.InvalidateWallet(ctx, tutorID)
	return &result, nil
}
