package usecase

import (
	"errors"
	"fmt"

	"github.com/dyncarl8-oss/herbal-roots/internal/entity"
	"github.com/dyncarl8-oss/herbal-roots/internal/repo/persistent"
	"github.com/dyncarl8-oss/herbal-roots/internal/shared"
	"github.com/dyncarl8-oss/herbal-roots/pkg/logger"

	"gorm.io/gorm"
)

// PurchaseReceipt reports what the ledger recorded and whether the
// commission actually landed on a recipient's balance.
type PurchaseReceipt struct {
	Transaction        *entity.Transaction
	CommissionCredited bool
	RecipientID        string
}

type CommissionUseCase interface {
	RecordPurchase(buyerID, productName string, amountCents int64) (*PurchaseReceipt, error)
	Stats() (*entity.LedgerStats, error)
	ListTransactions() ([]*entity.Transaction, error)
}

type commissionUseCase struct {
	transactionRepo persistent.TransactionRepository
	userRepo        persistent.UserRepository
	operatorID      string
	logger          *logger.Logger
}

// NewCommissionUseCase takes the platform operator's user id explicitly.
// When operatorID is empty the oldest admin-tier user receives the split.
func NewCommissionUseCase(
	transactionRepo persistent.TransactionRepository,
	userRepo persistent.UserRepository,
	operatorID string,
	logger *logger.Logger,
) CommissionUseCase {
	return &commissionUseCase{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
		operatorID:      operatorID,
		logger:          logger,
	}
}

// RecordPurchase appends a purchase to the ledger and credits half the
// amount to the operator. A missing recipient never drops the purchase:
// the transaction is still recorded and the orphaned commission is
// surfaced on the receipt.
func (uc *commissionUseCase) RecordPurchase(buyerID, productName string, amountCents int64) (*PurchaseReceipt, error) {
	if amountCents < 0 {
		return nil, fmt.Errorf("%w: amount must not be negative", shared.ErrValidation)
	}

	transaction := &entity.Transaction{
		Type:            entity.TransactionTypePurchase,
		AmountCents:     amountCents,
		CommissionCents: entity.HalfCents(amountCents),
		BuyerID:         buyerID,
		Description:     fmt.Sprintf("Ritual purchase: %s", productName),
	}

	if err := uc.transactionRepo.Create(transaction); err != nil {
		uc.logger.Error("Failed to record purchase for %s: %v", buyerID, err)
		return nil, fmt.Errorf("%w: record purchase", shared.ErrStorage)
	}

	receipt := &PurchaseReceipt{Transaction: transaction}

	recipientID, err := uc.resolveRecipient()
	if err != nil {
		uc.logger.Warn("Commission of %d cents orphaned on transaction %s: %v",
			transaction.CommissionCents, transaction.ID, err)
		return receipt, nil
	}

	credited, err := uc.userRepo.CreditBalance(recipientID, transaction.CommissionCents)
	if err != nil {
		uc.logger.Error("Failed to credit commission to %s: %v", recipientID, err)
		return receipt, nil
	}
	if !credited {
		uc.logger.Warn("Commission of %d cents orphaned on transaction %s: recipient %s has no local record",
			transaction.CommissionCents, transaction.ID, recipientID)
		return receipt, nil
	}

	receipt.CommissionCredited = true
	receipt.RecipientID = recipientID
	return receipt, nil
}

func (uc *commissionUseCase) resolveRecipient() (string, error) {
	if uc.operatorID != "" {
		return uc.operatorID, nil
	}

	admin, err := uc.userRepo.GetOldestAdmin()
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("no operator configured and no admin user exists")
		}
		return "", err
	}
	return admin.PlatformUserID, nil
}

func (uc *commissionUseCase) Stats() (*entity.LedgerStats, error) {
	stats, err := uc.transactionRepo.Stats()
	if err != nil {
		uc.logger.Error("Failed to compute ledger stats: %v", err)
		return nil, fmt.Errorf("%w: ledger stats", shared.ErrStorage)
	}
	return stats, nil
}

func (uc *commissionUseCase) ListTransactions() ([]*entity.Transaction, error) {
	transactions, err := uc.transactionRepo.List()
	if err != nil {
		uc.logger.Error("Failed to list transactions: %v", err)
		return nil, fmt.Errorf("%w: list transactions", shared.ErrStorage)
	}
	return transactions, nil
}
