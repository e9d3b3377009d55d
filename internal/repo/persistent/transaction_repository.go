package persistent

import (
	"github.com/dyncarl8-oss/herbal-roots/internal/entity"
	"github.com/dyncarl8-oss/herbal-roots/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type TransactionRepository interface {
	Create(transaction *entity.Transaction) error
	List() ([]*entity.Transaction, error)
	Stats() (*entity.LedgerStats, error)
}

type transactionRepository struct {
	db *gorm.DB
}

func NewTransactionRepository(db *gorm.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(transaction *entity.Transaction) error {
	transactionModel := ToTransactionModel(transaction)
	if transactionModel.ID == "" {
		transactionModel.ID = uuid.New().String()
	}

	if err := r.db.Create(transactionModel).Error; err != nil {
		return err
	}

	*transaction = *ToTransactionEntity(transactionModel)
	return nil
}

func (r *transactionRepository) List() ([]*entity.Transaction, error) {
	var transactionModels []model.TransactionModel
	if err := r.db.Order("created_at DESC").Find(&transactionModels).Error; err != nil {
		return nil, err
	}

	transactions := make([]*entity.Transaction, len(transactionModels))
	for i := range transactionModels {
		transactions[i] = ToTransactionEntity(&transactionModels[i])
	}
	return transactions, nil
}

// Stats aggregates in the database; COALESCE keeps an empty ledger at
// zero instead of NULL.
func (r *transactionRepository) Stats() (*entity.LedgerStats, error) {
	var stats entity.LedgerStats
	err := r.db.Model(&model.TransactionModel{}).
		Select("COALESCE(SUM(amount_cents), 0) AS total_revenue_cents, COALESCE(SUM(commission_cents), 0) AS total_commission_cents, COUNT(*) AS transaction_count").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
