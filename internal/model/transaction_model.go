package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// TransactionModel rows are append-only: never updated, never deleted.
type TransactionModel struct {
	ID              string    `gorm:"type:uuid;primary_key" json:"id"`
	Type            string    `gorm:"type:varchar(30);not null" json:"type"`
	AmountCents     int64     `gorm:"not null" json:"amount_cents"`
	CommissionCents int64     `gorm:"not null" json:"commission_cents"`
	BuyerID         string    `gorm:"not null;index" json:"buyer_id"`
	Description     string    `gorm:"type:text" json:"description"`
	CreatedAt       time.Time `gorm:"index:idx_transactions_created_at,sort:desc" json:"created_at"`
}

func (TransactionModel) TableName() string {
	return "transactions"
}

func (t *TransactionModel) BeforeCreate(tx *gorm.DB) error {
	if t.ID == "" {
		t.ID = uuid.New().String()
	}
	return nil
}
