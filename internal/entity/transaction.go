package entity

import "time"

type TransactionType string

const (
	TransactionTypePurchase         TransactionType = "purchase"
	TransactionTypeCommissionCredit TransactionType = "commission_credit"
)

// Transaction is an append-only ledger entry. Commission is always half
// the amount, rounded half-up at cent precision.
type Transaction struct {
	ID              string          `json:"id"`
	Type            TransactionType `json:"type"`
	AmountCents     int64           `json:"amount_cents"`
	CommissionCents int64           `json:"commission_cents"`
	BuyerID         string          `json:"buyer_id"`
	Description     string          `json:"description"`
	CreatedAt       time.Time       `json:"created_at"`
}

// LedgerStats aggregates the whole transaction ledger.
type LedgerStats struct {
	TotalRevenueCents    int64 `json:"total_revenue_cents"`
	TotalCommissionCents int64 `json:"total_commission_cents"`
	TransactionCount     int64 `json:"transaction_count"`
}
