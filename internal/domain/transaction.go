// internal/domain/transaction.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// TransactionType defines the type of a financial transaction.
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// Valid reports whether t is a known transaction type.
func (t TransactionType) Valid() bool {
	return t == TransactionTypeIncome || t == TransactionTypeExpense
}

// Transaction represents a single income or expense event against exactly
// one wallet. Amount is always positive; the type carries the sign.
type Transaction struct {
	ID         int64           `db:"id" json:"id"`
	UserID     int64           `db:"user_id" json:"user_id"`
	WalletID   int64           `db:"wallet_id" json:"wallet_id"`
	CategoryID *int64          `db:"category_id" json:"category_id"` // optional classification, no balance effect
	Type       TransactionType `db:"type" json:"type"`
	Reason     string          `db:"reason" json:"reason"`
	Amount     decimal.Decimal `db:"amount" json:"amount"` // NUMERIC(20, 4) in DB
	Date       time.Time       `db:"transaction_date" json:"date"`
	CreatedAt  time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt  time.Time       `db:"updated_at" json:"updated_at"`
}

// NewTransaction creates a new Transaction instance.
func NewTransaction(userID, walletID int64, categoryID *int64, txType TransactionType, reason string, amount decimal.Decimal, date time.Time) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		UserID:     userID,
		WalletID:   walletID,
		CategoryID: categoryID,
		Type:       txType,
		Reason:     reason,
		Amount:     amount,
		Date:       date,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// SignedAmount returns the transaction's contribution to its wallet balance:
// +Amount for income, -Amount for expense.
func (t *Transaction) SignedAmount() decimal.Decimal {
	if t.Type == TransactionTypeExpense {
		return t.Amount.Neg()
	}
	return t.Amount
}
