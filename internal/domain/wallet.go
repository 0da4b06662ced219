// internal/domain/wallet.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Wallet is a named balance-holding account belonging to a user.
// Balance is the authoritative running total; every transaction and
// transfer write mirrors its delta onto it.
type Wallet struct {
	ID        int64           `db:"id" json:"id"`
	UserID    int64           `db:"user_id" json:"user_id"`
	Name      string          `db:"name" json:"name"`
	Currency  string          `db:"currency" json:"currency"` // display-only code, e.g. "USD"
	Balance   decimal.Decimal `db:"balance" json:"balance"`   // NUMERIC(20, 4) in DB
	CreatedAt time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt time.Time       `db:"updated_at" json:"updated_at"`
}

// NewWallet creates a new Wallet instance with the given opening balance.
func NewWallet(userID int64, name, currency string, balance decimal.Decimal) *Wallet {
	now := time.Now().UTC()
	return &Wallet{
		UserID:    userID,
		Name:      name,
		Currency:  currency,
		Balance:   balance,
		CreatedAt: now,
		UpdatedAt: now,
	}
}
