// internal/domain/transfer.go
package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal" // For precise monetary calculations
)

// TransferStatus defines the status of a transfer between two wallets.
type TransferStatus string

const (
	TransferStatusCompleted TransferStatus = "completed"
	TransferStatusFailed    TransferStatus = "failed"
)

// Transfer represents a balance movement between two wallets of the same
// user. A completed transfer implies the source balance was decremented and
// the destination balance incremented by Amount when it was applied.
type Transfer struct {
	ID           int64           `db:"id" json:"id"`
	UserID       int64           `db:"user_id" json:"user_id"`
	FromWalletID int64           `db:"from_wallet_id" json:"from_wallet_id"`
	ToWalletID   int64           `db:"to_wallet_id" json:"to_wallet_id"`
	Amount       decimal.Decimal `db:"amount" json:"amount"` // NUMERIC(20, 4) in DB
	Description  string          `db:"description" json:"description"`
	Status       TransferStatus  `db:"status" json:"status"`
	Reference    uuid.UUID       `db:"reference" json:"reference"` // client-suppliable idempotency handle
	Date         time.Time       `db:"transfer_date" json:"date"`
	CreatedAt    time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt    time.Time       `db:"updated_at" json:"updated_at"`
}

// NewTransfer creates a new completed Transfer instance. A zero reference is
// replaced with a generated one.
func NewTransfer(userID, fromWalletID, toWalletID int64, amount decimal.Decimal, description string, reference uuid.UUID, date time.Time) *Transfer {
	if reference == uuid.Nil {
		reference = uuid.New()
	}
	now := time.Now().UTC()
	return &Transfer{
		UserID:       userID,
		FromWalletID: fromWalletID,
		ToWalletID:   toWalletID,
		Amount:       amount,
		Description:  description,
		Status:       TransferStatusCompleted,
		Reference:    reference,
		Date:         date,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
