// internal/repository/wallet_repo.go
package repository

import (
	"context"

	"trackhub/internal/domain"

	"github.com/shopspring/decimal"
)

// WalletRepository defines the interface for wallet data operations.
// All reads are scoped by the owning user; balance writes are addressed by
// wallet ID because callers resolve ownership first.
type WalletRepository interface {
	// CreateWallet adds a new wallet to the database using the provided DBExecutor.
	CreateWallet(ctx context.Context, q DBExecutor, wallet *domain.Wallet) error
	// GetWalletByID retrieves a wallet owned by the given user.
	GetWalletByID(ctx context.Context, q DBExecutor, userID, walletID int64) (*domain.Wallet, error)
	// ListWalletsByUserID retrieves all wallets owned by the given user.
	ListWalletsByUserID(ctx context.Context, q DBExecutor, userID int64) ([]domain.Wallet, error)
	// AdjustBalance applies a relative delta to a wallet balance. The delta
	// is executed server-side (balance = balance + delta) so concurrent
	// adjustments cannot lose updates.
	AdjustBalance(ctx context.Context, q DBExecutor, walletID int64, delta decimal.Decimal) error
	// DebitBalance decrements a wallet balance by a positive amount, guarded
	// so the balance cannot go negative. Returns ErrInsufficientFunds when
	// the guard rejects the write.
	DebitBalance(ctx context.Context, q DBExecutor, walletID int64, amount decimal.Decimal) error
	// DeleteWallet removes a wallet owned by the given user.
	DeleteWallet(ctx context.Context, q DBExecutor, userID, walletID int64) error
}
