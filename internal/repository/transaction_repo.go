// internal/repository/transaction_repo.go
package repository

import (
	"context"

	"trackhub/internal/domain"
)

// TransactionRepository defines the interface for transaction data operations.
type TransactionRepository interface {
	// CreateTransaction adds a new transaction record using the provided DBExecutor.
	CreateTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	// GetTransactionByID retrieves a transaction owned by the given user.
	GetTransactionByID(ctx context.Context, q DBExecutor, userID, transactionID int64) (*domain.Transaction, error)
	// UpdateTransaction overwrites the mutable fields of a transaction record.
	UpdateTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	// DeleteTransaction removes a transaction record owned by the given user.
	DeleteTransaction(ctx context.Context, q DBExecutor, userID, transactionID int64) error
	// GetTransactionsByWalletID retrieves paginated transaction history for a
	// wallet along with the total count.
	GetTransactionsByWalletID(ctx context.Context, q DBExecutor, userID, walletID int64, limit, offset int) ([]domain.Transaction, int64, error)
	// ExistsByWalletID reports whether any transaction references the wallet.
	ExistsByWalletID(ctx context.Context, q DBExecutor, userID, walletID int64) (bool, error)
}
