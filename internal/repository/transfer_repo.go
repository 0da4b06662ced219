// internal/repository/transfer_repo.go
package repository

import (
	"context"

	"trackhub/internal/domain"
)

// TransferRepository defines the interface for transfer data operations.
type TransferRepository interface {
	// CreateTransfer adds a new transfer record using the provided DBExecutor.
	CreateTransfer(ctx context.Context, q DBExecutor, transfer *domain.Transfer) error
	// GetTransferByID retrieves a transfer owned by the given user.
	GetTransferByID(ctx context.Context, q DBExecutor, userID, transferID int64) (*domain.Transfer, error)
	// UpdateTransfer overwrites the mutable fields of a transfer record.
	UpdateTransfer(ctx context.Context, q DBExecutor, transfer *domain.Transfer) error
	// DeleteTransfer removes a transfer record owned by the given user.
	DeleteTransfer(ctx context.Context, q DBExecutor, userID, transferID int64) error
	// GetTransfersByUserID retrieves paginated transfer history for a user
	// along with the total count.
	GetTransfersByUserID(ctx context.Context, q DBExecutor, userID int64, limit, offset int) ([]domain.Transfer, int64, error)
	// ExistsByWalletID reports whether any transfer references the wallet on
	// either side.
	ExistsByWalletID(ctx context.Context, q DBExecutor, userID, walletID int64) (bool, error)
}
