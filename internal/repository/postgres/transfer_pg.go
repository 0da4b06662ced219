// internal/repository/postgres/transfer_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"trackhub/internal/domain"
	"trackhub/internal/repository"
	"trackhub/internal/util"

	"github.com/jmoiron/sqlx"
)

// TransferRepository implements repository.TransferRepository for PostgreSQL.
type TransferRepository struct {
	// Methods receive a DBExecutor directly.
}

// NewTransferRepository creates a new TransferRepository.
func NewTransferRepository(db *sqlx.DB) repository.TransferRepository {
	return &TransferRepository{}
}

// CreateTransfer inserts a new transfer record using the provided DBExecutor.
func (r *TransferRepository) CreateTransfer(ctx context.Context, q repository.DBExecutor, transfer *domain.Transfer) error {
	query := `INSERT INTO transfers (user_id, from_wallet_id, to_wallet_id, amount, description, status, reference, transfer_date, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id`

	err := q.QueryRowContext(ctx, query,
		transfer.UserID,
		transfer.FromWalletID,
		transfer.ToWalletID,
		transfer.Amount,
		transfer.Description,
		transfer.Status,
		transfer.Reference,
		transfer.Date,
		transfer.CreatedAt,
		transfer.UpdatedAt,
	).Scan(&transfer.ID)

	if err != nil {
		return fmt.Errorf("failed to create transfer: %w", err)
	}
	return nil
}

// GetTransferByID retrieves a transfer owned by the given user.
func (r *TransferRepository) GetTransferByID(ctx context.Context, q repository.DBExecutor, userID, transferID int64) (*domain.Transfer, error) {
	var transfer domain.Transfer
	query := `SELECT id, user_id, from_wallet_id, to_wallet_id, amount, description, status, reference, transfer_date, created_at, updated_at
              FROM transfers WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &transfer, query, transferID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transfer by ID %d: %w", transferID, err)
	}
	return &transfer, nil
}

// UpdateTransfer overwrites the mutable fields of a transfer record.
func (r *TransferRepository) UpdateTransfer(ctx context.Context, q repository.DBExecutor, transfer *domain.Transfer) error {
	query := `UPDATE transfers
              SET from_wallet_id = $1, to_wallet_id = $2, amount = $3, description = $4, status = $5, transfer_date = $6, updated_at = $7
              WHERE id = $8 AND user_id = $9`
	result, err := q.ExecContext(ctx, query,
		transfer.FromWalletID,
		transfer.ToWalletID,
		transfer.Amount,
		transfer.Description,
		transfer.Status,
		transfer.Date,
		time.Now().UTC(),
		transfer.ID,
		transfer.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transfer %d: %w", transfer.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating transfer %d: %w", transfer.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteTransfer removes a transfer record owned by the given user.
func (r *TransferRepository) DeleteTransfer(ctx context.Context, q repository.DBExecutor, userID, transferID int64) error {
	query := `DELETE FROM transfers WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, transferID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transfer %d: %w", transferID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting transfer %d: %w", transferID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// GetTransfersByUserID retrieves a paginated list of transfers for a user.
func (r *TransferRepository) GetTransfersByUserID(ctx context.Context, q repository.DBExecutor, userID int64, limit, offset int) ([]domain.Transfer, int64, error) {
	transfers := []domain.Transfer{}

	query := `
		SELECT id, user_id, from_wallet_id, to_wallet_id, amount, description, status, reference, transfer_date, created_at, updated_at
		FROM transfers
		WHERE user_id = $1
		ORDER BY transfer_date DESC, created_at DESC
		LIMIT $2 OFFSET $3`
	err := q.SelectContext(ctx, &transfers, query, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch transfers for user %d: %w", userID, err)
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM transfers WHERE user_id = $1`
	err = q.GetContext(ctx, &totalCount, countQuery, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total transfer count for user %d: %w", userID, err)
	}

	return transfers, totalCount, nil
}

// ExistsByWalletID reports whether any transfer references the wallet on
// either side.
func (r *TransferRepository) ExistsByWalletID(ctx context.Context, q repository.DBExecutor, userID, walletID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM transfers WHERE (from_wallet_id = $1 OR to_wallet_id = $1) AND user_id = $2)`
	if err := q.GetContext(ctx, &exists, query, walletID, userID); err != nil {
		return false, fmt.Errorf("failed to check transfers for wallet %d: %w", walletID, err)
	}
	return exists, nil
}
