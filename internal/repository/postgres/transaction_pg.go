// internal/repository/postgres/transaction_pg.go
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

// TransactionRepository implements repository.TransactionRepository for PostgreSQL.
type TransactionRepository struct {
	// Methods receive a DBExecutor directly.
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *sqlx.DB) repository.TransactionRepository {
	return &TransactionRepository{}
}

// CreateTransaction inserts a new transaction record using the provided DBExecutor.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `INSERT INTO transactions (user_id, wallet_id, category_id, type, reason, amount, transaction_date, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9) RETURNING id`

	err := q.QueryRowContext(ctx, query,
		transaction.UserID,
		transaction.WalletID,
		transaction.CategoryID,
		transaction.Type,
		transaction.Reason,
		transaction.Amount,
		transaction.Date,
		transaction.CreatedAt,
		transaction.UpdatedAt,
	).Scan(&transaction.ID)

	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetTransactionByID retrieves a transaction owned by the given user.
func (r *TransactionRepository) GetTransactionByID(ctx context.Context, q repository.DBExecutor, userID, transactionID int64) (*domain.Transaction, error) {
	var transaction domain.Transaction
	query := `SELECT id, user_id, wallet_id, category_id, type, reason, amount, transaction_date, created_at, updated_at
              FROM transactions WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &transaction, query, transactionID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by ID %d: %w", transactionID, err)
	}
	return &transaction, nil
}

// UpdateTransaction overwrites the mutable fields of a transaction record.
func (r *TransactionRepository) UpdateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `UPDATE transactions
              SET wallet_id = $1, category_id = $2, type = $3, reason = $4, amount = $5, transaction_date = $6, updated_at = $7
              WHERE id = $8 AND user_id = $9`
	result, err := q.ExecContext(ctx, query,
		transaction.WalletID,
		transaction.CategoryID,
		transaction.Type,
		transaction.Reason,
		transaction.Amount,
		transaction.Date,
		time.Now().UTC(),
		transaction.ID,
		transaction.UserID,
	)
	if err != nil {
		return fmt.Errorf("failed to update transaction %d: %w", transaction.ID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating transaction %d: %w", transaction.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// DeleteTransaction removes a transaction record owned by the given user.
func (r *TransactionRepository) DeleteTransaction(ctx context.Context, q repository.DBExecutor, userID, transactionID int64) error {
	query := `DELETE FROM transactions WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, transactionID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", transactionID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting transaction %d: %w", transactionID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}

// GetTransactionsByWalletID retrieves a paginated list of transactions for a
// specific wallet. It performs two queries: one for the data and one for the
// total count.
func (r *TransactionRepository) GetTransactionsByWalletID(ctx context.Context, q repository.DBExecutor, userID, walletID int64, limit, offset int) ([]domain.Transaction, int64, error) {
	transactions := []domain.Transaction{}

	query := `
		SELECT id, user_id, wallet_id, category_id, type, reason, amount, transaction_date, created_at, updated_at
		FROM transactions
		WHERE wallet_id = $1 AND user_id = $2
		ORDER BY transaction_date DESC, created_at DESC
		LIMIT $3 OFFSET $4`
	err := q.SelectContext(ctx, &transactions, query, walletID, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch transactions for wallet %d: %w", walletID, err)
	}

	var totalCount int64
	countQuery := `SELECT COUNT(*) FROM transactions WHERE wallet_id = $1 AND user_id = $2`
	err = q.GetContext(ctx, &totalCount, countQuery, walletID, userID)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get total transaction count for wallet %d: %w", walletID, err)
	}

	return transactions, totalCount, nil
}

// ExistsByWalletID reports whether any transaction references the wallet.
func (r *TransactionRepository) ExistsByWalletID(ctx context.Context, q repository.DBExecutor, userID, walletID int64) (bool, error) {
	var exists bool
	query := `SELECT EXISTS (SELECT 1 FROM transactions WHERE wallet_id = $1 AND user_id = $2)`
	if err := q.GetContext(ctx, &exists, query, walletID, userID); err != nil {
		return false, fmt.Errorf("failed to check transactions for wallet %d: %w", walletID, err)
	}
	return exists, nil
}
