// internal/repository/postgres/wallet_pg.go
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
	"github.com/shopspring/decimal"
)

// WalletRepository implements repository.WalletRepository for PostgreSQL.
type WalletRepository struct {
	// Methods receive a DBExecutor directly.
}

// NewWalletRepository creates a new WalletRepository.
func NewWalletRepository(db *sqlx.DB) repository.WalletRepository {
	return &WalletRepository{}
}

// CreateWallet inserts a new wallet using the provided DBExecutor.
func (r *WalletRepository) CreateWallet(ctx context.Context, q repository.DBExecutor, wallet *domain.Wallet) error {
	query := `INSERT INTO wallets (user_id, name, currency, balance, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := q.QueryRowContext(ctx, query, wallet.UserID, wallet.Name, wallet.Currency, wallet.Balance, wallet.CreatedAt, wallet.UpdatedAt).Scan(&wallet.ID)
	if err != nil {
		return fmt.Errorf("failed to create wallet: %w", err)
	}
	return nil
}

// GetWalletByID retrieves a wallet owned by the given user.
func (r *WalletRepository) GetWalletByID(ctx context.Context, q repository.DBExecutor, userID, walletID int64) (*domain.Wallet, error) {
	var wallet domain.Wallet
	query := `SELECT id, user_id, name, currency, balance, created_at, updated_at
              FROM wallets WHERE id = $1 AND user_id = $2`
	err := q.GetContext(ctx, &wallet, query, walletID, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get wallet by ID %d: %w", walletID, err)
	}
	return &wallet, nil
}

// ListWalletsByUserID retrieves all wallets owned by the given user.
func (r *WalletRepository) ListWalletsByUserID(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Wallet, error) {
	wallets := []domain.Wallet{}
	query := `SELECT id, user_id, name, currency, balance, created_at, updated_at
              FROM wallets WHERE user_id = $1 ORDER BY created_at`
	if err := q.SelectContext(ctx, &wallets, query, userID); err != nil {
		return nil, fmt.Errorf("failed to list wallets for user %d: %w", userID, err)
	}
	return wallets, nil
}

// AdjustBalance applies a relative delta to a wallet balance. The arithmetic
// runs inside the statement, so two concurrent adjustments both land.
func (r *WalletRepository) AdjustBalance(ctx context.Context, q repository.DBExecutor, walletID int64, delta decimal.Decimal) error {
	query := `UPDATE wallets SET balance = balance + $1, updated_at = $2 WHERE id = $3`
	result, err := q.ExecContext(ctx, query, delta, time.Now().UTC(), walletID)
	if err != nil {
		return fmt.Errorf("failed to adjust balance for wallet %d: %w", walletID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after adjusting balance for wallet %d: %w", walletID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("adjust balance for wallet %d: %w", walletID, util.ErrWalletNotFound)
	}
	return nil
}

// DebitBalance decrements a wallet balance, guarded against going negative.
// Callers validate against a read balance first; the guard turns the residual
// read-modify-write race into a clean rejection instead of a lost update.
func (r *WalletRepository) DebitBalance(ctx context.Context, q repository.DBExecutor, walletID int64, amount decimal.Decimal) error {
	query := `UPDATE wallets SET balance = balance - $1, updated_at = $2 WHERE id = $3 AND balance >= $1`
	result, err := q.ExecContext(ctx, query, amount, time.Now().UTC(), walletID)
	if err != nil {
		return fmt.Errorf("failed to debit balance for wallet %d: %w", walletID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after debiting wallet %d: %w", walletID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("debit wallet %d: %w", walletID, util.ErrInsufficientFunds)
	}
	return nil
}

// DeleteWallet removes a wallet owned by the given user.
func (r *WalletRepository) DeleteWallet(ctx context.Context, q repository.DBExecutor, userID, walletID int64) error {
	query := `DELETE FROM wallets WHERE id = $1 AND user_id = $2`
	result, err := q.ExecContext(ctx, query, walletID, userID)
	if err != nil {
		return fmt.Errorf("failed to delete wallet %d: %w", walletID, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting wallet %d: %w", walletID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
