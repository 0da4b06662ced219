// internal/service/wallet_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"

	"trackhub/internal/domain"
	"trackhub/internal/repository"
	"trackhub/internal/util"

	"github.com/shopspring/decimal"
)

// WalletService defines the interface for wallet management and history reads.
type WalletService interface {
	CreateWallet(ctx context.Context, userID int64, name, currency string, openingBalance decimal.Decimal) (*domain.Wallet, error)
	GetWallet(ctx context.Context, userID, walletID int64) (*domain.Wallet, error)
	ListWallets(ctx context.Context, userID int64) ([]domain.Wallet, error)
	DeleteWallet(ctx context.Context, userID, walletID int64) error

	GetTransactionHistory(ctx context.Context, userID, walletID int64, limit, offset int) ([]domain.Transaction, int64, error)
	GetTransferHistory(ctx context.Context, userID int64, limit, offset int) ([]domain.Transfer, int64, error)
}

// walletService implements the WalletService interface.
type walletService struct {
	db           repository.DBExecutor
	walletRepo   repository.WalletRepository
	txRepo       repository.TransactionRepository
	transferRepo repository.TransferRepository
	logger       *slog.Logger
}

// NewWalletService creates a new instance of WalletService.
func NewWalletService(
	db repository.DBExecutor,
	walletRepo repository.WalletRepository,
	txRepo repository.TransactionRepository,
	transferRepo repository.TransferRepository,
	logger *slog.Logger,
) WalletService {
	return &walletService{
		db:           db,
		walletRepo:   walletRepo,
		txRepo:       txRepo,
		transferRepo: transferRepo,
		logger:       logger,
	}
}

// CreateWallet creates a wallet with an optional opening balance.
func (s *walletService) CreateWallet(ctx context.Context, userID int64, name, currency string, openingBalance decimal.Decimal) (*domain.Wallet, error) {
	if name == "" || currency == "" {
		return nil, fmt.Errorf("name and currency are required: %w", util.ErrInvalidInput)
	}
	if openingBalance.IsNegative() {
		return nil, fmt.Errorf("opening balance cannot be negative: %w", util.ErrInvalidInput)
	}

	wallet := domain.NewWallet(userID, name, currency, openingBalance)
	if err := s.walletRepo.CreateWallet(ctx, s.db, wallet); err != nil {
		return nil, fmt.Errorf("create wallet: %w", err)
	}

	s.logger.Info("wallet created", "wallet_id", wallet.ID, "user_id", userID)
	return wallet, nil
}

// GetWallet retrieves a wallet owned by the user.
func (s *walletService) GetWallet(ctx context.Context, userID, walletID int64) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetWalletByID(ctx, s.db, userID, walletID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrWalletNotFound
		}
		return nil, fmt.Errorf("get wallet: %w", err)
	}
	return wallet, nil
}

// ListWallets retrieves all wallets owned by the user.
func (s *walletService) ListWallets(ctx context.Context, userID int64) ([]domain.Wallet, error) {
	wallets, err := s.walletRepo.ListWalletsByUserID(ctx, s.db, userID)
	if err != nil {
		return nil, fmt.Errorf("list wallets: %w", err)
	}
	return wallets, nil
}

// DeleteWallet removes a wallet. Deletion is refused while transactions or
// transfers still reference the wallet, so history and balances stay
// explainable.
func (s *walletService) DeleteWallet(ctx context.Context, userID, walletID int64) error {
	if _, err := s.GetWallet(ctx, userID, walletID); err != nil {
		return err
	}

	hasTransactions, err := s.txRepo.ExistsByWalletID(ctx, s.db, userID, walletID)
	if err != nil {
		return fmt.Errorf("delete wallet: %w", err)
	}
	hasTransfers, err := s.transferRepo.ExistsByWalletID(ctx, s.db, userID, walletID)
	if err != nil {
		return fmt.Errorf("delete wallet: %w", err)
	}
	if hasTransactions || hasTransfers {
		return util.ErrWalletInUse
	}

	if err := s.walletRepo.DeleteWallet(ctx, s.db, userID, walletID); err != nil {
		return fmt.Errorf("delete wallet: %w", err)
	}

	s.logger.Info("wallet deleted", "wallet_id", walletID, "user_id", userID)
	return nil
}

// GetTransactionHistory retrieves a paginated list of transactions for a wallet.
func (s *walletService) GetTransactionHistory(ctx context.Context, userID, walletID int64, limit, offset int) ([]domain.Transaction, int64, error) {
	if _, err := s.GetWallet(ctx, userID, walletID); err != nil {
		return nil, 0, err
	}

	transactions, totalCount, err := s.txRepo.GetTransactionsByWalletID(ctx, s.db, userID, walletID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve transaction history: %w", err)
	}
	return transactions, totalCount, nil
}

// GetTransferHistory retrieves a paginated list of the user's transfers.
func (s *walletService) GetTransferHistory(ctx context.Context, userID int64, limit, offset int) ([]domain.Transfer, int64, error) {
	transfers, totalCount, err := s.transferRepo.GetTransfersByUserID(ctx, s.db, userID, limit, offset)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to retrieve transfer history: %w", err)
	}
	return transfers, totalCount, nil
}
