// internal/service/ledger_service.go
package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"trackhub/internal/domain"
	"trackhub/internal/repository"
	"trackhub/internal/util"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// LedgerService keeps each wallet's stored balance consistent with the net
// effect of its transactions and transfers. The store offers only
// independent per-record writes, so every mutation runs as an explicit saga:
// validate, write the domain record, reconcile balances, and on any write
// failure compensate the already-applied writes in reverse order.
type LedgerService interface {
	CreateTransaction(ctx context.Context, userID int64, params TransactionParams) (*domain.Transaction, error)
	UpdateTransaction(ctx context.Context, userID, transactionID int64, params TransactionParams) (*domain.Transaction, error)
	DeleteTransaction(ctx context.Context, userID, transactionID int64) error

	CreateTransfer(ctx context.Context, userID int64, params TransferParams) (*domain.Transfer, error)
	UpdateTransfer(ctx context.Context, userID, transferID int64, params TransferParams) (*domain.Transfer, error)
	DeleteTransfer(ctx context.Context, userID, transferID int64) error
}

// TransactionParams carries the mutation intent for a transaction.
type TransactionParams struct {
	WalletID   int64
	CategoryID *int64
	Type       domain.TransactionType
	Reason     string
	Amount     decimal.Decimal
	Date       time.Time
}

// TransferParams carries the mutation intent for a transfer.
type TransferParams struct {
	FromWalletID int64
	ToWalletID   int64
	Amount       decimal.Decimal
	Description  string
	Reference    uuid.UUID
	Date         time.Time
}

// ledgerService implements the LedgerService interface.
type ledgerService struct {
	db           repository.DBExecutor
	walletRepo   repository.WalletRepository
	txRepo       repository.TransactionRepository
	transferRepo repository.TransferRepository
	logger       *slog.Logger
}

// NewLedgerService creates a new instance of LedgerService.
func NewLedgerService(
	db repository.DBExecutor,
	walletRepo repository.WalletRepository,
	txRepo repository.TransactionRepository,
	transferRepo repository.TransferRepository,
	logger *slog.Logger,
) LedgerService {
	return &ledgerService{
		db:           db,
		walletRepo:   walletRepo,
		txRepo:       txRepo,
		transferRepo: transferRepo,
		logger:       logger,
	}
}

// getWallet resolves a wallet owned by the user, mapping the generic
// not-found to the wallet-specific sentinel.
func (s *ledgerService) getWallet(ctx context.Context, userID, walletID int64) (*domain.Wallet, error) {
	wallet, err := s.walletRepo.GetWalletByID(ctx, s.db, userID, walletID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrWalletNotFound
		}
		return nil, fmt.Errorf("failed to get wallet %d: %w", walletID, err)
	}
	return wallet, nil
}

// applyContribution writes a transaction's balance contribution to a wallet:
// a guarded debit for expenses, a plain credit for income.
func (s *ledgerService) applyContribution(ctx context.Context, walletID int64, txType domain.TransactionType, amount decimal.Decimal) error {
	if txType == domain.TransactionTypeExpense {
		return s.walletRepo.DebitBalance(ctx, s.db, walletID, amount)
	}
	return s.walletRepo.AdjustBalance(ctx, s.db, walletID, amount)
}

func validateTransactionParams(params TransactionParams) error {
	if !params.Type.Valid() {
		return fmt.Errorf("unknown transaction type %q: %w", params.Type, util.ErrInvalidInput)
	}
	if params.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be positive: %w", util.ErrInvalidInput)
	}
	return nil
}

// CreateTransaction records an income or expense event and mirrors its delta
// onto the owning wallet. If the balance write fails the freshly inserted
// record is compensated away, so no orphaned transaction survives.
func (s *ledgerService) CreateTransaction(ctx context.Context, userID int64, params TransactionParams) (*domain.Transaction, error) {
	if err := validateTransactionParams(params); err != nil {
		return nil, err
	}

	wallet, err := s.getWallet(ctx, userID, params.WalletID)
	if err != nil {
		return nil, fmt.Errorf("create transaction: %w", err)
	}
	if params.Type == domain.TransactionTypeExpense && wallet.Balance.LessThan(params.Amount) {
		return nil, util.ErrInsufficientFunds
	}

	transaction := domain.NewTransaction(userID, params.WalletID, params.CategoryID, params.Type, params.Reason, params.Amount, params.Date)
	if err := s.txRepo.CreateTransaction(ctx, s.db, transaction); err != nil {
		return nil, fmt.Errorf("create transaction: failed to insert record: %w", err)
	}

	sg := newSaga("create_transaction", s.logger)
	sg.onRollback("delete transaction record", func(ctx context.Context) error {
		return s.txRepo.DeleteTransaction(ctx, s.db, userID, transaction.ID)
	})

	if err := s.applyContribution(ctx, wallet.ID, params.Type, params.Amount); err != nil {
		return nil, sg.fail(ctx, fmt.Errorf("create transaction: failed to apply balance delta: %w", err))
	}

	s.logger.Info("transaction created", "transaction_id", transaction.ID, "wallet_id", wallet.ID, "type", params.Type, "amount", params.Amount)
	return transaction, nil
}

// UpdateTransaction re-points a transaction at new fields and reconciles the
// affected wallet(s): the original wallet is restored as if the transaction
// had never happened, then the new contribution is applied to the target
// wallet. The two balance writes are sequential, each guarded by a
// compensation of everything applied before it.
func (s *ledgerService) UpdateTransaction(ctx context.Context, userID, transactionID int64, params TransactionParams) (*domain.Transaction, error) {
	if err := validateTransactionParams(params); err != nil {
		return nil, err
	}

	original, err := s.txRepo.GetTransactionByID(ctx, s.db, userID, transactionID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("update transaction: %w", err)
	}

	oldDelta := original.SignedAmount()
	oldWallet, err := s.getWallet(ctx, userID, original.WalletID)
	if err != nil {
		return nil, fmt.Errorf("update transaction: %w", err)
	}
	// Balance of the original wallet as if the transaction never happened.
	restored := oldWallet.Balance.Sub(oldDelta)

	sameWallet := params.WalletID == original.WalletID
	available := restored
	if !sameWallet {
		target, err := s.getWallet(ctx, userID, params.WalletID)
		if err != nil {
			return nil, fmt.Errorf("update transaction: %w", err)
		}
		available = target.Balance
	}
	if params.Type == domain.TransactionTypeExpense && available.LessThan(params.Amount) {
		return nil, util.ErrInsufficientFunds
	}

	updated := *original
	updated.WalletID = params.WalletID
	updated.CategoryID = params.CategoryID
	updated.Type = params.Type
	updated.Reason = params.Reason
	updated.Amount = params.Amount
	updated.Date = params.Date
	updated.UpdatedAt = time.Now().UTC()

	if err := s.txRepo.UpdateTransaction(ctx, s.db, &updated); err != nil {
		return nil, fmt.Errorf("update transaction: failed to update record: %w", err)
	}

	sg := newSaga("update_transaction", s.logger)
	sg.onRollback("restore transaction record", func(ctx context.Context) error {
		return s.txRepo.UpdateTransaction(ctx, s.db, original)
	})

	// Reverse the original contribution on the original wallet.
	if err := s.walletRepo.AdjustBalance(ctx, s.db, original.WalletID, oldDelta.Neg()); err != nil {
		return nil, sg.fail(ctx, fmt.Errorf("update transaction: failed to restore original wallet: %w", err))
	}
	sg.onRollback("reapply original contribution", func(ctx context.Context) error {
		return s.walletRepo.AdjustBalance(ctx, s.db, original.WalletID, oldDelta)
	})

	// Apply the new contribution to the target wallet. When the wallet is
	// unchanged the two writes land sequentially on the same row.
	if err := s.applyContribution(ctx, params.WalletID, params.Type, params.Amount); err != nil {
		return nil, sg.fail(ctx, fmt.Errorf("update transaction: failed to apply new balance delta: %w", err))
	}

	s.logger.Info("transaction updated", "transaction_id", transactionID, "wallet_id", params.WalletID, "type", params.Type, "amount", params.Amount)
	return &updated, nil
}

// DeleteTransaction removes a transaction after reversing its contribution
// on the owning wallet. If the record delete fails the wallet is compensated
// back to its pre-reversal balance.
func (s *ledgerService) DeleteTransaction(ctx context.Context, userID, transactionID int64) error {
	transaction, err := s.txRepo.GetTransactionByID(ctx, s.db, userID, transactionID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return util.ErrNotFound
		}
		return fmt.Errorf("delete transaction: %w", err)
	}

	if _, err := s.getWallet(ctx, userID, transaction.WalletID); err != nil {
		return fmt.Errorf("delete transaction: %w", err)
	}

	delta := transaction.SignedAmount()
	if err := s.walletRepo.AdjustBalance(ctx, s.db, transaction.WalletID, delta.Neg()); err != nil {
		return fmt.Errorf("delete transaction: failed to reverse balance delta: %w", err)
	}

	sg := newSaga("delete_transaction", s.logger)
	sg.onRollback("reapply balance delta", func(ctx context.Context) error {
		return s.walletRepo.AdjustBalance(ctx, s.db, transaction.WalletID, delta)
	})

	if err := s.txRepo.DeleteTransaction(ctx, s.db, userID, transactionID); err != nil {
		return sg.fail(ctx, fmt.Errorf("delete transaction: failed to delete record: %w", err))
	}

	s.logger.Info("transaction deleted", "transaction_id", transactionID, "wallet_id", transaction.WalletID)
	return nil
}

func validateTransferParams(params TransferParams) error {
	if params.Amount.LessThanOrEqual(decimal.Zero) {
		return fmt.Errorf("amount must be positive: %w", util.ErrInvalidInput)
	}
	if params.FromWalletID == params.ToWalletID {
		return util.ErrSameWalletTransfer
	}
	return nil
}

// CreateTransfer moves an amount between two wallets of the same user as a
// three-step saga: insert the record, debit the source, credit the
// destination. Each step is guarded by a rollback of all prior steps.
func (s *ledgerService) CreateTransfer(ctx context.Context, userID int64, params TransferParams) (*domain.Transfer, error) {
	if err := validateTransferParams(params); err != nil {
		return nil, err
	}

	from, err := s.getWallet(ctx, userID, params.FromWalletID)
	if err != nil {
		return nil, fmt.Errorf("create transfer: %w", err)
	}
	if _, err := s.getWallet(ctx, userID, params.ToWalletID); err != nil {
		return nil, fmt.Errorf("create transfer: %w", err)
	}
	if from.Balance.LessThan(params.Amount) {
		return nil, util.ErrInsufficientFunds
	}

	transfer := domain.NewTransfer(userID, params.FromWalletID, params.ToWalletID, params.Amount, params.Description, params.Reference, params.Date)
	if err := s.transferRepo.CreateTransfer(ctx, s.db, transfer); err != nil {
		return nil, fmt.Errorf("create transfer: failed to insert record: %w", err)
	}

	sg := newSaga("create_transfer", s.logger)
	sg.onRollback("delete transfer record", func(ctx context.Context) error {
		return s.transferRepo.DeleteTransfer(ctx, s.db, userID, transfer.ID)
	})

	if err := s.walletRepo.DebitBalance(ctx, s.db, params.FromWalletID, params.Amount); err != nil {
		return nil, sg.fail(ctx, fmt.Errorf("create transfer: failed to debit source wallet: %w", err))
	}
	sg.onRollback("restore source balance", func(ctx context.Context) error {
		return s.walletRepo.AdjustBalance(ctx, s.db, params.FromWalletID, params.Amount)
	})

	if err := s.walletRepo.AdjustBalance(ctx, s.db, params.ToWalletID, params.Amount); err != nil {
		return nil, sg.fail(ctx, fmt.Errorf("create transfer: failed to credit destination wallet: %w", err))
	}

	s.logger.Info("transfer created", "transfer_id", transfer.ID, "from_wallet_id", params.FromWalletID, "to_wallet_id", params.ToWalletID, "amount", params.Amount)
	return transfer, nil
}

// UpdateTransfer rewrites a transfer and reconciles up to four wallets: the
// original pair is restored as if the transfer never happened, then the new
// debit and credit are applied. All four balance writes are sequential with
// per-step compensation; relative deltas compose correctly when the old and
// new wallets overlap.
func (s *ledgerService) UpdateTransfer(ctx context.Context, userID, transferID int64, params TransferParams) (*domain.Transfer, error) {
	if err := validateTransferParams(params); err != nil {
		return nil, err
	}

	original, err := s.transferRepo.GetTransferByID(ctx, s.db, userID, transferID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("update transfer: %w", err)
	}

	origFrom, err := s.getWallet(ctx, userID, original.FromWalletID)
	if err != nil {
		return nil, fmt.Errorf("update transfer: %w", err)
	}

	// Resolve the new pair too, so a dangling wallet id is rejected before
	// any write happens.
	newFrom := origFrom
	if params.FromWalletID != original.FromWalletID {
		if newFrom, err = s.getWallet(ctx, userID, params.FromWalletID); err != nil {
			return nil, fmt.Errorf("update transfer: %w", err)
		}
	}
	if _, err := s.getWallet(ctx, userID, original.ToWalletID); err != nil {
		return nil, fmt.Errorf("update transfer: %w", err)
	}
	if params.ToWalletID != original.ToWalletID {
		if _, err := s.getWallet(ctx, userID, params.ToWalletID); err != nil {
			return nil, fmt.Errorf("update transfer: %w", err)
		}
	}

	// Source balance as if the original transfer never happened.
	if params.FromWalletID == original.FromWalletID {
		originalFromRestored := origFrom.Balance.Add(original.Amount)
		if originalFromRestored.LessThan(params.Amount) {
			return nil, util.ErrInsufficientFunds
		}
	} else if newFrom.Balance.LessThan(params.Amount) {
		return nil, util.ErrInsufficientFunds
	}

	updated := *original
	updated.FromWalletID = params.FromWalletID
	updated.ToWalletID = params.ToWalletID
	updated.Amount = params.Amount
	updated.Description = params.Description
	updated.Date = params.Date
	updated.UpdatedAt = time.Now().UTC()

	if err := s.transferRepo.UpdateTransfer(ctx, s.db, &updated); err != nil {
		return nil, fmt.Errorf("update transfer: failed to update record: %w", err)
	}

	sg := newSaga("update_transfer", s.logger)
	sg.onRollback("restore transfer record", func(ctx context.Context) error {
		return s.transferRepo.UpdateTransfer(ctx, s.db, original)
	})

	if err := s.walletRepo.AdjustBalance(ctx, s.db, original.FromWalletID, original.Amount); err != nil {
		return nil, sg.fail(ctx, fmt.Errorf("update transfer: failed to restore original source: %w", err))
	}
	sg.onRollback("re-debit original source", func(ctx context.Context) error {
		return s.walletRepo.AdjustBalance(ctx, s.db, original.FromWalletID, original.Amount.Neg())
	})

	if err := s.walletRepo.AdjustBalance(ctx, s.db, original.ToWalletID, original.Amount.Neg()); err != nil {
		return nil, sg.fail(ctx, fmt.Errorf("update transfer: failed to restore original destination: %w", err))
	}
	sg.onRollback("re-credit original destination", func(ctx context.Context) error {
		return s.walletRepo.AdjustBalance(ctx, s.db, original.ToWalletID, original.Amount)
	})

	if err := s.walletRepo.DebitBalance(ctx, s.db, params.FromWalletID, params.Amount); err != nil {
		return nil, sg.fail(ctx, fmt.Errorf("update transfer: failed to debit new source: %w", err))
	}
	sg.onRollback("restore new source", func(ctx context.Context) error {
		return s.walletRepo.AdjustBalance(ctx, s.db, params.FromWalletID, params.Amount)
	})

	if err := s.walletRepo.AdjustBalance(ctx, s.db, params.ToWalletID, params.Amount); err != nil {
		return nil, sg.fail(ctx, fmt.Errorf("update transfer: failed to credit new destination: %w", err))
	}

	s.logger.Info("transfer updated", "transfer_id", transferID, "from_wallet_id", params.FromWalletID, "to_wallet_id", params.ToWalletID, "amount", params.Amount)
	return &updated, nil
}

// DeleteTransfer reverses a transfer's effect on both wallets and then
// removes the record, compensating the wallets back if a later step fails.
func (s *ledgerService) DeleteTransfer(ctx context.Context, userID, transferID int64) error {
	transfer, err := s.transferRepo.GetTransferByID(ctx, s.db, userID, transferID)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return util.ErrNotFound
		}
		return fmt.Errorf("delete transfer: %w", err)
	}

	if _, err := s.getWallet(ctx, userID, transfer.FromWalletID); err != nil {
		return fmt.Errorf("delete transfer: %w", err)
	}
	if _, err := s.getWallet(ctx, userID, transfer.ToWalletID); err != nil {
		return fmt.Errorf("delete transfer: %w", err)
	}

	if err := s.walletRepo.AdjustBalance(ctx, s.db, transfer.FromWalletID, transfer.Amount); err != nil {
		return fmt.Errorf("delete transfer: failed to restore source wallet: %w", err)
	}

	sg := newSaga("delete_transfer", s.logger)
	sg.onRollback("re-debit source wallet", func(ctx context.Context) error {
		return s.walletRepo.AdjustBalance(ctx, s.db, transfer.FromWalletID, transfer.Amount.Neg())
	})

	if err := s.walletRepo.AdjustBalance(ctx, s.db, transfer.ToWalletID, transfer.Amount.Neg()); err != nil {
		return sg.fail(ctx, fmt.Errorf("delete transfer: failed to restore destination wallet: %w", err))
	}
	sg.onRollback("re-credit destination wallet", func(ctx context.Context) error {
		return s.walletRepo.AdjustBalance(ctx, s.db, transfer.ToWalletID, transfer.Amount)
	})

	if err := s.transferRepo.DeleteTransfer(ctx, s.db, userID, transferID); err != nil {
		return sg.fail(ctx, fmt.Errorf("delete transfer: failed to delete record: %w", err))
	}

	s.logger.Info("transfer deleted", "transfer_id", transferID, "from_wallet_id", transfer.FromWalletID, "to_wallet_id", transfer.ToWalletID)
	return nil
}
