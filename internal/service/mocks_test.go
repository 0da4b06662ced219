// internal/service/mocks_test.go
package service

import (
	"context"
	"database/sql"

	"trackhub/internal/domain"
	"trackhub/internal/repository"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// MockDBExecutor is a mock implementation of repository.DBExecutor.
type MockDBExecutor struct {
	mock.Mock
}

func (m *MockDBExecutor) GetContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) SelectContext(ctx context.Context, dest interface{}, query string, args ...interface{}) error {
	argsCalled := m.Called(ctx, dest, query, args)
	return argsCalled.Error(0)
}

func (m *MockDBExecutor) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	argsCalled := m.Called(ctx, query, args)
	return argsCalled.Get(0).(sql.Result), argsCalled.Error(1)
}

func (m *MockDBExecutor) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	m.Called(ctx, query, args)
	return &sql.Row{}
}

// MockWalletRepository is a mock implementation of repository.WalletRepository.
type MockWalletRepository struct {
	mock.Mock
}

func (m *MockWalletRepository) CreateWallet(ctx context.Context, q repository.DBExecutor, wallet *domain.Wallet) error {
	args := m.Called(ctx, q, wallet)
	return args.Error(0)
}

func (m *MockWalletRepository) GetWalletByID(ctx context.Context, q repository.DBExecutor, userID, walletID int64) (*domain.Wallet, error) {
	args := m.Called(ctx, q, userID, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) ListWalletsByUserID(ctx context.Context, q repository.DBExecutor, userID int64) ([]domain.Wallet, error) {
	args := m.Called(ctx, q, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Wallet), args.Error(1)
}

func (m *MockWalletRepository) AdjustBalance(ctx context.Context, q repository.DBExecutor, walletID int64, delta decimal.Decimal) error {
	args := m.Called(ctx, q, walletID, delta)
	return args.Error(0)
}

func (m *MockWalletRepository) DebitBalance(ctx context.Context, q repository.DBExecutor, walletID int64, amount decimal.Decimal) error {
	args := m.Called(ctx, q, walletID, amount)
	return args.Error(0)
}

func (m *MockWalletRepository) DeleteWallet(ctx context.Context, q repository.DBExecutor, userID, walletID int64) error {
	args := m.Called(ctx, q, userID, walletID)
	return args.Error(0)
}

// MockTransactionRepository is a mock implementation of repository.TransactionRepository.
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) CreateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	args := m.Called(ctx, q, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetTransactionByID(ctx context.Context, q repository.DBExecutor, userID, transactionID int64) (*domain.Transaction, error) {
	args := m.Called(ctx, q, userID, transactionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transaction), args.Error(1)
}

func (m *MockTransactionRepository) UpdateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	args := m.Called(ctx, q, transaction)
	return args.Error(0)
}

func (m *MockTransactionRepository) DeleteTransaction(ctx context.Context, q repository.DBExecutor, userID, transactionID int64) error {
	args := m.Called(ctx, q, userID, transactionID)
	return args.Error(0)
}

func (m *MockTransactionRepository) GetTransactionsByWalletID(ctx context.Context, q repository.DBExecutor, userID, walletID int64, limit, offset int) ([]domain.Transaction, int64, error) {
	args := m.Called(ctx, q, userID, walletID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Transaction), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransactionRepository) ExistsByWalletID(ctx context.Context, q repository.DBExecutor, userID, walletID int64) (bool, error) {
	args := m.Called(ctx, q, userID, walletID)
	return args.Bool(0), args.Error(1)
}

// MockTransferRepository is a mock implementation of repository.TransferRepository.
type MockTransferRepository struct {
	mock.Mock
}

func (m *MockTransferRepository) CreateTransfer(ctx context.Context, q repository.DBExecutor, transfer *domain.Transfer) error {
	args := m.Called(ctx, q, transfer)
	return args.Error(0)
}

func (m *MockTransferRepository) GetTransferByID(ctx context.Context, q repository.DBExecutor, userID, transferID int64) (*domain.Transfer, error) {
	args := m.Called(ctx, q, userID, transferID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockTransferRepository) UpdateTransfer(ctx context.Context, q repository.DBExecutor, transfer *domain.Transfer) error {
	args := m.Called(ctx, q, transfer)
	return args.Error(0)
}

func (m *MockTransferRepository) DeleteTransfer(ctx context.Context, q repository.DBExecutor, userID, transferID int64) error {
	args := m.Called(ctx, q, userID, transferID)
	return args.Error(0)
}

func (m *MockTransferRepository) GetTransfersByUserID(ctx context.Context, q repository.DBExecutor, userID int64, limit, offset int) ([]domain.Transfer, int64, error) {
	args := m.Called(ctx, q, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]domain.Transfer), args.Get(1).(int64), args.Error(2)
}

func (m *MockTransferRepository) ExistsByWalletID(ctx context.Context, q repository.DBExecutor, userID, walletID int64) (bool, error) {
	args := m.Called(ctx, q, userID, walletID)
	return args.Bool(0), args.Error(1)
}

// decimalArg matches a decimal.Decimal by numeric value rather than internal
// representation.
func decimalArg(expected decimal.Decimal) interface{} {
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(expected) })
}
