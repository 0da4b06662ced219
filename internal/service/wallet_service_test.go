// internal/service/wallet_service_test.go
package service

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"trackhub/internal/util"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestWalletService() (WalletService, *MockWalletRepository, *MockTransactionRepository, *MockTransferRepository) {
	wallets := new(MockWalletRepository)
	txs := new(MockTransactionRepository)
	transfers := new(MockTransferRepository)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewWalletService(new(MockDBExecutor), wallets, txs, transfers, logger)
	return svc, wallets, txs, transfers
}

func TestCreateWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("OK", func(t *testing.T) {
		svc, wallets, _, _ := newTestWalletService()
		wallets.On("CreateWallet", ctx, mock.Anything, mock.AnythingOfType("*domain.Wallet")).Return(nil).Once()

		wallet, err := svc.CreateWallet(ctx, testUserID, "Checking", "EUR", decimal.NewFromInt(100))
		require.NoError(t, err)
		assert.Equal(t, "Checking", wallet.Name)
		assert.True(t, wallet.Balance.Equal(decimal.NewFromInt(100)))
	})

	t.Run("RejectsEmptyName", func(t *testing.T) {
		svc, wallets, _, _ := newTestWalletService()

		_, err := svc.CreateWallet(ctx, testUserID, "", "EUR", decimal.Zero)
		assert.ErrorIs(t, err, util.ErrInvalidInput)
		wallets.AssertNotCalled(t, "CreateWallet", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RejectsNegativeOpeningBalance", func(t *testing.T) {
		svc, _, _, _ := newTestWalletService()

		_, err := svc.CreateWallet(ctx, testUserID, "Checking", "EUR", decimal.NewFromInt(-1))
		assert.ErrorIs(t, err, util.ErrInvalidInput)
	})
}

func TestDeleteWallet(t *testing.T) {
	ctx := context.Background()

	t.Run("OK", func(t *testing.T) {
		svc, wallets, txs, transfers := newTestWalletService()
		wallets.On("GetWalletByID", ctx, mock.Anything, testUserID, int64(1)).Return(testWallet(1, 0), nil).Once()
		txs.On("ExistsByWalletID", ctx, mock.Anything, testUserID, int64(1)).Return(false, nil).Once()
		transfers.On("ExistsByWalletID", ctx, mock.Anything, testUserID, int64(1)).Return(false, nil).Once()
		wallets.On("DeleteWallet", ctx, mock.Anything, testUserID, int64(1)).Return(nil).Once()

		require.NoError(t, svc.DeleteWallet(ctx, testUserID, 1))
		wallets.AssertExpectations(t)
	})

	t.Run("RefusedWhileTransactionsExist", func(t *testing.T) {
		svc, wallets, txs, _ := newTestWalletService()
		wallets.On("GetWalletByID", ctx, mock.Anything, testUserID, int64(1)).Return(testWallet(1, 0), nil).Once()
		txs.On("ExistsByWalletID", ctx, mock.Anything, testUserID, int64(1)).Return(true, nil).Once()

		err := svc.DeleteWallet(ctx, testUserID, 1)
		assert.ErrorIs(t, err, util.ErrWalletInUse)
		wallets.AssertNotCalled(t, "DeleteWallet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("RefusedWhileTransfersExist", func(t *testing.T) {
		svc, wallets, txs, transfers := newTestWalletService()
		wallets.On("GetWalletByID", ctx, mock.Anything, testUserID, int64(1)).Return(testWallet(1, 0), nil).Once()
		txs.On("ExistsByWalletID", ctx, mock.Anything, testUserID, int64(1)).Return(false, nil).Once()
		transfers.On("ExistsByWalletID", ctx, mock.Anything, testUserID, int64(1)).Return(true, nil).Once()

		err := svc.DeleteWallet(ctx, testUserID, 1)
		assert.ErrorIs(t, err, util.ErrWalletInUse)
		wallets.AssertNotCalled(t, "DeleteWallet", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc, wallets, _, _ := newTestWalletService()
		wallets.On("GetWalletByID", ctx, mock.Anything, testUserID, int64(9)).Return(nil, util.ErrNotFound).Once()

		err := svc.DeleteWallet(ctx, testUserID, 9)
		assert.ErrorIs(t, err, util.ErrWalletNotFound)
	})
}
