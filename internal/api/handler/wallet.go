// internal/api/handler/wallet.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"trackhub/internal/api/types"
	"trackhub/internal/domain"
	"trackhub/internal/service"
	"trackhub/internal/util"
)

// WalletHandler handles HTTP requests related to wallet management.
type WalletHandler struct {
	service service.WalletService
	logger  *slog.Logger
}

// NewWalletHandler creates a new WalletHandler.
func NewWalletHandler(svc service.WalletService, logger *slog.Logger) *WalletHandler {
	return &WalletHandler{service: svc, logger: logger}
}

// CreateWalletRequest represents the request body for wallet creation.
type CreateWalletRequest struct {
	Name           string          `json:"name"`
	Currency       string          `json:"currency"`
	OpeningBalance decimal.Decimal `json:"opening_balance"`
}

// Create handles wallet creation.
// POST /wallets
func (h *WalletHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(h.logger, w, r)
	if !ok {
		return
	}

	var req CreateWalletRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}

	wallet, err := h.service.CreateWallet(r.Context(), uid, req.Name, req.Currency, req.OpeningBalance)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, wallet)
}

// List handles listing the user's wallets.
// GET /wallets
func (h *WalletHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(h.logger, w, r)
	if !ok {
		return
	}

	wallets, err := h.service.ListWallets(r.Context(), uid)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, wallets)
}

// Get handles fetching a single wallet.
// GET /wallets/{walletID}
func (h *WalletHandler) Get(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(h.logger, w, r)
	if !ok {
		return
	}
	walletID, err := pathID(r, "walletID")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	wallet, err := h.service.GetWallet(r.Context(), uid, walletID)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, wallet)
}

// Delete handles wallet deletion.
// DELETE /wallets/{walletID}
func (h *WalletHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(h.logger, w, r)
	if !ok {
		return
	}
	walletID, err := pathID(r, "walletID")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	if err := h.service.DeleteWallet(r.Context(), uid, walletID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]string{"message": "Wallet deleted"})
}

// GetTransactionHistory handles paginated transaction history for a wallet.
// GET /wallets/{walletID}/transactions
func (h *WalletHandler) GetTransactionHistory(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(h.logger, w, r)
	if !ok {
		return
	}
	walletID, err := pathID(r, "walletID")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}
	limit, offset := pagination(r)

	transactions, totalCount, err := h.service.GetTransactionHistory(r.Context(), uid, walletID, limit, offset)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.PaginatedResponse[domain.Transaction]{
		Data:       transactions,
		Limit:      limit,
		Offset:     offset,
		TotalCount: totalCount,
	})
}
