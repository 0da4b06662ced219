// internal/api/handler/transaction.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shopspring/decimal"

	"trackhub/internal/domain"
	"trackhub/internal/service"
	"trackhub/internal/util"
)

// TransactionHandler handles HTTP requests mutating transactions.
type TransactionHandler struct {
	ledger service.LedgerService
	logger *slog.Logger
}

// NewTransactionHandler creates a new TransactionHandler.
func NewTransactionHandler(ledger service.LedgerService, logger *slog.Logger) *TransactionHandler {
	return &TransactionHandler{ledger: ledger, logger: logger}
}

// TransactionRequest represents the request body for transaction create/update.
type TransactionRequest struct {
	WalletID   int64           `json:"wallet_id"`
	CategoryID *int64          `json:"category_id"`
	Type       string          `json:"type"`
	Reason     string          `json:"reason"`
	Amount     decimal.Decimal `json:"amount"`
	Date       string          `json:"date"`
}

func (req *TransactionRequest) toParams() (service.TransactionParams, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return service.TransactionParams{}, err
	}
	return service.TransactionParams{
		WalletID:   req.WalletID,
		CategoryID: req.CategoryID,
		Type:       domain.TransactionType(req.Type),
		Reason:     req.Reason,
		Amount:     req.Amount,
		Date:       date,
	}, nil
}

// Create handles transaction creation.
// POST /transactions
func (h *TransactionHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(h.logger, w, r)
	if !ok {
		return
	}

	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	params, err := req.toParams()
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	transaction, err := h.ledger.CreateTransaction(r.Context(), uid, params)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, transaction)
}

// Update handles transaction edits, including moves between wallets.
// PUT /transactions/{transactionID}
func (h *TransactionHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(h.logger, w, r)
	if !ok {
		return
	}
	transactionID, err := pathID(r, "transactionID")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	var req TransactionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	params, err := req.toParams()
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	transaction, err := h.ledger.UpdateTransaction(r.Context(), uid, transactionID, params)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, transaction)
}

// Delete handles transaction deletion.
// DELETE /transactions/{transactionID}
func (h *TransactionHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(h.logger, w, r)
	if !ok {
		return
	}
	transactionID, err := pathID(r, "transactionID")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	if err := h.ledger.DeleteTransaction(r.Context(), uid, transactionID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]string{"message": "Transaction deleted"})
}
