// internal/api/handler/transfer.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"trackhub/internal/api/types"
	"trackhub/internal/domain"
	"trackhub/internal/service"
	"trackhub/internal/util"
)

// TransferHandler handles HTTP requests mutating and listing transfers.
type TransferHandler struct {
	ledger  service.LedgerService
	wallets service.WalletService
	logger  *slog.Logger
}

// NewTransferHandler creates a new TransferHandler.
func NewTransferHandler(ledger service.LedgerService, wallets service.WalletService, logger *slog.Logger) *TransferHandler {
	return &TransferHandler{ledger: ledger, wallets: wallets, logger: logger}
}

// TransferRequest represents the request body for transfer create/update.
type TransferRequest struct {
	FromWalletID int64           `json:"from_wallet_id"`
	ToWalletID   int64           `json:"to_wallet_id"`
	Amount       decimal.Decimal `json:"amount"`
	Description  string          `json:"description"`
	Reference    string          `json:"reference"`
	Date         string          `json:"date"`
}

func (req *TransferRequest) toParams() (service.TransferParams, error) {
	date, err := parseDate(req.Date)
	if err != nil {
		return service.TransferParams{}, err
	}
	reference := uuid.Nil
	if req.Reference != "" {
		if reference, err = uuid.Parse(req.Reference); err != nil {
			return service.TransferParams{}, util.ErrInvalidInput
		}
	}
	return service.TransferParams{
		FromWalletID: req.FromWalletID,
		ToWalletID:   req.ToWalletID,
		Amount:       req.Amount,
		Description:  req.Description,
		Reference:    reference,
		Date:         date,
	}, nil
}

// Create handles transfer creation.
// POST /transfers
func (h *TransferHandler) Create(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(h.logger, w, r)
	if !ok {
		return
	}

	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	params, err := req.toParams()
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	transfer, err := h.ledger.CreateTransfer(r.Context(), uid, params)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusCreated, transfer)
}

// Update handles transfer edits, including re-pointing either wallet.
// PUT /transfers/{transferID}
func (h *TransferHandler) Update(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(h.logger, w, r)
	if !ok {
		return
	}
	transferID, err := pathID(r, "transferID")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	var req TransferRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondWithError(h.logger, w, util.ErrInvalidInput)
		return
	}
	params, err := req.toParams()
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	transfer, err := h.ledger.UpdateTransfer(r.Context(), uid, transferID, params)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, transfer)
}

// Delete handles transfer deletion.
// DELETE /transfers/{transferID}
func (h *TransferHandler) Delete(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(h.logger, w, r)
	if !ok {
		return
	}
	transferID, err := pathID(r, "transferID")
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	if err := h.ledger.DeleteTransfer(r.Context(), uid, transferID); err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, map[string]string{"message": "Transfer deleted"})
}

// List handles paginated transfer history for the user.
// GET /transfers
func (h *TransferHandler) List(w http.ResponseWriter, r *http.Request) {
	uid, ok := userID(h.logger, w, r)
	if !ok {
		return
	}
	limit, offset := pagination(r)

	transfers, totalCount, err := h.wallets.GetTransferHistory(r.Context(), uid, limit, offset)
	if err != nil {
		respondWithError(h.logger, w, err)
		return
	}

	respondWithJSON(h.logger, w, http.StatusOK, types.PaginatedResponse[domain.Transfer]{
		Data:       transfers,
		Limit:      limit,
		Offset:     offset,
		TotalCount: totalCount,
	})
}
