// internal/api/handler/respond.go
package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"trackhub/internal/api/middleware"
	"trackhub/internal/util"
)

// DefaultTimeout is the per-request timeout applied by the router.
const DefaultTimeout = 60 * time.Second

// respondWithJSON sends a JSON response with the given status code.
func respondWithJSON(logger *slog.Logger, w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		logger.Error("Failed to marshal JSON response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_, _ = w.Write(response)
}

// respondWithError maps service errors onto HTTP status codes.
func respondWithError(logger *slog.Logger, w http.ResponseWriter, err error) {
	statusCode := http.StatusInternalServerError
	message := "Internal server error"

	switch {
	case util.IsError(err, util.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		message = err.Error()
	case util.IsError(err, util.ErrSameWalletTransfer):
		statusCode = http.StatusBadRequest
		message = "Cannot transfer to the same wallet"
	case util.IsError(err, util.ErrWalletInUse):
		statusCode = http.StatusBadRequest
		message = "Wallet still has transactions or transfers"
	case util.IsError(err, util.ErrInsufficientFunds):
		statusCode = http.StatusPaymentRequired // 402 Payment Required
		message = "Insufficient funds"
	case util.IsError(err, util.ErrNotFound), util.IsError(err, util.ErrWalletNotFound), util.IsError(err, util.ErrUserNotFound):
		statusCode = http.StatusNotFound
		message = "Resource not found"
	case util.IsError(err, util.ErrCompensationFailed):
		// The mutation failed and its rollback could not be completed;
		// balances may need manual reconciliation.
		message = "Operation failed and could not be fully rolled back"
		logger.Error("Compensation failure surfaced to client", "error", err)
	default:
		logger.Error("Unhandled service error", "error", err)
	}

	respondWithJSON(logger, w, statusCode, map[string]string{"error": message})
}

// userID extracts the authenticated tenant from the request context. The
// auth middleware guarantees it is present on protected routes.
func userID(logger *slog.Logger, w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		respondWithJSON(logger, w, http.StatusUnauthorized, map[string]string{"error": "unauthorized"})
		return 0, false
	}
	return id, true
}

// pathID parses a numeric URL parameter.
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(r, name), 10, 64)
	if err != nil || id <= 0 {
		return 0, util.ErrInvalidInput
	}
	return id, nil
}

// pagination parses limit/offset query parameters with sane defaults.
func pagination(r *http.Request) (limit, offset int) {
	limit = 50
	offset = 0
	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	if v := r.URL.Query().Get("offset"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			offset = n
		}
	}
	return limit, offset
}

// parseDate accepts both RFC 3339 timestamps and plain dates from UI forms.
func parseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Now().UTC(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.DateOnly, s)
	if err != nil {
		return time.Time{}, util.ErrInvalidInput
	}
	return t, nil
}
