// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrNotFound           = errors.New("resource not found")
	ErrInvalidInput       = errors.New("invalid input provided")
	ErrInsufficientFunds  = errors.New("insufficient funds")
	ErrSameWalletTransfer = errors.New("cannot transfer to the same wallet")
	ErrWalletNotFound     = errors.New("wallet not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrWalletInUse        = errors.New("wallet still has transactions or transfers")
	ErrUnauthorized       = errors.New("unauthorized")

	// ErrCompensationFailed is reported when a rollback write of a partially
	// applied mutation could not be completed within the bounded retries.
	// The affected wallet balances may have drifted from their records.
	ErrCompensationFailed = errors.New("compensation failed")
)

// IsError reports whether err matches the target sentinel error.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
