// internal/util/errors.go
package util

import "errors"

// Common application-specific errors.
var (
	ErrInvalidInput = errors.New("invalid input provided")
	ErrNotFound     = errors.New("resource not found")

	ErrUserNotFound        = errors.New("user not found")
	ErrAccountNotFound     = errors.New("account not found")
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrInsufficientFunds intentionally covers both "source account does not
	// exist" and "source balance too low" so the transfer endpoint never
	// reveals whether an account number is in use.
	ErrInsufficientFunds   = errors.New("insufficient funds or source account not found")
	ErrDestinationNotFound = errors.New("destination account not found")
	ErrDuplicateAccountNum = errors.New("bank account number already exists")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrInvalidCredentials  = errors.New("user or password not found")
)

// IsError reports whether err wraps target.
func IsError(err, target error) bool {
	return errors.Is(err, target)
}
