// internal/repository/account_repo.go
package repository

import (
	"context"

	"bankledger/internal/domain"

	"github.com/shopspring/decimal"
)

// AccountRepository defines the interface for bank account data operations.
type AccountRepository interface {
	// CreateAccount adds a new account to the database using the provided DBExecutor.
	CreateAccount(ctx context.Context, q DBExecutor, account *domain.Account) error
	// GetAccountByID retrieves an account by its internal ID.
	GetAccountByID(ctx context.Context, q DBExecutor, id int64) (*domain.Account, error)
	// GetAccountByNumber retrieves an account by its external account number.
	GetAccountByNumber(ctx context.Context, q DBExecutor, number string) (*domain.Account, error)
	// GetAccountByNumberForUpdate retrieves an account by number and takes a
	// row-level lock on it for the duration of the surrounding transaction.
	// Must be called with a DBExecutor backed by an open transaction.
	GetAccountByNumberForUpdate(ctx context.Context, q DBExecutor, number string) (*domain.Account, error)
	// ListAccounts retrieves all accounts.
	ListAccounts(ctx context.Context, q DBExecutor) ([]domain.Account, error)
	// UpdateAccountBalance applies a signed delta to an account's balance.
	UpdateAccountBalance(ctx context.Context, q DBExecutor, accountID int64, delta decimal.Decimal) error
}
