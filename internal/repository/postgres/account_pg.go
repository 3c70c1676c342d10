// internal/repository/postgres/account_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"bankledger/internal/domain"
	"bankledger/internal/repository"
	"bankledger/internal/util"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

const accountColumns = `id, user_id, bank_name, bank_account_number, balance, created_at, updated_at`

// AccountRepository implements repository.AccountRepository for PostgreSQL.
type AccountRepository struct {
	// Stateless; methods receive a DBExecutor directly.
}

// NewAccountRepository creates a new AccountRepository.
func NewAccountRepository(db *sqlx.DB) repository.AccountRepository {
	return &AccountRepository{}
}

// CreateAccount inserts a new account into the database using the provided DBExecutor.
func (r *AccountRepository) CreateAccount(ctx context.Context, q repository.DBExecutor, account *domain.Account) error {
	query := `INSERT INTO bank_accounts (user_id, bank_name, bank_account_number, balance, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		account.UserID,
		account.BankName,
		account.AccountNumber,
		account.Balance,
		account.CreatedAt,
		account.UpdatedAt,
	).Scan(&account.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrDuplicateAccountNum
		}
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// GetAccountByID retrieves an account by its internal ID.
func (r *AccountRepository) GetAccountByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Account, error) {
	var account domain.Account
	query := `SELECT ` + accountColumns + ` FROM bank_accounts WHERE id = $1`
	err := q.GetContext(ctx, &account, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account by ID %d: %w", id, err)
	}
	return &account, nil
}

// GetAccountByNumber retrieves an account by its external account number.
func (r *AccountRepository) GetAccountByNumber(ctx context.Context, q repository.DBExecutor, number string) (*domain.Account, error) {
	var account domain.Account
	query := `SELECT ` + accountColumns + ` FROM bank_accounts WHERE bank_account_number = $1`
	err := q.GetContext(ctx, &account, query, number)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get account by number '%s': %w", number, err)
	}
	return &account, nil
}

// GetAccountByNumberForUpdate retrieves an account by number with a row-level
// lock, serializing concurrent transfers that touch the same account. The
// lock is held until the surrounding transaction commits or rolls back.
func (r *AccountRepository) GetAccountByNumberForUpdate(ctx context.Context, q repository.DBExecutor, number string) (*domain.Account, error) {
	var account domain.Account
	query := `SELECT ` + accountColumns + ` FROM bank_accounts WHERE bank_account_number = $1 FOR UPDATE`
	err := q.GetContext(ctx, &account, query, number)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to lock account by number '%s': %w", number, err)
	}
	return &account, nil
}

// ListAccounts retrieves all accounts using the provided DBExecutor.
func (r *AccountRepository) ListAccounts(ctx context.Context, q repository.DBExecutor) ([]domain.Account, error) {
	accounts := []domain.Account{}
	query := `SELECT ` + accountColumns + ` FROM bank_accounts ORDER BY id`
	if err := q.SelectContext(ctx, &accounts, query); err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	return accounts, nil
}

// UpdateAccountBalance applies a signed delta to an account's balance.
func (r *AccountRepository) UpdateAccountBalance(ctx context.Context, q repository.DBExecutor, accountID int64, delta decimal.Decimal) error {
	query := `UPDATE bank_accounts SET balance = balance + $1, updated_at = $2 WHERE id = $3`
	result, err := q.ExecContext(ctx, query, delta, time.Now().UTC(), accountID)
	if err != nil {
		return fmt.Errorf("failed to update balance for account %d: %w", accountID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating account %d: %w", accountID, err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("no rows affected when updating balance for account %d: %w", accountID, util.ErrAccountNotFound)
	}
	return nil
}
