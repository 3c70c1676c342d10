// internal/domain/account.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Account represents a bank account owned by a user.
// The external bank_account_number is unique and distinct from the numeric id.
type Account struct {
	ID            int64           `db:"id" json:"id"`                                     // Primary key, BIGSERIAL in DB
	UserID        int64           `db:"user_id" json:"user_id"`                           // Foreign key to User
	BankName      string          `db:"bank_name" json:"bank_name"`                       // Name of the issuing bank
	AccountNumber string          `db:"bank_account_number" json:"bank_account_number"`   // Unique external account number
	Balance       decimal.Decimal `db:"balance" json:"balance"`                           // Current balance, NUMERIC(20, 4) in DB, never negative
	CreatedAt     time.Time       `db:"created_at" json:"created_at"`
	UpdatedAt     time.Time       `db:"updated_at" json:"updated_at"`
}

// NewAccount creates a new Account instance with an opening balance.
func NewAccount(userID int64, bankName, accountNumber string, balance decimal.Decimal) *Account {
	now := time.Now().UTC()
	return &Account{
		UserID:        userID,
		BankName:      bankName,
		AccountNumber: accountNumber,
		Balance:       balance,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
