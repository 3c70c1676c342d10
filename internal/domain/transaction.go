// internal/domain/transaction.go
package domain

import (
	"time"

	"github.com/shopspring/decimal" // For precise monetary calculations
)

// Transaction is the immutable record of a completed transfer between two
// accounts. Deleting a transaction does not reverse the balance effects it
// applied at creation time.
type Transaction struct {
	ID                   int64           `db:"id" json:"id"`                                       // Primary key, BIGSERIAL in DB
	Amount               decimal.Decimal `db:"amount" json:"amount"`                               // Transferred amount, always > 0
	SourceAccountID      int64           `db:"source_account_id" json:"source_account_id"`         // Debited account
	DestinationAccountID int64           `db:"destination_account_id" json:"destination_account_id"` // Credited account
	CreatedAt            time.Time       `db:"created_at" json:"created_at"`

	// Account snapshots joined in on reads; nil on the create path.
	SourceAccount      *Account `db:"-" json:"sourceAccount,omitempty"`
	DestinationAccount *Account `db:"-" json:"destinationAccount,omitempty"`
}

// NewTransaction creates a new Transaction instance linking two accounts.
func NewTransaction(sourceAccountID, destinationAccountID int64, amount decimal.Decimal) *Transaction {
	return &Transaction{
		Amount:               amount,
		SourceAccountID:      sourceAccountID,
		DestinationAccountID: destinationAccountID,
		CreatedAt:            time.Now().UTC(),
	}
}
