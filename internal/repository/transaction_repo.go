// internal/repository/transaction_repo.go
package repository

import (
	"context"

	"bankledger/internal/domain"
)

// TransactionRepository defines the interface for transaction data operations.
type TransactionRepository interface {
	// CreateTransaction adds a new transaction record using the provided DBExecutor.
	CreateTransaction(ctx context.Context, q DBExecutor, transaction *domain.Transaction) error
	// GetTransactionByID retrieves a transaction with its source and
	// destination account snapshots joined in.
	GetTransactionByID(ctx context.Context, q DBExecutor, id int64) (*domain.Transaction, error)
	// ListTransactions retrieves all transactions with joined account data,
	// in insertion order.
	ListTransactions(ctx context.Context, q DBExecutor) ([]domain.Transaction, error)
	// DeleteTransactionByID removes a transaction row. It does not touch
	// account balances.
	DeleteTransactionByID(ctx context.Context, q DBExecutor, id int64) error
}
