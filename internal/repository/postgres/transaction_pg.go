// internal/repository/postgres/transaction_pg.go
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"bankledger/internal/domain"
	"bankledger/internal/repository"
	"bankledger/internal/util"

	"github.com/jmoiron/sqlx"
)

// TransactionRepository implements repository.TransactionRepository for PostgreSQL.
type TransactionRepository struct {
	// Stateless; methods receive a DBExecutor directly.
}

// NewTransactionRepository creates a new TransactionRepository.
func NewTransactionRepository(db *sqlx.DB) repository.TransactionRepository {
	return &TransactionRepository{}
}

// transactionRow maps a transaction joined with both account snapshots.
// sqlx resolves the "source."/"destination." aliased columns into the
// embedded structs.
type transactionRow struct {
	domain.Transaction
	Source      domain.Account `db:"source"`
	Destination domain.Account `db:"destination"`
}

func (row *transactionRow) toDomain() *domain.Transaction {
	tx := row.Transaction
	source := row.Source
	destination := row.Destination
	tx.SourceAccount = &source
	tx.DestinationAccount = &destination
	return &tx
}

const joinedTransactionQuery = `
	SELECT t.id, t.amount, t.source_account_id, t.destination_account_id, t.created_at,
	       s.id AS "source.id", s.user_id AS "source.user_id", s.bank_name AS "source.bank_name",
	       s.bank_account_number AS "source.bank_account_number", s.balance AS "source.balance",
	       s.created_at AS "source.created_at", s.updated_at AS "source.updated_at",
	       d.id AS "destination.id", d.user_id AS "destination.user_id", d.bank_name AS "destination.bank_name",
	       d.bank_account_number AS "destination.bank_account_number", d.balance AS "destination.balance",
	       d.created_at AS "destination.created_at", d.updated_at AS "destination.updated_at"
	FROM transactions t
	JOIN bank_accounts s ON s.id = t.source_account_id
	JOIN bank_accounts d ON d.id = t.destination_account_id`

// CreateTransaction inserts a new transaction record using the provided DBExecutor.
func (r *TransactionRepository) CreateTransaction(ctx context.Context, q repository.DBExecutor, transaction *domain.Transaction) error {
	query := `INSERT INTO transactions (amount, source_account_id, destination_account_id, created_at)
              VALUES ($1, $2, $3, $4) RETURNING id`
	err := q.QueryRowContext(ctx, query,
		transaction.Amount,
		transaction.SourceAccountID,
		transaction.DestinationAccountID,
		transaction.CreatedAt,
	).Scan(&transaction.ID)
	if err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// GetTransactionByID retrieves a transaction with its source and destination
// account snapshots joined in.
func (r *TransactionRepository) GetTransactionByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.Transaction, error) {
	var row transactionRow
	query := joinedTransactionQuery + ` WHERE t.id = $1`
	err := q.GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get transaction by ID %d: %w", id, err)
	}
	return row.toDomain(), nil
}

// ListTransactions retrieves all transactions with joined account data,
// in insertion order.
func (r *TransactionRepository) ListTransactions(ctx context.Context, q repository.DBExecutor) ([]domain.Transaction, error) {
	rows := []transactionRow{}
	query := joinedTransactionQuery + ` ORDER BY t.id`
	if err := q.SelectContext(ctx, &rows, query); err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}

	transactions := make([]domain.Transaction, 0, len(rows))
	for i := range rows {
		transactions = append(transactions, *rows[i].toDomain())
	}
	return transactions, nil
}

// DeleteTransactionByID removes a transaction row. Account balances are left
// untouched; the balance effects applied at creation time are not reversed.
func (r *TransactionRepository) DeleteTransactionByID(ctx context.Context, q repository.DBExecutor, id int64) error {
	result, err := q.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete transaction %d: %w", id, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after deleting transaction %d: %w", id, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
