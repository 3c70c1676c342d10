// internal/service/ledger_service.go
package service

import (
	"context"
	"fmt"

	"bankledger/internal/domain"
	"bankledger/internal/repository"
	"bankledger/internal/util"
	"bankledger/pkg/db"

	"github.com/shopspring/decimal"
)

// LedgerService orchestrates transfers between accounts and owns the
// transaction records they produce.
type LedgerService interface {
	// Transfer moves amount from the source account to the destination
	// account as one atomic unit and returns the created transaction record.
	Transfer(ctx context.Context, sourceNumber, destinationNumber string, amount decimal.Decimal) (*domain.Transaction, error)
	// GetTransaction returns a transaction with both account snapshots joined in.
	GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error)
	// ListTransactions returns all transactions with joined account data.
	ListTransactions(ctx context.Context) ([]domain.Transaction, error)
	// DeleteTransaction removes a transaction record and returns it.
	// Balance effects applied when the transaction was created are NOT
	// reversed; the row is simply gone afterwards.
	DeleteTransaction(ctx context.Context, id int64) (*domain.Transaction, error)
}

// ledgerService implements the LedgerService interface.
type ledgerService struct {
	dbBeginner      db.DBTxBeginner       // For starting transactions (e.g., *sqlx.DB)
	dbExecutor      repository.DBExecutor // For non-transactional reads (e.g., *sqlx.DB)
	accountRepo     repository.AccountRepository
	transactionRepo repository.TransactionRepository
	beginTx         db.BeginTxFunc
	commitTx        db.CommitTxFunc
	rollbackTx      db.RollbackTxFunc
}

// NewLedgerService creates a new instance of LedgerService.
func NewLedgerService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	accountRepo repository.AccountRepository,
	transactionRepo repository.TransactionRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) LedgerService {
	return &ledgerService{
		dbBeginner:      dbBeginner,
		dbExecutor:      dbExecutor,
		accountRepo:     accountRepo,
		transactionRepo: transactionRepo,
		beginTx:         beginTx,
		commitTx:        commitTx,
		rollbackTx:      rollbackTx,
	}
}

// Transfer debits the source account and credits the destination account
// inside a single database transaction. The source row is locked before the
// funds check so that concurrent transfers from the same account cannot both
// pass the check and overdraw it. Any failure rolls everything back.
//
// "Source missing" and "insufficient funds" deliberately collapse into one
// error so the endpoint does not leak whether an account number exists.
func (s *ledgerService) Transfer(ctx context.Context, sourceNumber, destinationNumber string, amount decimal.Decimal) (*domain.Transaction, error) {
	if sourceNumber == "" || destinationNumber == "" {
		return nil, util.ErrInvalidInput
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return nil, util.ErrInvalidInput
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("transfer: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("transfer: transaction controller does not implement DBExecutor")
	}

	source, err := s.accountRepo.GetAccountByNumberForUpdate(ctx, txExecutor, sourceNumber)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrInsufficientFunds
		}
		return nil, fmt.Errorf("transfer: failed to lock source account: %w", err)
	}

	if source.Balance.LessThan(amount) {
		return nil, util.ErrInsufficientFunds
	}

	// A self-transfer reuses the already held lock; locking the same row
	// twice in one transaction is a no-op but a second lookup is not needed.
	destination := source
	if destinationNumber != sourceNumber {
		destination, err = s.accountRepo.GetAccountByNumberForUpdate(ctx, txExecutor, destinationNumber)
		if err != nil {
			if util.IsError(err, util.ErrNotFound) {
				return nil, util.ErrDestinationNotFound
			}
			return nil, fmt.Errorf("transfer: failed to lock destination account: %w", err)
		}
	}

	transaction := domain.NewTransaction(source.ID, destination.ID, amount)
	if err := s.transactionRepo.CreateTransaction(ctx, txExecutor, transaction); err != nil {
		return nil, fmt.Errorf("transfer: failed to create transaction: %w", err)
	}

	if err := s.accountRepo.UpdateAccountBalance(ctx, txExecutor, source.ID, amount.Neg()); err != nil {
		return nil, fmt.Errorf("transfer: failed to debit source account %d: %w", source.ID, err)
	}

	if err := s.accountRepo.UpdateAccountBalance(ctx, txExecutor, destination.ID, amount); err != nil {
		return nil, fmt.Errorf("transfer: failed to credit destination account %d: %w", destination.ID, err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("transfer: failed to commit transaction: %w", err)
	}

	return transaction, nil
}

// GetTransaction returns a transaction with joined account snapshots.
func (s *ledgerService) GetTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	transaction, err := s.transactionRepo.GetTransactionByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("get transaction: %w", err)
	}
	return transaction, nil
}

// ListTransactions returns all transactions with joined account data.
func (s *ledgerService) ListTransactions(ctx context.Context) ([]domain.Transaction, error) {
	transactions, err := s.transactionRepo.ListTransactions(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}
	return transactions, nil
}

// DeleteTransaction fetches and removes a transaction record in one database
// transaction so the returned snapshot matches the deleted row. Account
// balances stay at their post-transfer values.
func (s *ledgerService) DeleteTransaction(ctx context.Context, id int64) (*domain.Transaction, error) {
	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("delete transaction: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("delete transaction: transaction controller does not implement DBExecutor")
	}

	transaction, err := s.transactionRepo.GetTransactionByID(ctx, txExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("delete transaction: failed to fetch transaction %d: %w", id, err)
	}

	if err := s.transactionRepo.DeleteTransactionByID(ctx, txExecutor, id); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrTransactionNotFound
		}
		return nil, fmt.Errorf("delete transaction: failed to delete transaction %d: %w", id, err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("delete transaction: failed to commit transaction: %w", err)
	}

	return transaction, nil
}
