// internal/service/account_service.go
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

// AccountService handles account opening and lookups.
type AccountService interface {
	// Open creates a new account for an existing user with a not-yet-used
	// account number and an opening balance.
	Open(ctx context.Context, userID int64, bankName, accountNumber string, balance decimal.Decimal) (*domain.Account, error)
	// Get returns an account by its internal ID.
	Get(ctx context.Context, id int64) (*domain.Account, error)
	// List returns all accounts.
	List(ctx context.Context) ([]domain.Account, error)
}

type accountService struct {
	dbBeginner  db.DBTxBeginner
	dbExecutor  repository.DBExecutor
	userRepo    repository.UserRepository
	accountRepo repository.AccountRepository
	beginTx     db.BeginTxFunc
	commitTx    db.CommitTxFunc
	rollbackTx  db.RollbackTxFunc
}

// NewAccountService creates a new instance of AccountService.
func NewAccountService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	accountRepo repository.AccountRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) AccountService {
	return &accountService{
		dbBeginner:  dbBeginner,
		dbExecutor:  dbExecutor,
		userRepo:    userRepo,
		accountRepo: accountRepo,
		beginTx:     beginTx,
		commitTx:    commitTx,
		rollbackTx:  rollbackTx,
	}
}

// Open creates a new account. The owning user must exist and the account
// number must be unused. The unique index on bank_account_number backs the
// pre-check against concurrent opens with the same number.
func (s *accountService) Open(ctx context.Context, userID int64, bankName, accountNumber string, balance decimal.Decimal) (*domain.Account, error) {
	if userID <= 0 || bankName == "" || accountNumber == "" {
		return nil, util.ErrInvalidInput
	}
	if balance.IsNegative() {
		return nil, util.ErrInvalidInput
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("open account: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("open account: transaction controller does not implement DBExecutor")
	}

	if _, err := s.userRepo.GetUserByID(ctx, txExecutor, userID); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("open account: failed to check user %d: %w", userID, err)
	}

	_, err = s.accountRepo.GetAccountByNumber(ctx, txExecutor, accountNumber)
	if err == nil {
		return nil, util.ErrDuplicateAccountNum
	}
	if !util.IsError(err, util.ErrNotFound) {
		return nil, fmt.Errorf("open account: failed to check account number '%s': %w", accountNumber, err)
	}

	account := domain.NewAccount(userID, bankName, accountNumber, balance)
	if err := s.accountRepo.CreateAccount(ctx, txExecutor, account); err != nil {
		if util.IsError(err, util.ErrDuplicateAccountNum) {
			return nil, util.ErrDuplicateAccountNum
		}
		return nil, fmt.Errorf("open account: failed to create account: %w", err)
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("open account: failed to commit transaction: %w", err)
	}

	return account, nil
}

// Get returns an account by its internal ID.
func (s *accountService) Get(ctx context.Context, id int64) (*domain.Account, error) {
	account, err := s.accountRepo.GetAccountByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrAccountNotFound
		}
		return nil, fmt.Errorf("get account: %w", err)
	}
	return account, nil
}

// List returns all accounts.
func (s *accountService) List(ctx context.Context) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	return accounts, nil
}
