// internal/service/user_service.go
package service

import (
	"context"
	"fmt"

	"bankledger/internal/auth"
	"bankledger/internal/domain"
	"bankledger/internal/repository"
	"bankledger/internal/util"
	"bankledger/pkg/db"
)

// UserService handles user CRUD. A profile, when supplied, is created
// atomically with its user.
type UserService interface {
	Create(ctx context.Context, name, email, password string, profile *domain.Profile) (*domain.User, error)
	Get(ctx context.Context, id int64) (*domain.User, error)
	List(ctx context.Context) ([]domain.User, error)
	// Update changes the email and/or password of an existing user. Empty
	// arguments leave the corresponding field unchanged.
	Update(ctx context.Context, id int64, email, password string) (*domain.User, error)
}

type userService struct {
	dbBeginner db.DBTxBeginner
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	beginTx    db.BeginTxFunc
	commitTx   db.CommitTxFunc
	rollbackTx db.RollbackTxFunc
}

// NewUserService creates a new instance of UserService.
func NewUserService(
	dbBeginner db.DBTxBeginner,
	dbExecutor repository.DBExecutor,
	userRepo repository.UserRepository,
	beginTx db.BeginTxFunc,
	commitTx db.CommitTxFunc,
	rollbackTx db.RollbackTxFunc,
) UserService {
	return &userService{
		dbBeginner: dbBeginner,
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		beginTx:    beginTx,
		commitTx:   commitTx,
		rollbackTx: rollbackTx,
	}
}

// Create inserts a user and, when profile is non-nil, its profile in one
// database transaction.
func (s *userService) Create(ctx context.Context, name, email, password string, profile *domain.Profile) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, util.ErrInvalidInput
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("create user: failed to hash password: %w", err)
	}

	txController, err := s.beginTx(ctx, s.dbBeginner)
	if err != nil {
		return nil, fmt.Errorf("create user: failed to begin transaction: %w", err)
	}
	defer s.rollbackTx(txController)

	txExecutor, ok := txController.(repository.DBExecutor)
	if !ok {
		return nil, fmt.Errorf("create user: transaction controller does not implement DBExecutor")
	}

	user := domain.NewUser(name, email, hashedPassword)
	if err := s.userRepo.CreateUser(ctx, txExecutor, user); err != nil {
		if util.IsError(err, util.ErrDuplicateEmail) {
			return nil, util.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	if profile != nil {
		profile.UserID = user.ID
		if err := s.userRepo.CreateProfile(ctx, txExecutor, profile); err != nil {
			return nil, fmt.Errorf("create user: %w", err)
		}
		user.Profile = profile
	}

	if err := s.commitTx(txController); err != nil {
		return nil, fmt.Errorf("create user: failed to commit transaction: %w", err)
	}

	return user, nil
}

// Get returns a user with their profile joined in, if any.
func (s *userService) Get(ctx context.Context, id int64) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("get user: %w", err)
	}

	profile, err := s.userRepo.GetProfileByUserID(ctx, s.dbExecutor, id)
	if err != nil && !util.IsError(err, util.ErrNotFound) {
		return nil, fmt.Errorf("get user: failed to fetch profile: %w", err)
	}
	user.Profile = profile

	return user, nil
}

// List returns all users with their profiles joined in.
func (s *userService) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.userRepo.ListUsers(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	profiles, err := s.userRepo.ListProfiles(ctx, s.dbExecutor)
	if err != nil {
		return nil, fmt.Errorf("list users: failed to fetch profiles: %w", err)
	}

	byUser := make(map[int64]*domain.Profile, len(profiles))
	for i := range profiles {
		byUser[profiles[i].UserID] = &profiles[i]
	}
	for i := range users {
		users[i].Profile = byUser[users[i].ID]
	}

	return users, nil
}

// Update changes email and/or password on an existing user. The password is
// re-hashed when supplied.
func (s *userService) Update(ctx context.Context, id int64, email, password string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(ctx, s.dbExecutor, id)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	if email != "" {
		user.Email = email
	}
	if password != "" {
		hashedPassword, err := auth.HashPassword(password)
		if err != nil {
			return nil, fmt.Errorf("update user: failed to hash password: %w", err)
		}
		user.Password = hashedPassword
	}

	if err := s.userRepo.UpdateUser(ctx, s.dbExecutor, user); err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}
