// internal/service/auth_service.go
package service

import (
	"context"
	"fmt"

	"bankledger/internal/auth"
	"bankledger/internal/domain"
	"bankledger/internal/repository"
	"bankledger/internal/util"
)

// AuthService handles registration and token issuance.
type AuthService interface {
	// Register creates a new user from credentials.
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	// Login verifies credentials and returns a signed token. Unknown email
	// and wrong password produce the same error on purpose.
	Login(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	dbExecutor repository.DBExecutor
	userRepo   repository.UserRepository
	tokens     *auth.TokenManager
}

// NewAuthService creates a new instance of AuthService.
func NewAuthService(dbExecutor repository.DBExecutor, userRepo repository.UserRepository, tokens *auth.TokenManager) AuthService {
	return &authService{
		dbExecutor: dbExecutor,
		userRepo:   userRepo,
		tokens:     tokens,
	}
}

// Register creates a new user with a hashed password.
func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	if name == "" || email == "" || password == "" {
		return nil, util.ErrInvalidInput
	}

	_, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, email)
	if err == nil {
		return nil, util.ErrDuplicateEmail
	}
	if !util.IsError(err, util.ErrNotFound) {
		return nil, fmt.Errorf("register: failed to check existing email: %w", err)
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("register: failed to hash password: %w", err)
	}

	user := domain.NewUser(name, email, hashedPassword)
	if err := s.userRepo.CreateUser(ctx, s.dbExecutor, user); err != nil {
		if util.IsError(err, util.ErrDuplicateEmail) {
			return nil, util.ErrDuplicateEmail
		}
		return nil, fmt.Errorf("register: %w", err)
	}

	return user, nil
}

// Login verifies the credentials and issues a token carrying the user identity.
func (s *authService) Login(ctx context.Context, email, password string) (string, error) {
	if email == "" || password == "" {
		return "", util.ErrInvalidInput
	}

	user, err := s.userRepo.GetUserByEmail(ctx, s.dbExecutor, email)
	if err != nil {
		if util.IsError(err, util.ErrNotFound) {
			return "", util.ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}

	if err := auth.CheckPassword(user.Password, password); err != nil {
		return "", util.ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user.ID, user.Email)
	if err != nil {
		return "", fmt.Errorf("login: failed to sign token: %w", err)
	}

	return token, nil
}
