// internal/repository/user_repo.go
package repository

import (
	"context"

	"bankledger/internal/domain"
)

// UserRepository defines the interface for user and profile data operations.
type UserRepository interface {
	// CreateUser adds a new user to the database using the provided DBExecutor.
	CreateUser(ctx context.Context, q DBExecutor, user *domain.User) error
	// CreateProfile adds a profile for an existing user.
	CreateProfile(ctx context.Context, q DBExecutor, profile *domain.Profile) error
	// GetUserByID retrieves a user by their ID, without the profile joined in.
	GetUserByID(ctx context.Context, q DBExecutor, id int64) (*domain.User, error)
	// GetUserByEmail retrieves a user by their email address.
	GetUserByEmail(ctx context.Context, q DBExecutor, email string) (*domain.User, error)
	// GetProfileByUserID retrieves the profile attached to a user, if any.
	GetProfileByUserID(ctx context.Context, q DBExecutor, userID int64) (*domain.Profile, error)
	// ListUsers retrieves all users, without profiles joined in.
	ListUsers(ctx context.Context, q DBExecutor) ([]domain.User, error)
	// ListProfiles retrieves all profiles.
	ListProfiles(ctx context.Context, q DBExecutor) ([]domain.Profile, error)
	// UpdateUser persists changed email/password on an existing user.
	UpdateUser(ctx context.Context, q DBExecutor, user *domain.User) error
}
