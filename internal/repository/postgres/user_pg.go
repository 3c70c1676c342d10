// internal/repository/postgres/user_pg.go
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
	"github.com/lib/pq"
)

// uniqueViolation is the PostgreSQL error code for unique constraint violations.
const uniqueViolation = "23505"

// isUniqueViolation reports whether err is a unique constraint violation.
func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == uniqueViolation
	}
	return false
}

// UserRepository implements repository.UserRepository for PostgreSQL.
type UserRepository struct {
	// Stateless; methods receive a DBExecutor directly so they run against
	// either the pool or an open transaction.
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) repository.UserRepository {
	return &UserRepository{}
}

// CreateUser inserts a new user into the database using the provided DBExecutor.
func (r *UserRepository) CreateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `INSERT INTO users (name, email, password, created_at, updated_at)
              VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := q.QueryRowContext(ctx, query, user.Name, user.Email, user.Password, user.CreatedAt, user.UpdatedAt).Scan(&user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// CreateProfile inserts a profile for an existing user.
func (r *UserRepository) CreateProfile(ctx context.Context, q repository.DBExecutor, profile *domain.Profile) error {
	query := `INSERT INTO profiles (user_id, identity_type, identity_number, address)
              VALUES ($1, $2, $3, $4) RETURNING id`
	err := q.QueryRowContext(ctx, query, profile.UserID, profile.IdentityType, profile.IdentityNumber, profile.Address).Scan(&profile.ID)
	if err != nil {
		return fmt.Errorf("failed to create profile for user %d: %w", profile.UserID, err)
	}
	return nil
}

// GetUserByID retrieves a user by their ID using the provided DBExecutor.
func (r *UserRepository) GetUserByID(ctx context.Context, q repository.DBExecutor, id int64) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, name, email, password, created_at, updated_at FROM users WHERE id = $1`
	err := q.GetContext(ctx, &user, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by ID %d: %w", id, err)
	}
	return &user, nil
}

// GetUserByEmail retrieves a user by their email using the provided DBExecutor.
func (r *UserRepository) GetUserByEmail(ctx context.Context, q repository.DBExecutor, email string) (*domain.User, error) {
	var user domain.User
	query := `SELECT id, name, email, password, created_at, updated_at FROM users WHERE email = $1`
	err := q.GetContext(ctx, &user, query, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user by email '%s': %w", email, err)
	}
	return &user, nil
}

// GetProfileByUserID retrieves the profile attached to a user.
func (r *UserRepository) GetProfileByUserID(ctx context.Context, q repository.DBExecutor, userID int64) (*domain.Profile, error) {
	var profile domain.Profile
	query := `SELECT id, user_id, identity_type, identity_number, address FROM profiles WHERE user_id = $1`
	err := q.GetContext(ctx, &profile, query, userID)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, util.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get profile for user %d: %w", userID, err)
	}
	return &profile, nil
}

// ListUsers retrieves all users using the provided DBExecutor.
func (r *UserRepository) ListUsers(ctx context.Context, q repository.DBExecutor) ([]domain.User, error) {
	users := []domain.User{}
	query := `SELECT id, name, email, password, created_at, updated_at FROM users ORDER BY id`
	if err := q.SelectContext(ctx, &users, query); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// ListProfiles retrieves all profiles using the provided DBExecutor.
func (r *UserRepository) ListProfiles(ctx context.Context, q repository.DBExecutor) ([]domain.Profile, error) {
	profiles := []domain.Profile{}
	query := `SELECT id, user_id, identity_type, identity_number, address FROM profiles ORDER BY id`
	if err := q.SelectContext(ctx, &profiles, query); err != nil {
		return nil, fmt.Errorf("failed to list profiles: %w", err)
	}
	return profiles, nil
}

// UpdateUser persists email and password changes on an existing user.
func (r *UserRepository) UpdateUser(ctx context.Context, q repository.DBExecutor, user *domain.User) error {
	query := `UPDATE users SET email = $1, password = $2, updated_at = $3 WHERE id = $4`
	user.UpdatedAt = time.Now().UTC()
	result, err := q.ExecContext(ctx, query, user.Email, user.Password, user.UpdatedAt, user.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return util.ErrDuplicateEmail
		}
		return fmt.Errorf("failed to update user %d: %w", user.ID, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected after updating user %d: %w", user.ID, err)
	}
	if rowsAffected == 0 {
		return util.ErrNotFound
	}
	return nil
}
