// internal/service/auth_service_test.go
package service

import (
	"context"
	"testing"
	"time"

	"bankledger/internal/auth"
	"bankledger/internal/domain"
	"bankledger/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthServiceForTest(userRepo *MockUserRepository) (AuthService, *auth.TokenManager) {
	tokens := auth.NewTokenManager("test-secret", time.Hour)
	return NewAuthService(new(MockDBExecutor), userRepo, tokens), tokens
}

func TestRegister(t *testing.T) {
	t.Run("SuccessfulRegister", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		service, _ := newAuthServiceForTest(mockUserRepo)

		mockUserRepo.On("GetUserByEmail", ctx, mock.Anything, "john@mail.com").Return(nil, util.ErrNotFound).Once()
		mockUserRepo.On("CreateUser", ctx, mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				args.Get(2).(*domain.User).ID = 1
			}).Return(nil).Once()

		user, err := service.Register(ctx, "John Doe", "john@mail.com", "password")

		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.NoError(t, auth.CheckPassword(user.Password, "password"))

		mock.AssertExpectationsForObjects(t, mockUserRepo)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		service, _ := newAuthServiceForTest(mockUserRepo)

		existing := &domain.User{ID: 1, Email: "john@mail.com"}
		mockUserRepo.On("GetUserByEmail", ctx, mock.Anything, "john@mail.com").Return(existing, nil).Once()

		user, err := service.Register(ctx, "John Doe", "john@mail.com", "password")

		assert.ErrorIs(t, err, util.ErrDuplicateEmail)
		assert.Nil(t, user)
		mockUserRepo.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything, mock.Anything)

		mock.AssertExpectationsForObjects(t, mockUserRepo)
	})

	t.Run("MissingFields", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		service, _ := newAuthServiceForTest(mockUserRepo)

		_, err := service.Register(ctx, "", "john@mail.com", "password")
		assert.ErrorIs(t, err, util.ErrInvalidInput)
	})
}

func TestLogin(t *testing.T) {
	t.Run("SuccessfulLogin", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		service, tokens := newAuthServiceForTest(mockUserRepo)

		hashedPassword, err := auth.HashPassword("password")
		require.NoError(t, err)
		user := &domain.User{ID: 1, Email: "john@mail.com", Password: hashedPassword}

		mockUserRepo.On("GetUserByEmail", ctx, mock.Anything, "john@mail.com").Return(user, nil).Once()

		token, err := service.Login(ctx, "john@mail.com", "password")

		assert.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := tokens.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, int64(1), claims.UserID)
		assert.Equal(t, "john@mail.com", claims.Email)

		mock.AssertExpectationsForObjects(t, mockUserRepo)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		service, _ := newAuthServiceForTest(mockUserRepo)

		hashedPassword, err := auth.HashPassword("password")
		require.NoError(t, err)
		user := &domain.User{ID: 1, Email: "john@mail.com", Password: hashedPassword}

		mockUserRepo.On("GetUserByEmail", ctx, mock.Anything, "john@mail.com").Return(user, nil).Once()

		token, err := service.Login(ctx, "john@mail.com", "wrong")

		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
		assert.Empty(t, token)
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		service, _ := newAuthServiceForTest(mockUserRepo)

		mockUserRepo.On("GetUserByEmail", ctx, mock.Anything, "ghost@mail.com").Return(nil, util.ErrNotFound).Once()

		// Unknown email and wrong password are indistinguishable to the caller.
		token, err := service.Login(ctx, "ghost@mail.com", "password")

		assert.ErrorIs(t, err, util.ErrInvalidCredentials)
		assert.Empty(t, token)
	})
}
