// internal/service/user_service_test.go
package service

import (
	"context"
	"testing"

	"bankledger/internal/auth"
	"bankledger/internal/domain"
	"bankledger/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newUserServiceForTest(userRepo *MockUserRepository, tx *MockTxController) UserService {
	begin, commit, rollback := txFuncs(tx)
	return NewUserService(
		new(MockDBBeginner),
		new(MockDBExecutor),
		userRepo,
		begin,
		commit,
		rollback,
	)
}

func TestCreateUser(t *testing.T) {
	t.Run("UserWithProfile", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockTxController := new(MockTxController)
		service := newUserServiceForTest(mockUserRepo, mockTxController)

		profile := &domain.Profile{IdentityType: "KTP", IdentityNumber: "1234567890", Address: "Surabaya"}

		mockUserRepo.On("CreateUser", ctx, mock.Anything, mock.AnythingOfType("*domain.User")).
			Run(func(args mock.Arguments) {
				created := args.Get(2).(*domain.User)
				created.ID = 1
				// The password must be hashed before it reaches the repository.
				assert.NotEqual(t, "password", created.Password)
				assert.NoError(t, auth.CheckPassword(created.Password, "password"))
			}).Return(nil).Once()
		mockUserRepo.On("CreateProfile", ctx, mock.Anything, profile).Return(nil).Once()
		mockTxController.On("Commit").Return(nil).Once()
		mockTxController.On("Rollback").Return(nil).Maybe()

		user, err := service.Create(ctx, "John Doe", "john@mail.com", "password", profile)

		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, int64(1), profile.UserID)
		assert.Equal(t, profile, user.Profile)

		mock.AssertExpectationsForObjects(t, mockUserRepo, mockTxController)
	})

	t.Run("UserWithoutProfile", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockTxController := new(MockTxController)
		service := newUserServiceForTest(mockUserRepo, mockTxController)

		mockUserRepo.On("CreateUser", ctx, mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once()
		mockTxController.On("Commit").Return(nil).Once()
		mockTxController.On("Rollback").Return(nil).Maybe()

		user, err := service.Create(ctx, "Jane Doe", "jane@mail.com", "password", nil)

		assert.NoError(t, err)
		assert.Nil(t, user.Profile)
		mockUserRepo.AssertNotCalled(t, "CreateProfile", mock.Anything, mock.Anything, mock.Anything)

		mock.AssertExpectationsForObjects(t, mockUserRepo, mockTxController)
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockTxController := new(MockTxController)
		service := newUserServiceForTest(mockUserRepo, mockTxController)

		mockUserRepo.On("CreateUser", ctx, mock.Anything, mock.AnythingOfType("*domain.User")).Return(util.ErrDuplicateEmail).Once()
		mockTxController.On("Rollback").Return(nil).Once()

		user, err := service.Create(ctx, "John Doe", "john@mail.com", "password", nil)

		assert.ErrorIs(t, err, util.ErrDuplicateEmail)
		assert.Nil(t, user)
		mockTxController.AssertNotCalled(t, "Commit")

		mock.AssertExpectationsForObjects(t, mockUserRepo, mockTxController)
	})

	t.Run("ProfileInsertFailureRollsBackUser", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockTxController := new(MockTxController)
		service := newUserServiceForTest(mockUserRepo, mockTxController)

		profile := &domain.Profile{IdentityType: "KTP", IdentityNumber: "1234567890", Address: "Surabaya"}

		mockUserRepo.On("CreateUser", ctx, mock.Anything, mock.AnythingOfType("*domain.User")).Return(nil).Once()
		mockUserRepo.On("CreateProfile", ctx, mock.Anything, profile).Return(util.ErrInvalidInput).Once()
		mockTxController.On("Rollback").Return(nil).Once()

		user, err := service.Create(ctx, "John Doe", "john@mail.com", "password", profile)

		assert.Error(t, err)
		assert.Nil(t, user)
		mockTxController.AssertNotCalled(t, "Commit")

		mock.AssertExpectationsForObjects(t, mockUserRepo, mockTxController)
	})
}

func TestListUsers(t *testing.T) {
	ctx := context.Background()
	mockUserRepo := new(MockUserRepository)
	mockTxController := new(MockTxController)
	service := newUserServiceForTest(mockUserRepo, mockTxController)

	users := []domain.User{{ID: 1, Name: "John"}, {ID: 2, Name: "Jane"}}
	profiles := []domain.Profile{{ID: 10, UserID: 2, IdentityType: "KTP"}}

	mockUserRepo.On("ListUsers", ctx, mock.Anything).Return(users, nil).Once()
	mockUserRepo.On("ListProfiles", ctx, mock.Anything).Return(profiles, nil).Once()

	result, err := service.List(ctx)

	assert.NoError(t, err)
	assert.Len(t, result, 2)
	assert.Nil(t, result[0].Profile)
	assert.NotNil(t, result[1].Profile)
	assert.Equal(t, int64(10), result[1].Profile.ID)

	mock.AssertExpectationsForObjects(t, mockUserRepo)
}

func TestUpdateUser(t *testing.T) {
	t.Run("EmailOnly", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockTxController := new(MockTxController)
		service := newUserServiceForTest(mockUserRepo, mockTxController)

		existing := &domain.User{ID: 1, Name: "John", Email: "john@mail.com", Password: "hash"}

		mockUserRepo.On("GetUserByID", ctx, mock.Anything, int64(1)).Return(existing, nil).Once()
		mockUserRepo.On("UpdateUser", ctx, mock.Anything, existing).Return(nil).Once()

		user, err := service.Update(ctx, 1, "newemail@mail.com", "")

		assert.NoError(t, err)
		assert.Equal(t, "newemail@mail.com", user.Email)
		assert.Equal(t, "hash", user.Password) // Unchanged when no new password supplied.

		mock.AssertExpectationsForObjects(t, mockUserRepo)
	})

	t.Run("NotFound", func(t *testing.T) {
		ctx := context.Background()
		mockUserRepo := new(MockUserRepository)
		mockTxController := new(MockTxController)
		service := newUserServiceForTest(mockUserRepo, mockTxController)

		mockUserRepo.On("GetUserByID", ctx, mock.Anything, int64(99)).Return(nil, util.ErrNotFound).Once()

		user, err := service.Update(ctx, 99, "newemail@mail.com", "")

		assert.ErrorIs(t, err, util.ErrUserNotFound)
		assert.Nil(t, user)

		mock.AssertExpectationsForObjects(t, mockUserRepo)
	})
}
