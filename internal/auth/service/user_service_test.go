package service_test

import (
	"errors"
	"testing"

	"github.com/AnthoniusHendriyanto/todo-service/internal/auth/domain"
	"github.com/AnthoniusHendriyanto/todo-service/internal/auth/dto"
	"github.com/AnthoniusHendriyanto/todo-service/internal/auth/service"
	autherror "github.com/AnthoniusHendriyanto/todo-service/internal/errors"
	"github.com/AnthoniusHendriyanto/todo-service/internal/logger"
	"github.com/AnthoniusHendriyanto/todo-service/internal/mocks"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newUserService(t *testing.T) (*service.UserService, *mocks.MockUserRepository, *mocks.MockTodoPurger, *mocks.MockTokenGenerator) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mockRepo := mocks.NewMockUserRepository(ctrl)
	mockPurger := mocks.NewMockTodoPurger(ctrl)
	mockTokenService := mocks.NewMockTokenGenerator(ctrl)

	s := service.NewUserService(mockRepo, mockPurger, mockTokenService, logger.NewNoop())

	return s, mockRepo, mockPurger, mockTokenService
}

func hashPassword(t *testing.T, password string) string {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	return string(hash)
}

func TestUserService_Register_Success(t *testing.T) {
	s, mockRepo, _, mockTokenService := newUserService(t)

	input := dto.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "password123",
	}

	var created *domain.User
	mockRepo.EXPECT().GetByEmail(input.Email).Return(nil, nil)
	mockRepo.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *domain.User) error {
		created = u
		return nil
	})
	mockTokenService.EXPECT().Issue(gomock.Any()).Return("issued-token", nil)

	user, token, err := s.Register(input)

	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, "issued-token", token)
	assert.Equal(t, input.Email, user.Email)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, created.ID, user.ID)
	assert.NotZero(t, user.CreatedAt)
	assert.NotZero(t, user.UpdatedAt)

	// Stored credential is a hash of the submitted plaintext, never the
	// plaintext itself.
	assert.NotEqual(t, input.Password, user.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)))
}

func TestUserService_Register_EmailAlreadyExists(t *testing.T) {
	s, mockRepo, _, _ := newUserService(t)

	input := dto.RegisterInput{
		Email:    "alice@example.com",
		Password: "password123",
	}

	existingUser := &domain.User{ID: "existing-id", Email: input.Email}
	mockRepo.EXPECT().GetByEmail(input.Email).Return(existingUser, nil)

	user, token, err := s.Register(input)

	assert.ErrorIs(t, err, autherror.ErrEmailAlreadyInUse)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestUserService_Register_PasswordTooShort(t *testing.T) {
	s, mockRepo, _, _ := newUserService(t)

	input := dto.RegisterInput{
		Email:    "alice@example.com",
		Password: "short",
	}

	mockRepo.EXPECT().GetByEmail(input.Email).Return(nil, nil)

	user, token, err := s.Register(input)

	assert.ErrorIs(t, err, autherror.ErrPasswordTooShort)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestUserService_Register_CreateError(t *testing.T) {
	s, mockRepo, _, _ := newUserService(t)

	input := dto.RegisterInput{
		Email:    "alice@example.com",
		Password: "password123",
	}

	expectedError := errors.New("create error")
	mockRepo.EXPECT().GetByEmail(input.Email).Return(nil, nil)
	mockRepo.EXPECT().Create(gomock.Any()).Return(expectedError)

	user, token, err := s.Register(input)

	assert.Equal(t, expectedError, err)
	assert.Nil(t, user)
	assert.Empty(t, token)
}

func TestUserService_Login_Success(t *testing.T) {
	s, mockRepo, _, mockTokenService := newUserService(t)

	password := "password123"
	storedUser := &domain.User{
		ID:           "user-1",
		Email:        "alice@example.com",
		PasswordHash: hashPassword(t, password),
	}

	mockRepo.EXPECT().GetByEmail(storedUser.Email).Return(storedUser, nil)
	mockTokenService.EXPECT().Issue(storedUser.ID).Return("issued-token", nil)

	user, token, err := s.Login(dto.LoginInput{Email: storedUser.Email, Password: password})

	require.NoError(t, err)
	assert.Equal(t, storedUser.ID, user.ID)
	assert.Equal(t, "issued-token", token)
}

func TestUserService_Login_GenericFailure(t *testing.T) {
	// Unknown email and wrong password must be indistinguishable.
	tests := []struct {
		name  string
		setup func(mockRepo *mocks.MockUserRepository, hash string)
	}{
		{
			name: "no such user",
			setup: func(mockRepo *mocks.MockUserRepository, _ string) {
				mockRepo.EXPECT().GetByEmail("alice@example.com").Return(nil, nil)
			},
		},
		{
			name: "wrong password",
			setup: func(mockRepo *mocks.MockUserRepository, hash string) {
				mockRepo.EXPECT().GetByEmail("alice@example.com").Return(&domain.User{
					ID:           "user-1",
					Email:        "alice@example.com",
					PasswordHash: hash,
				}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, mockRepo, _, _ := newUserService(t)
			tt.setup(mockRepo, hashPassword(t, "the-real-password"))

			user, token, err := s.Login(dto.LoginInput{Email: "alice@example.com", Password: "whatever123"})

			assert.ErrorIs(t, err, autherror.ErrInvalidCredentials)
			assert.Nil(t, user)
			assert.Empty(t, token)
		})
	}
}

func TestUserService_Logout_RevokesExactToken(t *testing.T) {
	s, _, _, mockTokenService := newUserService(t)

	mockTokenService.EXPECT().Revoke("the-presented-token")

	s.Logout("the-presented-token")
}

func TestUserService_UpdateProfile_FieldsOnly(t *testing.T) {
	s, mockRepo, _, _ := newUserService(t)

	newName := "Alice Cooper"
	updated := &domain.User{ID: "user-1", Name: newName, Email: "alice@example.com"}

	mockRepo.EXPECT().Update("user-1", gomock.Any()).DoAndReturn(
		func(id string, update domain.UserUpdate) (*domain.User, error) {
			assert.Equal(t, &newName, update.Name)
			assert.Nil(t, update.PasswordHash)
			return updated, nil
		})

	user, err := s.UpdateProfile("user-1", dto.UpdateProfileInput{Name: &newName})

	require.NoError(t, err)
	assert.Equal(t, newName, user.Name)
}

func TestUserService_UpdateProfile_PasswordChange(t *testing.T) {
	s, mockRepo, _, _ := newUserService(t)

	current := "password123"
	newPassword := "password456"
	storedUser := &domain.User{
		ID:           "user-1",
		PasswordHash: hashPassword(t, current),
	}

	mockRepo.EXPECT().GetByID("user-1").Return(storedUser, nil)
	mockRepo.EXPECT().Update("user-1", gomock.Any()).DoAndReturn(
		func(id string, update domain.UserUpdate) (*domain.User, error) {
			// The re-hash lands in the same repository call as the rest of
			// the update.
			require.NotNil(t, update.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(*update.PasswordHash), []byte(newPassword)))
			return storedUser, nil
		})

	_, err := s.UpdateProfile("user-1", dto.UpdateProfileInput{
		CurrentPassword: current,
		NewPassword:     &newPassword,
	})

	assert.NoError(t, err)
}

func TestUserService_UpdateProfile_WrongCurrentPassword(t *testing.T) {
	s, mockRepo, _, _ := newUserService(t)

	newPassword := "password456"
	storedUser := &domain.User{
		ID:           "user-1",
		PasswordHash: hashPassword(t, "password123"),
	}

	mockRepo.EXPECT().GetByID("user-1").Return(storedUser, nil)

	user, err := s.UpdateProfile("user-1", dto.UpdateProfileInput{
		CurrentPassword: "not-the-password",
		NewPassword:     &newPassword,
	})

	assert.ErrorIs(t, err, autherror.ErrWrongPassword)
	assert.Nil(t, user)
}

func TestUserService_UpdateProfile_NewPasswordTooShort(t *testing.T) {
	s, mockRepo, _, _ := newUserService(t)

	current := "password123"
	newPassword := "short"
	storedUser := &domain.User{
		ID:           "user-1",
		PasswordHash: hashPassword(t, current),
	}

	mockRepo.EXPECT().GetByID("user-1").Return(storedUser, nil)

	user, err := s.UpdateProfile("user-1", dto.UpdateProfileInput{
		CurrentPassword: current,
		NewPassword:     &newPassword,
	})

	assert.ErrorIs(t, err, autherror.ErrPasswordTooShort)
	assert.Nil(t, user)
}

func TestUserService_UpdateProfile_UserGone(t *testing.T) {
	s, mockRepo, _, _ := newUserService(t)

	newName := "Alice Cooper"
	mockRepo.EXPECT().Update("user-1", gomock.Any()).Return(nil, nil)

	user, err := s.UpdateProfile("user-1", dto.UpdateProfileInput{Name: &newName})

	assert.ErrorIs(t, err, autherror.ErrUserNotFound)
	assert.Nil(t, user)
}

func TestUserService_DeleteAccount_CascadesBeforeUserDelete(t *testing.T) {
	s, mockRepo, mockPurger, _ := newUserService(t)

	password := "password123"
	storedUser := &domain.User{
		ID:           "user-1",
		PasswordHash: hashPassword(t, password),
	}

	mockRepo.EXPECT().GetByID("user-1").Return(storedUser, nil)

	// Todos must be purged before the user record goes away.
	gomock.InOrder(
		mockPurger.EXPECT().DeleteAllByOwner("user-1").Return(3),
		mockRepo.EXPECT().Delete("user-1").Return(true),
	)

	err := s.DeleteAccount("user-1", dto.DeleteAccountInput{Password: password})

	assert.NoError(t, err)
}

func TestUserService_DeleteAccount_WrongPassword(t *testing.T) {
	s, mockRepo, _, _ := newUserService(t)

	storedUser := &domain.User{
		ID:           "user-1",
		PasswordHash: hashPassword(t, "password123"),
	}

	mockRepo.EXPECT().GetByID("user-1").Return(storedUser, nil)

	err := s.DeleteAccount("user-1", dto.DeleteAccountInput{Password: "wrong-password"})

	assert.ErrorIs(t, err, autherror.ErrWrongPassword)
}

func TestUserService_DeleteAccount_UserGone(t *testing.T) {
	s, mockRepo, _, _ := newUserService(t)

	mockRepo.EXPECT().GetByID("user-1").Return(nil, nil)

	err := s.DeleteAccount("user-1", dto.DeleteAccountInput{Password: "password123"})

	assert.ErrorIs(t, err, autherror.ErrUserNotFound)
}
