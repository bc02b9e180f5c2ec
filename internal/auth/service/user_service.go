package service

import (
	"time"

	"github.com/AnthoniusHendriyanto/todo-service/internal/auth/domain"
	"github.com/AnthoniusHendriyanto/todo-service/internal/auth/dto"
	autherror "github.com/AnthoniusHendriyanto/todo-service/internal/errors"
	"github.com/AnthoniusHendriyanto/todo-service/internal/logger"
	"github.com/AnthoniusHendriyanto/todo-service/pkg/constant"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// UserService coordinates the account lifecycle: registration, login,
// logout, profile updates and cascading account deletion.
type UserService struct {
	repo         domain.UserRepository
	todos        domain.TodoPurger
	tokenService TokenGenerator
	log          *logger.Logger
}

func NewUserService(repo domain.UserRepository, todos domain.TodoPurger, tokenService TokenGenerator, log *logger.Logger) *UserService {
	return &UserService{
		repo:         repo,
		todos:        todos,
		tokenService: tokenService,
		log:          log,
	}
}

// Register creates a new account and issues its first token. Duplicate
// emails conflict; passwords below the minimum length are rejected before
// any hashing happens.
func (s *UserService) Register(input dto.RegisterInput) (*domain.User, string, error) {
	existingUser, err := s.repo.GetByEmail(input.Email)
	if err != nil {
		return nil, "", err
	}
	if existingUser != nil {
		return nil, "", autherror.ErrEmailAlreadyInUse
	}

	if len(input.Password) < constant.MinPasswordLength {
		return nil, "", autherror.ErrPasswordTooShort
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()

	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hashedPassword),
		Phone:        input.Phone,
		Address:      toDomainAddress(input.Address),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.repo.Create(user); err != nil {
		return nil, "", err
	}

	token, err := s.tokenService.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Login authenticates by email and password. Unknown email and wrong
// password fail identically so the response never reveals which part was
// wrong.
func (s *UserService) Login(input dto.LoginInput) (*domain.User, string, error) {
	user, err := s.repo.GetByEmail(input.Email)
	if err != nil {
		return nil, "", err
	}

	if user == nil || bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, "", autherror.ErrInvalidCredentials
	}

	token, err := s.tokenService.Issue(user.ID)
	if err != nil {
		return nil, "", err
	}

	return user, token, nil
}

// Logout revokes the exact token string that was presented. Revoking an
// already-revoked token is an idempotent success; the client-visible
// sign-out always wins over server bookkeeping.
func (s *UserService) Logout(tokenString string) {
	s.tokenService.Revoke(tokenString)
}

// GetByID materializes an identity for the session guard. Returns (nil, nil)
// when the account no longer exists.
func (s *UserService) GetByID(userID string) (*domain.User, error) {
	return s.repo.GetByID(userID)
}

// UpdateProfile merges the provided fields into the account. A password
// change requires the current password to verify first and the new password
// to meet the minimum length; the re-hash lands in the same repository call
// as the rest of the update.
func (s *UserService) UpdateProfile(userID string, input dto.UpdateProfileInput) (*domain.User, error) {
	update := domain.UserUpdate{
		Name:    input.Name,
		Email:   input.Email,
		Phone:   input.Phone,
		Address: toDomainAddress(input.Address),
	}

	if input.NewPassword != nil {
		user, err := s.repo.GetByID(userID)
		if err != nil {
			return nil, err
		}
		if user == nil {
			return nil, autherror.ErrUserNotFound
		}

		if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
			return nil, autherror.ErrWrongPassword
		}
		if len(*input.NewPassword) < constant.MinPasswordLength {
			return nil, autherror.ErrPasswordTooShort
		}

		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(*input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		hash := string(hashedPassword)
		update.PasswordHash = &hash
	}

	updated, err := s.repo.Update(userID, update)
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, autherror.ErrUserNotFound
	}

	return updated, nil
}

// DeleteAccount verifies the password, then removes the account's todos and
// the account itself in that order, so deletion never leaves todos owned by
// a user record that is already gone.
func (s *UserService) DeleteAccount(userID string, input dto.DeleteAccountInput) error {
	user, err := s.repo.GetByID(userID)
	if err != nil {
		return err
	}
	if user == nil {
		return autherror.ErrUserNotFound
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return autherror.ErrWrongPassword
	}

	purged := s.todos.DeleteAllByOwner(userID)
	if !s.repo.Delete(userID) {
		return autherror.ErrUserNotFound
	}

	s.log.Info("account deleted", "user_id", userID, "todos_removed", purged)

	return nil
}

func toDomainAddress(in *dto.AddressInput) *domain.Address {
	if in == nil {
		return nil
	}

	return &domain.Address{
		Street:  in.Street,
		City:    in.City,
		State:   in.State,
		ZipCode: in.ZipCode,
		Country: in.Country,
	}
}
