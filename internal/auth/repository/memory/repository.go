package memory

import (
	"sync"
	"time"

	"github.com/AnthoniusHendriyanto/todo-service/internal/auth/domain"
	autherror "github.com/AnthoniusHendriyanto/todo-service/internal/errors"
)

// UserRepository holds the canonical user collection in process memory.
// All access is serialized through a single RWMutex; returned users are
// copies so callers never alias repository-owned memory.
type UserRepository struct {
	mu    sync.RWMutex
	users map[string]*domain.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{users: make(map[string]*domain.User)}
}

// GetByEmail performs a case-sensitive exact match on the email natural key.
// Returns (nil, nil) when no user matches.
func (r *UserRepository) GetByEmail(email string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, u := range r.users {
		if u.Email == email {
			return copyUser(u), nil
		}
	}

	return nil, nil
}

func (r *UserRepository) GetByID(id string) (*domain.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}

	return copyUser(u), nil
}

// Create stores a new user, enforcing the one-user-per-email invariant at
// write time.
func (r *UserRepository) Create(user *domain.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, u := range r.users {
		if u.Email == user.Email {
			return autherror.ErrEmailAlreadyInUse
		}
	}

	r.users[user.ID] = copyUser(user)

	return nil
}

// Update merges the set fields of update into the stored user and bumps
// UpdatedAt. An email change re-checks uniqueness against every other user.
// Returns (nil, nil) when the user does not exist.
func (r *UserRepository) Update(id string, update domain.UserUpdate) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}

	if update.Email != nil && *update.Email != u.Email {
		for otherID, other := range r.users {
			if otherID != id && other.Email == *update.Email {
				return nil, autherror.ErrEmailAlreadyInUse
			}
		}
		u.Email = *update.Email
	}
	if update.Name != nil {
		u.Name = *update.Name
	}
	if update.Phone != nil {
		u.Phone = update.Phone
	}
	if update.Address != nil {
		addr := *update.Address
		u.Address = &addr
	}
	if update.PasswordHash != nil {
		u.PasswordHash = *update.PasswordHash
	}
	u.UpdatedAt = time.Now()

	return copyUser(u), nil
}

func (r *UserRepository) Delete(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[id]; !ok {
		return false
	}
	delete(r.users, id)

	return true
}

func copyUser(u *domain.User) *domain.User {
	cp := *u
	if u.Phone != nil {
		phone := *u.Phone
		cp.Phone = &phone
	}
	if u.Address != nil {
		addr := *u.Address
		cp.Address = &addr
	}

	return &cp
}
