package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/AnthoniusHendriyanto/todo-service/internal/auth/domain UserRepository,TodoPurger

// UserRepository is the sanctioned access path to the user collection.
// Lookups return (nil, nil) when no user matches.
type UserRepository interface {
	GetByEmail(email string) (*User, error)
	GetByID(id string) (*User, error)
	Create(user *User) error
	Update(id string, update UserUpdate) (*User, error)
	Delete(id string) bool
}

// TodoPurger is the slice of the todo repository the account lifecycle needs
// for cascading deletion.
type TodoPurger interface {
	DeleteAllByOwner(userID string) int
}
