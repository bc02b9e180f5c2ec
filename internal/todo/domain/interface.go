package domain

//go:generate mockgen -destination=../../mocks/mock_todo_repository.go -package=mocks github.com/AnthoniusHendriyanto/todo-service/internal/todo/domain TodoRepository

// TodoRepository is the sanctioned access path to the todo collection.
// FindByOwner preserves insertion order. Lookups return (nil, nil) when no
// todo matches; ownership checks belong to the calling layer.
type TodoRepository interface {
	FindByOwner(userID string, filter Filter) ([]*Todo, error)
	FindByID(id string) (*Todo, error)
	Create(todo *Todo) error
	Update(id string, update TodoUpdate) (*Todo, error)
	Delete(id string) bool
	DeleteAllByOwner(userID string) int
}
